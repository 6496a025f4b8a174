package storefront

import (
	"bytes"
	"encoding/json"
	"net/http"

	"bewear/internal/cache"
	"bewear/internal/domain"
	"bewear/internal/handler"
	"bewear/internal/middleware"
	"bewear/internal/telemetry"
)

// CheckoutHandler serves the checkout step pages. Each page derives the
// permitted step from the cart state and redirects when the requested
// step is not reachable yet.
type CheckoutHandler struct {
	carts domain.CartService
	guard domain.CheckoutGuard
	pages *cache.PageCache
}

// NewCheckoutHandler creates a checkout handler.
func NewCheckoutHandler(carts domain.CartService, pages *cache.PageCache) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, pages: pages}
}

type checkoutPage struct {
	Step string       `json:"step"`
	Cart cartResponse `json:"cart"`
}

// Bag handles GET /cart.
func (h *CheckoutHandler) Bag(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, domain.StepBag)
}

// Identification handles GET /cart/identification. The rendered payload
// is cached per user and rebuilt after every address mutation.
func (h *CheckoutHandler) Identification(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if h.pages != nil {
		if payload, ok := h.pages.Get(r.Context(), r.URL.Path, user.ID.String()); ok {
			telemetry.CheckoutSteps.WithLabelValues(string(domain.StepIdentification)).Inc()
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}
	}

	summary, redirect := h.resolve(w, r, domain.StepIdentification)
	if summary == nil || redirect {
		return
	}

	page := checkoutPage{Step: string(domain.StepIdentification), Cart: toCartResponse(summary)}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(page); err != nil {
		handler.RespondError(w, r, domain.Internal(err, "checkout.identification", "Erro interno"))
		return
	}

	if h.pages != nil {
		h.pages.Set(r.Context(), r.URL.Path, user.ID.String(), buf.Bytes())
	}

	telemetry.CheckoutSteps.WithLabelValues(string(domain.StepIdentification)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

// Confirmation handles GET /cart/confirmation, the payment step.
func (h *CheckoutHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, domain.StepPayment)
}

func (h *CheckoutHandler) step(w http.ResponseWriter, r *http.Request, requested domain.CheckoutStep) {
	summary, redirect := h.resolve(w, r, requested)
	if summary == nil || redirect {
		return
	}

	telemetry.CheckoutSteps.WithLabelValues(string(requested)).Inc()
	handler.RespondJSON(w, http.StatusOK, checkoutPage{
		Step: string(requested),
		Cart: toCartResponse(summary),
	})
}

// resolve loads the cart and applies the step guard. It returns the
// summary and whether a redirect was already written. Anonymous users
// and users without a cart are sent back to the storefront root.
func (h *CheckoutHandler) resolve(w http.ResponseWriter, r *http.Request, requested domain.CheckoutStep) (*domain.CartSummary, bool) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil, true
	}

	summary, err := h.carts.Summary(r.Context(), user.ID)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return nil, true
		}
		handler.RespondError(w, r, err)
		return nil, true
	}

	if _, target := h.guard.Resolve(requested, summary); target != "" {
		telemetry.CheckoutRedirects.WithLabelValues(target).Inc()
		http.Redirect(w, r, target, http.StatusSeeOther)
		return summary, true
	}

	return summary, false
}
