package storefront

import (
	"net/http"

	"github.com/google/uuid"

	"bewear/internal/domain"
	"bewear/internal/handler"
	"bewear/internal/middleware"
	"bewear/internal/telemetry"
)

// CartHandler serves the cart endpoints.
type CartHandler struct {
	carts domain.CartService
}

// NewCartHandler creates a cart handler.
func NewCartHandler(carts domain.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type cartItemResponse struct {
	VariantID    string `json:"variantId"`
	ProductName  string `json:"productName"`
	VariantName  string `json:"variantName"`
	Quantity     int32  `json:"quantity"`
	PriceInCents int32  `json:"priceInCents"`
	LineTotal    int32  `json:"lineTotalInCents"`
	ImageURL     string `json:"imageUrl"`
}

type cartResponse struct {
	ID              string             `json:"id"`
	Items           []cartItemResponse `json:"items"`
	ShippingAddress *addressResponse   `json:"shippingAddress,omitempty"`
	TotalInCents    int32              `json:"totalInCents"`
	ItemCount       int                `json:"itemCount"`
}

func toCartResponse(s *domain.CartSummary) cartResponse {
	items := make([]cartItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, cartItemResponse{
			VariantID:    it.VariantID.String(),
			ProductName:  it.ProductName,
			VariantName:  it.VariantName,
			Quantity:     it.Quantity,
			PriceInCents: it.PriceInCents,
			LineTotal:    it.LineTotal(),
			ImageURL:     it.ImageURL,
		})
	}

	resp := cartResponse{
		ID:           s.Cart.ID.String(),
		Items:        items,
		TotalInCents: s.TotalInCents,
		ItemCount:    s.ItemCount,
	}
	if s.ShippingAddress != nil {
		addr := toAddressResponse(*s.ShippingAddress)
		resp.ShippingAddress = &addr
	}
	return resp
}

// Get handles GET /api/cart. A user without a cart yet gets an empty one.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	summary, err := h.carts.Summary(r.Context(), user.ID)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			handler.RespondJSON(w, http.StatusOK, cartResponse{Items: []cartItemResponse{}})
			return
		}
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, toCartResponse(summary))
}

type addItemRequest struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req addItemRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	variantID, err := uuid.Parse(req.VariantID)
	if err != nil {
		handler.RespondError(w, r, domain.ErrVariantNotFound)
		return
	}

	summary, err := h.carts.AddItem(r.Context(), user.ID, variantID, req.Quantity)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	telemetry.CartItemsAdded.Add(float64(req.Quantity))
	handler.RespondJSON(w, http.StatusOK, toCartResponse(summary))
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetItemQuantity handles PATCH /api/cart/items/{variantId}.
func (h *CartHandler) SetItemQuantity(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	variantID, err := uuid.Parse(r.PathValue("variantId"))
	if err != nil {
		handler.RespondError(w, r, domain.ErrVariantNotFound)
		return
	}

	var req setQuantityRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	summary, err := h.carts.SetItemQuantity(r.Context(), user.ID, variantID, req.Quantity)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, toCartResponse(summary))
}

// RemoveItem handles DELETE /api/cart/items/{variantId}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	variantID, err := uuid.Parse(r.PathValue("variantId"))
	if err != nil {
		handler.RespondError(w, r, domain.ErrVariantNotFound)
		return
	}

	summary, err := h.carts.RemoveItem(r.Context(), user.ID, variantID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, toCartResponse(summary))
}

type bindAddressRequest struct {
	AddressID string `json:"addressId"`
}

// BindShippingAddress handles POST /api/cart/shipping-address.
func (h *CartHandler) BindShippingAddress(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req bindAddressRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	addressID, err := uuid.Parse(req.AddressID)
	if err != nil {
		handler.RespondError(w, r, domain.ErrAddressNotFound)
		return
	}

	if err := h.carts.BindShippingAddress(r.Context(), user.ID, addressID); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	summary, err := h.carts.Summary(r.Context(), user.ID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, toCartResponse(summary))
}
