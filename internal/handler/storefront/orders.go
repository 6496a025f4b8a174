package storefront

import (
	"net/http"
	"time"

	"bewear/internal/domain"
	"bewear/internal/handler"
	"bewear/internal/middleware"
)

// OrderHandler serves the order-history endpoint.
type OrderHandler struct {
	orders domain.OrderService
}

// NewOrderHandler creates an order handler.
func NewOrderHandler(orders domain.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderItemResponse struct {
	ProductName  string `json:"productName"`
	VariantName  string `json:"variantName"`
	Quantity     int32  `json:"quantity"`
	PriceInCents int32  `json:"priceInCents"`
	ImageURL     string `json:"imageUrl"`
}

type orderResponse struct {
	ID           string              `json:"id"`
	Status       string              `json:"status"`
	TotalInCents int32               `json:"totalInCents"`
	CreatedAt    time.Time           `json:"createdAt"`
	Items        []orderItemResponse `json:"items"`
}

// List handles GET /api/orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	orders, err := h.orders.ListForUser(r.Context(), user.ID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]orderItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, orderItemResponse{
				ProductName:  it.ProductName,
				VariantName:  it.VariantName,
				Quantity:     it.Quantity,
				PriceInCents: it.PriceInCents,
				ImageURL:     it.ImageURL,
			})
		}
		out = append(out, orderResponse{
			ID:           o.ID.String(),
			Status:       o.Status,
			TotalInCents: o.TotalInCents,
			CreatedAt:    o.CreatedAt,
			Items:        items,
		})
	}

	handler.RespondJSON(w, http.StatusOK, out)
}
