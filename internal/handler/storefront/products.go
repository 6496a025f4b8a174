package storefront

import (
	"net/http"

	"bewear/internal/domain"
	"bewear/internal/handler"
	"bewear/internal/telemetry"
)

// ProductHandler serves the read-only catalog endpoints.
type ProductHandler struct {
	products domain.ProductService
}

// NewProductHandler creates a product handler.
func NewProductHandler(products domain.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type variantResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Color        string `json:"color"`
	PriceInCents int32  `json:"priceInCents"`
	ImageURL     string `json:"imageUrl"`
}

type productResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Variants    []variantResponse `json:"variants"`
}

func toProductResponse(p domain.Product) productResponse {
	variants := make([]variantResponse, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, variantResponse{
			ID:           v.ID.String(),
			Name:         v.Name,
			Slug:         v.Slug,
			Color:        v.Color,
			PriceInCents: v.PriceInCents,
			ImageURL:     v.ImageURL,
		})
	}
	return productResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Variants:    variants,
	}
}

// List handles GET /api/products?category=.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	handler.RespondJSON(w, http.StatusOK, out)
}

// Search handles GET /api/products/search?q=.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	telemetry.ProductSearches.Inc()
	results, err := h.products.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, results)
}

// GetVariant handles GET /api/product-variants/{slug}.
func (h *ProductHandler) GetVariant(w http.ResponseWriter, r *http.Request) {
	variant, product, err := h.products.GetVariantBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	telemetry.ProductViews.Inc()
	handler.RespondJSON(w, http.StatusOK, map[string]any{
		"variant": variantResponse{
			ID:           variant.ID.String(),
			Name:         variant.Name,
			Slug:         variant.Slug,
			Color:        variant.Color,
			PriceInCents: variant.PriceInCents,
			ImageURL:     variant.ImageURL,
		},
		"product": toProductResponse(*product),
	})
}
