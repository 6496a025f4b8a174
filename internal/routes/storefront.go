package routes

import (
	"bewear/internal/middleware"
	"bewear/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing storefront routes.
//
// Checkout pages are registered without RequireAuth on purpose: they answer
// anonymous visitors with a redirect to the home page instead of a 401, so
// the handlers resolve the session themselves.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Catalog
	r.Get("/api/products", deps.ProductHandler.List)
	r.Get("/api/products/search", deps.ProductHandler.Search)
	r.Get("/api/product-variants/{slug}", deps.ProductHandler.GetVariant)

	// Postal code autofill
	r.Get("/api/cep/{code}", deps.CEPHandler.Lookup)

	// Checkout pages
	r.Get("/cart", deps.CheckoutHandler.Bag)
	r.Get("/cart/identification", deps.CheckoutHandler.Identification)
	r.Get("/cart/confirmation", deps.CheckoutHandler.Confirmation)

	// Operations
	r.Get("/healthz", deps.HealthHandler)
	r.Handle("GET", "/metrics", deps.MetricsHandler)

	// Account routes (require authentication)
	account := r.Group(middleware.RequireAuth)
	account.Get("/api/cart", deps.CartHandler.Get)
	account.Post("/api/cart/items", deps.CartHandler.AddItem)
	account.Patch("/api/cart/items/{variantId}", deps.CartHandler.SetItemQuantity)
	account.Delete("/api/cart/items/{variantId}", deps.CartHandler.RemoveItem)
	account.Post("/api/cart/shipping-address", deps.CartHandler.BindShippingAddress)
	account.Get("/api/addresses", deps.AddressHandler.List)
	account.Post("/api/addresses", deps.AddressHandler.Create)
	account.Put("/api/addresses/{id}", deps.AddressHandler.Update)
	account.Get("/api/orders", deps.OrderHandler.List)
}
