package routes

import (
	"net/http"

	"bewear/internal/handler/storefront"
)

// StorefrontDeps contains the handlers wired into the storefront routes.
type StorefrontDeps struct {
	// Catalog
	ProductHandler *storefront.ProductHandler

	// Cart and checkout
	CartHandler     *storefront.CartHandler
	CheckoutHandler *storefront.CheckoutHandler

	// Shipping addresses and postal autofill
	AddressHandler *storefront.AddressHandler
	CEPHandler     *storefront.CEPHandler

	// Order history
	OrderHandler *storefront.OrderHandler

	// Operations
	MetricsHandler http.Handler
	HealthHandler  http.HandlerFunc
}
