// Package telemetry exposes Prometheus counters for business-level
// observability, registered on the default registry and served by the
// /metrics endpoint.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Product engagement
	ProductSearches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bewear",
		Name:      "product_searches_total",
		Help:      "Product search requests that reached the catalog.",
	})
	ProductViews = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bewear",
		Name:      "product_views_total",
		Help:      "Product variant detail page loads.",
	})

	// Cart activity
	CartItemsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bewear",
		Name:      "cart_items_added_total",
		Help:      "Units added to carts.",
	})

	// Checkout funnel
	CheckoutSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bewear",
		Name:      "checkout_steps_total",
		Help:      "Checkout pages served, by step.",
	}, []string{"step"})
	CheckoutRedirects = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bewear",
		Name:      "checkout_redirects_total",
		Help:      "Checkout visitors bounced to an earlier step.",
	}, []string{"to"})

	// Postal code lookups
	CEPLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bewear",
		Name:      "cep_lookups_total",
		Help:      "ViaCEP lookups, by outcome.",
	}, []string{"outcome"})

	// Page cache
	PageCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bewear",
		Name:      "page_cache_requests_total",
		Help:      "Cached page reads, by hit or miss.",
	}, []string{"status"})
)
