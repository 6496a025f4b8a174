package domain

import (
	"context"

	"github.com/google/uuid"
)

// Product domain errors.
var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Produto não encontrado"}
)

// Product is a catalog entry. Pricing lives on variants.
type Product struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Slug        string
	Description string
	Variants    []ProductVariant
}

// ProductVariant is a purchasable variation of a product (color, etc).
type ProductVariant struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	Name         string
	Slug         string
	Color        string
	PriceInCents int32
	ImageURL     string
}

// Category groups products for browsing.
type Category struct {
	ID   uuid.UUID
	Name string
	Slug string
}

// SearchResult is a lightweight product hit for the search box.
// ImageURL comes from the product's cheapest variant.
type SearchResult struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"imageUrl"`
}

// ProductService exposes read-only catalog operations.
type ProductService interface {
	// List returns products, optionally restricted to a category slug.
	List(ctx context.Context, categorySlug string) ([]Product, error)

	// GetVariantBySlug returns a variant with its product and sibling variants.
	GetVariantBySlug(ctx context.Context, slug string) (*ProductVariant, *Product, error)

	// Search performs a case-insensitive substring match on product names.
	// Terms shorter than two characters yield an empty result; hits are capped.
	Search(ctx context.Context, term string) ([]SearchResult, error)
}
