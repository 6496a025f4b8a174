package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Cart domain errors.
var (
	ErrCartNotFound    = &Error{Code: ENOTFOUND, Message: "Carrinho não encontrado"}
	ErrVariantNotFound = &Error{Code: ENOTFOUND, Message: "Produto não encontrado"}
	ErrInvalidQuantity = &Error{Code: EINVALID, Message: "Quantidade deve ser maior que zero"}
)

// Cart is a user's single active shopping cart.
// The user relation is one-to-one: carts are created lazily on first use
// via GetOrCreate, never by coincidence of a query.
type Cart struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	ShippingAddressID *uuid.UUID // nil until the identification step binds one
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CartItem is a cart line with variant details for display and totals.
// At most one row exists per (cart, variant); repeat adds increment quantity.
type CartItem struct {
	ID           uuid.UUID
	VariantID    uuid.UUID
	ProductName  string
	VariantName  string
	Quantity     int32
	PriceInCents int32
	ImageURL     string
}

// LineTotal returns quantity × unit price for this line.
func (i CartItem) LineTotal() int32 {
	return i.Quantity * i.PriceInCents
}

// CartSummary aggregates a cart with its items and recomputed totals.
// TotalInCents is derived on every read, never stored.
type CartSummary struct {
	Cart            Cart
	Items           []CartItem
	ShippingAddress *ShippingAddress
	TotalInCents    int32
	ItemCount       int
}

// CartService provides business logic for the shopping cart and the
// cart-address binding performed at the checkout identification step.
type CartService interface {
	// GetOrCreate returns the user's active cart, creating it if absent.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*Cart, error)

	// Summary returns the cart with items, bound address and derived totals.
	Summary(ctx context.Context, userID uuid.UUID) (*CartSummary, error)

	// AddItem adds a variant to the cart or increments its quantity.
	AddItem(ctx context.Context, userID, variantID uuid.UUID, quantity int) (*CartSummary, error)

	// SetItemQuantity sets a line's quantity; zero removes the line.
	SetItemQuantity(ctx context.Context, userID, variantID uuid.UUID, quantity int) (*CartSummary, error)

	// RemoveItem removes a variant from the cart.
	RemoveItem(ctx context.Context, userID, variantID uuid.UUID) (*CartSummary, error)

	// BindShippingAddress associates an address the user owns with their
	// cart. Ownership is re-verified at bind time; an address id that does
	// not exist or is owned by someone else yields ErrAddressNotFound.
	BindShippingAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
