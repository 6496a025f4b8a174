package repository

import (
	"context"

	"github.com/google/uuid"

	"bewear/internal/domain"
)

// Querier is the full query surface of the repository. Services depend on
// this interface so tests can substitute handwritten mocks.
type Querier interface {
	// Addresses
	CreateAddress(ctx context.Context, arg CreateAddressParams) (domain.ShippingAddress, error)
	UpdateAddressForUser(ctx context.Context, arg UpdateAddressParams) (domain.ShippingAddress, error)
	ListAddressesForUser(ctx context.Context, userID uuid.UUID) ([]domain.ShippingAddress, error)
	GetAddressForUser(ctx context.Context, addressID, userID uuid.UUID) (domain.ShippingAddress, error)

	// Carts
	GetOrCreateCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error)
	GetCartByUserID(ctx context.Context, userID uuid.UUID) (domain.Cart, error)
	UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) error
	SetCartItemQuantity(ctx context.Context, arg UpsertCartItemParams) (int64, error)
	DeleteCartItem(ctx context.Context, cartID, variantID uuid.UUID) error
	ListCartItems(ctx context.Context, cartID uuid.UUID) ([]domain.CartItem, error)
	BindCartShippingAddress(ctx context.Context, userID, addressID uuid.UUID) (int64, error)

	// Catalog
	ListProducts(ctx context.Context, categorySlug string) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (domain.Product, error)
	GetVariantBySlug(ctx context.Context, slug string) (domain.ProductVariant, error)
	SearchProducts(ctx context.Context, term string, limit int32) ([]domain.SearchResult, error)

	// Orders
	ListOrdersForUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)

	// Users
	GetUserBySessionToken(ctx context.Context, token string) (domain.User, error)
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

var _ Querier = (*Queries)(nil)
