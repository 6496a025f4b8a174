package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bewear/internal/domain"
	"bewear/internal/repository"
)

// mockQuerier implements repository.Querier for testing. Unset funcs fall
// back to pgx.ErrNoRows for lookups and nil for writes.
type mockQuerier struct {
	CreateAddressFunc        func(ctx context.Context, arg repository.CreateAddressParams) (domain.ShippingAddress, error)
	UpdateAddressForUserFunc func(ctx context.Context, arg repository.UpdateAddressParams) (domain.ShippingAddress, error)
	ListAddressesForUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ShippingAddress, error)
	GetAddressForUserFunc    func(ctx context.Context, addressID, userID uuid.UUID) (domain.ShippingAddress, error)

	GetOrCreateCartFunc         func(ctx context.Context, userID uuid.UUID) (domain.Cart, error)
	GetCartByUserIDFunc         func(ctx context.Context, userID uuid.UUID) (domain.Cart, error)
	UpsertCartItemFunc          func(ctx context.Context, arg repository.UpsertCartItemParams) error
	SetCartItemQuantityFunc     func(ctx context.Context, arg repository.UpsertCartItemParams) (int64, error)
	DeleteCartItemFunc          func(ctx context.Context, cartID, variantID uuid.UUID) error
	ListCartItemsFunc           func(ctx context.Context, cartID uuid.UUID) ([]domain.CartItem, error)
	BindCartShippingAddressFunc func(ctx context.Context, userID, addressID uuid.UUID) (int64, error)

	ListProductsFunc     func(ctx context.Context, categorySlug string) ([]domain.Product, error)
	GetProductByIDFunc   func(ctx context.Context, id uuid.UUID) (domain.Product, error)
	GetVariantBySlugFunc func(ctx context.Context, slug string) (domain.ProductVariant, error)
	SearchProductsFunc   func(ctx context.Context, term string, limit int32) ([]domain.SearchResult, error)

	ListOrdersForUserFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	GetUserBySessionTokenFunc func(ctx context.Context, token string) (domain.User, error)
	DeleteExpiredSessionsFunc func(ctx context.Context) (int64, error)
}

func (m *mockQuerier) CreateAddress(ctx context.Context, arg repository.CreateAddressParams) (domain.ShippingAddress, error) {
	if m.CreateAddressFunc != nil {
		return m.CreateAddressFunc(ctx, arg)
	}
	return domain.ShippingAddress{}, pgx.ErrNoRows
}

func (m *mockQuerier) UpdateAddressForUser(ctx context.Context, arg repository.UpdateAddressParams) (domain.ShippingAddress, error) {
	if m.UpdateAddressForUserFunc != nil {
		return m.UpdateAddressForUserFunc(ctx, arg)
	}
	return domain.ShippingAddress{}, pgx.ErrNoRows
}

func (m *mockQuerier) ListAddressesForUser(ctx context.Context, userID uuid.UUID) ([]domain.ShippingAddress, error) {
	if m.ListAddressesForUserFunc != nil {
		return m.ListAddressesForUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockQuerier) GetAddressForUser(ctx context.Context, addressID, userID uuid.UUID) (domain.ShippingAddress, error) {
	if m.GetAddressForUserFunc != nil {
		return m.GetAddressForUserFunc(ctx, addressID, userID)
	}
	return domain.ShippingAddress{}, pgx.ErrNoRows
}

func (m *mockQuerier) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error) {
	if m.GetOrCreateCartFunc != nil {
		return m.GetOrCreateCartFunc(ctx, userID)
	}
	return domain.Cart{}, pgx.ErrNoRows
}

func (m *mockQuerier) GetCartByUserID(ctx context.Context, userID uuid.UUID) (domain.Cart, error) {
	if m.GetCartByUserIDFunc != nil {
		return m.GetCartByUserIDFunc(ctx, userID)
	}
	return domain.Cart{}, pgx.ErrNoRows
}

func (m *mockQuerier) UpsertCartItem(ctx context.Context, arg repository.UpsertCartItemParams) error {
	if m.UpsertCartItemFunc != nil {
		return m.UpsertCartItemFunc(ctx, arg)
	}
	return nil
}

func (m *mockQuerier) SetCartItemQuantity(ctx context.Context, arg repository.UpsertCartItemParams) (int64, error) {
	if m.SetCartItemQuantityFunc != nil {
		return m.SetCartItemQuantityFunc(ctx, arg)
	}
	return 0, nil
}

func (m *mockQuerier) DeleteCartItem(ctx context.Context, cartID, variantID uuid.UUID) error {
	if m.DeleteCartItemFunc != nil {
		return m.DeleteCartItemFunc(ctx, cartID, variantID)
	}
	return nil
}

func (m *mockQuerier) ListCartItems(ctx context.Context, cartID uuid.UUID) ([]domain.CartItem, error) {
	if m.ListCartItemsFunc != nil {
		return m.ListCartItemsFunc(ctx, cartID)
	}
	return nil, nil
}

func (m *mockQuerier) BindCartShippingAddress(ctx context.Context, userID, addressID uuid.UUID) (int64, error) {
	if m.BindCartShippingAddressFunc != nil {
		return m.BindCartShippingAddressFunc(ctx, userID, addressID)
	}
	return 0, nil
}

func (m *mockQuerier) ListProducts(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx, categorySlug)
	}
	return nil, nil
}

func (m *mockQuerier) GetProductByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if m.GetProductByIDFunc != nil {
		return m.GetProductByIDFunc(ctx, id)
	}
	return domain.Product{}, pgx.ErrNoRows
}

func (m *mockQuerier) GetVariantBySlug(ctx context.Context, slug string) (domain.ProductVariant, error) {
	if m.GetVariantBySlugFunc != nil {
		return m.GetVariantBySlugFunc(ctx, slug)
	}
	return domain.ProductVariant{}, pgx.ErrNoRows
}

func (m *mockQuerier) SearchProducts(ctx context.Context, term string, limit int32) ([]domain.SearchResult, error) {
	if m.SearchProductsFunc != nil {
		return m.SearchProductsFunc(ctx, term, limit)
	}
	return nil, nil
}

func (m *mockQuerier) ListOrdersForUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	if m.ListOrdersForUserFunc != nil {
		return m.ListOrdersForUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockQuerier) GetUserBySessionToken(ctx context.Context, token string) (domain.User, error) {
	if m.GetUserBySessionTokenFunc != nil {
		return m.GetUserBySessionTokenFunc(ctx, token)
	}
	return domain.User{}, pgx.ErrNoRows
}

func (m *mockQuerier) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	if m.DeleteExpiredSessionsFunc != nil {
		return m.DeleteExpiredSessionsFunc(ctx)
	}
	return 0, nil
}

var _ repository.Querier = (*mockQuerier)(nil)

// mockRevalidator records page revalidations.
type mockRevalidator struct {
	Calls []string // "path|userID"
}

func (m *mockRevalidator) Revalidate(ctx context.Context, path, userID string) {
	m.Calls = append(m.Calls, path+"|"+userID)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Test fixtures

var (
	testUserID    = uuid.MustParse("77777777-7777-7777-7777-777777777777")
	testCartID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testAddressID = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	testVariantID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func makeTestCart() domain.Cart {
	return domain.Cart{
		ID:        testCartID,
		UserID:    testUserID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func makeTestAddressInput() domain.AddressInput {
	return domain.AddressInput{
		Email:        "maria@example.com",
		FullName:     "Maria Silva",
		CPF:          "111.444.777-35",
		Phone:        "(11) 99999-9999",
		ZipCode:      "01311-000",
		Street:       "Avenida Paulista",
		Number:       "1578",
		Complement:   "Apto 42",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
	}
}
