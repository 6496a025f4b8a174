package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"

	"bewear/internal/domain"
	"bewear/internal/middleware"
)

// Handwritten service mocks for handler tests.

type mockAddressService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, input domain.AddressInput) (*domain.ShippingAddress, error)
	updateFunc func(ctx context.Context, addressID, userID uuid.UUID, input domain.AddressInput) (*domain.ShippingAddress, error)
	listFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.ShippingAddress, error)
}

func (m *mockAddressService) Create(ctx context.Context, userID uuid.UUID, input domain.AddressInput) (*domain.ShippingAddress, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, input)
	}
	return nil, domain.Internal(nil, "", "not implemented in mock")
}

func (m *mockAddressService) Update(ctx context.Context, addressID, userID uuid.UUID, input domain.AddressInput) (*domain.ShippingAddress, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, addressID, userID, input)
	}
	return nil, domain.Internal(nil, "", "not implemented in mock")
}

func (m *mockAddressService) List(ctx context.Context, userID uuid.UUID) ([]domain.ShippingAddress, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, nil
}

type mockCartService struct {
	getOrCreateFunc     func(ctx context.Context, userID uuid.UUID) (*domain.Cart, error)
	summaryFunc         func(ctx context.Context, userID uuid.UUID) (*domain.CartSummary, error)
	addItemFunc         func(ctx context.Context, userID, variantID uuid.UUID, quantity int) (*domain.CartSummary, error)
	setItemQuantityFunc func(ctx context.Context, userID, variantID uuid.UUID, quantity int) (*domain.CartSummary, error)
	removeItemFunc      func(ctx context.Context, userID, variantID uuid.UUID) (*domain.CartSummary, error)
	bindFunc            func(ctx context.Context, userID, addressID uuid.UUID) error
}

func (m *mockCartService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	if m.getOrCreateFunc != nil {
		return m.getOrCreateFunc(ctx, userID)
	}
	return &domain.Cart{UserID: userID}, nil
}

func (m *mockCartService) Summary(ctx context.Context, userID uuid.UUID) (*domain.CartSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, userID)
	}
	return nil, domain.ErrCartNotFound
}

func (m *mockCartService) AddItem(ctx context.Context, userID, variantID uuid.UUID, quantity int) (*domain.CartSummary, error) {
	if m.addItemFunc != nil {
		return m.addItemFunc(ctx, userID, variantID, quantity)
	}
	return nil, domain.Internal(nil, "", "not implemented in mock")
}

func (m *mockCartService) SetItemQuantity(ctx context.Context, userID, variantID uuid.UUID, quantity int) (*domain.CartSummary, error) {
	if m.setItemQuantityFunc != nil {
		return m.setItemQuantityFunc(ctx, userID, variantID, quantity)
	}
	return nil, domain.Internal(nil, "", "not implemented in mock")
}

func (m *mockCartService) RemoveItem(ctx context.Context, userID, variantID uuid.UUID) (*domain.CartSummary, error) {
	if m.removeItemFunc != nil {
		return m.removeItemFunc(ctx, userID, variantID)
	}
	return nil, domain.Internal(nil, "", "not implemented in mock")
}

func (m *mockCartService) BindShippingAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if m.bindFunc != nil {
		return m.bindFunc(ctx, userID, addressID)
	}
	return nil
}

type mockProductService struct {
	listFunc       func(ctx context.Context, categorySlug string) ([]domain.Product, error)
	getVariantFunc func(ctx context.Context, slug string) (*domain.ProductVariant, *domain.Product, error)
	searchFunc     func(ctx context.Context, term string) ([]domain.SearchResult, error)
}

func (m *mockProductService) List(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, categorySlug)
	}
	return nil, nil
}

func (m *mockProductService) GetVariantBySlug(ctx context.Context, slug string) (*domain.ProductVariant, *domain.Product, error) {
	if m.getVariantFunc != nil {
		return m.getVariantFunc(ctx, slug)
	}
	return nil, nil, domain.ErrProductNotFound
}

func (m *mockProductService) Search(ctx context.Context, term string) ([]domain.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, term)
	}
	return []domain.SearchResult{}, nil
}

// Fixtures

var (
	testUserID    = uuid.MustParse("77777777-7777-7777-7777-777777777777")
	testAddressID = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	testVariantID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	testCartID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
)

// authedRequest builds a request carrying an authenticated test user.
func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	user := &domain.User{ID: testUserID, Email: "maria@example.com", Name: "Maria Silva"}
	ctx := context.WithValue(r.Context(), middleware.UserContextKey, user)
	return r.WithContext(ctx)
}
