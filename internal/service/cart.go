package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bewear/internal/cache"
	"bewear/internal/domain"
	"bewear/internal/repository"
)

type cartService struct {
	repo   repository.Querier
	pages  cache.Revalidator
	logger *slog.Logger
}

// NewCartService creates the cart service.
func NewCartService(repo repository.Querier, pages cache.Revalidator, logger *slog.Logger) domain.CartService {
	return &cartService{repo: repo, pages: pages, logger: logger}
}

// GetOrCreate returns the user's single active cart, creating it lazily.
func (s *cartService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	cart, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get or create cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// Summary returns the cart with its lines, bound address and totals.
// Totals are recomputed from the lines on every call.
func (s *cartService) Summary(ctx context.Context, userID uuid.UUID) (*domain.CartSummary, error) {
	cart, err := s.repo.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("get cart for user %s: %w", userID, err)
	}

	return s.summarize(ctx, cart)
}

// AddItem adds quantity of a variant to the cart, creating the cart on
// first use and incrementing the line when the variant is already in it.
func (s *cartService) AddItem(ctx context.Context, userID, variantID uuid.UUID, quantity int) (*domain.CartSummary, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	cart, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get or create cart for user %s: %w", userID, err)
	}

	err = s.repo.UpsertCartItem(ctx, repository.UpsertCartItemParams{
		CartID:    cart.ID,
		VariantID: variantID,
		Quantity:  int32(quantity),
	})
	if err != nil {
		// A violated FK on product_variant_id means the variant id is bogus.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrVariantNotFound
		}
		return nil, fmt.Errorf("upsert cart item: %w", err)
	}

	// The identification page embeds the cart lines; drop its cached copy.
	s.pages.Revalidate(ctx, identificationPath, userID.String())

	return s.summarize(ctx, cart)
}

// SetItemQuantity sets a line to an absolute quantity. Zero removes the
// line; a variant not in the cart yields ErrVariantNotFound.
func (s *cartService) SetItemQuantity(ctx context.Context, userID, variantID uuid.UUID, quantity int) (*domain.CartSummary, error) {
	if quantity == 0 {
		return s.RemoveItem(ctx, userID, variantID)
	}
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	cart, err := s.repo.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("get cart for user %s: %w", userID, err)
	}

	affected, err := s.repo.SetCartItemQuantity(ctx, repository.UpsertCartItemParams{
		CartID:    cart.ID,
		VariantID: variantID,
		Quantity:  int32(quantity),
	})
	if err != nil {
		return nil, fmt.Errorf("set cart item quantity: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrVariantNotFound
	}

	s.pages.Revalidate(ctx, identificationPath, userID.String())

	return s.summarize(ctx, cart)
}

// RemoveItem removes a variant line. Removing a variant that is not in
// the cart is a no-op.
func (s *cartService) RemoveItem(ctx context.Context, userID, variantID uuid.UUID) (*domain.CartSummary, error) {
	cart, err := s.repo.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("get cart for user %s: %w", userID, err)
	}

	if err := s.repo.DeleteCartItem(ctx, cart.ID, variantID); err != nil {
		return nil, fmt.Errorf("delete cart item: %w", err)
	}

	s.pages.Revalidate(ctx, identificationPath, userID.String())

	return s.summarize(ctx, cart)
}

// BindShippingAddress binds one of the user's own addresses to their cart.
// Ownership is re-verified inside the update statement, so an address id
// that does not exist or belongs to another user affects zero rows and
// surfaces as ErrAddressNotFound.
func (s *cartService) BindShippingAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	affected, err := s.repo.BindCartShippingAddress(ctx, userID, addressID)
	if err != nil {
		return fmt.Errorf("bind shipping address: %w", err)
	}
	if affected == 0 {
		return domain.ErrAddressNotFound
	}

	s.pages.Revalidate(ctx, identificationPath, userID.String())

	s.logger.Info("cart shipping address bound",
		slog.String("user_id", userID.String()),
		slog.String("address_id", addressID.String()))

	return nil
}

func (s *cartService) summarize(ctx context.Context, cart domain.Cart) (*domain.CartSummary, error) {
	items, err := s.repo.ListCartItems(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}

	var total int32
	var count int
	for _, it := range items {
		total += it.LineTotal()
		count += int(it.Quantity)
	}

	summary := &domain.CartSummary{
		Cart:         cart,
		Items:        items,
		TotalInCents: total,
		ItemCount:    count,
	}

	if cart.ShippingAddressID != nil {
		addr, err := s.repo.GetAddressForUser(ctx, *cart.ShippingAddressID, cart.UserID)
		if err == nil {
			summary.ShippingAddress = &addr
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get bound address: %w", err)
		}
	}

	return summary, nil
}
