package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bewear/internal/domain"
)

// GetOrCreateCart returns the user's single active cart, creating it on
// first use. The unique constraint on user_id makes this a one-statement
// upsert, so concurrent first adds cannot create two carts.
func (q *Queries) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error) {
	query := `
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
		RETURNING id, user_id, shipping_address_id, created_at, updated_at`

	cart, err := scanCart(q.db.QueryRow(ctx, query, userID))
	if err != nil {
		return domain.Cart{}, fmt.Errorf("get or create cart: %w", err)
	}
	return cart, nil
}

// GetCartByUserID returns the user's cart without creating one.
func (q *Queries) GetCartByUserID(ctx context.Context, userID uuid.UUID) (domain.Cart, error) {
	query := `
		SELECT id, user_id, shipping_address_id, created_at, updated_at
		FROM carts
		WHERE user_id = $1`

	return scanCart(q.db.QueryRow(ctx, query, userID))
}

// UpsertCartItemParams adds quantity to a cart line.
type UpsertCartItemParams struct {
	CartID    uuid.UUID
	VariantID uuid.UUID
	Quantity  int32
}

// UpsertCartItem inserts a cart line or increments the existing one.
// The UNIQUE(cart_id, product_variant_id) constraint guarantees at most
// one row per variant.
func (q *Queries) UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) error {
	query := `
		INSERT INTO cart_items (cart_id, product_variant_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_variant_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`

	if _, err := q.db.Exec(ctx, query, arg.CartID, arg.VariantID, arg.Quantity); err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

// SetCartItemQuantity sets a line's quantity. Returns the number of rows
// matched so the caller can distinguish a missing line.
func (q *Queries) SetCartItemQuantity(ctx context.Context, arg UpsertCartItemParams) (int64, error) {
	query := `
		UPDATE cart_items SET quantity = $3
		WHERE cart_id = $1 AND product_variant_id = $2`

	tag, err := q.db.Exec(ctx, query, arg.CartID, arg.VariantID, arg.Quantity)
	if err != nil {
		return 0, fmt.Errorf("set cart item quantity: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteCartItem removes a variant line from the cart.
func (q *Queries) DeleteCartItem(ctx context.Context, cartID, variantID uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1 AND product_variant_id = $2`

	if _, err := q.db.Exec(ctx, query, cartID, variantID); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// ListCartItems returns the cart's lines joined with variant and product
// details, in insertion order.
func (q *Queries) ListCartItems(ctx context.Context, cartID uuid.UUID) ([]domain.CartItem, error) {
	query := `
		SELECT i.id, i.product_variant_id, p.name, v.name, i.quantity,
		       v.price_in_cents, v.image_url
		FROM cart_items i
		JOIN product_variants v ON v.id = i.product_variant_id
		JOIN products p ON p.id = v.product_id
		WHERE i.cart_id = $1
		ORDER BY i.created_at`

	rows, err := q.db.Query(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var it domain.CartItem
		if err := rows.Scan(
			&it.ID,
			&it.VariantID,
			&it.ProductName,
			&it.VariantName,
			&it.Quantity,
			&it.PriceInCents,
			&it.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// BindCartShippingAddress points the user's cart at one of their own
// addresses. Ownership is re-verified inside the statement: the update
// only matches when the address row exists AND belongs to the same user,
// so a guessed address id affects zero rows.
func (q *Queries) BindCartShippingAddress(ctx context.Context, userID, addressID uuid.UUID) (int64, error) {
	query := `
		UPDATE carts c SET shipping_address_id = $2, updated_at = now()
		WHERE c.user_id = $1
		  AND EXISTS (
			SELECT 1 FROM shipping_addresses a
			WHERE a.id = $2 AND a.user_id = $1
		  )`

	tag, err := q.db.Exec(ctx, query, userID, addressID)
	if err != nil {
		return 0, fmt.Errorf("bind cart shipping address: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanCart(row rowScanner) (domain.Cart, error) {
	var c domain.Cart
	err := row.Scan(&c.ID, &c.UserID, &c.ShippingAddressID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
