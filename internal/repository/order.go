package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bewear/internal/domain"
)

// ListOrdersForUser returns the user's orders with items, newest first.
func (q *Queries) ListOrdersForUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, status, total_in_cents, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := q.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalInCents, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	itemsQuery := `
		SELECT oi.order_id, oi.product_variant_id, p.name, v.name,
		       oi.quantity, oi.price_in_cents, v.image_url
		FROM order_items oi
		JOIN product_variants v ON v.id = oi.product_variant_id
		JOIN products p ON p.id = v.product_id
		WHERE oi.order_id = ANY($1)`

	itemRows, err := q.db.Query(ctx, itemsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID uuid.UUID
		var it domain.OrderItem
		if err := itemRows.Scan(
			&orderID, &it.VariantID, &it.ProductName, &it.VariantName,
			&it.Quantity, &it.PriceInCents, &it.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		i := index[orderID]
		orders[i].Items = append(orders[i].Items, it)
	}
	return orders, itemRows.Err()
}
