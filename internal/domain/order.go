package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Order statuses. Orders are created by an external order-creation
// collaborator after payment; this service only reads them back.
const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusCanceled = "canceled"
)

// Order is a completed (or in-flight) purchase.
type Order struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Status       string
	TotalInCents int32
	CreatedAt    time.Time
	Items        []OrderItem
}

// OrderItem is a purchased line, priced at order time.
type OrderItem struct {
	VariantID    uuid.UUID
	ProductName  string
	VariantName  string
	Quantity     int32
	PriceInCents int32
	ImageURL     string
}

// OrderService exposes a user's order history.
type OrderService interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
}
