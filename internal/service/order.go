package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bewear/internal/domain"
	"bewear/internal/repository"
)

type orderService struct {
	repo repository.Querier
}

// NewOrderService creates the order-history service.
func NewOrderService(repo repository.Querier) domain.OrderService {
	return &orderService{repo: repo}
}

// ListForUser returns the user's orders with their lines, newest first.
func (s *orderService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	orders, err := s.repo.ListOrdersForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders for user %s: %w", userID, err)
	}
	return orders, nil
}
