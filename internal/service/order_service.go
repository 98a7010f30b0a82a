package service

import (
	"context"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
)

// OrderService exposes the admin order aggregates.
type OrderService struct {
	orders repository.OrderRepository
}

// NewOrderService constructs the service.
func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// Summary returns the order count and revenue total. An empty orders
// table yields zero aggregates, never an error.
func (s *OrderService) Summary(ctx context.Context) (*domain.OrderSummary, error) {
	return s.orders.Summary(ctx)
}
