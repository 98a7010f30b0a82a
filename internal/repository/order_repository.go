package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// OrderRepository aggregates placed orders. Order creation is outside
// this service; only the admin summary reads the table.
type OrderRepository interface {
	Summary(ctx context.Context) (*domain.OrderSummary, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

// Summary computes the order count and revenue total. The SUM runs in
// Postgres numeric arithmetic; COALESCE keeps an empty table at zero
// instead of NULL.
func (r *orderRepository) Summary(ctx context.Context) (*domain.OrderSummary, error) {
	const query = `
        SELECT COUNT(id), COALESCE(SUM(price * numberofunits), 0)
        FROM orders`

	var summary domain.OrderSummary
	if err := r.pool.QueryRow(ctx, query).Scan(
		&summary.TotalOrders,
		&summary.TotalAmount,
	); err != nil {
		return nil, err
	}
	return &summary, nil
}
