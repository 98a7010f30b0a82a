package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ProductRepository encapsulates inventory persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository instantiates repository.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (name, category, price, imagelink, numberofunits)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		product.Name,
		product.Category,
		product.Price,
		product.ImageLink,
		product.Units,
	).Scan(&product.ID)
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	const query = `
        SELECT id, name, category, price, imagelink, numberofunits
        FROM products ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Price,
			&product.ImageLink,
			&product.Units,
		); err != nil {
			return nil, err
		}
		result = append(result, product)
	}
	return result, rows.Err()
}
