package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// AdminRepository resolves the pre-provisioned admin credential record.
// At most one row is consulted per login attempt, matched by id.
type AdminRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AdminAccount, error)
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (*domain.AdminAccount, error) {
	const query = `SELECT id, password FROM privileges WHERE id=$1`

	var admin domain.AdminAccount
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.PasswordHash,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}
