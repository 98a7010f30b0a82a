package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	ListByStatus(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error)
	Close(ctx context.Context, id int64) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) ListByStatus(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error) {
	const query = `
        SELECT id, description, status
        FROM tickets WHERE status=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

// Close transitions OPEN to CLOSED in a single conditional statement.
// Zero affected rows covers both a missing ticket and an already-closed
// one; the caller cannot tell which.
func (r *ticketRepository) Close(ctx context.Context, id int64) error {
	const query = `
        UPDATE tickets SET status=$1
        WHERE id=$2 AND status=$3`

	cmd, err := r.pool.Exec(ctx, query, domain.TicketStatusClosed, id, domain.TicketStatusOpen)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrTicketNotOpen
	}
	return nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Description,
			&ticket.Status,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
