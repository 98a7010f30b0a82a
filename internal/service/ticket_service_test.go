package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/storefront-service/internal/domain"
)

type stubTicketRepo struct {
	tickets map[int64]*domain.Ticket
}

func newStubTicketRepo(tickets ...domain.Ticket) *stubTicketRepo {
	repo := &stubTicketRepo{tickets: make(map[int64]*domain.Ticket)}
	for i := range tickets {
		ticket := tickets[i]
		repo.tickets[ticket.ID] = &ticket
	}
	return repo
}

func (r *stubTicketRepo) ListByStatus(_ context.Context, status domain.TicketStatus) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for _, ticket := range r.tickets {
		if ticket.Status == status {
			result = append(result, *ticket)
		}
	}
	return result, nil
}

func (r *stubTicketRepo) Close(_ context.Context, id int64) error {
	ticket, ok := r.tickets[id]
	if !ok || ticket.Status != domain.TicketStatusOpen {
		return domain.ErrTicketNotOpen
	}
	ticket.Status = domain.TicketStatusClosed
	return nil
}

func TestTicketService_ListOpen(t *testing.T) {
	repo := newStubTicketRepo(
		domain.Ticket{ID: 1, Description: "broken", Status: domain.TicketStatusOpen},
		domain.Ticket{ID: 2, Description: "done", Status: domain.TicketStatusClosed},
	)
	svc := NewTicketService(repo, nil)

	open, err := svc.ListOpen(context.Background())
	if err != nil {
		t.Fatalf("ListOpen error: %v", err)
	}
	if len(open) != 1 || open[0].ID != 1 {
		t.Fatalf("expected only ticket 1 open, got %+v", open)
	}
}

func TestTicketService_Close_OnceOnly(t *testing.T) {
	repo := newStubTicketRepo(domain.Ticket{ID: 1, Status: domain.TicketStatusOpen})
	svc := NewTicketService(repo, nil)

	if err := svc.Close(context.Background(), 1, 1); err != nil {
		t.Fatalf("first close error: %v", err)
	}
	if repo.tickets[1].Status != domain.TicketStatusClosed {
		t.Fatalf("ticket not closed: %s", repo.tickets[1].Status)
	}

	if err := svc.Close(context.Background(), 1, 1); !errors.Is(err, domain.ErrTicketNotOpen) {
		t.Fatalf("second close: expected ErrTicketNotOpen, got %v", err)
	}
}

func TestTicketService_Close_Nonexistent(t *testing.T) {
	svc := NewTicketService(newStubTicketRepo(), nil)

	if err := svc.Close(context.Background(), 1, 99); !errors.Is(err, domain.ErrTicketNotOpen) {
		t.Fatalf("expected ErrTicketNotOpen, got %v", err)
	}
}
