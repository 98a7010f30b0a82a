package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
)

// TicketService coordinates support ticket workflows for the admin console.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher}
}

// ListOpen returns all OPEN tickets.
func (s *TicketService) ListOpen(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.ListByStatus(ctx, domain.TicketStatusOpen)
}

// Close transitions a ticket OPEN to CLOSED. A missing ticket and an
// already-closed one are the same failure to the caller.
func (s *TicketService) Close(ctx context.Context, adminID, ticketID int64) error {
	if err := s.tickets.Close(ctx, ticketID); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTicketClosed,
			Actor:     adminActor(adminID),
			Timestamp: time.Now(),
			Payload:   events.TicketClosedPayload{TicketID: ticketID},
		})
	}
	return nil
}
