package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/events"
)

// AuditService records an audit trail for auth and admin mutations by
// subscribing to domain events.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserRegistered, a.handleEvent)
	a.dispatcher.Subscribe(events.EventAdminLogin, a.handleEvent)
	a.dispatcher.Subscribe(events.EventProductAdded, a.handleEvent)
	a.dispatcher.Subscribe(events.EventTicketClosed, a.handleEvent)
}

func (a *AuditService) handleEvent(_ context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("actor_type", string(event.Actor.Type)),
		zap.Any("payload", event.Payload),
	)
	return nil
}
