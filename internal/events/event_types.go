package events

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventAdminLogin     EventType = "admin_login"
	EventProductAdded   EventType = "product_added"
	EventTicketClosed   EventType = "ticket_closed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Type    domain.SubjectType `json:"type"`
	UserID  *int64             `json:"user_id,omitempty"`
	AdminID *int64             `json:"admin_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// ProductAddedPayload payload.
type ProductAddedPayload struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Units     int64   `json:"units"`
}

// TicketClosedPayload payload.
type TicketClosedPayload struct {
	TicketID int64 `json:"ticket_id"`
}
