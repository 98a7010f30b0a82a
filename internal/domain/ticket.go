package domain

// TicketStatus enumerates lifecycle states for support tickets.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "OPEN"
	TicketStatusClosed TicketStatus = "CLOSED"
)

// Ticket is a support request raised from the storefront. Tickets are
// created OPEN and transition to CLOSED exactly once; CLOSED is terminal.
type Ticket struct {
	ID          int64        `json:"id"`
	Description string       `json:"description"`
	Status      TicketStatus `json:"status"`
}
