package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// TicketsHandler exposes admin ticket endpoints.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets}
}

// ListOpen handles GET /tickets (admin).
func (h *TicketsHandler) ListOpen(c *fiber.Ctx) error {
	tickets, err := h.tickets.ListOpen(c.Context())
	if err != nil {
		return err
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return c.JSON(tickets)
}

// Close handles POST /tickets/:id/close (admin).
func (h *TicketsHandler) Close(c *fiber.Ctx) error {
	ticketID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid ticket id", nil)
	}

	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized")
	}

	if err := h.tickets.Close(c.Context(), principal.SubjectID, ticketID); err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Ticket %d closed successfully.", ticketID),
	})
}
