package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	"github.com/spec-kit/storefront-service/internal/service"
)

// AdminHandler exposes the remaining admin-console projections.
type AdminHandler struct {
	users  repository.UserRepository
	orders *service.OrderService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(users repository.UserRepository, orders *service.OrderService) *AdminHandler {
	return &AdminHandler{users: users, orders: orders}
}

// ListCustomers handles GET /customers (admin). The projection never
// contains email or credential fields.
func (h *AdminHandler) ListCustomers(c *fiber.Ctx) error {
	customers, err := h.users.ListCustomers(c.Context())
	if err != nil {
		return err
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return c.JSON(customers)
}

// OrderSummary handles GET /orders/summary (admin).
func (h *AdminHandler) OrderSummary(c *fiber.Ctx) error {
	summary, err := h.orders.Summary(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
