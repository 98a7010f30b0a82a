package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// CatalogHandler exposes product endpoints for the storefront and the
// admin console.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles GET /products (public).
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.catalog.ListProducts(c.Context())
	if err != nil {
		return err
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, dto.ProductResponse{
			ID:       product.ID,
			Name:     product.Name,
			Category: product.Category,
			Price:    product.Price,
			ImageURL: product.ImageLink,
		})
	}
	return c.JSON(response)
}

// ListInventory handles GET /inventory (admin).
func (h *CatalogHandler) ListInventory(c *fiber.Ctx) error {
	products, err := h.catalog.ListInventory(c.Context())
	if err != nil {
		return err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(products)
}

// AddProduct handles POST /inventory/add (admin).
func (h *CatalogHandler) AddProduct(c *fiber.Ctx) error {
	var req dto.AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if _, err := h.catalog.AddProduct(c.Context(), service.ProductInput{
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		Units:     req.Units,
		ImageLink: req.ImageLink,
	}); err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "Product added successfully"})
}
