package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/domain"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// RequireShopper ensures a shopper-scoped token is present. Admin tokens
// do not pass.
func RequireShopper() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.SubjectType != domain.SubjectTypeShopper {
			return apperrors.NewUnauthorized("unauthorized")
		}
		return c.Next()
	}
}

// RequireAdmin ensures an admin-scoped token is present. Shopper tokens
// do not pass.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.SubjectType != domain.SubjectTypeAdmin {
			return apperrors.NewUnauthorized("unauthorized")
		}
		return c.Next()
	}
}
