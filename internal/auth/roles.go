package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spitlabs/lostfound-service/internal/domain"
	apperrors "github.com/spitlabs/lostfound-service/pkg/util"
)

// RequireAdmin ensures the authenticated user holds the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.User.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
