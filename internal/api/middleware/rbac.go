package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// RBAC enforces role-gated access. Roles match exactly; there is no
// hierarchy, so an admin route lists "admin" and nothing else passes.
// Must run after Auth — the role is only known once claims are extracted.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
