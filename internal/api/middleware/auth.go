package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextAccountID = "account_id"
	ContextUsername  = "username"
	ContextRole      = "role"
)

// Auth extracts the bearer token, verifies it, and injects the session
// claims into context. A missing token and an invalid one are distinct
// failures: the first means the caller never authenticated (401), the
// second that it presented a credential we reject (403).
func Auth(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrMissingToken
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return domain.ErrMissingToken
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return domain.ErrInvalidToken
			}

			c.Set(ContextAccountID, claims.AccountID)
			c.Set(ContextUsername, claims.Username)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}
