package ports

import (
	"context"
	"time"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Account, error)
}

// TokenIssuer signs session claims into a bearer token.
type TokenIssuer interface {
	Issue(account *domain.Account) (string, time.Time, error)
}

// TokenVerifier checks a bearer token and extracts its claims. Verification
// is all-or-nothing: signature mismatch, malformed structure, and expiry all
// surface as domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (*domain.SessionClaims, error)
}
