package ports

import (
	"context"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// AccountRepository is the read interface over stored accounts.
//
// Username lookup is a case-sensitive exact match. That mirrors the login
// contract the dashboard has always had; callers must not normalise the
// username before lookup.
type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
}
