// Package memory holds the in-memory infrastructure backends: a seeded
// credential store and the read-only dashboard dataset. Handlers depend on
// the repository interfaces only, never on these collections directly.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// AccountRepository is a mutex-guarded in-memory credential store.
// Accounts are immutable once seeded; reads hand out copies so callers can
// never alias the backing slice.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

// NewAccountRepository builds a store holding the given accounts, keyed by
// exact username.
func NewAccountRepository(accounts ...domain.Account) *AccountRepository {
	repo := &AccountRepository{accounts: make(map[string]domain.Account, len(accounts))}
	for _, a := range accounts {
		repo.accounts[a.Username] = a
	}
	return repo
}

// SeededAccounts returns the default account fixtures: one admin and one
// regular user, both with password "password".
func SeededAccounts() []domain.Account {
	// bcrypt hash of "password", carried over from the original dataset.
	const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

	return []domain.Account{
		{ID: 1, Username: "admin", PasswordHash: passwordHash, Role: domain.RoleAdmin, Email: "admin@company.com"},
		{ID: 2, Username: "user", PasswordHash: passwordHash, Role: domain.RoleUser, Email: "user@company.com"},
	}
}

// FindByUsername looks up an account by exact, case-sensitive username.
func (r *AccountRepository) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}

// List returns every stored account ordered by id.
func (r *AccountRepository) List(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
