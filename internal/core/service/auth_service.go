package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
)

// AuthService implements credential verification and token issuance.
type AuthService struct {
	accounts ports.AccountRepository
	tokens   ports.TokenIssuer
}

func NewAuthService(accounts ports.AccountRepository, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens}
}

// Login verifies the username/password pair and returns a signed session
// token plus the matching account. Unknown usernames and wrong passwords
// both return domain.ErrInvalidCredentials so a caller cannot enumerate
// which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Account, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(account)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}
