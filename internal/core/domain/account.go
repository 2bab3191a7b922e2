package domain

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrMissingToken       = errors.New("access token required")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access forbidden")
	ErrRateLimited        = errors.New("too many requests")
)

// SessionClaims is what a verified bearer token proves about its holder.
// Claims live only inside the token: there is no server-side session table,
// so a token stays valid until ExpiresAt with no way to revoke it earlier.
type SessionClaims struct {
	AccountID int    `json:"account_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"issued_at"`
	ExpiresAt int64  `json:"expires_at"`
}

// Account models a dashboard login. Immutable after seeding: there is no
// update surface, so repositories hand out copies and never share pointers
// into their backing store.
type Account struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Email        string `json:"email"`
}
