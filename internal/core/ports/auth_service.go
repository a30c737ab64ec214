package ports

import (
	"context"

	"github.com/ofimatica/catalog-system/internal/core/domain"
)

// AuthService authenticates accounts and issues session tokens.
type AuthService interface {
	// Login verifies the username/password pair, maintains the
	// consecutive-failure counter and lockout state, and on success
	// returns a signed session token alongside the account.
	Login(ctx context.Context, username, password string) (string, *domain.Account, error)
}
