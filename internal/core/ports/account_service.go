package ports

import (
	"context"

	"github.com/ofimatica/catalog-system/internal/core/domain"
)

// RegisterAccountInput carries all data needed to register a new account.
type RegisterAccountInput struct {
	Name     string
	Surname  string
	Username string
	Email    string
	Password string
}

// UpdateAccountInput is a partial patch: blank string fields mean "no
// change requested".
type UpdateAccountInput struct {
	Name     string
	Surname  string
	Username string
	Email    string
	Password string
}

// Caller identifies the authenticated account performing an operation.
// It is passed explicitly so authorization stays testable without a
// transport layer.
type Caller struct {
	AccountID string
	Role      string
}

// AccountPage is returned by Filter.
type AccountPage struct {
	Items      []*domain.Account
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// AccountService defines use-case operations over accounts.
type AccountService interface {
	Register(ctx context.Context, input RegisterAccountInput) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// Update applies a partial patch. Only the target account itself or an
	// admin may update; any other caller gets domain.ErrUnauthorizedUpdate.
	Update(ctx context.Context, id string, input UpdateAccountInput, caller Caller) error
	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	Filter(ctx context.Context, f AccountFilter) (*AccountPage, error)
}
