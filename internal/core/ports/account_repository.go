package ports

import (
	"context"

	"github.com/ofimatica/catalog-system/internal/core/domain"
)

// AccountFilter carries all query parameters for listing accounts.
type AccountFilter struct {
	// Name is matched case-insensitively as a substring of the account's
	// name, surname, or "name surname" concatenation.
	Name string
	// Username is matched case-insensitively as a substring.
	Username string
	// Active, when non-nil, requires an exact match on the active flag.
	Active *bool
	// Page is 1-based.
	Page     int
	PageSize int
}

// AccountRepository defines persistence operations for accounts.
// Create and Update surface uniqueness violations as
// domain.ErrUsernameDuplicated / domain.ErrEmailDuplicated, distinguishing
// which unique column collided.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// FindByUsername performs a case-sensitive exact match.
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	Update(ctx context.Context, a *domain.Account) error
	// Filter returns a page of accounts matching the filter plus the total
	// matching count.
	Filter(ctx context.Context, f AccountFilter) ([]*domain.Account, int64, error)
}
