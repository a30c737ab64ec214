package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ofimatica/catalog-system/internal/api/metrics"
	"github.com/ofimatica/catalog-system/internal/core/domain"
	"github.com/ofimatica/catalog-system/internal/core/ports"
)

// AccountService implements registration, profile updates, activation
// state changes and the admin account listing.
type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

// Register creates a new, active account with the user role. Email and
// password are validated in create mode; every failing field's codes are
// aggregated before the operation fails, and no write happens on failure.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterAccountInput) (*domain.Account, error) {
	var codes []domain.ValidationCode
	if r := domain.ValidateEmail(input.Email, false); !r.Valid {
		codes = append(codes, r.Errors...)
	}
	if r := domain.ValidatePassword(input.Password, false); !r.Valid {
		codes = append(codes, r.Errors...)
	}
	if len(codes) != 0 {
		metrics.ValidationFailuresTotal.WithLabelValues("account").Inc()
		return nil, domain.NewValidationError(codes...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:         input.Name,
		Surname:      input.Surname,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Active:       true,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	metrics.AccountsRegisteredTotal.Inc()
	s.logger.Info().Str("username", created.Username).Msg("account registered")
	return created, nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial patch to an account. Only the account itself
// or an admin may update. Email and password are validated in update
// mode, but any failure is reported as the single generic
// EmailOrPasswordIncorrect code — the two are not distinguished to the
// caller.
func (s *AccountService) Update(ctx context.Context, id string, input ports.UpdateAccountInput, caller ports.Caller) error {
	if caller.AccountID != id && caller.Role != domain.RoleAdmin {
		return domain.ErrUnauthorizedUpdate
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	emailCheck := domain.ValidateEmail(input.Email, true)
	passwordCheck := domain.ValidatePassword(input.Password, true)
	if !emailCheck.Valid || !passwordCheck.Valid {
		metrics.ValidationFailuresTotal.WithLabelValues("account").Inc()
		return domain.NewValidationError(domain.CodeEmailOrPasswordIncorrect)
	}

	// The blank predicate must match the validators': a whitespace-only
	// value passed update-mode validation as "no change" and must not be
	// applied either.
	if strings.TrimSpace(input.Email) != "" {
		account.Email = input.Email
	}
	if strings.TrimSpace(input.Name) != "" {
		account.Name = input.Name
	}
	if strings.TrimSpace(input.Surname) != "" {
		account.Surname = input.Surname
	}
	if strings.TrimSpace(input.Username) != "" {
		account.Username = input.Username
	}
	if strings.TrimSpace(input.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		account.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, account); err != nil {
		return err
	}

	s.logger.Info().Str("account_id", id).Msg("account updated")
	return nil
}

// Activate reactivates an account. The login-retry counter is left as is;
// a later successful login resets it.
func (s *AccountService) Activate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

// Deactivate disables an account without touching the retry counter.
func (s *AccountService) Deactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

func (s *AccountService) setActive(ctx context.Context, id string, active bool) error {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	account.Active = active
	if err := s.repo.Update(ctx, account); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", id).Bool("active", active).Msg("account activation changed")
	return nil
}

// Filter returns one page of accounts matching the criteria plus
// pagination metadata.
func (s *AccountService) Filter(ctx context.Context, f ports.AccountFilter) (*ports.AccountPage, error) {
	f.Page, f.PageSize = normalizePage(f.Page, f.PageSize)

	items, total, err := s.repo.Filter(ctx, f)
	if err != nil {
		return nil, err
	}

	return &ports.AccountPage{
		Items:      items,
		Total:      total,
		Page:       f.Page,
		PageSize:   f.PageSize,
		TotalPages: totalPages(total, f.PageSize),
	}, nil
}
