package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ofimatica/catalog-system/internal/api/metrics"
	"github.com/ofimatica/catalog-system/internal/core/domain"
	"github.com/ofimatica/catalog-system/internal/core/ports"
)

const defaultTokenTTL = 45 * time.Minute

// AuthService implements login with lockout tracking and session token
// issuance.
type AuthService struct {
	repo      ports.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login authenticates the username/password pair and returns a signed
// session token. Consecutive failures are counted per account; the
// failure that brings the counter to domain.MaxLoginRetries locks the
// account but still reports invalid credentials — the lock applies to
// subsequent attempts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Account, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		}
		return "", nil, err
	}

	if !account.Active {
		metrics.LoginsTotal.WithLabelValues("inactive").Inc()
		return "", nil, domain.ErrInactiveAccount
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		account.LoginRetries++
		if account.LoginRetries == domain.MaxLoginRetries {
			account.Active = false
			metrics.AccountLockoutsTotal.Inc()
			s.logger.Warn().Str("username", username).Msg("account locked after repeated failed logins")
		}
		if err := s.repo.Update(ctx, account); err != nil {
			s.logger.Error().Err(err).Str("username", username).Msg("failed to persist login failure")
		}
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if account.LoginRetries != 0 {
		account.LoginRetries = 0
		if err := s.repo.Update(ctx, account); err != nil {
			return "", nil, err
		}
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", username).Msg("login succeeded")
	return token, account, nil
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"username":   account.Username,
		"email":      account.Email,
		"role":       account.Role,
		"account_id": account.ID,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
