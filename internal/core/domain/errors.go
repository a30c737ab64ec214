package domain

import (
	"errors"
	"strings"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidCredentials covers a wrong password on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInactiveAccount is returned when a deactivated (or locked out)
	// account attempts to log in, regardless of password correctness.
	ErrInactiveAccount = errors.New("inactive account")
	// ErrUnauthorizedUpdate is returned when a non-admin caller tries to
	// update an account other than their own.
	ErrUnauthorizedUpdate = errors.New("unauthorized update")

	// Duplicate unique-field conflicts, translated from the store's
	// uniqueness-violation detail by the repository layer.
	ErrEmailDuplicated    = errors.New("email already registered")
	ErrUsernameDuplicated = errors.New("username already registered")

	ErrInvalidResourceType = errors.New("invalid resource type")
)

// ValidationError aggregates every violated field rule of a single
// operation. Create/edit flows collect all failing fields' codes before
// failing, so a caller gets the full picture in one round-trip.
type ValidationError struct {
	Codes []ValidationCode
}

func NewValidationError(codes ...ValidationCode) *ValidationError {
	return &ValidationError{Codes: codes}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		msgs[i] = string(c)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}
