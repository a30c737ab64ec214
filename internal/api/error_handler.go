package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ofimatica/catalog-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Codes
// carries the per-field validation codes when the failure is a validation
// aggregate or a uniqueness conflict.
type errorResponse struct {
	Error string   `json:"error"`
	Codes []string `json:"codes,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation aggregates as a 400 with every violated code.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Field validation aggregate → 400 with every violated code.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		codes := make([]string, len(ve.Codes))
		for i, code := range ve.Codes {
			codes[i] = string(code)
		}
		return http.StatusBadRequest, errorResponse{Error: "validation failed", Codes: codes}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, errorResponse{Error: "account not found"}
	case errors.Is(err, domain.ErrResourceNotFound):
		return http.StatusNotFound, errorResponse{Error: "resource not found"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrInactiveAccount):
		return http.StatusUnauthorized, errorResponse{Error: "account is inactive"}
	case errors.Is(err, domain.ErrUnauthorizedUpdate):
		return http.StatusForbidden, errorResponse{Error: "not allowed to update this account"}
	case errors.Is(err, domain.ErrUsernameDuplicated):
		return http.StatusConflict, errorResponse{
			Error: "username already registered",
			Codes: []string{string(domain.CodeUsernameDuplicated)},
		}
	case errors.Is(err, domain.ErrEmailDuplicated):
		return http.StatusConflict, errorResponse{
			Error: "email already registered",
			Codes: []string{string(domain.CodeEmailDuplicated)},
		}
	case errors.Is(err, domain.ErrInvalidResourceType):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
