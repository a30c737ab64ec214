package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ofimatica/catalog-system/internal/core/domain"
	"github.com/ofimatica/catalog-system/internal/core/ports"
)

// AuthHandler handles HTTP requests for authentication and registration.
type AuthHandler struct {
	authService    ports.AuthService
	accountService ports.AccountService
}

func NewAuthHandler(authService ports.AuthService, accountService ports.AccountService) *AuthHandler {
	return &AuthHandler{authService: authService, accountService: accountService}
}

// Login authenticates an account and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, account, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		// An unknown username must not be distinguishable from a wrong
		// password on the wire.
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:   token,
		Account: toAccountResponse(account),
	})
}

// Register creates a new account with the user role.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerAccountRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accountService.Register(c.Request().Context(), ports.RegisterAccountInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAccountResponse(account))
}
