package handler

import (
	"github.com/ofimatica/catalog-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string   `json:"error"`
	Codes []string `json:"codes,omitempty"`
}

// --- Request types ---

type loginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

type registerAccountRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Surname  string `json:"surname"  validate:"required,max=100"`
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

// updateAccountRequest is a partial patch; omitted fields are left untouched.
type updateAccountRequest struct {
	Name     string `json:"name"     validate:"omitempty,max=100"`
	Surname  string `json:"surname"  validate:"omitempty,max=100"`
	Username string `json:"username" validate:"omitempty,max=50"`
	Email    string `json:"email"    validate:"omitempty,max=100"`
	Password string `json:"password" validate:"omitempty"`
}

// --- Response types ---
// These are intentionally separate from domain types so the JSON contract
// is not coupled to internal service changes.

type accountResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Account accountResponse `json:"account"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

type listAccountsResponse struct {
	Data       []accountResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:       a.ID,
		Name:     a.Name,
		Surname:  a.Surname,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
		Active:   a.Active,
	}
}
