package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ofimatica/catalog-system/internal/core/ports"
)

// AccountHandler handles HTTP requests for account administration.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Get handles GET /v1/accounts/:id.
//
// @Summary      Get an account by id
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  accountResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	account, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// Update handles PATCH /v1/accounts/:id. Only the account owner or an
// admin may apply the patch.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Account id"
// @Param        body  body      updateAccountRequest  true  "Fields to change"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/accounts/{id} [patch]
func (h *AccountHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	if err := h.service.Update(c.Request().Context(), id, ports.UpdateAccountInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}, caller); err != nil {
		return err
	}

	account, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// Activate handles POST /v1/accounts/:id/activate. Re-enables a locked or
// deactivated account without touching the failure counter.
//
// @Summary      Activate an account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Account id"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /v1/accounts/{id}/activate [post]
func (h *AccountHandler) Activate(c echo.Context) error {
	if err := h.service.Activate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Deactivate handles POST /v1/accounts/:id/deactivate.
//
// @Summary      Deactivate an account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Account id"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /v1/accounts/{id}/deactivate [post]
func (h *AccountHandler) Deactivate(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/accounts with filter and pagination query params.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        name       query     string  false  "Substring of name, surname, or both"
// @Param        username   query     string  false  "Substring of username"
// @Param        active     query     bool    false  "Exact active flag"
// @Param        page       query     int     false  "1-based page"   default(1)
// @Param        page_size  query     int     false  "Page size"      default(20)
// @Success      200        {object}  listAccountsResponse
// @Failure      400        {object}  errorResponse
// @Router       /v1/accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	filter := ports.AccountFilter{
		Name:     c.QueryParam("name"),
		Username: c.QueryParam("username"),
	}

	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "active must be a boolean")
		}
		filter.Active = &active
	}

	filter.Page, filter.PageSize = parsePagination(c)

	page, err := h.service.Filter(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	items := make([]accountResponse, 0, len(page.Items))
	for _, a := range page.Items {
		items = append(items, toAccountResponse(a))
	}

	return c.JSON(http.StatusOK, listAccountsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      page.Total,
			Page:       page.Page,
			PageSize:   page.PageSize,
			TotalPages: page.TotalPages,
		},
	})
}

// parsePagination reads page/page_size query params. Unparseable values
// fall back to zero and are normalized by the service layer.
func parsePagination(c echo.Context) (page, size int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	size, _ = strconv.Atoi(c.QueryParam("page_size"))
	return page, size
}
