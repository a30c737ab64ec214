package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ofimatica/catalog-system/internal/core/ports"
)

// ctxCaller extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both role and
// account_id must be present, otherwise the JWT is structurally valid but
// operationally unusable — reject with 401.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	role, _ := c.Get("role").(string)
	accountID, _ := c.Get("account_id").(string)
	if role == "" || accountID == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return ports.Caller{AccountID: accountID, Role: role}, nil
}
