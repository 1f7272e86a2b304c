package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admindesk/user-management/internal/api/middleware"
	"github.com/admindesk/user-management/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware. A
// missing or malformed principal means the middleware did not run; fail
// closed with 401 before any service call.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	id, ok := c.Get(middleware.CtxUserID).(int)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get(middleware.CtxRole).(string)
	if !domain.ValidRole(role) {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return domain.Principal{ID: id, Role: role}, nil
}
