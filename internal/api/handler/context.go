package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nutrilink/nutrition-system/internal/api/middleware"
)

// ctxIdentity extracts the identity claims injected by the Auth middleware
// and performs a fast-fail check before any service call: a non-empty
// user id and role prove the middleware ran and validated claim shape.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
