package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

// Context keys the auth middleware populates on success. Downstream handlers
// trust these without re-validating shape.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth validates the JWT signature and the shape of its identity claims.
// A token missing any of sub, email, or role is rejected outright: absence
// is a hard authentication failure, never a soft default.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, email, role, ok := identityClaims(claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			c.Set(CtxUserID, sub)
			c.Set(CtxEmail, email)
			c.Set(CtxRole, role)

			return next(c)
		}
	}
}

// identityClaims extracts and shape-checks the sub/email/role triple.
func identityClaims(claims jwt.MapClaims) (sub, email, role string, ok bool) {
	sub, _ = claims["sub"].(string)
	email, _ = claims["email"].(string)
	role, _ = claims["role"].(string)

	if sub == "" || email == "" || !domain.ValidRole(role) {
		return "", "", "", false
	}
	return sub, email, role, true
}
