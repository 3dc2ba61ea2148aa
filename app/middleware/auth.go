package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// AdminAuth gates the admin routes behind the single shared secret. A missing
// Authorization header answers 401; a header whose bearer token does not
// match the secret answers 403. There is no session and no expiry: the token
// is the secret.
func AdminAuth(adminSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authorization header required"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[1] != adminSecret {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "invalid token"})
			}

			return next(c)
		}
	}
}
