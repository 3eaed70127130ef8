package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmdash/pkg/recordstore"
)

// APIKey guards the record server. When key is empty it simply passes
// through (local development); otherwise callers must send
// "Authorization: Bearer <key>" or get a 401 protocol envelope.
func APIKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key == "" {
				return next(c)
			}
			got, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				return c.JSON(http.StatusUnauthorized, recordstore.Response{Success: false, Message: "invalid or missing API key"})
			}
			if pid := c.Request().Header.Get("X-Project-Id"); pid != "" {
				c.Set("project", pid)
			}
			return next(c)
		}
	}
}
