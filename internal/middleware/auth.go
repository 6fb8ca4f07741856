package middleware

import (
	"net/http"
	"strings"

	"github.com/artisanbay/sellerhub/internal/domain"
	"github.com/labstack/echo/v4"
)

// SellerContextKey is the echo context key the authenticated seller uid is
// stored under.
const SellerContextKey = "seller_uid"

// RequireBearer creates a middleware that protects the seller API. The
// credential is attached per request and verified per request; nothing is
// cached between calls.
func RequireBearer(verifier domain.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   "missing bearer token",
				})
			}

			uid, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   "invalid or expired token",
				})
			}

			c.Set(SellerContextKey, uid)
			return next(c)
		}
	}
}

// SellerUID retrieves the authenticated seller uid from the context.
func SellerUID(c echo.Context) string {
	uid, _ := c.Get(SellerContextKey).(string)
	return uid
}
