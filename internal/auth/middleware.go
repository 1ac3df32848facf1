package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"madrasa/internal/errors"
	"madrasa/internal/model"
)

// claimsContextKey is where the JWT middleware stores validated claims.
const claimsContextKey = "user"

// CurrentUser returns the validated claims of the calling user, if any.
func CurrentUser(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok
}

// RequireAdmin rejects callers whose token does not carry the admin role.
// The 403 here is distinct from the 401 of a missing or invalid token.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := CurrentUser(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "invalid token",
				Code:  "INVALID_TOKEN",
			})
		}
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "admin access required",
				Code:  "ADMIN_REQUIRED",
			})
		}
		return next(c)
	}
}
