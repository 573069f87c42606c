package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eshop/internal/session"
)

// RequireAdmin gates a route group on the admin policy role. Anonymous or
// non-admin requests are redirected to the login page rather than rejected
// with a bare status, matching the form-based login flow.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := session.FromContext(c)
			if sess == nil || sess.PolicyRole != RoleAdmin {
				return c.Redirect(http.StatusFound, "/promotions_login")
			}
			return next(c)
		}
	}
}
