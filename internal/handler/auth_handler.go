package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"eshop/internal/auth"
	"eshop/internal/session"
)

// AuthHandler serves the form-based login flow for the static access policy.
type AuthHandler struct {
	policy     *auth.Policy
	sessions   *session.Store
	sessionTTL time.Duration
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(policy *auth.Policy, sessions *session.Store, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{policy: policy, sessions: sessions, sessionTTL: sessionTTL}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "promotions_login.html", echo.Map{
		"Error": c.QueryParam("error") == "true",
	})
}

// Login authenticates against the static accounts and redirects by role:
// admins land on the admin promotions list, everyone else on the public page.
func (h *AuthHandler) Login(c echo.Context) error {
	account, ok := h.policy.Authenticate(c.FormValue("username"), c.FormValue("password"))
	if !ok {
		return c.Redirect(http.StatusFound, "/promotions_login?error=true")
	}

	sess := session.FromContext(c)
	if sess == nil {
		sess = &session.Session{}
	}
	sess.PolicyUser = account.Username
	sess.PolicyRole = account.Role

	if err := h.sessions.Save(c.Request().Context(), sess); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session save failed")
	}
	session.WriteCookie(c, sess, h.sessionTTL)

	if account.Role == auth.RoleAdmin {
		return c.Redirect(http.StatusFound, "/admin/promotions")
	}
	return c.Redirect(http.StatusFound, "/Promotions")
}

// Logout destroys the session and returns to the public promotions page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sess := session.FromContext(c); sess != nil {
		_ = h.sessions.Destroy(c.Request().Context(), sess.ID)
	}
	session.ClearCookie(c)
	return c.Redirect(http.StatusFound, "/Promotions")
}
