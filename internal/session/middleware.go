package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName carries the session ID between requests.
const CookieName = "ESHOP_SESSION"

const contextKey = "eshop_session"

// Middleware resolves the session cookie into an explicit Session on the
// request context. Handlers read it through FromContext instead of touching
// ambient storage.
func Middleware(store *Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(CookieName); err == nil {
				if sess, err := store.Get(c.Request().Context(), cookie.Value); err == nil && sess != nil {
					c.Set(contextKey, sess)
				}
			}
			return next(c)
		}
	}
}

// FromContext returns the resolved session, or nil for anonymous requests.
func FromContext(c echo.Context) *Session {
	if sess, ok := c.Get(contextKey).(*Session); ok {
		return sess
	}
	return nil
}

// WriteCookie binds the session ID to the client.
func WriteCookie(c echo.Context, sess *Session, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
