package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eshop/internal/auth"
	"eshop/internal/session"
	"eshop/web"
)

func newAuthTestServer() (*echo.Echo, *session.Store) {
	store := session.NewStore(newMemoryBackend(), time.Minute)
	policy := auth.NewPolicy("admin", "admin123", "user", "user123")
	h := NewAuthHandler(policy, store, time.Minute)

	e := echo.New()
	e.Renderer = web.NewRenderer()
	e.Use(session.Middleware(store))
	e.GET("/promotions_login", h.LoginPage)
	e.POST("/promotions_login", h.Login)
	e.GET("/logout", h.Logout)
	return e, store
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFormLogin_RoleBasedRedirect(t *testing.T) {
	e, _ := newAuthTestServer()

	t.Run("admin lands on the admin list", func(t *testing.T) {
		rec := postForm(e, "/promotions_login", url.Values{"username": {"admin"}, "password": {"admin123"}})
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/admin/promotions", rec.Header().Get("Location"))
		assert.NotEmpty(t, rec.Result().Cookies())
	})

	t.Run("plain user lands on the public page", func(t *testing.T) {
		rec := postForm(e, "/promotions_login", url.Values{"username": {"user"}, "password": {"user123"}})
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/Promotions", rec.Header().Get("Location"))
	})

	t.Run("bad credentials bounce back with the error flag", func(t *testing.T) {
		rec := postForm(e, "/promotions_login", url.Values{"username": {"admin"}, "password": {"nope"}})
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/promotions_login?error=true", rec.Header().Get("Location"))
	})
}

func TestFormLogin_LogoutDestroysSession(t *testing.T) {
	e, store := newAuthTestServer()

	rec := postForm(e, "/promotions_login", url.Values{"username": {"admin"}, "password": {"admin123"}})
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	out := httptest.NewRecorder()
	e.ServeHTTP(out, req)

	assert.Equal(t, http.StatusFound, out.Code)
	assert.Equal(t, "/Promotions", out.Header().Get("Location"))

	sess, err := store.Get(req.Context(), cookies[0].Value)
	assert.NoError(t, err)
	assert.Nil(t, sess, "session record gone after logout")
}

func TestLoginPage_Renders(t *testing.T) {
	e, _ := newAuthTestServer()

	req := httptest.NewRequest(http.MethodGet, "/promotions_login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<form method=\"post\" action=\"/promotions_login\">")

	req = httptest.NewRequest(http.MethodGet, "/promotions_login?error=true", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), "Invalid username or password.")
}
