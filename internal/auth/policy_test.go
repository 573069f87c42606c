package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"eshop/internal/session"
)

func TestPolicy_Authenticate(t *testing.T) {
	policy := NewPolicy("admin", "admin123", "user", "user123")

	tests := []struct {
		name         string
		username     string
		password     string
		expectOK     bool
		expectedRole string
	}{
		{name: "admin credentials", username: "admin", password: "admin123", expectOK: true, expectedRole: RoleAdmin},
		{name: "plain user credentials", username: "user", password: "user123", expectOK: true, expectedRole: RoleUser},
		{name: "wrong password", username: "admin", password: "nope", expectOK: false},
		{name: "unknown account", username: "ghost", password: "admin123", expectOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, ok := policy.Authenticate(tt.username, tt.password)
			assert.Equal(t, tt.expectOK, ok)
			if tt.expectOK {
				assert.Equal(t, tt.expectedRole, account.Role)
				assert.NotEqual(t, tt.password, account.PasswordHash, "stored as a hash, never plaintext")
			}
		})
	}
}

type memoryBackend struct {
	data map[string][]byte
}

func (m *memoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memoryBackend) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memoryBackend) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func TestRequireAdmin(t *testing.T) {
	store := session.NewStore(&memoryBackend{data: make(map[string][]byte)}, time.Minute)

	e := echo.New()
	e.Use(session.Middleware(store))
	admin := e.Group("/admin", RequireAdmin())
	admin.GET("/promotions", func(c echo.Context) error {
		return c.String(http.StatusOK, "admin area")
	})

	adminSess := &session.Session{PolicyUser: "admin", PolicyRole: RoleAdmin}
	assert.NoError(t, store.Save(context.Background(), adminSess))
	userSess := &session.Session{PolicyUser: "user", PolicyRole: RoleUser}
	assert.NoError(t, store.Save(context.Background(), userSess))

	tests := []struct {
		name           string
		sessionID      string
		expectedStatus int
		expectedTarget string
	}{
		{name: "anonymous is redirected to login", sessionID: "", expectedStatus: http.StatusFound, expectedTarget: "/promotions_login"},
		{name: "plain policy role is redirected", sessionID: userSess.ID, expectedStatus: http.StatusFound, expectedTarget: "/promotions_login"},
		{name: "admin role passes", sessionID: adminSess.ID, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/promotions", nil)
			if tt.sessionID != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.sessionID})
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedTarget != "" {
				assert.Equal(t, tt.expectedTarget, rec.Header().Get("Location"))
			}
		})
	}
}
