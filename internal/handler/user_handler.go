package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "eshop/internal/errors"
	"eshop/internal/service"
	"eshop/internal/session"
)

// UserHandler bundles the public user directory endpoints. All responses use
// the uniform {success, message?, user?} shape; the user projection never
// carries the password.
type UserHandler struct {
	svc        service.UserService
	sessions   *session.Store
	sessionTTL time.Duration
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, sessions *session.Store, sessionTTL time.Duration) *UserHandler {
	return &UserHandler{svc: svc, sessions: sessions, sessionTTL: sessionTTL}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} map[string]interface{}
// @Router /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// Field checks run sequentially inside the service so the rejection
	// messages keep their contractual order; no validator tags here.
	_, err := h.svc.Register(c.Request().Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Registration successful!"})
}

// Login godoc
// @Summary Login with username or email
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.svc.Login(c.Request().Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}
	if user == nil {
		return c.JSON(http.StatusOK, echo.Map{
			"success": false,
			"message": "Invalid username/email or password!",
		})
	}

	// Merge into an existing session when one is present so a policy login
	// on the same browser survives.
	sess := session.FromContext(c)
	if sess == nil {
		sess = &session.Session{}
	}
	public := user.Public()
	sess.UserID = user.ID
	sess.Username = user.Username
	sess.UserRole = user.Role
	sess.User = &public

	if err := h.sessions.Save(c.Request().Context(), sess); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session save failed")
	}
	session.WriteCookie(c, sess, h.sessionTTL)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Login successful!",
		"user":    public,
	})
}

// Logout godoc
// @Summary Logout and invalidate the session
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users/logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	if sess := session.FromContext(c); sess != nil {
		_ = h.sessions.Destroy(c.Request().Context(), sess.ID)
	}
	session.ClearCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Logged out successfully!"})
}

// Current godoc
// @Summary Get the currently logged-in user
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users/current [get]
func (h *UserHandler) Current(c echo.Context) error {
	sess := session.FromContext(c)
	if !sess.LoggedIn() {
		return c.JSON(http.StatusOK, echo.Map{"success": false, "message": "No user logged in"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": sess.User})
}

// CheckLogin godoc
// @Summary Check whether a session is present
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users/check-login [get]
func (h *UserHandler) CheckLogin(c echo.Context) error {
	sess := session.FromContext(c)
	username, role := "", ""
	if sess.LoggedIn() {
		username = sess.Username
		role = sess.UserRole
	}
	return c.JSON(http.StatusOK, echo.Map{
		"loggedIn": sess.LoggedIn(),
		"username": username,
		"role":     role,
	})
}

// Profile godoc
// @Summary Fetch a user profile by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Profile(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	// Deliberately not tied to the requesting session: any caller may fetch
	// any profile by id. The password hash is excluded by the model's JSON
	// tags.
	user, err := h.svc.FindByID(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUserNotFound)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "lookup failed")
	}
	return c.JSON(http.StatusOK, user)
}
