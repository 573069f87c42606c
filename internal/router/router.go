package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"eshop/internal/auth"
	"eshop/internal/handler"
	"eshop/internal/session"
	"eshop/web"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *session.Store,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	promotionAdminHandler *handler.PromotionAdminHandler,
	promotionHomeHandler *handler.PromotionHomeHandler,
	promotionImageHandler *handler.PromotionImageHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(session.Middleware(sessions))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.Renderer = web.NewRenderer()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Form-based policy login
	e.GET("/promotions_login", authHandler.LoginPage)
	e.POST("/promotions_login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// Public pages
	e.GET("/Promotions", promotionHomeHandler.Home)
	e.GET("/promotions/:id/image", promotionImageHandler.Image)

	// Public product API
	products := e.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:productId", productHandler.Get)
	products.POST("/create", productHandler.Create)
	products.PUT("/update", productHandler.Update)
	products.DELETE("/delete/:productId", productHandler.Delete)

	// Public user API
	users := e.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.POST("/logout", userHandler.Logout)
	users.GET("/current", userHandler.Current)
	users.GET("/check-login", userHandler.CheckLogin)
	users.GET("/:id", userHandler.Profile)

	// Admin area, gated on the static policy role
	admin := e.Group("/admin", auth.RequireAdmin())
	admin.GET("/promotions", promotionAdminHandler.List)
	admin.POST("/promotions", promotionAdminHandler.Create)
	admin.GET("/promotions/:id/edit", promotionAdminHandler.EditForm)
	admin.POST("/promotions/:id", promotionAdminHandler.Update)
	admin.POST("/promotions/:id/delete", promotionAdminHandler.Delete)
	admin.POST("/promotions/:id/toggle", promotionAdminHandler.Toggle)
	admin.GET("/promotions/:id/image", promotionImageHandler.Image)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
