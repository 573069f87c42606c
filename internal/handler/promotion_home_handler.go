package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eshop/internal/service"
)

// PromotionHomeHandler serves the public promotions page.
type PromotionHomeHandler struct {
	svc service.PromotionService
}

// NewPromotionHomeHandler creates a new home handler.
func NewPromotionHomeHandler(svc service.PromotionService) *PromotionHomeHandler {
	return &PromotionHomeHandler{svc: svc}
}

// Home lists promotions whose active flag is set. The flag is the only
// filter here: rows outside their date window still show, matching the
// source system's public listing.
func (h *PromotionHomeHandler) Home(c echo.Context) error {
	promotions, err := h.svc.ListActive(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load promotions")
	}
	return c.Render(http.StatusOK, "promotions_home.html", echo.Map{
		"Promotions": promotions,
	})
}
