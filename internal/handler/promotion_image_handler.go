package handler

import (
	"net/http"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	apperrors "eshop/internal/errors"
	"eshop/internal/service"
)

// PromotionImageHandler serves stored banner blobs. One handler backs both
// the public and the admin image paths; the contract is identical.
type PromotionImageHandler struct {
	svc service.PromotionService
}

// NewPromotionImageHandler creates a new image handler.
func NewPromotionImageHandler(svc service.PromotionService) *PromotionImageHandler {
	return &PromotionImageHandler{svc: svc}
}

// Image returns the raw stored bytes, or 404 when the promotion is absent or
// holds no blob. The content type is the one sniffed at upload time; rows
// written before sniffing existed are sniffed on the way out.
func (h *PromotionImageHandler) Image(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	promotion, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load promotion")
	}
	if promotion == nil || len(promotion.BannerImage) == 0 {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrPromotionNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	contentType := promotion.BannerImageType
	if contentType == "" {
		contentType = mimetype.Detect(promotion.BannerImage).String()
	}
	return c.Blob(http.StatusOK, contentType, promotion.BannerImage)
}
