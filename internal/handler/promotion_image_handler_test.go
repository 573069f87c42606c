package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eshop/internal/model"
)

func TestPromotionImage(t *testing.T) {
	svc := newFakePromotionService()
	require.NoError(t, svc.Save(context.Background(), &model.Promotion{
		Name:            "With blob",
		Priority:        1,
		BannerImage:     pngBytes,
		BannerImageType: "image/png",
	}))
	require.NoError(t, svc.Save(context.Background(), &model.Promotion{
		Name:           "URL only",
		Priority:       1,
		BannerImageURL: "https://cdn.example.com/x.jpg",
	}))
	require.NoError(t, svc.Save(context.Background(), &model.Promotion{
		Name:        "Legacy blob without stored type",
		Priority:    1,
		BannerImage: pngBytes,
	}))

	h := NewPromotionImageHandler(svc)
	e := echo.New()
	e.GET("/promotions/:id/image", h.Image)
	e.GET("/admin/promotions/:id/image", h.Image)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("serves stored bytes with stored type", func(t *testing.T) {
		rec := get("/promotions/1/image")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, pngBytes, rec.Body.Bytes())
	})

	t.Run("admin path shares the contract", func(t *testing.T) {
		rec := get("/admin/promotions/1/image")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, pngBytes, rec.Body.Bytes())
	})

	t.Run("URL-only promotion has no servable blob", func(t *testing.T) {
		rec := get("/promotions/2/image")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("legacy rows are sniffed on the way out", func(t *testing.T) {
		rec := get("/promotions/3/image")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("absent promotion is 404", func(t *testing.T) {
		rec := get("/promotions/99/image")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "PROMOTION_NOT_FOUND")
	})
}
