package handler

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"eshop/internal/model"
	"eshop/internal/service"
)

// PromotionAdminHandler serves the admin promotion pages and mutations.
// Every route here sits behind the admin policy gate.
type PromotionAdminHandler struct {
	svc service.PromotionService
}

// NewPromotionAdminHandler creates a new admin handler.
func NewPromotionAdminHandler(svc service.PromotionService) *PromotionAdminHandler {
	return &PromotionAdminHandler{svc: svc}
}

// promotionForm carries the admin create/update form fields.
type promotionForm struct {
	Name            string `form:"name" validate:"required"`
	Description     string `form:"description"`
	PromoCode       string `form:"promoCode"`
	DiscountPercent int    `form:"discountPercent" validate:"gte=0,lte=100"`
	StartDate       string `form:"startDate"`
	EndDate         string `form:"endDate"`
	Priority        int    `form:"priority" validate:"gte=1,lte=5"`
	BannerImageURL  string `form:"bannerImageUrl"`
	Active          string `form:"active"`
}

// List renders all promotions plus an empty draft for the create form.
func (h *PromotionAdminHandler) List(c echo.Context) error {
	return h.renderList(c, nil)
}

func (h *PromotionAdminHandler) renderList(c echo.Context, formErrs []string) error {
	promotions, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load promotions")
	}
	return c.Render(http.StatusOK, "admin_promotions_list.html", echo.Map{
		"Promotions": promotions,
		"Draft":      &model.Promotion{Priority: 1},
		"Errors":     formErrs,
	})
}

// Create validates the form, applies an optional image upload and persists.
// On validation failure the list is re-rendered with the errors; the form
// input is not replayed, matching the source system's flow.
func (h *PromotionAdminHandler) Create(c echo.Context) error {
	var form promotionForm
	if err := c.Bind(&form); err != nil {
		return h.renderList(c, []string{"invalid form submission"})
	}

	promotion, errs := h.buildPromotion(c, &form, &model.Promotion{})
	if len(errs) > 0 {
		return h.renderList(c, errs)
	}

	if file, err := c.FormFile("imageFile"); err == nil && file.Size > 0 {
		data, err := readUpload(file.Open())
		if err != nil {
			return h.renderList(c, []string{"could not read uploaded image"})
		}
		setBannerImage(promotion, data)
	}

	if err := h.svc.Save(c.Request().Context(), promotion); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save promotion")
	}
	return c.Redirect(http.StatusFound, "/admin/promotions")
}

// EditForm renders the edit page, or redirects to the list when the id is
// gone.
func (h *PromotionAdminHandler) EditForm(c echo.Context) error {
	promotion, err := h.lookup(c)
	if err != nil {
		return err
	}
	if promotion == nil {
		return c.Redirect(http.StatusFound, "/admin/promotions")
	}
	return c.Render(http.StatusOK, "admin_promotion_form.html", echo.Map{
		"Promotion": promotion,
	})
}

// Update overwrites all editable fields, then applies the image rules:
// removal clears blob and URL and wins over a simultaneous upload; a new
// file replaces the blob and clears the URL; otherwise both stay untouched.
func (h *PromotionAdminHandler) Update(c echo.Context) error {
	existing, err := h.lookup(c)
	if err != nil {
		return err
	}
	if existing == nil {
		return c.Redirect(http.StatusFound, "/admin/promotions")
	}

	var form promotionForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusOK, "admin_promotion_form.html", echo.Map{
			"Promotion": existing,
			"Errors":    []string{"invalid form submission"},
		})
	}

	updated, errs := h.buildPromotion(c, &form, existing)
	if len(errs) > 0 {
		return c.Render(http.StatusOK, "admin_promotion_form.html", echo.Map{
			"Promotion": existing,
			"Errors":    errs,
		})
	}

	if c.FormValue("removeImage") == "true" {
		updated.BannerImage = nil
		updated.BannerImageType = ""
		updated.BannerImageURL = ""
	} else if file, err := c.FormFile("imageFile"); err == nil && file.Size > 0 {
		data, err := readUpload(file.Open())
		if err != nil {
			return c.Render(http.StatusOK, "admin_promotion_form.html", echo.Map{
				"Promotion": existing,
				"Errors":    []string{"could not read uploaded image"},
			})
		}
		setBannerImage(updated, data)
	}

	if err := h.svc.Save(c.Request().Context(), updated); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save promotion")
	}
	return c.Redirect(http.StatusFound, "/admin/promotions")
}

// Delete removes the promotion and redirects regardless of existence.
func (h *PromotionAdminHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete promotion")
	}
	return c.Redirect(http.StatusFound, "/admin/promotions")
}

// Toggle flips the active flag and redirects regardless of existence.
func (h *PromotionAdminHandler) Toggle(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.ToggleActive(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to toggle promotion")
	}
	return c.Redirect(http.StatusFound, "/admin/promotions")
}

func (h *PromotionAdminHandler) lookup(c echo.Context) (*model.Promotion, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	promotion, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "failed to load promotion")
	}
	return promotion, nil
}

// buildPromotion validates the form and overwrites the editable fields on
// target. The returned error strings are rendered inline on the page.
func (h *PromotionAdminHandler) buildPromotion(c echo.Context, form *promotionForm, target *model.Promotion) (*model.Promotion, []string) {
	var errs []string
	if err := c.Validate(form); err != nil {
		errs = append(errs, formErrors(err)...)
	}

	start, err := parseDate(form.StartDate)
	if err != nil {
		errs = append(errs, "Start date must be in YYYY-MM-DD format")
	}
	end, err := parseDate(form.EndDate)
	if err != nil {
		errs = append(errs, "End date must be in YYYY-MM-DD format")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	target.Name = form.Name
	target.Description = form.Description
	target.PromoCode = form.PromoCode
	target.DiscountPercent = form.DiscountPercent
	target.StartDate = start
	target.EndDate = end
	target.Priority = form.Priority
	target.BannerImageURL = form.BannerImageURL

	// An absent checkbox leaves the flag untouched; the column default makes
	// a fresh record active.
	if form.Active != "" {
		active := form.Active == "on" || form.Active == "true"
		target.Active = &active
	}
	return target, nil
}

func setBannerImage(p *model.Promotion, data []byte) {
	p.BannerImage = data
	p.BannerImageType = mimetype.Detect(data).String()
	p.BannerImageURL = "" // blob wins over URL
}

func readUpload(f io.ReadCloser, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formErrors(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"invalid form values"}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			msgs = append(msgs, "Name is required")
		case "DiscountPercent":
			msgs = append(msgs, "Discount percent must be between 0 and 100")
		case "Priority":
			msgs = append(msgs, "Priority must be between 1 and 5")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return msgs
}
