package model

import (
	"fmt"
	"strings"
	"time"
)

// Promotion is a time-bounded marketing banner. Either BannerImageURL or
// BannerImage may carry the visual; the stored blob wins when both are set.
type Promotion struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name" gorm:"size:255;not null"`
	Description     string     `json:"description" gorm:"size:1024"`
	PromoCode       string     `json:"promoCode" gorm:"size:50"` // optional, for coupon-style deals
	DiscountPercent int        `json:"discountPercent"`          // 0-100
	StartDate       *time.Time `json:"startDate" gorm:"type:date"` // becomes active on this date (inclusive)
	EndDate         *time.Time `json:"endDate" gorm:"type:date"`   // expires after this date (inclusive)
	Active          *bool      `json:"active" gorm:"default:true"` // quick on/off toggle, nil treated as true
	BannerImageURL  string     `json:"bannerImageUrl" gorm:"size:1024"`
	BannerImage     []byte     `json:"-" gorm:"type:mediumblob"`
	BannerImageType string     `json:"-" gorm:"size:100"` // sniffed at upload time
	Priority        int        `json:"priority" gorm:"default:1;index:,sort:desc"` // 1-5, higher shows first
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsCurrentlyActive reports whether the promotion should be honored at the
// given instant: the flag must be set and the date must fall inside the
// inclusive [StartDate, EndDate] window, either bound unbounded when nil.
func (p Promotion) IsCurrentlyActive(now time.Time) bool {
	if p.Active == nil || !*p.Active {
		return false
	}
	today := dateOnly(now)
	if p.StartDate != nil && today.Before(dateOnly(*p.StartDate)) {
		return false
	}
	if p.EndDate != nil && today.After(dateOnly(*p.EndDate)) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EffectiveImagePath decides which image to display: the stored blob takes
// priority over the URL. Empty string means no image at all.
func (p Promotion) EffectiveImagePath() string {
	if len(p.BannerImage) > 0 && p.ID != 0 {
		return fmt.Sprintf("/promotions/%d/image", p.ID)
	}
	if strings.TrimSpace(p.BannerImageURL) != "" {
		return p.BannerImageURL
	}
	return ""
}

// IsActiveFlag resolves the tri-state Active column, treating nil as true.
func (p Promotion) IsActiveFlag() bool {
	return p.Active == nil || *p.Active
}
