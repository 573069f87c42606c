package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents an item in the store catalog. The product ID is supplied
// by the caller and acts as the primary key; there is no generated identity.
type Product struct {
	ProductID   string          `json:"productId" gorm:"primaryKey;size:64"`
	Name        string          `json:"productName" gorm:"size:255"`
	Price       decimal.Decimal `json:"productPrice" gorm:"type:decimal(12,2)"`
	Description string          `json:"productDescription" gorm:"size:1024"`
	Category    string          `json:"productCategory" gorm:"size:255;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
