package product

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a loan product with a flat annual interest rate.
type Product struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	ProductID    string          `gorm:"size:32;uniqueIndex:ux_products_product_id_active" json:"product_id"`
	Name         string          `gorm:"size:255;uniqueIndex" json:"name"`
	InterestRate decimal.Decimal `gorm:"type:decimal(5,2)" json:"interest_rate"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "loan_products" }
