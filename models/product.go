package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents products table
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	SKU         string          `gorm:"type:varchar(50);not null;unique" json:"sku"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category"`
	Brand       string          `gorm:"type:varchar(100);not null" json:"brand"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	SupplierID  uint            `gorm:"not null" json:"supplier_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Supplier Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
