package models

import "time"

// TransactionStatus is the direction of a stock movement
type TransactionStatus string

const (
	TransactionIn  TransactionStatus = "IN"
	TransactionOut TransactionStatus = "OUT"
)

// InventoryTransaction represents inventory_transactions table.
// Each row is a single stock movement event and is immutable once created.
type InventoryTransaction struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	ProductID  uint              `gorm:"not null" json:"product_id"`
	LocationID uint              `gorm:"not null" json:"location_id"`
	Quantity   int               `gorm:"not null;check:quantity > 0" json:"quantity"`
	Status     TransactionStatus `gorm:"type:varchar(3);not null" json:"status"`
	ScannedAt  time.Time         `gorm:"not null" json:"scanned_at"`
	CreatedAt  time.Time         `json:"created_at"`

	Product  Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// TableName specifies the table name for InventoryTransaction
func (InventoryTransaction) TableName() string {
	return "inventory_transactions"
}
