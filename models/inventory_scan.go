package models

import "time"

// InventoryScan represents the inventory table written by the scan-ingest
// endpoint. Every scan is an unconditional insert; there is no upsert or
// deduplication at this layer.
type InventoryScan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SKU         string    `gorm:"column:sku;type:varchar(50);not null" json:"sku"`
	ProductName string    `gorm:"type:varchar(200);not null" json:"product_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	LastScanned time.Time `gorm:"not null" json:"last_scanned"`
	Status      string    `gorm:"type:varchar(10);not null" json:"status"`
}

// TableName specifies the table name for InventoryScan
func (InventoryScan) TableName() string {
	return "inventory"
}
