package models

import "time"

// Location represents locations table.
// A storage slot is addressed by its (aisle, shelf, bin) triple, which is
// unique across the warehouse.
type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Aisle     int       `gorm:"not null;uniqueIndex:idx_locations_coordinate" json:"aisle"`
	Shelf     string    `gorm:"type:varchar(1);not null;uniqueIndex:idx_locations_coordinate" json:"shelf"`
	Bin       int       `gorm:"not null;uniqueIndex:idx_locations_coordinate" json:"bin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Location
func (Location) TableName() string {
	return "locations"
}
