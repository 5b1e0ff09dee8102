package database

import (
	"fmt"

	"github.com/Kuiper-sun/smart-warehouse-inventory/config"
	"github.com/Kuiper-sun/smart-warehouse-inventory/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ScanStore persists one scan event per call. The web handler depends on
// this interface so tests can substitute a fake.
type ScanStore interface {
	Record(scan *models.InventoryScan) error
}

var _ ScanStore = (*PerRequestScanStore)(nil)

// PerRequestScanStore opens a fresh database connection for every recorded
// scan and closes it unconditionally, relying on the database's own
// concurrency control for isolation between requests.
type PerRequestScanStore struct {
	cfg *config.DatabaseConfig
}

// NewPerRequestScanStore creates a store bound to the given database config
func NewPerRequestScanStore(cfg *config.DatabaseConfig) *PerRequestScanStore {
	return &PerRequestScanStore{cfg: cfg}
}

// Record opens a connection, inserts the scan, and closes the connection on
// every path, including failed connection acquisition.
func (s *PerRequestScanStore) Record(scan *models.InventoryScan) error {
	db, err := gorm.Open(postgres.Open(s.cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	defer func() {
		if db == nil {
			return
		}
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
	}()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Create(scan).Error; err != nil {
		return fmt.Errorf("failed to insert scan: %w", err)
	}
	return nil
}
