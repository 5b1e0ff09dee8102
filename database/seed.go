package database

import (
	"fmt"
	"log"

	"github.com/Kuiper-sun/smart-warehouse-inventory/models"
	"gorm.io/gorm"
)

// SeedCounts configures how many rows each generation phase targets
type SeedCounts struct {
	Locations    int
	Products     int
	Transactions int
}

// DefaultSeedCounts returns the standard generation counts
func DefaultSeedCounts() SeedCounts {
	return SeedCounts{
		Locations:    DefaultNumLocations,
		Products:     DefaultNumProducts,
		Transactions: DefaultNumTransactions,
	}
}

// SeedData populates the database with sample data in dependency order:
// suppliers and locations first, then products, then transactions. The whole
// run happens inside one transaction, so a failure in any phase leaves
// nothing committed.
func SeedData(db *gorm.DB, gen *Generator, counts SeedCounts) error {
	log.Println("Starting seed process...")

	return db.Transaction(func(tx *gorm.DB) error {
		// 1. Suppliers
		supplierIDs, err := seedSuppliers(tx, gen)
		if err != nil {
			return fmt.Errorf("failed to seed suppliers: %w", err)
		}

		// 2. Locations
		locationIDs, err := seedLocations(tx, gen, counts.Locations)
		if err != nil {
			return fmt.Errorf("failed to seed locations: %w", err)
		}

		// 3. Products
		productIDs, err := seedProducts(tx, gen, counts.Products, supplierIDs)
		if err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}

		// 4. Inventory transactions
		if err := seedTransactions(tx, gen, counts.Transactions, productIDs, locationIDs); err != nil {
			return fmt.Errorf("failed to seed inventory transactions: %w", err)
		}

		log.Println("✅ Database seeded successfully!")
		return nil
	})
}

// seedSuppliers inserts the fixed supplier list and returns the generated IDs
func seedSuppliers(tx *gorm.DB, gen *Generator) ([]uint, error) {
	suppliers := gen.Suppliers()
	if err := tx.Create(&suppliers).Error; err != nil {
		return nil, err
	}
	log.Printf("  ✓ Seeded %d suppliers", len(suppliers))

	ids := make([]uint, len(suppliers))
	for i, s := range suppliers {
		ids[i] = s.ID
	}
	return ids, nil
}

// seedLocations inserts the deduplicated coordinate sample and returns IDs
func seedLocations(tx *gorm.DB, gen *Generator, count int) ([]uint, error) {
	locations := gen.Locations(count)
	if err := tx.Create(&locations).Error; err != nil {
		return nil, err
	}
	log.Printf("  ✓ Seeded %d locations (%d sampled)", len(locations), count)

	ids := make([]uint, len(locations))
	for i, l := range locations {
		ids[i] = l.ID
	}
	return ids, nil
}

// seedProducts inserts generated products and returns IDs
func seedProducts(tx *gorm.DB, gen *Generator, count int, supplierIDs []uint) ([]uint, error) {
	products := gen.Products(count, supplierIDs)
	if err := tx.Create(&products).Error; err != nil {
		return nil, err
	}
	log.Printf("  ✓ Seeded %d products", len(products))

	ids := make([]uint, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids, nil
}

// seedTransactions bulk-inserts the simulated stock movements
func seedTransactions(tx *gorm.DB, gen *Generator, count int, productIDs, locationIDs []uint) error {
	transactions := gen.Transactions(count, productIDs, locationIDs)
	if len(transactions) == 0 {
		log.Printf("  ✓ Seeded 0 inventory transactions")
		return nil
	}
	if err := tx.CreateInBatches(&transactions, 100).Error; err != nil {
		return err
	}
	log.Printf("  ✓ Seeded %d inventory transactions (%d attempted)", len(transactions), count)
	return nil
}

// ClearSeededTables deletes seeded rows in reverse dependency order so the
// seeder can run again against a clean slate
func ClearSeededTables(db *gorm.DB) {
	tables := []string{
		models.InventoryTransaction{}.TableName(),
		models.Product{}.TableName(),
		models.Location{}.TableName(),
		models.Supplier{}.TableName(),
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			log.Printf("Warning: Could not clear table %s: %v", table, err)
		} else {
			log.Printf("  Cleared table: %s", table)
		}
	}
}
