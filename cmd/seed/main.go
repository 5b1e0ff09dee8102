package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Kuiper-sun/smart-warehouse-inventory/config"
	"github.com/Kuiper-sun/smart-warehouse-inventory/database"
	"gorm.io/gorm"
)

func main() {
	// Define flags
	force := flag.Bool("force", false, "Clear existing data before seeding")
	randSeed := flag.Int64("rand-seed", time.Now().UnixNano(), "Seed for the random source (fixed value reproduces the same data)")
	locations := flag.Int("locations", database.DefaultNumLocations, "Location coordinate samples")
	products := flag.Int("products", database.DefaultNumProducts, "Products to generate")
	transactions := flag.Int("transactions", database.DefaultNumTransactions, "Transaction generation ceiling")
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("🌱 Starting Database Seeding Tool")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	fmt.Printf("📊 Database: %s@%s:%s/%s\n\n", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	// Check connection
	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatal("Database connection check failed:", err)
	}

	if *force {
		fmt.Println("⚠️  Force flag enabled. Clearing existing data...")
		database.ClearSeededTables(database.DB)
		fmt.Println()
	}

	// Seed data
	gen := database.NewGenerator(*randSeed)
	counts := database.SeedCounts{
		Locations:    *locations,
		Products:     *products,
		Transactions: *transactions,
	}
	if err := database.SeedData(database.DB, gen, counts); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	// Show statistics
	fmt.Println("\n📊 Database Statistics:")
	showTableStats(database.DB)

	fmt.Println("\n✨ Seeding completed successfully!")
}

func showHelp() {
	fmt.Println("Database Seeding Tool")
	fmt.Println("====================")
	fmt.Println("\nUsage:")
	fmt.Println("  go run cmd/seed/main.go [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -force          Clear existing data before seeding")
	fmt.Println("  -rand-seed      Seed for the random source")
	fmt.Println("  -locations      Location coordinate samples (default 50)")
	fmt.Println("  -products       Products to generate (default 100)")
	fmt.Println("  -transactions   Transaction generation ceiling (default 500)")
	fmt.Println("  -help           Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Seed the database")
	fmt.Println("  go run cmd/seed/main.go")
	fmt.Println("\n  # Reproducible seed run against a cleared database")
	fmt.Println("  go run cmd/seed/main.go -force -rand-seed 42")
}

func showTableStats(db *gorm.DB) {
	tables := []string{
		"suppliers", "locations", "products", "inventory_transactions",
	}

	for _, table := range tables {
		var count int64
		db.Table(table).Count(&count)
		fmt.Printf("  %-25s: %d rows\n", table, count)
	}
}
