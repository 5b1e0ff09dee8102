package database

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Kuiper-sun/smart-warehouse-inventory/models"
	"github.com/shopspring/decimal"
)

// Sampling ranges for the generated data
const (
	minAisle = 1
	maxAisle = 10
	minBin   = 1
	maxBin   = 20

	minPrice = 5.50
	maxPrice = 500.99

	lowStockThreshold = 10
	restockBias       = 0.6
	minRestockQty     = 10
	maxRestockQty     = 200

	backdateMaxDays  = 90
	backdateMaxHours = 23
)

// shelfCodes are the letter codes sampled for location shelves
const shelfCodes = "ABCDEF"

// Generator produces randomized sample data from a single random source so
// a fixed seed reproduces the same data set.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with the given value
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Suppliers returns a fresh copy of the fixed supplier list
func (g *Generator) Suppliers() []models.Supplier {
	suppliers := make([]models.Supplier, len(supplierCatalog))
	copy(suppliers, supplierCatalog)
	return suppliers
}

// Locations samples count coordinate triples and drops duplicates, so the
// returned slice may be shorter than count.
func (g *Generator) Locations(count int) []models.Location {
	type coordinate struct {
		aisle int
		shelf string
		bin   int
	}

	seen := make(map[coordinate]bool)
	locations := make([]models.Location, 0, count)

	for i := 0; i < count; i++ {
		coord := coordinate{
			aisle: minAisle + g.rng.Intn(maxAisle-minAisle+1),
			shelf: string(shelfCodes[g.rng.Intn(len(shelfCodes))]),
			bin:   minBin + g.rng.Intn(maxBin-minBin+1),
		}
		if seen[coord] {
			continue
		}
		seen[coord] = true
		locations = append(locations, models.Location{
			Aisle: coord.aisle,
			Shelf: coord.shelf,
			Bin:   coord.bin,
		})
	}

	return locations
}

// Products generates count products, each assigned to a random supplier
func (g *Generator) Products(count int, supplierIDs []uint) []models.Product {
	products := make([]models.Product, 0, count)

	for i := 0; i < count; i++ {
		family := productCatalog[g.rng.Intn(len(productCatalog))]
		brand := family.Brands[g.rng.Intn(len(family.Brands))]
		item := family.Items[g.rng.Intn(len(family.Items))]
		name := fmt.Sprintf("%s %s", brand, item)

		price := minPrice + g.rng.Float64()*(maxPrice-minPrice)

		products = append(products, models.Product{
			SKU:         fmt.Sprintf("%s-%s-%04d", skuPrefix(family.Category), skuPrefix(brand), i),
			Name:        name,
			Description: fmt.Sprintf("A high-quality %s", name),
			Category:    family.Category,
			Brand:       brand,
			UnitPrice:   decimal.NewFromFloat(price).Round(2),
			SupplierID:  supplierIDs[g.rng.Intn(len(supplierIDs))],
		})
	}

	return products
}

// Transactions generates up to count stock movements using a running stock
// simulation. Stock counters start at zero; restocking is forced below the
// low-stock threshold and favored 60% of the time otherwise. An OUT quantity
// is always bounded by the current stock, and an iteration that lands on a
// zero-stock product without restocking yields no transaction, so count is a
// ceiling rather than an exact yield.
func (g *Generator) Transactions(count int, productIDs, locationIDs []uint) []models.InventoryTransaction {
	stockLevels := make(map[uint]int, len(productIDs))
	for _, id := range productIDs {
		stockLevels[id] = 0
	}

	transactions := make([]models.InventoryTransaction, 0, count)
	now := time.Now()

	for i := 0; i < count; i++ {
		productID := productIDs[g.rng.Intn(len(productIDs))]
		currentStock := stockLevels[productID]

		var status models.TransactionStatus
		var quantity int

		if currentStock < lowStockThreshold || g.rng.Float64() < restockBias {
			status = models.TransactionIn
			quantity = minRestockQty + g.rng.Intn(maxRestockQty-minRestockQty+1)
			stockLevels[productID] += quantity
		} else if currentStock > 0 {
			status = models.TransactionOut
			quantity = 1 + g.rng.Intn(currentStock)
			stockLevels[productID] -= quantity
		} else {
			continue
		}

		scannedAt := now.
			AddDate(0, 0, -g.rng.Intn(backdateMaxDays+1)).
			Add(-time.Duration(g.rng.Intn(backdateMaxHours+1)) * time.Hour)

		transactions = append(transactions, models.InventoryTransaction{
			ProductID:  productID,
			LocationID: locationIDs[g.rng.Intn(len(locationIDs))],
			Quantity:   quantity,
			Status:     status,
			ScannedAt:  scannedAt,
		})
	}

	return transactions
}

// skuPrefix returns the first three characters of s uppercased. Short names
// like "3M" are used whole.
func skuPrefix(s string) string {
	if len(s) > 3 {
		s = s[:3]
	}
	return strings.ToUpper(s)
}
