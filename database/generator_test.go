package database

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuppliersFixedList(t *testing.T) {
	gen := NewGenerator(1)

	suppliers := gen.Suppliers()
	require.Len(t, suppliers, 10)
	assert.Equal(t, "Global Tech Inc.", suppliers[0].Name)
	assert.Equal(t, "core@mfg.com", suppliers[9].ContactEmail)
}

func TestLocationsDeduplicated(t *testing.T) {
	gen := NewGenerator(7)

	// Sample far more triples than the 10*6*20 coordinate space holds so
	// duplicates are guaranteed
	locations := gen.Locations(5000)
	assert.Less(t, len(locations), 5000)
	assert.NotEmpty(t, locations)

	type coordinate struct {
		aisle int
		shelf string
		bin   int
	}
	seen := make(map[coordinate]bool)
	for _, loc := range locations {
		coord := coordinate{loc.Aisle, loc.Shelf, loc.Bin}
		assert.False(t, seen[coord], "duplicate coordinate %+v survived deduplication", coord)
		seen[coord] = true

		assert.GreaterOrEqual(t, loc.Aisle, 1)
		assert.LessOrEqual(t, loc.Aisle, 10)
		assert.Contains(t, "ABCDEF", loc.Shelf)
		assert.GreaterOrEqual(t, loc.Bin, 1)
		assert.LessOrEqual(t, loc.Bin, 20)
	}
}

func TestProductsGeneration(t *testing.T) {
	gen := NewGenerator(3)
	supplierIDs := []uint{11, 22, 33}

	products := gen.Products(100, supplierIDs)
	require.Len(t, products, 100)

	skuPattern := regexp.MustCompile(`^[A-Z0-9-]{2,3}-[A-Z0-9-]{2,3}-\d{4}$`)
	seenSKUs := make(map[string]bool)
	minPrice := decimal.NewFromFloat(5.50)
	maxPrice := decimal.NewFromFloat(500.99)

	for i, p := range products {
		assert.Regexp(t, skuPattern, p.SKU)
		assert.False(t, seenSKUs[p.SKU], "duplicate SKU %s", p.SKU)
		seenSKUs[p.SKU] = true

		assert.True(t, strings.HasPrefix(p.Name, p.Brand+" "), "name %q must start with brand", p.Name)
		assert.Equal(t, "A high-quality "+p.Name, p.Description)
		assert.Contains(t, []string{"Electronics", "Mechanical", "Consumables"}, p.Category)
		assert.Contains(t, supplierIDs, p.SupplierID)

		assert.True(t, p.UnitPrice.GreaterThanOrEqual(minPrice), "price %s below range", p.UnitPrice)
		assert.True(t, p.UnitPrice.LessThanOrEqual(maxPrice), "price %s above range", p.UnitPrice)
		assert.True(t, strings.HasSuffix(p.SKU, fmt.Sprintf("-%04d", i)), "SKU %q must end with the sequence index", p.SKU)
	}
}

func TestTransactionsStockSimulation(t *testing.T) {
	gen := NewGenerator(42)
	productIDs := []uint{1, 2, 3, 4, 5}
	locationIDs := []uint{10, 20, 30}

	start := time.Now()
	transactions := gen.Transactions(500, productIDs, locationIDs)
	assert.LessOrEqual(t, len(transactions), 500)
	assert.NotEmpty(t, transactions)

	// Replay the movements: OUT must never exceed the stock on hand at
	// that point, and stock must never go negative
	stock := make(map[uint]int)
	for _, txn := range transactions {
		assert.Contains(t, productIDs, txn.ProductID)
		assert.Contains(t, locationIDs, txn.LocationID)
		assert.Positive(t, txn.Quantity)

		switch txn.Status {
		case "IN":
			assert.GreaterOrEqual(t, txn.Quantity, 10)
			assert.LessOrEqual(t, txn.Quantity, 200)
			stock[txn.ProductID] += txn.Quantity
		case "OUT":
			assert.LessOrEqual(t, txn.Quantity, stock[txn.ProductID],
				"OUT quantity exceeds running stock for product %d", txn.ProductID)
			stock[txn.ProductID] -= txn.Quantity
		default:
			t.Fatalf("unexpected status %q", txn.Status)
		}
		assert.GreaterOrEqual(t, stock[txn.ProductID], 0)

		// Backdated within the last 90 days plus the hour offset
		assert.True(t, txn.ScannedAt.After(start.AddDate(0, 0, -91)))
		assert.False(t, txn.ScannedAt.After(start.Add(time.Minute)))
	}
}

func TestTransactionsDeterministicForFixedSeed(t *testing.T) {
	productIDs := []uint{1, 2, 3}
	locationIDs := []uint{7, 8}

	first := NewGenerator(99).Transactions(200, productIDs, locationIDs)
	second := NewGenerator(99).Transactions(200, productIDs, locationIDs)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ProductID, second[i].ProductID)
		assert.Equal(t, first[i].LocationID, second[i].LocationID)
		assert.Equal(t, first[i].Quantity, second[i].Quantity)
		assert.Equal(t, first[i].Status, second[i].Status)
	}
}

func TestSkuPrefix(t *testing.T) {
	assert.Equal(t, "ELE", skuPrefix("Electronics"))
	assert.Equal(t, "3M", skuPrefix("3M"))
	assert.Equal(t, "WD-", skuPrefix("WD-40"))
	assert.Equal(t, "LG", skuPrefix("LG"))
}
