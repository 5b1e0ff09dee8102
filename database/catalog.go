package database

import "github.com/Kuiper-sun/smart-warehouse-inventory/models"

// Default generation counts. Locations and transactions are sampling
// ceilings, not exact yields: duplicate coordinates are dropped and
// zero-stock iterations are skipped.
const (
	DefaultNumLocations    = 50
	DefaultNumProducts     = 100
	DefaultNumTransactions = 500
)

// supplierCatalog is the fixed list inserted once per seed run.
var supplierCatalog = []models.Supplier{
	{Name: "Global Tech Inc.", ContactEmail: "sales@globaltech.com"},
	{Name: "Precision Parts Ltd.", ContactEmail: "contact@precisionparts.com"},
	{Name: "Quantum Solutions", ContactEmail: "info@quantumsol.com"},
	{Name: "Stellar Components", ContactEmail: "support@stellarcomp.com"},
	{Name: "Apex Industrial", ContactEmail: "orders@apexind.com"},
	{Name: "Nexus Materials", ContactEmail: "materials@nexus.com"},
	{Name: "Synergy Supplies", ContactEmail: "supply@synergy.com"},
	{Name: "Dynamic Devices", ContactEmail: "devices@dynamic.com"},
	{Name: "Innovate Systems", ContactEmail: "innovate@isystems.com"},
	{Name: "Core Manufacturing", ContactEmail: "core@mfg.com"},
}

// productFamily groups the brands and item names that belong to one category.
type productFamily struct {
	Category string
	Brands   []string
	Items    []string
}

// productCatalog drives randomized product generation. Order is fixed so a
// seeded random source reproduces the same data set.
var productCatalog = []productFamily{
	{
		Category: "Electronics",
		Brands:   []string{"Sony", "Samsung", "LG", "Apple"},
		Items:    []string{"Microcontroller", "Sensor Array", "Display Panel", "Power Unit", "Logic Board"},
	},
	{
		Category: "Mechanical",
		Brands:   []string{"Bosch", "3M", "SKF", "Apex"},
		Items:    []string{"Bearing Assembly", "Gear Set", "Casing", "Mounting Bracket", "Fastener Kit"},
	},
	{
		Category: "Consumables",
		Brands:   []string{"Loctite", "WD-40", "Kimtech"},
		Items:    []string{"Adhesive", "Lubricant", "Cleaning Wipes", "Solder Wire", "Thermal Paste"},
	},
}
