package handlers

import (
	"log"
	"time"

	"github.com/Kuiper-sun/smart-warehouse-inventory/database"
	"github.com/Kuiper-sun/smart-warehouse-inventory/models"
	"github.com/gofiber/fiber/v2"
)

// scanRequest is the POST /rfid-scan payload. Pointer fields distinguish a
// missing field from a zero value.
type scanRequest struct {
	SKU         *string `json:"sku"`
	ProductName *string `json:"product_name"`
	Quantity    *int    `json:"quantity"`
	Status      *string `json:"status"`
}

// RecordScan returns the handler for incoming RFID/barcode scan events.
// Every valid payload is one unconditional insert with a server-assigned
// last_scanned timestamp.
func RecordScan(store database.ScanStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req scanRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing required fields",
			})
		}

		if req.SKU == nil || req.ProductName == nil || req.Quantity == nil || req.Status == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing required fields",
			})
		}

		scan := &models.InventoryScan{
			SKU:         *req.SKU,
			ProductName: *req.ProductName,
			Quantity:    *req.Quantity,
			LastScanned: time.Now(),
			Status:      *req.Status,
		}

		if err := store.Record(scan); err != nil {
			log.Printf("ERROR recording scan for sku %s: %v", scan.SKU, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Database operation failed",
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Scan recorded successfully",
		})
	}
}
