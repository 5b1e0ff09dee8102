package main

import (
	"log"

	"github.com/Kuiper-sun/smart-warehouse-inventory/config"
	"github.com/Kuiper-sun/smart-warehouse-inventory/database"
	"github.com/Kuiper-sun/smart-warehouse-inventory/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Each request opens and closes its own connection, so the service
	// holds no database state between requests.
	store := database.NewPerRequestScanStore(&cfg.Database)

	server := web.NewServer(store)
	if err := server.Start(cfg.Scanner.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
