package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Kuiper-sun/smart-warehouse-inventory/config"
	"github.com/Kuiper-sun/smart-warehouse-inventory/convert"
	"github.com/Kuiper-sun/smart-warehouse-inventory/storage"
)

func main() {
	// Define flags
	bucket := flag.String("bucket", "", "Bucket containing the uploaded CSV object")
	key := flag.String("key", "", "Key of the uploaded CSV object")
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help || *bucket == "" || *key == "" {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store := storage.NewFileStore(cfg.Storage.Root)
	converter := convert.NewConverter(store, cfg.Storage.InputPrefix)

	event := convert.Event{Bucket: *bucket, Key: *key}
	outputKey, err := converter.Handle(context.Background(), event)
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	log.Printf("CSV to JSON conversion successful: %s/%s", *bucket, outputKey)
}

func showHelp() {
	fmt.Println("CSV to JSON Converter")
	fmt.Println("=====================")
	fmt.Println("\nUsage:")
	fmt.Println("  go run cmd/convert/main.go -bucket <bucket> -key <key>")
	fmt.Println("\nFlags:")
	fmt.Println("  -bucket   Bucket containing the uploaded CSV object")
	fmt.Println("  -key      Key of the uploaded CSV object (must start with the input prefix)")
	fmt.Println("  -help     Show this help message")
	fmt.Println("\nExample:")
	fmt.Println("  go run cmd/convert/main.go -bucket uploads -key input/stock.csv")
}
