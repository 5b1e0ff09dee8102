// Package convert turns uploaded CSV objects into JSON objects written to a
// timestamp-partitioned output path.
package convert

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Kuiper-sun/smart-warehouse-inventory/storage"
)

// ErrKeyOutsidePrefix is returned when the triggering key does not live
// under the configured input prefix. Nothing is written in that case.
var ErrKeyOutsidePrefix = errors.New("object key outside input prefix")

// Event identifies the object whose creation triggered a conversion
type Event struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// Converter reads a CSV object, transforms it into a JSON array of
// header-keyed records, and writes the result back to the same bucket.
type Converter struct {
	store       storage.ObjectStore
	inputPrefix string
	now         func() time.Time
}

// NewConverter creates a converter over the given store. The input prefix
// gates which keys are converted.
func NewConverter(store storage.ObjectStore, inputPrefix string) *Converter {
	return &Converter{
		store:       store,
		inputPrefix: inputPrefix,
		now:         time.Now,
	}
}

// Handle converts the object named by the event and returns the output key.
// Read and write faults are wrapped with bucket/key context; there is no
// retry and no cleanup of partial output.
func (c *Converter) Handle(ctx context.Context, event Event) (string, error) {
	if !strings.HasPrefix(event.Key, c.inputPrefix) {
		return "", fmt.Errorf("key %s: %w", event.Key, ErrKeyOutsidePrefix)
	}

	data, err := c.store.Get(ctx, event.Bucket, event.Key)
	if err != nil {
		return "", fmt.Errorf("failed to read CSV from %s/%s: %w", event.Bucket, event.Key, err)
	}

	records, err := csvToRecords(data)
	if err != nil {
		return "", fmt.Errorf("failed to parse CSV from %s/%s: %w", event.Bucket, event.Key, err)
	}

	jsonData, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to serialize records from %s/%s: %w", event.Bucket, event.Key, err)
	}

	outputKey := OutputKey(c.now().UTC())
	if err := c.store.Put(ctx, event.Bucket, outputKey, jsonData); err != nil {
		return "", fmt.Errorf("failed to write JSON to %s/%s: %w", event.Bucket, outputKey, err)
	}

	return outputKey, nil
}

// OutputKey derives the timestamp-partitioned output path for a conversion
// performed at t. Directory segments use unpadded month and day.
func OutputKey(t time.Time) string {
	return fmt.Sprintf("uploads/output/%d/%d/%d/%s.json",
		t.Year(), int(t.Month()), t.Day(), t.Format("2006-01-02-15-04-05"))
}

// csvToRecords parses CSV data using the header row as field names. Each
// data row becomes a map from header name to cell text; an input with only a
// header yields an empty array.
func csvToRecords(data []byte) ([]map[string]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []map[string]string{}, nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, field := range header {
			record[field] = row[i]
		}
		records = append(records, record)
	}

	return records, nil
}
