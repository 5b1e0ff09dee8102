// Package storage provides bucket/key addressed blob storage for the
// converter. Drivers implement ObjectStore; the filesystem driver backs
// local deployments and the memory driver backs tests.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a bucket or key does not exist
var ErrNotFound = errors.New("object not found")

// ObjectStore reads and writes whole objects addressed by bucket and key
type ObjectStore interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, data []byte) error
}
