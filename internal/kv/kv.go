// Package kv defines the key-value store the persistence layer runs on, with
// an in-memory implementation for tests and local runs and a SQLite-backed
// one for durable state.
package kv

import "context"

// Store is the opaque key-value port. Values are single blobs; a missing key
// is reported through the found flag, not an error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
