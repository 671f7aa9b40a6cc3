package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CatalogSource yields raw catalog records from a dataset
type CatalogSource interface {
	// Name labels the source in logs and snapshots
	Name() string
	Load(ctx context.Context) ([]RawRecord, error)
}

// FingerprintedSource is a CatalogSource that can identify its current
// content without loading it. Two sources share cached snapshots only when
// their names and fingerprints are equal.
type FingerprintedSource interface {
	CatalogSource
	Fingerprint() (string, error)
}
