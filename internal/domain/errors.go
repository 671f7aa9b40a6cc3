package domain

import "errors"

var (
	// ErrInvalidRecordShape is returned when a catalog element is not a record object
	ErrInvalidRecordShape = errors.New("invalid record shape")

	// ErrInvalidCSV is returned when a CSV dataset is missing required columns or is unreadable
	ErrInvalidCSV = errors.New("invalid CSV dataset")

	// ErrCatalogEmpty is returned when a catalog source yields no records
	ErrCatalogEmpty = errors.New("catalog is empty")

	// ErrSourceUnavailable is returned when a catalog source cannot be opened
	ErrSourceUnavailable = errors.New("catalog source unavailable")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
