package redisx

import "time"

const (
	// Cached JSON of the full course catalog. Dropped whenever an
	// inventory decrement changes spaces.
	KeyCatalog = "catalog:courses"
)

var (
	TTLCatalogCache = 5 * time.Minute
)
