package store

import (
	"fmt"

	"productman/domain"
)

// NewStore constructs a domain.ProductStore by kind: "sqlite" or "memory".
// For the sqlite store, provide the database file path in path; for memory,
// path is ignored.
func NewStore(kind, path string) (domain.ProductStore, error) {
	switch kind {
	case "sqlite", "db":
		if path == "" {
			return nil, fmt.Errorf("database path required for sqlite store")
		}
		return NewSQLiteStore(path)
	case "memory", "mem":
		return NewInMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store kind: %s", kind)
	}
}
