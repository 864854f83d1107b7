package storage

import (
	"dexfetch/internal/types"
)

// Storage is the interface for all record storage backends.
type Storage interface {
	// Store persists one rendered record.
	Store(rec *types.Record) error

	// Close flushes pending writes and releases resources.
	Close() error

	// Name returns the storage backend identifier.
	Name() string
}
