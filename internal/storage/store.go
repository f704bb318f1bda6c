// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/fincadev/fincaledger/internal/models"
)

// Store defines the interface for document storage.
// The whole document is the unit of persistence: there are no partial
// writes and no transaction log. This abstraction allows swapping
// storage backends (SQLite file, in-memory, etc.) without changing the
// repository layer.
type Store interface {
	// Load returns the previously saved document and whether a valid
	// document was present. A missing or unparseable slot yields an
	// empty document and false, never an error: corrupt content is
	// recovered locally, not surfaced. Only real I/O failures return a
	// non-nil error.
	Load(ctx context.Context) (*models.Document, bool, error)

	// Save overwrites the slot entirely with the serialized document.
	// Last writer wins; callers are expected to be a single logical
	// writer.
	Save(ctx context.Context, doc *models.Document) error

	// Close releases any resources held by the store.
	Close() error
}
