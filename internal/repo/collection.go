// Package repo implements the collection repositories: typed CRUD with
// auto-increment identity over the single persisted document.
//
// Every operation is one load → mutate → save cycle against the
// storage.Store. Repositories hold no state between calls, so the
// document on disk is always the source of truth and sequential callers
// observe a consistent, monotonically updated document.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fincadev/fincaledger/internal/metrics"
	"github.com/fincadev/fincaledger/internal/models"
	"github.com/fincadev/fincaledger/internal/storage"
)

// ErrNotFound is returned by Get and Update when no record in the
// collection has the requested id. Delete deliberately does not return
// it: deleting something already gone is a no-op.
var ErrNotFound = errors.New("record not found")

// Collection is a repository over one slice of the document.
// T is the record type, P its patch type.
type Collection[T any, P any] struct {
	store storage.Store
	name  string

	// slice selects this collection's records inside a document.
	slice func(*models.Document) *[]T
	// id gives access to a record's identity field.
	id func(*T) *int
	// defaults fills creation-time defaults (nil for collections
	// without any).
	defaults func(*T, time.Time)
	// apply merges a typed patch into a record.
	apply func(*T, P)

	now func() time.Time
}

// List returns all records in the collection. Order is whatever the
// last save left; callers that need a display order sort for
// themselves.
func (c *Collection[T, P]) List(ctx context.Context) ([]T, error) {
	doc, _, err := c.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}
	metrics.RepoOps.WithLabelValues(c.name, "list").Inc()

	recs := *c.slice(doc)
	out := make([]T, len(recs))
	copy(out, recs)
	return out, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (c *Collection[T, P]) Get(ctx context.Context, id int) (*T, error) {
	doc, _, err := c.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", c.name, id, err)
	}
	metrics.RepoOps.WithLabelValues(c.name, "get").Inc()

	recs := *c.slice(doc)
	for i := range recs {
		if *c.id(&recs[i]) == id {
			rec := recs[i]
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("%s %d: %w", c.name, id, ErrNotFound)
}

// Create assigns the next id (max existing + 1, starting at 1), applies
// the collection's creation defaults, appends the record and persists
// the document. The stored record, id included, is returned.
func (c *Collection[T, P]) Create(ctx context.Context, rec T) (*T, error) {
	doc, _, err := c.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", c.name, err)
	}

	recs := c.slice(doc)
	next := 1
	for i := range *recs {
		if id := *c.id(&(*recs)[i]); id >= next {
			next = id + 1
		}
	}
	*c.id(&rec) = next

	if c.defaults != nil {
		c.defaults(&rec, c.now())
	}

	*recs = append(*recs, rec)
	if err := c.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("create %s: %w", c.name, err)
	}
	metrics.RepoOps.WithLabelValues(c.name, "create").Inc()
	return &rec, nil
}

// Update merges the patch into the record with the given id and
// persists the document. Fields the patch does not set keep their
// previous values. Returns ErrNotFound when the id is absent.
func (c *Collection[T, P]) Update(ctx context.Context, id int, patch P) (*T, error) {
	doc, _, err := c.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("update %s %d: %w", c.name, id, err)
	}

	recs := *c.slice(doc)
	for i := range recs {
		if *c.id(&recs[i]) != id {
			continue
		}
		c.apply(&recs[i], patch)
		if err := c.store.Save(ctx, doc); err != nil {
			return nil, fmt.Errorf("update %s %d: %w", c.name, id, err)
		}
		metrics.RepoOps.WithLabelValues(c.name, "update").Inc()
		rec := recs[i]
		return &rec, nil
	}
	return nil, fmt.Errorf("%s %d: %w", c.name, id, ErrNotFound)
}

// Delete removes the record with the given id if present. Deleting an
// absent id is a no-op, not an error.
func (c *Collection[T, P]) Delete(ctx context.Context, id int) error {
	doc, _, err := c.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", c.name, id, err)
	}

	recs := c.slice(doc)
	kept := (*recs)[:0]
	for i := range *recs {
		if *c.id(&(*recs)[i]) != id {
			kept = append(kept, (*recs)[i])
		}
	}
	*recs = kept

	if err := c.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("delete %s %d: %w", c.name, id, err)
	}
	metrics.RepoOps.WithLabelValues(c.name, "delete").Inc()
	return nil
}
