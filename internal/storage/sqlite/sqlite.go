// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/fincadev/fincaledger/internal/metrics"
	"github.com/fincadev/fincaledger/internal/models"
	"github.com/fincadev/fincaledger/internal/storage"
)

// slotKey names the single document row. One process owns one ledger.
const slotKey = "ledger"

// Ensure SlotStore implements storage.Store
var _ storage.Store = (*SlotStore)(nil)

// SlotStore implements storage.Store using a single-row SQLite table.
type SlotStore struct {
	db *sql.DB
}

// New creates a new SlotStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SlotStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: every Load/Save is a single uninterleaved
	// statement, which keeps read-modify-write cycles from interleaving.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SlotStore{db: db}, nil
}

// Close closes the database connection.
func (s *SlotStore) Close() error {
	return s.db.Close()
}

// Load reads the document slot. A missing row or an unparseable body
// yields an empty document and false; corruption is logged and counted
// but never surfaced to the caller.
func (s *SlotStore) Load(ctx context.Context) (*models.Document, bool, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		"SELECT body FROM documents WHERE key = ?", slotKey,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return models.NewDocument(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load document: %w", err)
	}

	doc := models.NewDocument()
	if err := json.Unmarshal([]byte(body), doc); err != nil {
		slog.Warn("Stored document is corrupt, treating as empty", "error", err)
		metrics.CorruptDocuments.Inc()
		return models.NewDocument(), false, nil
	}
	return doc, true, nil
}

// Save serializes the document and replaces the slot row.
func (s *SlotStore) Save(ctx context.Context, doc *models.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (key, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		slotKey, string(body), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
