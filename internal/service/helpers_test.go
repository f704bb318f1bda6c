package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fincadev/fincaledger/internal/storage"
	"github.com/fincadev/fincaledger/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// staticSessions is a SessionChecker with a fixed answer.
type staticSessions bool

func (s staticSessions) Active() bool { return bool(s) }
