package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fincadev/fincaledger/internal/models"
)

func TestSeedIfEmptyPopulatesSampleData(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, NewSeeder(store).SeedIfEmpty(ctx))

	doc, present, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, present)

	require.Len(t, doc.Movements, 4)
	for i, m := range doc.Movements {
		require.Equal(t, i+1, m.ID)
	}

	var sale models.Movement
	for _, m := range doc.Movements {
		if m.Date == "2023-10-20" {
			sale = m
		}
	}
	require.Equal(t, float64(2500000), sale.Amount)
	require.Equal(t, models.MovementIngreso, sale.Type)

	require.Len(t, doc.Invoices, 2)
	require.Equal(t, "FAC-001", doc.Invoices[0].Number)
	require.Equal(t, "Pagada", doc.Invoices[0].Status)
	require.Equal(t, "Proveedor AgroInsumos", doc.Invoices[1].Party)

	require.Empty(t, doc.Users)
	require.Empty(t, doc.Requests)
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	seeder := NewSeeder(store)

	require.NoError(t, seeder.SeedIfEmpty(ctx))
	once, _, err := store.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, seeder.SeedIfEmpty(ctx))
	twice, _, err := store.Load(ctx)
	require.NoError(t, err)

	require.Equal(t, once, twice)
}

func TestSeedIfEmptySkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// Even a document with empty collections counts as present: the
	// guard is slot presence, not record counts.
	require.NoError(t, store.Save(ctx, models.NewDocument()))

	require.NoError(t, NewSeeder(store).SeedIfEmpty(ctx))

	doc, _, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, doc.Movements)
}
