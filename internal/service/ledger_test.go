package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fincadev/fincaledger/internal/models"
	"github.com/fincadev/fincaledger/internal/repo"
)

func TestListMovementsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, NewSeeder(store).SeedIfEmpty(ctx))

	movements, err := NewLedgerService(store).ListMovements(ctx)
	require.NoError(t, err)
	require.Len(t, movements, 4)
	for i := range movements {
		require.Equal(t, 4-i, movements[i].ID)
	}
}

func TestUpdateMovementOnEmptyCollection(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedgerService(newTestStore(t))

	status := "x"
	_, err := ledger.UpdateMovement(ctx, 999, models.MovementPatch{Status: &status})
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTotals(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, NewSeeder(store).SeedIfEmpty(ctx))

	totals, err := NewLedgerService(store).Totals(ctx)
	require.NoError(t, err)
	require.Equal(t, float64(2500000), totals.Ingresos)
	require.Equal(t, float64(1170000), totals.Gastos)
	require.Equal(t, float64(1330000), totals.Neto)
}

func TestTotalsOnEmptyLedger(t *testing.T) {
	ctx := context.Background()

	totals, err := NewLedgerService(newTestStore(t)).Totals(ctx)
	require.NoError(t, err)
	require.Zero(t, totals.Ingresos)
	require.Zero(t, totals.Gastos)
	require.Zero(t, totals.Neto)
}

func TestInvoiceLifecycle(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedgerService(newTestStore(t))

	created, err := ledger.CreateInvoice(ctx, models.Invoice{
		Number: "FAC-003", Party: "Comprador B", Date: "2024-01-05", DueDate: "2024-02-05",
		Amount: 300000, Status: "Pendiente",
	})
	require.NoError(t, err)

	got, err := ledger.GetInvoice(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "2024-02-05", got.DueDate)

	status := "Pagada"
	updated, err := ledger.UpdateInvoice(ctx, created.ID, models.InvoicePatch{Status: &status})
	require.NoError(t, err)
	require.Equal(t, "Pagada", updated.Status)
	require.Equal(t, "FAC-003", updated.Number)

	require.NoError(t, ledger.DeleteInvoice(ctx, created.ID))
	_, err = ledger.GetInvoice(ctx, created.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDuplicateInvoiceNumbersAreAccepted(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedgerService(newTestStore(t))

	first, err := ledger.CreateInvoice(ctx, models.Invoice{Number: "FAC-001", Amount: 100})
	require.NoError(t, err)
	second, err := ledger.CreateInvoice(ctx, models.Invoice{Number: "FAC-001", Amount: 200})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}
