// Package service implements the operations the view layer calls:
// ledger CRUD, the user/request directory, request approval, seeding
// and the bootstrap policy. Services hold no state of their own; every
// operation goes through the repositories to the persisted document.
package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/fincadev/fincaledger/internal/models"
	"github.com/fincadev/fincaledger/internal/repo"
	"github.com/fincadev/fincaledger/internal/storage"
)

// Totals are the report figures over all movements: Ingresos sums the
// positive amounts, Gastos the absolute values of the negative ones.
type Totals struct {
	Ingresos float64
	Gastos   float64
	Neto     float64
}

// LedgerService exposes movements and invoices to the view layer.
type LedgerService struct {
	movements *repo.MovementRepo
	invoices  *repo.InvoiceRepo
}

// NewLedgerService creates a LedgerService over the given storage
// backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{
		movements: repo.NewMovements(store),
		invoices:  repo.NewInvoices(store),
	}
}

// ListMovements returns all movements, newest first (descending id),
// the order the movements page displays.
func (s *LedgerService) ListMovements(ctx context.Context) ([]models.Movement, error) {
	movements, err := s.movements.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(movements, func(i, j int) bool { return movements[i].ID > movements[j].ID })
	return movements, nil
}

// CreateMovement stores a new movement. Amount sign is expected to be
// caller-normalized: positive for ingresos, negative for gastos.
func (s *LedgerService) CreateMovement(ctx context.Context, m models.Movement) (*models.Movement, error) {
	created, err := s.movements.Create(ctx, m)
	if err != nil {
		slog.Error("CreateMovement failed", "error", err)
		return nil, err
	}
	slog.Info("Movement created", "movement_id", created.ID, "type", created.Type, "amount", created.Amount)
	return created, nil
}

// UpdateMovement patches the movement with the given id. Returns
// repo.ErrNotFound when it does not exist.
func (s *LedgerService) UpdateMovement(ctx context.Context, id int, patch models.MovementPatch) (*models.Movement, error) {
	updated, err := s.movements.Update(ctx, id, patch)
	if err != nil {
		slog.Error("UpdateMovement failed", "movement_id", id, "error", err)
		return nil, err
	}
	slog.Info("Movement updated", "movement_id", id)
	return updated, nil
}

// DeleteMovement removes the movement with the given id; absent ids are
// a no-op.
func (s *LedgerService) DeleteMovement(ctx context.Context, id int) error {
	if err := s.movements.Delete(ctx, id); err != nil {
		slog.Error("DeleteMovement failed", "movement_id", id, "error", err)
		return err
	}
	slog.Info("Movement deleted", "movement_id", id)
	return nil
}

// ListInvoices returns all invoices, newest first (descending id).
func (s *LedgerService) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(invoices, func(i, j int) bool { return invoices[i].ID > invoices[j].ID })
	return invoices, nil
}

// GetInvoice returns the invoice with the given id for the detail view.
func (s *LedgerService) GetInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	return s.invoices.Get(ctx, id)
}

// CreateInvoice stores a new invoice. Invoice numbers are not checked
// for uniqueness.
func (s *LedgerService) CreateInvoice(ctx context.Context, inv models.Invoice) (*models.Invoice, error) {
	created, err := s.invoices.Create(ctx, inv)
	if err != nil {
		slog.Error("CreateInvoice failed", "error", err)
		return nil, err
	}
	slog.Info("Invoice created", "invoice_id", created.ID, "number", created.Number)
	return created, nil
}

// UpdateInvoice patches the invoice with the given id.
func (s *LedgerService) UpdateInvoice(ctx context.Context, id int, patch models.InvoicePatch) (*models.Invoice, error) {
	updated, err := s.invoices.Update(ctx, id, patch)
	if err != nil {
		slog.Error("UpdateInvoice failed", "invoice_id", id, "error", err)
		return nil, err
	}
	slog.Info("Invoice updated", "invoice_id", id)
	return updated, nil
}

// DeleteInvoice removes the invoice with the given id; absent ids are a
// no-op.
func (s *LedgerService) DeleteInvoice(ctx context.Context, id int) error {
	if err := s.invoices.Delete(ctx, id); err != nil {
		slog.Error("DeleteInvoice failed", "invoice_id", id, "error", err)
		return err
	}
	slog.Info("Invoice deleted", "invoice_id", id)
	return nil
}

// Totals computes the report figures. Classification is by amount sign,
// not by movement type, matching how the reports page sums.
func (s *LedgerService) Totals(ctx context.Context) (Totals, error) {
	movements, err := s.movements.List(ctx)
	if err != nil {
		return Totals{}, err
	}

	var t Totals
	for _, m := range movements {
		switch {
		case m.Amount > 0:
			t.Ingresos += m.Amount
		case m.Amount < 0:
			t.Gastos += -m.Amount
		}
	}
	t.Neto = t.Ingresos - t.Gastos
	return t, nil
}
