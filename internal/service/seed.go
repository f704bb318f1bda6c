package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fincadev/fincaledger/internal/metrics"
	"github.com/fincadev/fincaledger/internal/models"
	"github.com/fincadev/fincaledger/internal/storage"
)

// Seeder writes the fixed sample document to an empty store.
type Seeder struct {
	store storage.Store
}

// NewSeeder creates a Seeder over the given storage backend.
func NewSeeder(store storage.Store) *Seeder {
	return &Seeder{store: store}
}

// SeedIfEmpty populates the store with sample data if and only if no
// valid document has ever been saved. The guard is slot presence, not a
// flag inside the document, so calling it twice never duplicates data —
// and a corrupt slot (which loads as absent) gets reseeded.
func (s *Seeder) SeedIfEmpty(ctx context.Context) error {
	_, present, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if present {
		return nil
	}

	if err := s.store.Save(ctx, SampleDocument()); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	metrics.SeedRuns.Inc()
	slog.Info("Store seeded with sample data")
	return nil
}

// SampleDocument returns the deterministic sample data for a fresh
// installation: four movements and two invoices, no users or requests.
func SampleDocument() *models.Document {
	return &models.Document{
		Movements: []models.Movement{
			{
				ID:          1,
				Date:        "2023-11-10",
				Type:        models.MovementGasto,
				Category:    "Semillas",
				Description: "Compra de semilla certificada",
				Amount:      -120000,
				Status:      "Registrado",
			},
			{
				ID:          2,
				Date:        "2023-11-05",
				Type:        models.MovementGasto,
				Category:    "Mano de obra",
				Description: "Pago jornaleros recolección",
				Amount:      -600000,
				Status:      "Borrador",
			},
			{
				ID:          3,
				Date:        "2023-10-28",
				Type:        models.MovementGasto,
				Category:    "Abonos",
				Description: "Compra de fertilizante triple 15",
				Amount:      -450000,
				Status:      "Registrado",
			},
			{
				ID:          4,
				Date:        "2023-10-20",
				Type:        models.MovementIngreso,
				Category:    "Venta de papa",
				Description: "Venta 20 bultos",
				Amount:      2500000,
				Status:      "Registrado",
			},
		},
		Invoices: []models.Invoice{
			{
				ID:     1,
				Number: "FAC-001",
				Party:  "Comprador A",
				Date:   "2023-10-25",
				Amount: 2500000,
				Status: "Pagada",
			},
			{
				ID:     2,
				Number: "FAC-002",
				Party:  "Proveedor AgroInsumos",
				Date:   "2023-10-15",
				Amount: 850000,
				Status: "Pendiente",
			},
		},
		Users:    []models.User{},
		Requests: []models.AccessRequest{},
	}
}
