package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fincadev/fincaledger/internal/config"
	"github.com/fincadev/fincaledger/internal/models"
	"github.com/fincadev/fincaledger/internal/service"
	"github.com/fincadev/fincaledger/internal/session"
	"github.com/fincadev/fincaledger/internal/storage/sqlite"
	"github.com/fincadev/fincaledger/pkg/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DatabasePath)

	ctx := context.Background()
	sessions := session.NewStore(cfg.SessionTTL)

	if cfg.SeedOnStart {
		if err := service.NewSeeder(store).SeedIfEmpty(ctx); err != nil {
			slog.Error("Seeding failed", "error", err)
			os.Exit(1)
		}
	}

	if err := service.NewBootstrap(store, sessions).EnsureAdminRequest(ctx); err != nil {
		slog.Error("Bootstrap policy failed", "error", err)
		os.Exit(1)
	}

	logStartupSummary(ctx, store)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, _, err := store.Load(r.Context()); err != nil {
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	slog.Info("Metrics server starting", "address", cfg.MetricsAddr)
	if err := http.ListenAndServe(cfg.MetricsAddr, loggingMiddleware(mux)); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// logStartupSummary logs what the document currently holds, the same
// figures the dashboard shows.
func logStartupSummary(ctx context.Context, store *sqlite.SlotStore) {
	ledger := service.NewLedgerService(store)
	directory := service.NewDirectoryService(store)

	movements, err := ledger.ListMovements(ctx)
	if err != nil {
		slog.Warn("Startup summary unavailable", "error", err)
		return
	}
	invoices, _ := ledger.ListInvoices(ctx)
	users, _ := directory.ListUsers(ctx)
	requests, _ := directory.ListRequests(ctx)
	totals, _ := ledger.Totals(ctx)

	pending := 0
	for _, r := range requests {
		if r.Status == models.RequestPending {
			pending++
		}
	}

	slog.Info("Ledger loaded",
		"movements", len(movements),
		"invoices", len(invoices),
		"users", len(users),
		"pending_requests", pending,
		"ingresos", totals.Ingresos,
		"gastos", totals.Gastos,
		"neto", totals.Neto,
	)
}

// loggingMiddleware logs all incoming requests.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
