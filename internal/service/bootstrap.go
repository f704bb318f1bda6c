package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fincadev/fincaledger/internal/models"
	"github.com/fincadev/fincaledger/internal/repo"
	"github.com/fincadev/fincaledger/internal/storage"
)

// Fixed fields of the auto-created admin request.
const (
	bootstrapEmail = "admin@demo.com"
	bootstrapName  = "Administrador"
	bootstrapRole  = "Admin"
	bootstrapNote  = "Solicitud automática: crear admin por defecto"
)

// SessionChecker reports whether any session is currently active. The
// bootstrap policy needs nothing else from the session layer.
type SessionChecker interface {
	Active() bool
}

// Bootstrap guarantees a fresh installation always has a path to create
// an initial administrator.
type Bootstrap struct {
	sessions SessionChecker
	users    *repo.UserRepo
	requests *repo.RequestRepo
}

// NewBootstrap creates the bootstrap policy over the given storage
// backend and session source. A nil sessions means "never any session".
func NewBootstrap(store storage.Store, sessions SessionChecker) *Bootstrap {
	return &Bootstrap{
		sessions: sessions,
		users:    repo.NewUsers(store),
		requests: repo.NewRequests(store),
	}
}

// EnsureAdminRequest runs once at startup. If no session is active and
// the users collection is empty, it creates one pending admin-role
// request marked system, unless such a request is already outstanding.
// Calling it again while that request is pending does nothing, so there
// is never more than one outstanding at a time.
func (b *Bootstrap) EnsureAdminRequest(ctx context.Context) error {
	if b.sessions != nil && b.sessions.Active() {
		return nil
	}

	users, err := b.users.List(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if len(users) > 0 {
		return nil
	}

	requests, err := b.requests.List(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	for _, r := range requests {
		if strings.EqualFold(r.RequestedRole, "admin") && r.Status == models.RequestPending {
			return nil
		}
	}

	req, err := b.requests.Create(ctx, models.AccessRequest{
		Email:         bootstrapEmail,
		Name:          bootstrapName,
		RequestedRole: bootstrapRole,
		Note:          bootstrapNote,
		System:        true,
	})
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	slog.Info("Created bootstrap admin request", "request_id", req.ID, "email", req.Email)
	return nil
}
