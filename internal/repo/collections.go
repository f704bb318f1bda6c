package repo

import (
	"time"

	"github.com/fincadev/fincaledger/internal/models"
	"github.com/fincadev/fincaledger/internal/storage"
)

// Instantiated repository types, one per collection.
type (
	MovementRepo = Collection[models.Movement, models.MovementPatch]
	InvoiceRepo  = Collection[models.Invoice, models.InvoicePatch]
	UserRepo     = Collection[models.User, models.UserPatch]
	RequestRepo  = Collection[models.AccessRequest, models.RequestPatch]
)

// NewMovements returns the movements repository. Movements carry no
// creation defaults; amount sign normalization stays with the caller.
func NewMovements(store storage.Store) *MovementRepo {
	return &MovementRepo{
		store: store,
		name:  "movements",
		slice: func(d *models.Document) *[]models.Movement { return &d.Movements },
		id:    func(m *models.Movement) *int { return &m.ID },
		apply: func(m *models.Movement, p models.MovementPatch) { m.Apply(p) },
		now:   time.Now,
	}
}

// NewInvoices returns the invoices repository. Invoice numbers are not
// checked for uniqueness here.
func NewInvoices(store storage.Store) *InvoiceRepo {
	return &InvoiceRepo{
		store: store,
		name:  "invoices",
		slice: func(d *models.Document) *[]models.Invoice { return &d.Invoices },
		id:    func(i *models.Invoice) *int { return &i.ID },
		apply: func(i *models.Invoice, p models.InvoicePatch) { i.Apply(p) },
		now:   time.Now,
	}
}

// NewUsers returns the users repository. Creation stamps CreatedAt when
// the caller left it zero; it is never touched again.
func NewUsers(store storage.Store) *UserRepo {
	return &UserRepo{
		store: store,
		name:  "users",
		slice: func(d *models.Document) *[]models.User { return &d.Users },
		id:    func(u *models.User) *int { return &u.ID },
		defaults: func(u *models.User, now time.Time) {
			if u.CreatedAt.IsZero() {
				u.CreatedAt = now
			}
		},
		apply: func(u *models.User, p models.UserPatch) { u.Apply(p) },
		now:   time.Now,
	}
}

// NewRequests returns the access requests repository. Creation defaults
// the status to pending and stamps CreatedAt when left zero.
func NewRequests(store storage.Store) *RequestRepo {
	return &RequestRepo{
		store: store,
		name:  "requests",
		slice: func(d *models.Document) *[]models.AccessRequest { return &d.Requests },
		id:    func(r *models.AccessRequest) *int { return &r.ID },
		defaults: func(r *models.AccessRequest, now time.Time) {
			if r.Status == "" {
				r.Status = models.RequestPending
			}
			if r.CreatedAt.IsZero() {
				r.CreatedAt = now
			}
		},
		apply: func(r *models.AccessRequest, p models.RequestPatch) { r.Apply(p) },
		now:   time.Now,
	}
}
