/*
store.go - Persistence collaborator contract

PURPOSE:
  Defines the interface between the pure engine and whatever holds the
  records. The engine never writes back through this interface during a
  computation - it reads a snapshot, computes, and returns. Create,
  update, and delete exist for the record-keeping surface around the
  engine (workers log entries, admins record payments).

MUTATION RULES (mirroring who owns what):
  WorkEntry:      created by the worker, mutable by worker or admin,
                  deletable by either.
  Payment:        created by admins only; never mutated, only deleted.
  SalaryProfile:  upserted by admins only; read-only to the engine.

IMPLEMENTATIONS:
  - payroll/store/memory.go: In-memory, for tests and dev
  - store/sqlite/sqlite.go:  SQLite-backed production store

SEE ALSO:
  - snapshot.go: Bulk per-worker read feeding the engine
*/
package payroll

import "context"

// =============================================================================
// FILTERS
// =============================================================================

// EntryFilter narrows a work-entry listing. Zero fields are ignored.
type EntryFilter struct {
	WorkerID WorkerID
	From     Day    // inclusive
	To       Day    // inclusive (listing filters, unlike pay periods, are closed ranges)
	Month    string // "2006-01" calendar-month filter
}

// PaymentFilter narrows a payment listing. Zero fields are ignored.
type PaymentFilter struct {
	WorkerID WorkerID
	From     Day
	To       Day
}

// =============================================================================
// STORE - The persistence collaborator
// =============================================================================

// Store is the record persistence contract. Any failure here must surface
// to the caller: a balance that could not be computed is never reported
// as a zero balance.
type Store interface {
	// Workers
	ListWorkers(ctx context.Context) ([]Worker, error)
	GetWorker(ctx context.Context, id WorkerID) (*Worker, error)
	SaveWorker(ctx context.Context, w Worker) error

	// Work entries
	ListEntries(ctx context.Context, f EntryFilter) ([]WorkEntry, error)
	GetEntry(ctx context.Context, id string) (*WorkEntry, error)
	SaveEntry(ctx context.Context, e WorkEntry) error
	DeleteEntry(ctx context.Context, id string) error

	// Payments (no update: payments are immutable once recorded)
	ListPayments(ctx context.Context, f PaymentFilter) ([]Payment, error)
	SavePayment(ctx context.Context, p Payment) error
	DeletePayment(ctx context.Context, id string) error

	// Salary profiles. GetProfile returns nil (not an error) when the
	// worker has no profile; callers default to DefaultProfile.
	GetProfile(ctx context.Context, id WorkerID) (*SalaryProfile, error)
	SaveProfile(ctx context.Context, p SalaryProfile) error
}
