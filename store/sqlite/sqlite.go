/*
Package sqlite provides the SQLite-backed implementation of payroll.Store.

PURPOSE:
  Persists workers, work entries, payments, and salary profiles. The same
  patterns apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  workers:          Worker records
  work_entries:     Worker-logged work/expense records
  payments:         Admin-recorded transfers (immutable; delete only)
  salary_profiles:  One compensation configuration per worker

AMOUNTS:
  Money is stored as decimal TEXT, never as floating point. Parsing back
  goes through payroll.ParseMoney.

DATES:
  Dates are stored as "YYYY-MM-DD" TEXT. Historical payment rows may
  carry a full RFC3339 timestamp; reads normalize either form to a
  calendar day. A row whose date parses as neither comes back with a
  zero Day, which the engine excludes from every sum instead of failing
  the whole computation.

WAL MODE:
  SQLite is opened with WAL for better concurrency: multiple readers
  don't block, single writer at a time.

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - payroll/store.go: Interface definition
  - payroll/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Mahesh3757/WorkForce-Hub/payroll"
)

// Store implements payroll.Store using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS workers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS work_entries (
		id TEXT PRIMARY KEY,
		worker_id TEXT NOT NULL,
		date TEXT NOT NULL,
		earned TEXT NOT NULL,
		expense TEXT NOT NULL,
		details TEXT,
		expense_note TEXT,
		paid INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_entries_worker_date
		ON work_entries(worker_id, date DESC);

	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		worker_id TEXT NOT NULL,
		date TEXT NOT NULL,
		amount TEXT NOT NULL,
		method TEXT,
		note TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_payments_worker_date
		ON payments(worker_id, date DESC);

	CREATE TABLE IF NOT EXISTS salary_profiles (
		worker_id TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		per_entry_rate TEXT NOT NULL,
		recurring_amount TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// DATE HANDLING
// =============================================================================

// parseStoredDay accepts "YYYY-MM-DD" or RFC3339 and normalizes to a
// calendar day. Anything else yields the zero Day (malformed).
func parseStoredDay(raw string) payroll.Day {
	if d, err := payroll.ParseDay(raw); err == nil {
		return d
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return payroll.DayOf(t)
	}
	return payroll.Day{}
}

func storeDay(d payroll.Day) string {
	return d.String()
}

// =============================================================================
// WORKERS
// =============================================================================

func (s *Store) ListWorkers(ctx context.Context) ([]payroll.Worker, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, COALESCE(phone, ''), created_at FROM workers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []payroll.Worker
	for rows.Next() {
		var w payroll.Worker
		var id, createdAt string
		if err := rows.Scan(&id, &w.Name, &w.Phone, &createdAt); err != nil {
			return nil, err
		}
		w.ID = payroll.WorkerID(id)
		w.CreatedAt = parseStoredDay(createdAt)
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

func (s *Store) GetWorker(ctx context.Context, id payroll.WorkerID) (*payroll.Worker, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, COALESCE(phone, ''), created_at FROM workers WHERE id = ?`, string(id))

	var w payroll.Worker
	var rawID, createdAt string
	if err := row.Scan(&rawID, &w.Name, &w.Phone, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	w.ID = payroll.WorkerID(rawID)
	w.CreatedAt = parseStoredDay(createdAt)
	return &w, nil
}

func (s *Store) SaveWorker(ctx context.Context, w payroll.Worker) error {
	createdAt := w.CreatedAt
	if createdAt.IsZero() {
		createdAt = payroll.Today()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO workers (id, name, phone, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, phone = excluded.phone`,
		string(w.ID), w.Name, w.Phone, storeDay(createdAt))
	return err
}

// =============================================================================
// WORK ENTRIES
// =============================================================================

const entryColumns = `id, worker_id, date, earned, expense,
	COALESCE(details, ''), COALESCE(expense_note, ''), paid`

func scanEntry(scan func(dest ...any) error) (payroll.WorkEntry, error) {
	var e payroll.WorkEntry
	var workerID, date, earned, expense string
	var paid int
	if err := scan(&e.ID, &workerID, &date, &earned, &expense, &e.Details, &e.ExpenseNote, &paid); err != nil {
		return payroll.WorkEntry{}, err
	}
	e.WorkerID = payroll.WorkerID(workerID)
	e.Date = parseStoredDay(date)
	e.Earned = payroll.ParseMoney(earned)
	e.Expense = payroll.ParseMoney(expense)
	e.Paid = paid != 0
	return e, nil
}

func (s *Store) ListEntries(ctx context.Context, f payroll.EntryFilter) ([]payroll.WorkEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM work_entries WHERE 1=1`
	var args []any

	if f.WorkerID != "" {
		query += ` AND worker_id = ?`
		args = append(args, string(f.WorkerID))
	}
	if !f.From.IsZero() {
		query += ` AND date >= ?`
		args = append(args, storeDay(f.From))
	}
	if !f.To.IsZero() {
		query += ` AND date <= ?`
		args = append(args, storeDay(f.To))
	}
	if f.Month != "" {
		// Dates are "YYYY-MM-DD" text, so a month filter is a prefix match.
		query += ` AND date LIKE ?`
		args = append(args, f.Month+"-%")
	}
	query += ` ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []payroll.WorkEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) GetEntry(ctx context.Context, id string) (*payroll.WorkEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM work_entries WHERE id = ?`, id)
	e, err := scanEntry(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (s *Store) SaveEntry(ctx context.Context, e payroll.WorkEntry) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO work_entries (id, worker_id, date, earned, expense, details, expense_note, paid, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)
		ON CONFLICT(id) DO UPDATE SET
			worker_id = excluded.worker_id,
			date = excluded.date,
			earned = excluded.earned,
			expense = excluded.expense,
			details = excluded.details,
			expense_note = excluded.expense_note,
			paid = excluded.paid,
			updated_at = ?`,
		e.ID, string(e.WorkerID), storeDay(e.Date), e.Earned.String(), e.Expense.String(),
		e.Details, e.ExpenseNote, boolToInt(e.Paid), now, now)
	return err
}

func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM work_entries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return payroll.ErrEntryNotFound
	}
	return nil
}

// =============================================================================
// PAYMENTS
// =============================================================================

func (s *Store) ListPayments(ctx context.Context, f payroll.PaymentFilter) ([]payroll.Payment, error) {
	query := `SELECT id, worker_id, date, amount, COALESCE(method, ''), COALESCE(note, '')
		FROM payments WHERE 1=1`
	var args []any

	if f.WorkerID != "" {
		query += ` AND worker_id = ?`
		args = append(args, string(f.WorkerID))
	}
	if !f.From.IsZero() {
		query += ` AND date >= ?`
		args = append(args, storeDay(f.From))
	}
	if !f.To.IsZero() {
		query += ` AND date <= ?`
		args = append(args, storeDay(f.To))
	}
	query += ` ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []payroll.Payment
	for rows.Next() {
		var p payroll.Payment
		var workerID, date, amount string
		if err := rows.Scan(&p.ID, &workerID, &date, &amount, &p.Method, &p.Note); err != nil {
			return nil, err
		}
		p.WorkerID = payroll.WorkerID(workerID)
		p.Date = parseStoredDay(date)
		p.Amount = payroll.ParseMoney(amount)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (s *Store) SavePayment(ctx context.Context, p payroll.Payment) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO payments (id, worker_id, date, amount, method, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, string(p.WorkerID), storeDay(p.Date), p.Amount.String(), p.Method, p.Note,
		time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *Store) DeletePayment(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return payroll.ErrPaymentNotFound
	}
	return nil
}

// =============================================================================
// SALARY PROFILES
// =============================================================================

func (s *Store) GetProfile(ctx context.Context, id payroll.WorkerID) (*payroll.SalaryProfile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT worker_id, model, per_entry_rate, recurring_amount
		FROM salary_profiles WHERE worker_id = ?`, string(id))

	var workerID, model, rate, recurring string
	if err := row.Scan(&workerID, &model, &rate, &recurring); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &payroll.SalaryProfile{
		WorkerID:        payroll.WorkerID(workerID),
		Model:           payroll.CompensationModel(model),
		PerEntryRate:    payroll.ParseMoney(rate),
		RecurringAmount: payroll.ParseMoney(recurring),
	}, nil
}

func (s *Store) SaveProfile(ctx context.Context, p payroll.SalaryProfile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO salary_profiles (worker_id, model, per_entry_rate, recurring_amount, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(worker_id) DO UPDATE SET
			model = excluded.model,
			per_entry_rate = excluded.per_entry_rate,
			recurring_amount = excluded.recurring_amount,
			updated_at = excluded.updated_at`,
		string(p.WorkerID), string(p.Model), p.PerEntryRate.String(), p.RecurringAmount.String(),
		time.Now().UTC().Format(time.RFC3339))
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
