// Package store provides Store implementations.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/Mahesh3757/WorkForce-Hub/payroll"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu       sync.RWMutex
	workers  map[payroll.WorkerID]payroll.Worker
	entries  map[string]payroll.WorkEntry
	payments map[string]payroll.Payment
	profiles map[payroll.WorkerID]payroll.SalaryProfile
}

func NewMemory() *Memory {
	return &Memory{
		workers:  make(map[payroll.WorkerID]payroll.Worker),
		entries:  make(map[string]payroll.WorkEntry),
		payments: make(map[string]payroll.Payment),
		profiles: make(map[payroll.WorkerID]payroll.SalaryProfile),
	}
}

// -----------------------------------------------------------------------------
// Workers
// -----------------------------------------------------------------------------

func (m *Memory) ListWorkers(_ context.Context) ([]payroll.Worker, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]payroll.Worker, 0, len(m.workers))
	for _, w := range m.workers {
		result = append(result, w)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *Memory) GetWorker(_ context.Context, id payroll.WorkerID) (*payroll.Worker, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.workers[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (m *Memory) SaveWorker(_ context.Context, w payroll.Worker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workers[w.ID] = w
	return nil
}

// -----------------------------------------------------------------------------
// Work entries
// -----------------------------------------------------------------------------

func (m *Memory) ListEntries(_ context.Context, f payroll.EntryFilter) ([]payroll.WorkEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []payroll.WorkEntry
	for _, e := range m.entries {
		if !matchEntry(e, f) {
			continue
		}
		result = append(result, e)
	}
	// Newest first, matching how the record listings are consumed.
	sort.Slice(result, func(i, j int) bool { return result[j].Date.Before(result[i].Date) })
	return result, nil
}

func matchEntry(e payroll.WorkEntry, f payroll.EntryFilter) bool {
	if f.WorkerID != "" && e.WorkerID != f.WorkerID {
		return false
	}
	if !f.From.IsZero() && e.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.Date.After(f.To) {
		return false
	}
	if f.Month != "" && e.Date.MonthKey() != f.Month {
		return false
	}
	return true
}

func (m *Memory) GetEntry(_ context.Context, id string) (*payroll.WorkEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *Memory) SaveEntry(_ context.Context, e payroll.WorkEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
	return nil
}

func (m *Memory) DeleteEntry(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[id]; !ok {
		return payroll.ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

// -----------------------------------------------------------------------------
// Payments
// -----------------------------------------------------------------------------

func (m *Memory) ListPayments(_ context.Context, f payroll.PaymentFilter) ([]payroll.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []payroll.Payment
	for _, p := range m.payments {
		if f.WorkerID != "" && p.WorkerID != f.WorkerID {
			continue
		}
		if !f.From.IsZero() && p.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && p.Date.After(f.To) {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[j].Date.Before(result[i].Date) })
	return result, nil
}

func (m *Memory) SavePayment(_ context.Context, p payroll.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[p.ID] = p
	return nil
}

func (m *Memory) DeletePayment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.payments[id]; !ok {
		return payroll.ErrPaymentNotFound
	}
	delete(m.payments, id)
	return nil
}

// -----------------------------------------------------------------------------
// Salary profiles
// -----------------------------------------------------------------------------

func (m *Memory) GetProfile(_ context.Context, id payroll.WorkerID) (*payroll.SalaryProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *Memory) SaveProfile(_ context.Context, p payroll.SalaryProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.WorkerID] = p
	return nil
}
