/*
snapshot.go - Bulk snapshot reads feeding the engine

PURPOSE:
  Gathers one worker's complete record set (entries, payments, profile)
  from the Store so ComputeBalance can run over a consistent snapshot.
  The fetch is the only suspension point in a balance computation; the
  computation itself is synchronous and pure.

CONCURRENCY:
  Within one worker the three reads are independent and run concurrently,
  but all must complete before the engine runs - there is no partial
  evaluation. Across workers, loads fan out freely: each worker's balance
  is independent of every other's.

FAILURE:
  Any store error fails the whole load. The caller must be able to
  distinguish "balance is zero" from "balance could not be computed", so
  a fabricated empty snapshot is never returned.
*/
package payroll

import (
	"context"
	"sync"
)

// =============================================================================
// SNAPSHOT - One worker's complete record set
// =============================================================================

// Snapshot is the immutable input to one balance computation.
type Snapshot struct {
	WorkerID WorkerID
	Profile  SalaryProfile
	Entries  []WorkEntry
	Payments []Payment
}

// Balance computes the worker's balance from this snapshot.
func (s Snapshot) Balance(asOf Day) Balance {
	return ComputeBalance(s.WorkerID, s.Profile, s.Entries, s.Payments, asOf)
}

// =============================================================================
// SNAPSHOT LOADING
// =============================================================================

// LoadSnapshot fetches one worker's entries, payments, and profile
// concurrently. A missing profile is defaulted; a store failure on any
// of the three reads fails the load.
func LoadSnapshot(ctx context.Context, store Store, workerID WorkerID) (Snapshot, error) {
	var (
		wg       sync.WaitGroup
		entries  []WorkEntry
		payments []Payment
		profile  *SalaryProfile

		entriesErr  error
		paymentsErr error
		profileErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		entries, entriesErr = store.ListEntries(ctx, EntryFilter{WorkerID: workerID})
	}()
	go func() {
		defer wg.Done()
		payments, paymentsErr = store.ListPayments(ctx, PaymentFilter{WorkerID: workerID})
	}()
	go func() {
		defer wg.Done()
		profile, profileErr = store.GetProfile(ctx, workerID)
	}()
	wg.Wait()

	for _, err := range []error{entriesErr, paymentsErr, profileErr} {
		if err != nil {
			return Snapshot{}, err
		}
	}

	if profile == nil {
		p := DefaultProfile(workerID)
		profile = &p
	}

	return Snapshot{
		WorkerID: workerID,
		Profile:  *profile,
		Entries:  entries,
		Payments: payments,
	}, nil
}

// LoadSnapshots fans LoadSnapshot out across workers. Results keep the
// input order; the first error wins and fails the whole batch.
func LoadSnapshots(ctx context.Context, store Store, workerIDs []WorkerID) ([]Snapshot, error) {
	snapshots := make([]Snapshot, len(workerIDs))
	errs := make([]error, len(workerIDs))

	var wg sync.WaitGroup
	for i, id := range workerIDs {
		wg.Add(1)
		go func(i int, id WorkerID) {
			defer wg.Done()
			snapshots[i], errs[i] = LoadSnapshot(ctx, store, id)
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return snapshots, nil
}
