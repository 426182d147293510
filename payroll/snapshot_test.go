package payroll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Mahesh3757/WorkForce-Hub/payroll"
	"github.com/Mahesh3757/WorkForce-Hub/payroll/store"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// failingStore wraps a Store and fails a chosen read.
type failingStore struct {
	payroll.Store
	failEntries  bool
	failProfiles bool
}

var errStoreDown = errors.New("store unavailable")

func (f *failingStore) ListEntries(ctx context.Context, filter payroll.EntryFilter) ([]payroll.WorkEntry, error) {
	if f.failEntries {
		return nil, errStoreDown
	}
	return f.Store.ListEntries(ctx, filter)
}

func (f *failingStore) GetProfile(ctx context.Context, id payroll.WorkerID) (*payroll.SalaryProfile, error) {
	if f.failProfiles {
		return nil, errStoreDown
	}
	return f.Store.GetProfile(ctx, id)
}

func seedWorker(t *testing.T, s payroll.Store, id payroll.WorkerID) {
	t.Helper()
	ctx := context.Background()

	err := s.SaveWorker(ctx, payroll.Worker{ID: id, Name: "Worker " + string(id)})
	if err != nil {
		t.Fatalf("seed worker: %v", err)
	}
	err = s.SaveEntry(ctx, payroll.WorkEntry{
		ID:       string(id) + "-e1",
		WorkerID: id,
		Date:     payroll.NewDay(2025, time.January, 10),
		Earned:   money(100),
		Expense:  money(25),
	})
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	err = s.SavePayment(ctx, payroll.Payment{
		ID:       string(id) + "-p1",
		WorkerID: id,
		Date:     payroll.NewDay(2025, time.January, 20),
		Amount:   money(50),
	})
	if err != nil {
		t.Fatalf("seed payment: %v", err)
	}
}

// =============================================================================
// SNAPSHOT LOADING TESTS
// =============================================================================

func TestLoadSnapshot_GathersAllRecordKinds(t *testing.T) {
	s := store.NewMemory()
	seedWorker(t, s, "w-1")

	snap, err := payroll.LoadSnapshot(context.Background(), s, "w-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snap.Entries) != 1 || len(snap.Payments) != 1 {
		t.Fatalf("expected 1 entry and 1 payment, got %d/%d", len(snap.Entries), len(snap.Payments))
	}

	b := snap.Balance(payroll.NewDay(2025, time.February, 1))
	assertMoney(t, "Due", b.Due, 75)
}

func TestLoadSnapshot_MissingProfile_Defaulted(t *testing.T) {
	// GIVEN: A worker with records but no salary profile
	// WHEN: Loading their snapshot
	// THEN: The defaulted per-entry profile is used, not an error

	s := store.NewMemory()
	seedWorker(t, s, "w-1")

	snap, err := payroll.LoadSnapshot(context.Background(), s, "w-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Profile.Model != payroll.ModelPerEntry {
		t.Errorf("expected defaulted per-entry profile, got %s", snap.Profile.Model)
	}
	if !snap.Profile.PerEntryRate.IsZero() {
		t.Errorf("defaulted rate should be zero, got %s", snap.Profile.PerEntryRate)
	}
}

func TestLoadSnapshot_StoredProfile_Used(t *testing.T) {
	s := store.NewMemory()
	seedWorker(t, s, "w-1")
	err := s.SaveProfile(context.Background(), payroll.SalaryProfile{
		WorkerID:        "w-1",
		Model:           payroll.ModelRecurring,
		RecurringAmount: money(3000),
	})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}

	snap, err := payroll.LoadSnapshot(context.Background(), s, "w-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snap.Profile.IsRecurring() {
		t.Error("stored recurring profile should win over the default")
	}
}

func TestLoadSnapshot_StoreFailure_Propagates(t *testing.T) {
	// A balance that could not be computed must never be reported as zero.
	s := &failingStore{Store: store.NewMemory(), failEntries: true}

	_, err := payroll.LoadSnapshot(context.Background(), s, "w-1")
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestLoadSnapshot_ProfileReadFailure_Propagates(t *testing.T) {
	// A profile read failure is a failure, not a silent default.
	s := &failingStore{Store: store.NewMemory(), failProfiles: true}

	_, err := payroll.LoadSnapshot(context.Background(), s, "w-1")
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestLoadSnapshots_PreservesInputOrder(t *testing.T) {
	s := store.NewMemory()
	seedWorker(t, s, "w-1")
	seedWorker(t, s, "w-2")
	seedWorker(t, s, "w-3")

	ids := []payroll.WorkerID{"w-3", "w-1", "w-2"}
	snaps, err := payroll.LoadSnapshots(context.Background(), s, ids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, id := range ids {
		if snaps[i].WorkerID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, snaps[i].WorkerID)
		}
	}
}

func TestLoadSnapshots_AnyFailure_FailsBatch(t *testing.T) {
	s := &failingStore{Store: store.NewMemory(), failEntries: true}

	_, err := payroll.LoadSnapshots(context.Background(), s, []payroll.WorkerID{"w-1", "w-2"})
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected batch to fail, got %v", err)
	}
}
