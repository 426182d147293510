package payroll_test

import (
	"testing"
	"time"

	"github.com/Mahesh3757/WorkForce-Hub/payroll"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func money(v float64) payroll.Money { return payroll.NewMoney(v) }

func perEntryProfile(rate float64) payroll.SalaryProfile {
	return payroll.SalaryProfile{
		WorkerID:     "w-1",
		Model:        payroll.ModelPerEntry,
		PerEntryRate: money(rate),
	}
}

func recurringProfile(amount float64) payroll.SalaryProfile {
	return payroll.SalaryProfile{
		WorkerID:        "w-1",
		Model:           payroll.ModelRecurring,
		RecurringAmount: money(amount),
	}
}

func entry(id string, y int, m time.Month, d int, earned, expense float64) payroll.WorkEntry {
	return payroll.WorkEntry{
		ID:       id,
		WorkerID: "w-1",
		Date:     payroll.NewDay(y, m, d),
		Earned:   money(earned),
		Expense:  money(expense),
	}
}

func payment(id string, y int, m time.Month, d int, amount float64) payroll.Payment {
	return payroll.Payment{
		ID:       id,
		WorkerID: "w-1",
		Date:     payroll.NewDay(y, m, d),
		Amount:   money(amount),
	}
}

func assertMoney(t *testing.T, name string, got payroll.Money, want float64) {
	t.Helper()
	if !got.Equal(money(want)) {
		t.Errorf("%s: expected %v, got %s", name, want, got)
	}
}

// =============================================================================
// PER-ENTRY BALANCE TESTS
// =============================================================================

func TestComputeBalance_PerEntry_FlatRunningTotal(t *testing.T) {
	// GIVEN: Three piece-rate entries with expenses and one payment
	// WHEN: Computing the balance
	// THEN: Due = sum(earned + expense) - sum(payments), no period logic

	entries := []payroll.WorkEntry{
		entry("e1", 2025, time.January, 10, 100, 50),
		entry("e2", 2025, time.February, 3, 100, 0),
		entry("e3", 2025, time.March, 1, 100, 200),
	}
	payments := []payroll.Payment{
		payment("p1", 2025, time.February, 20, 100),
	}

	b := payroll.ComputeBalance("w-1", perEntryProfile(100), entries, payments, payroll.NewDay(2025, time.March, 20))

	assertMoney(t, "TotalEarnings", b.TotalEarnings, 550)
	assertMoney(t, "TotalReceived", b.TotalReceived, 100)
	assertMoney(t, "Due", b.Due, 450)
	assertMoney(t, "CumulativeCarry", b.CumulativeCarry, 0)
	assertMoney(t, "TotalExpenses", b.TotalExpenses, 250)
	if !b.Owed() {
		t.Error("worker should be owed money")
	}
}

func TestComputeBalance_PerEntry_Overpaid_NegativeDue(t *testing.T) {
	// GIVEN: Payments exceeding earnings
	// WHEN: Computing the balance
	// THEN: Due goes negative and the balance reads as an advance

	entries := []payroll.WorkEntry{entry("e1", 2025, time.January, 10, 100, 0)}
	payments := []payroll.Payment{payment("p1", 2025, time.January, 20, 300)}

	b := payroll.ComputeBalance("w-1", perEntryProfile(100), entries, payments, payroll.NewDay(2025, time.February, 1))

	assertMoney(t, "Due", b.Due, -200)
	if !b.Advanced() {
		t.Error("balance should read as an advance")
	}
	if b.Owed() {
		t.Error("overpaid worker is not owed")
	}
}

func TestComputeBalance_PerEntry_NoRecords_SettledAtZero(t *testing.T) {
	b := payroll.ComputeBalance("w-1", perEntryProfile(100), nil, nil, payroll.NewDay(2025, time.June, 1))

	assertMoney(t, "Due", b.Due, 0)
	if b.Owed() || b.Advanced() {
		t.Error("empty history should be settled")
	}
}

// =============================================================================
// RECURRING BALANCE TESTS
// =============================================================================

func TestComputeBalance_Recurring_CarryForwardAcrossPeriods(t *testing.T) {
	// GIVEN: A salaried worker (3000/period) active since early January,
	//        with a 200 expense in the first period and one 3000 payment
	//        in the second
	// WHEN: Evaluating in the third period (Mar 20)
	// THEN: carry = 2*3000 + 200 - 3000 = 3200, period adds 3000,
	//       due = 6200

	entries := []payroll.WorkEntry{
		entry("e1", 2025, time.January, 10, 0, 0),
		entry("e2", 2025, time.January, 20, 0, 200),
	}
	payments := []payroll.Payment{
		payment("p1", 2025, time.February, 20, 3000),
	}

	b := payroll.ComputeBalance("w-1", recurringProfile(3000), entries, payments, payroll.NewDay(2025, time.March, 20))

	assertMoney(t, "CumulativeCarry", b.CumulativeCarry, 3200)
	assertMoney(t, "PeriodEarnings", b.PeriodEarnings, 3000)
	assertMoney(t, "TotalEarnings", b.TotalEarnings, 6200)
	assertMoney(t, "TotalReceived", b.TotalReceived, 0)
	assertMoney(t, "Due", b.Due, 6200)
}

func TestComputeBalance_Recurring_NoHistory_EarnsFullPeriodAmount(t *testing.T) {
	// GIVEN: A salaried worker with no entries and no payments
	// WHEN: Computing the balance
	// THEN: The current period's full amount is due from day one;
	//       the recurring amount is not pro-rated by elapsed days

	b := payroll.ComputeBalance("w-1", recurringProfile(3000), nil, nil, payroll.NewDay(2025, time.March, 16))

	assertMoney(t, "CumulativeCarry", b.CumulativeCarry, 0)
	assertMoney(t, "PeriodEarnings", b.PeriodEarnings, 3000)
	assertMoney(t, "Due", b.Due, 3000)
}

func TestComputeBalance_Recurring_CurrentPeriodPaymentReducesDue(t *testing.T) {
	// GIVEN: A fresh salaried worker paid 1000 within the current period
	// WHEN: Computing the balance
	// THEN: Due drops by exactly the payment amount

	entries := []payroll.WorkEntry{entry("e1", 2025, time.March, 16, 0, 0)}
	payments := []payroll.Payment{payment("p1", 2025, time.March, 18, 1000)}

	b := payroll.ComputeBalance("w-1", recurringProfile(3000), entries, payments, payroll.NewDay(2025, time.March, 20))

	assertMoney(t, "TotalReceived", b.TotalReceived, 1000)
	assertMoney(t, "Due", b.Due, 2000)
}

func TestComputeBalance_Recurring_PaymentOnPeriodEnd_BelongsToNextPeriod(t *testing.T) {
	// GIVEN: A payment dated exactly on a period's end boundary
	// WHEN: Evaluating inside that earlier period
	// THEN: The payment does not count yet (periods are half-open)

	entries := []payroll.WorkEntry{entry("e1", 2025, time.March, 16, 0, 0)}
	payments := []payroll.Payment{payment("p1", 2025, time.April, 15, 1000)}

	b := payroll.ComputeBalance("w-1", recurringProfile(3000), entries, payments, payroll.NewDay(2025, time.April, 10))

	assertMoney(t, "TotalReceived", b.TotalReceived, 0)
	assertMoney(t, "Due", b.Due, 3000)

	// One day later the evaluation moves into the next window and the
	// payment lands in the current period.
	b = payroll.ComputeBalance("w-1", recurringProfile(3000), entries, payments, payroll.NewDay(2025, time.April, 15))
	assertMoney(t, "TotalReceived", b.TotalReceived, 1000)
}

func TestComputeBalance_Recurring_SamePeriod_AsOfIndependent(t *testing.T) {
	// GIVEN: A fixed salaried snapshot with history across several periods
	// WHEN: Evaluating at two different dates inside the same pay period
	// THEN: The balance is identical - within a window, only the window
	//       matters, never the day

	entries := []payroll.WorkEntry{
		entry("e1", 2025, time.January, 10, 0, 0),
		entry("e2", 2025, time.March, 20, 0, 150),
	}
	payments := []payroll.Payment{
		payment("p1", 2025, time.February, 20, 3000),
		payment("p2", 2025, time.March, 17, 1000),
	}

	// Mar 16 and Apr 10 both fall in the [Mar 15, Apr 15) window.
	early := payroll.ComputeBalance("w-1", recurringProfile(3000), entries, payments, payroll.NewDay(2025, time.March, 16))
	late := payroll.ComputeBalance("w-1", recurringProfile(3000), entries, payments, payroll.NewDay(2025, time.April, 10))

	if !early.Period.Start.Equal(late.Period.Start) || !early.Period.End.Equal(late.Period.End) {
		t.Fatalf("evaluation dates landed in different periods: %s vs %s", early.Period, late.Period)
	}
	if !early.Due.Equal(late.Due) {
		t.Errorf("due changed within the period: %s vs %s", early.Due, late.Due)
	}
	if !early.CumulativeCarry.Equal(late.CumulativeCarry) {
		t.Errorf("carry changed within the period: %s vs %s", early.CumulativeCarry, late.CumulativeCarry)
	}
	if !early.PeriodEarnings.Equal(late.PeriodEarnings) {
		t.Errorf("period earnings changed within the period: %s vs %s", early.PeriodEarnings, late.PeriodEarnings)
	}
	if !early.TotalReceived.Equal(late.TotalReceived) {
		t.Errorf("received changed within the period: %s vs %s", early.TotalReceived, late.TotalReceived)
	}
}

// =============================================================================
// ENGINE PROPERTY TESTS
// =============================================================================

func TestComputeBalance_OrderIndependent(t *testing.T) {
	// The balance is a fold over sums; record order must not matter.
	entries := []payroll.WorkEntry{
		entry("e1", 2025, time.January, 10, 0, 100),
		entry("e2", 2025, time.February, 20, 0, 50),
		entry("e3", 2025, time.March, 16, 0, 25),
	}
	payments := []payroll.Payment{
		payment("p1", 2025, time.February, 1, 500),
		payment("p2", 2025, time.March, 17, 250),
	}
	reversedEntries := []payroll.WorkEntry{entries[2], entries[1], entries[0]}
	reversedPayments := []payroll.Payment{payments[1], payments[0]}

	asOf := payroll.NewDay(2025, time.March, 20)
	for _, profile := range []payroll.SalaryProfile{perEntryProfile(100), recurringProfile(3000)} {
		a := payroll.ComputeBalance("w-1", profile, entries, payments, asOf)
		b := payroll.ComputeBalance("w-1", profile, reversedEntries, reversedPayments, asOf)
		if !a.Due.Equal(b.Due) || !a.CumulativeCarry.Equal(b.CumulativeCarry) {
			t.Errorf("model %s: balance depends on record order: %s vs %s", profile.Model, a.Due, b.Due)
		}
	}
}

func TestComputeBalance_Deterministic(t *testing.T) {
	// Same snapshot, same date, same balance. Every time.
	entries := []payroll.WorkEntry{entry("e1", 2025, time.January, 10, 100, 30)}
	payments := []payroll.Payment{payment("p1", 2025, time.February, 1, 50)}
	asOf := payroll.NewDay(2025, time.March, 1)

	first := payroll.ComputeBalance("w-1", recurringProfile(3000), entries, payments, asOf)
	for i := 0; i < 5; i++ {
		again := payroll.ComputeBalance("w-1", recurringProfile(3000), entries, payments, asOf)
		if !again.Due.Equal(first.Due) || !again.TotalEarnings.Equal(first.TotalEarnings) {
			t.Fatalf("run %d diverged: %s vs %s", i, again.Due, first.Due)
		}
	}
}

func TestComputeBalance_DueIdentityHolds(t *testing.T) {
	// Due = TotalEarnings - TotalReceived under both models.
	entries := []payroll.WorkEntry{
		entry("e1", 2025, time.January, 10, 120, 30),
		entry("e2", 2025, time.March, 16, 80, 10),
	}
	payments := []payroll.Payment{
		payment("p1", 2025, time.February, 1, 50),
		payment("p2", 2025, time.March, 17, 75),
	}
	asOf := payroll.NewDay(2025, time.March, 20)

	for _, profile := range []payroll.SalaryProfile{perEntryProfile(100), recurringProfile(3000)} {
		b := payroll.ComputeBalance("w-1", profile, entries, payments, asOf)
		if !b.Due.Equal(b.TotalEarnings.Sub(b.TotalReceived)) {
			t.Errorf("model %s: due identity broken: due=%s earnings=%s received=%s",
				profile.Model, b.Due, b.TotalEarnings, b.TotalReceived)
		}
	}
}

func TestComputeBalance_MalformedDates_ExcludedNotFatal(t *testing.T) {
	// GIVEN: A record set containing an entry and a payment with
	//        unparseable (zero) dates
	// WHEN: Computing the balance
	// THEN: The bad records contribute nothing; good records still count

	entries := []payroll.WorkEntry{
		entry("e1", 2025, time.January, 10, 100, 50),
		{ID: "bad", WorkerID: "w-1", Earned: money(999), Expense: money(999)}, // zero Date
	}
	payments := []payroll.Payment{
		payment("p1", 2025, time.January, 20, 50),
		{ID: "bad", WorkerID: "w-1", Amount: money(999)}, // zero Date
	}

	b := payroll.ComputeBalance("w-1", perEntryProfile(100), entries, payments, payroll.NewDay(2025, time.February, 1))

	assertMoney(t, "TotalEarnings", b.TotalEarnings, 150)
	assertMoney(t, "TotalReceived", b.TotalReceived, 50)
	assertMoney(t, "Due", b.Due, 100)
}

func TestComputeBalance_DefaultProfile_ZeroRatePerEntry(t *testing.T) {
	// A worker with no profile earns only expense pass-through.
	entries := []payroll.WorkEntry{entry("e1", 2025, time.January, 10, 0, 75)}

	b := payroll.ComputeBalance("w-1", payroll.DefaultProfile("w-1"), entries, nil, payroll.NewDay(2025, time.February, 1))

	assertMoney(t, "Due", b.Due, 75)
}
