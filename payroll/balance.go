/*
balance.go - The owed-balance calculation

PURPOSE:
  Produces a Balance for one worker as of a given date. This is the core
  of the system: everything else feeds records in or renders the result.

KEY INSIGHT:
  The two compensation models reconcile differently.

  Per-entry workers have no period logic at all:

    due = sum(earned + expense over all entries) - sum(all payments)

  Recurring workers walk pay periods from their first activity to the
  present. Prior periods collapse into a single carry-forward figure;
  only then is the current period added on top:

    carry = elapsedPeriods*recurringAmount + priorExpenses - priorPayments
    due   = carry + recurringAmount + currentExpenses - currentPayments

  The walk is NOT equivalent to multiplying periods by rate against all
  payments in one shot: payments and expenses are not uniformly
  distributed across periods, and the carry step is what keeps partial
  periods and irregular payment histories correct.

SIGN CONVENTION:
  Due > 0: the organization owes the worker.
  Due < 0: the worker has been overpaid (advance).

PURITY:
  ComputeBalance is a deterministic function of the snapshot and the
  evaluation date. Same inputs, same Balance, every time.

SEE ALSO:
  - accrual.go: The per-model sums folded together here
  - period.go: The 15th-to-15th window walk
  - ledger.go: Organization-wide aggregation over Balances
*/
package payroll

// =============================================================================
// BALANCE - Derived output, never persisted
// =============================================================================

// Balance is one worker's reconciled position as of an evaluation date.
type Balance struct {
	WorkerID WorkerID
	Period   PayPeriod // window containing the evaluation date

	// PeriodEarnings is what the current period contributes: the full
	// recurring amount plus current-period expenses for salaried workers,
	// or the all-entries total for per-entry workers (no period logic).
	PeriodEarnings Money

	// CumulativeCarry is unpaid accrual from all periods strictly before
	// the current one. Always zero for per-entry workers.
	CumulativeCarry Money

	// TotalExpenses is the all-time expense sum, reported for ledger views.
	TotalExpenses Money

	// TotalEarnings = CumulativeCarry + PeriodEarnings.
	TotalEarnings Money

	// TotalReceived is the payment sum counted against TotalEarnings:
	// all payments for per-entry workers; current-period payments for
	// recurring workers (earlier payments are already netted inside
	// CumulativeCarry).
	TotalReceived Money

	// Due = TotalEarnings - TotalReceived.
	Due Money
}

// Owed reports whether the organization owes the worker.
func (b Balance) Owed() bool { return b.Due.IsPositive() }

// Advanced reports whether the worker has been overpaid.
func (b Balance) Advanced() bool { return b.Due.IsNegative() }

// =============================================================================
// BALANCE ENGINE
// =============================================================================

// ComputeBalance reconciles one worker's snapshot into a Balance as of
// the given date. Records with unparseable dates are excluded from every
// sum; a missing profile must be passed as DefaultProfile by the caller
// (LoadSnapshot does this).
func ComputeBalance(workerID WorkerID, profile SalaryProfile, entries []WorkEntry, payments []Payment, asOf Day) Balance {
	if profile.IsRecurring() {
		return recurringBalance(workerID, profile, entries, payments, asOf)
	}
	return perEntryBalance(workerID, entries, payments, asOf)
}

// perEntryBalance is the flat running total: no periods, no carry.
func perEntryBalance(workerID WorkerID, entries []WorkEntry, payments []Payment, asOf Day) Balance {
	earnings := EntryEarnings(entries)
	received := PaymentTotal(payments)

	return Balance{
		WorkerID:        workerID,
		Period:          PeriodContaining(asOf),
		PeriodEarnings:  earnings,
		CumulativeCarry: ZeroMoney(),
		TotalExpenses:   ExpenseTotal(entries),
		TotalEarnings:   earnings,
		TotalReceived:   received,
		Due:             earnings.Sub(received),
	}
}

// recurringBalance walks periods from the worker's first activity to the
// evaluation date, carrying unpaid accrual forward into the current period.
func recurringBalance(workerID WorkerID, profile SalaryProfile, entries []WorkEntry, payments []Payment, asOf Day) Balance {
	current := PeriodContaining(asOf)

	// Periods elapsed strictly before the current one. A worker with no
	// entries has no accrual history: the carry reduces to payments made
	// before the current period (usually zero).
	elapsed := 0
	if earliest, ok := EarliestEntryDay(entries); ok {
		elapsed = ElapsedPeriods(FirstPeriodAtOrAfter(earliest), asOf)
	}

	salaryEarned := profile.RecurringAmount.MulInt(elapsed)
	priorExpenses := ExpensesBefore(entries, current.Start)
	priorPayments := PaymentsBefore(payments, current.Start)
	carry := salaryEarned.Add(priorExpenses).Sub(priorPayments)

	// The current period contributes the full recurring amount from the
	// day it opens, plus its expense pass-through.
	periodEarnings := profile.RecurringAmount.Add(ExpensesWithin(entries, current))

	totalEarnings := carry.Add(periodEarnings)
	received := PaymentsWithin(payments, current)

	return Balance{
		WorkerID:        workerID,
		Period:          current,
		PeriodEarnings:  periodEarnings,
		CumulativeCarry: carry,
		TotalExpenses:   ExpenseTotal(entries),
		TotalEarnings:   totalEarnings,
		TotalReceived:   received,
		Due:             totalEarnings.Sub(received),
	}
}
