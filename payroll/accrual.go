/*
accrual.go - Earned-amount computation per compensation model

PURPOSE:
  Converts a worker's entries and payments into the period-bounded sums
  the balance engine folds together. Two incompatible accrual models
  live here:

  PER-ENTRY (piece-rate):
    Each entry self-reports its earned amount. Total earnings for any
    range = sum of earned + sum of expenses over entries in range.
    Expenses are reimbursements paid out with the same payout, so they
    always ADD to what is owed, never net against it.

  RECURRING (salaried):
    Earnings are NOT per-entry. The worker earns the recurring amount
    once per pay period, plus expense pass-through for entries dated in
    that period. The recurring amount is earned in full the moment a
    period opens - it is deliberately not pro-rated by elapsed days.

MALFORMED DATES:
  Records whose stored date could not be parsed carry a zero Day and are
  excluded from every sum. A bad record never poisons the whole balance.

SEE ALSO:
  - balance.go: Folds these sums into the final owed figure
*/
package payroll

// =============================================================================
// PER-ENTRY ACCRUAL
// =============================================================================

// EntryEarnings returns the piece-rate total: earned plus expense over
// every dated entry. This is the whole accrual story for per-entry workers.
func EntryEarnings(entries []WorkEntry) Money {
	total := ZeroMoney()
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		total = total.Add(e.Earned).Add(e.Expense)
	}
	return total
}

// =============================================================================
// EXPENSE SUMS (pass-through under either model)
// =============================================================================

// ExpenseTotal sums expenses over all dated entries.
func ExpenseTotal(entries []WorkEntry) Money {
	total := ZeroMoney()
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		total = total.Add(e.Expense)
	}
	return total
}

// ExpensesBefore sums expenses for entries dated strictly before cutoff.
func ExpensesBefore(entries []WorkEntry, cutoff Day) Money {
	total := ZeroMoney()
	for _, e := range entries {
		if e.Date.IsZero() || !e.Date.Before(cutoff) {
			continue
		}
		total = total.Add(e.Expense)
	}
	return total
}

// ExpensesWithin sums expenses for entries dated in [p.Start, p.End).
func ExpensesWithin(entries []WorkEntry, p PayPeriod) Money {
	total := ZeroMoney()
	for _, e := range entries {
		if e.Date.IsZero() || !p.Contains(e.Date) {
			continue
		}
		total = total.Add(e.Expense)
	}
	return total
}

// =============================================================================
// PAYMENT SUMS
// =============================================================================

// PaymentTotal sums all dated payments.
func PaymentTotal(payments []Payment) Money {
	total := ZeroMoney()
	for _, p := range payments {
		if p.Date.IsZero() {
			continue
		}
		total = total.Add(p.Amount)
	}
	return total
}

// PaymentsBefore sums payments dated strictly before cutoff.
func PaymentsBefore(payments []Payment, cutoff Day) Money {
	total := ZeroMoney()
	for _, p := range payments {
		if p.Date.IsZero() || !p.Date.Before(cutoff) {
			continue
		}
		total = total.Add(p.Amount)
	}
	return total
}

// PaymentsWithin sums payments dated in [period.Start, period.End).
func PaymentsWithin(payments []Payment, period PayPeriod) Money {
	total := ZeroMoney()
	for _, p := range payments {
		if p.Date.IsZero() || !period.Contains(p.Date) {
			continue
		}
		total = total.Add(p.Amount)
	}
	return total
}

// =============================================================================
// FIRST ACTIVITY
// =============================================================================

// EarliestEntryDay returns the date of the worker's earliest dated entry.
// ok is false when the worker has no dated entries at all.
func EarliestEntryDay(entries []WorkEntry) (earliest Day, ok bool) {
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		if !ok || e.Date.Before(earliest) {
			earliest = e.Date
			ok = true
		}
	}
	return earliest, ok
}
