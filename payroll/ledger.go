/*
ledger.go - Read-only reporting aggregations

PURPOSE:
  Organization-wide views over the same snapshot the balance engine
  consumes: totals across all workers, top earners, and per-calendar-month
  breakdowns. These are pure folds over Balances and raw records; they
  introduce no accrual rules of their own.

NOTE ON MONTH GROUPING:
  Monthly breakdowns group by the record's OWN calendar month
  ("2006-01"), independent of the 15th-to-15th pay-period logic. The two
  groupings answer different questions and must not be conflated.
*/
package payroll

import "sort"

// =============================================================================
// ORGANIZATION SUMMARY
// =============================================================================

// LedgerSummary is the organization-wide position across a set of workers.
type LedgerSummary struct {
	TotalExpenses Money
	TotalEarnings Money
	TotalPayments Money
	NetBalance    Money // what the organization owes across all workers
}

// ComputeLedgerSummary folds per-worker balances into organization totals.
// NetBalance equals TotalEarnings - TotalPayments by construction, since
// each Balance already satisfies Due = TotalEarnings - TotalReceived.
func ComputeLedgerSummary(balances []Balance) LedgerSummary {
	s := LedgerSummary{
		TotalExpenses: ZeroMoney(),
		TotalEarnings: ZeroMoney(),
		TotalPayments: ZeroMoney(),
		NetBalance:    ZeroMoney(),
	}
	for _, b := range balances {
		s.TotalExpenses = s.TotalExpenses.Add(b.TotalExpenses)
		s.TotalEarnings = s.TotalEarnings.Add(b.TotalEarnings)
		s.TotalPayments = s.TotalPayments.Add(b.TotalReceived)
		s.NetBalance = s.NetBalance.Add(b.Due)
	}
	return s
}

// TopEarners returns up to n balances ordered by descending total
// earnings. Ties keep a stable order; the input slice is not modified.
func TopEarners(balances []Balance, n int) []Balance {
	ranked := make([]Balance, len(balances))
	copy(ranked, balances)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalEarnings.GreaterThan(ranked[j].TotalEarnings)
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// =============================================================================
// MONTHLY BREAKDOWN
// =============================================================================

// MonthlyTotals is one calendar month's activity.
type MonthlyTotals struct {
	Expenses Money
	Earnings Money
	Payments Money
}

// MonthlyBreakdown buckets entries and payments by their own calendar
// month. Records with unparseable dates are skipped, same as the engine.
func MonthlyBreakdown(entries []WorkEntry, payments []Payment) map[string]MonthlyTotals {
	months := make(map[string]MonthlyTotals)

	bucket := func(key string) MonthlyTotals {
		if m, ok := months[key]; ok {
			return m
		}
		return MonthlyTotals{Expenses: ZeroMoney(), Earnings: ZeroMoney(), Payments: ZeroMoney()}
	}

	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		m := bucket(e.Date.MonthKey())
		m.Expenses = m.Expenses.Add(e.Expense)
		m.Earnings = m.Earnings.Add(e.Earned)
		months[e.Date.MonthKey()] = m
	}
	for _, p := range payments {
		if p.Date.IsZero() {
			continue
		}
		m := bucket(p.Date.MonthKey())
		m.Payments = m.Payments.Add(p.Amount)
		months[p.Date.MonthKey()] = m
	}
	return months
}

// SortedMonths returns the breakdown's keys in chronological order.
func SortedMonths(months map[string]MonthlyTotals) []string {
	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
