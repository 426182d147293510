/*
period.go - The 15th-to-15th pay period window

PURPOSE:
  Maps any calendar date to its enclosing accounting window and walks
  forward across windows. Recurring salaries accrue once per window, so
  every period question ("which window is this payment in?", "how many
  windows have elapsed?") goes through this file.

KEY INSIGHT:
  Periods are half-open [Start, End): a payment dated exactly on End
  belongs to the NEXT period. Start is always the 15th; End is the 15th
  of the following calendar month, which absorbs variable month lengths
  (Feb 15 - Mar 15 is a valid period even though it spans 28 days).

SEE ALSO:
  - balance.go: Walks successive periods to carry balances forward
  - accrual.go: Sums expenses and payments within a period
*/
package payroll

import "fmt"

// =============================================================================
// PAY PERIOD - Half-open [Start, End) accounting window
// =============================================================================

// boundaryDay is the day of month every period starts and ends on.
const boundaryDay = 15

// PayPeriod is one 15th-to-15th accounting window. Derived, never persisted.
type PayPeriod struct {
	Start Day // inclusive
	End   Day // exclusive
}

// PeriodContaining returns the window enclosing the given date:
// on or after the 15th the window opens that month, otherwise it opened
// on the previous month's 15th.
func PeriodContaining(d Day) PayPeriod {
	start := NewDay(d.Year(), d.Month(), boundaryDay)
	if d.DayOfMonth() < boundaryDay {
		start = start.AddMonths(-1)
	}
	return PayPeriod{Start: start, End: start.AddMonths(1)}
}

// FirstPeriodAtOrAfter rounds a start date up to the next 15th boundary.
// A date on or before the 15th uses that month's 15th; a later date rolls
// to the following month. Used to find a worker's first accrual period
// from their earliest work entry (an entry dated exactly on the 15th
// starts its period that same day).
func FirstPeriodAtOrAfter(d Day) PayPeriod {
	start := NewDay(d.Year(), d.Month(), boundaryDay)
	if d.DayOfMonth() > boundaryDay {
		start = start.AddMonths(1)
	}
	return PayPeriod{Start: start, End: start.AddMonths(1)}
}

// Next returns the following window. Start advances by exactly one
// calendar month, always landing on the 15th.
func (p PayPeriod) Next() PayPeriod {
	return PayPeriod{Start: p.End, End: p.End.AddMonths(1)}
}

// Contains reports whether the date falls in [Start, End).
func (p PayPeriod) Contains(d Day) bool {
	return d.AfterOrEqual(p.Start) && d.Before(p.End)
}

func (p PayPeriod) String() string {
	return fmt.Sprintf("[%s, %s)", p.Start, p.End)
}

// ElapsedPeriods counts how many whole periods lie between first and the
// window containing asOf, i.e. how many times Next() must be applied to
// first before its start reaches the current window's start.
func ElapsedPeriods(first PayPeriod, asOf Day) int {
	current := PeriodContaining(asOf)
	count := 0
	for p := first; p.Start.Before(current.Start); p = p.Next() {
		count++
	}
	return count
}
