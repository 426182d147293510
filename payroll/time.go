package payroll

import "time"

// =============================================================================
// DAY - Calendar-day time point (dates are compared as days, never clock time)
// =============================================================================

// Day is a calendar day at UTC midnight. All record dates are days; payments
// recorded with a timestamp are normalized before any comparison.
type Day struct {
	Time time.Time
}

const dayLayout = "2006-01-02"

// Constructors
func NewDay(year int, month time.Month, day int) Day {
	return Day{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf normalizes an arbitrary timestamp to its calendar day.
func DayOf(t time.Time) Day {
	return NewDay(t.Year(), t.Month(), t.Day())
}

func Today() Day {
	return DayOf(time.Now().UTC())
}

// ParseDay parses "YYYY-MM-DD". The zero Day signals a malformed date.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, err
	}
	return DayOf(t), nil
}

// Comparison
func (d Day) Before(other Day) bool        { return d.normalize().Before(other.normalize()) }
func (d Day) After(other Day) bool         { return d.normalize().After(other.normalize()) }
func (d Day) Equal(other Day) bool         { return d.normalize().Equal(other.normalize()) }
func (d Day) BeforeOrEqual(other Day) bool { return d.Before(other) || d.Equal(other) }
func (d Day) AfterOrEqual(other Day) bool  { return d.After(other) || d.Equal(other) }

func (d Day) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d Day) AddDays(n int) Day   { return Day{Time: d.normalize().AddDate(0, 0, n)} }
func (d Day) AddMonths(n int) Day { return Day{Time: d.normalize().AddDate(0, n, 0)} }

// Properties
func (d Day) Year() int         { return d.Time.Year() }
func (d Day) Month() time.Month { return d.Time.Month() }
func (d Day) DayOfMonth() int   { return d.Time.Day() }
func (d Day) IsZero() bool      { return d.Time.IsZero() }

func (d Day) String() string {
	return d.Time.Format(dayLayout)
}

// MonthKey returns the calendar-month bucket used by reporting ("2006-01").
func (d Day) MonthKey() string {
	return d.Time.Format("2006-01")
}
