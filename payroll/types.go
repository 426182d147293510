/*
Package payroll provides the payroll balance engine.

PURPOSE:
  This package contains the pure types and algorithms that answer the one
  question the whole system exists for: "how much does the organization
  currently owe this worker?" Workers log daily work and expenses,
  administrators record payments, and the engine folds both histories
  into a single owed-balance figure.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A decimal currency amount (no floating-point drift)
  - WorkEntry: A worker-logged day of work with an optional expense
  - Payment: An admin-recorded transfer of money to a worker
  - Worker: The entity records belong to

DESIGN PRINCIPLES:
  1. Purity: Every computation is a function of a record snapshot and an
     evaluation date. No hidden accumulators, no module state.
  2. Precision: Uses decimal.Decimal to avoid floating-point errors.
  3. Explicitness: The worker is always an explicit parameter, never
     ambient session state.

SEE ALSO:
  - profile.go: Compensation models (per-entry vs. recurring)
  - period.go: The 15th-to-15th pay period window
  - balance.go: Balance calculation from a snapshot
  - ledger.go: Read-only reporting aggregations
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Decimal-backed currency amount
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

// ParseMoney parses a stored decimal string. Unparseable input yields zero;
// amounts are validated at the API boundary, not here.
func ParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{Value: decimal.Zero}
	}
	return Money{Value: d}
}

func ZeroMoney() Money { return Money{Value: decimal.Zero} }

func (m Money) Add(o Money) Money        { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money        { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) MulInt(n int) Money       { return Money{Value: m.Value.Mul(decimal.NewFromInt(int64(n)))} }
func (m Money) Neg() Money               { return Money{Value: m.Value.Neg()} }
func (m Money) IsNegative() bool         { return m.Value.IsNegative() }
func (m Money) IsPositive() bool         { return m.Value.IsPositive() }
func (m Money) IsZero() bool             { return m.Value.IsZero() }
func (m Money) Equal(o Money) bool       { return m.Value.Equal(o.Value) }
func (m Money) GreaterThan(o Money) bool { return m.Value.GreaterThan(o.Value) }
func (m Money) Float64() float64         { f, _ := m.Value.Float64(); return f }
func (m Money) String() string           { return m.Value.String() }

// =============================================================================
// IDENTIFIERS
// =============================================================================

type WorkerID string

// =============================================================================
// RECORDS - The snapshot the engine computes over
// =============================================================================

// WorkEntry is one logged day of work. Earned is fixed at creation time
// (a later rate change never retroactively alters past entries) and Expense
// is a pass-through reimbursement that always adds to what is owed.
//
// A zero Date means the stored date could not be parsed; such entries are
// excluded from every sum (see errors.go, ErrMalformedDate).
type WorkEntry struct {
	ID          string
	WorkerID    WorkerID
	Date        Day
	Earned      Money
	Expense     Money
	Details     string
	ExpenseNote string
	Paid        bool
}

// Payment is money transferred to a worker. Payments are never mutated,
// only deleted. Amount is validated positive at the boundary.
type Payment struct {
	ID       string
	WorkerID WorkerID
	Date     Day
	Amount   Money
	Method   string
	Note     string
}

// Worker is the entity all records hang off.
type Worker struct {
	ID        WorkerID
	Name      string
	Phone     string
	CreatedAt Day
}
