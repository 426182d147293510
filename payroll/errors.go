/*
errors.go - Centralized error types for the payroll engine

PURPOSE:
  All error types in one place. The engine itself never fails for
  "not found" conditions - absence of data is a zero contribution, and a
  missing salary profile is a defaulted per-entry profile. The errors
  here belong to the boundaries around the engine: record validation and
  the persistence collaborator.

USAGE:
  if errors.Is(err, payroll.ErrNegativeAmount) { ... reject with 400 ... }

SEE ALSO:
  - snapshot.go: Propagates store errors instead of fabricating balances
  - api: Maps these onto HTTP status codes
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrWorkerNotFound is returned when a referenced worker doesn't exist.
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrEntryNotFound is returned when a referenced work entry doesn't exist.
	ErrEntryNotFound = errors.New("work entry not found")

	// ErrPaymentNotFound is returned when a referenced payment doesn't exist.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrMalformedDate is returned when a record date cannot be parsed at
	// the boundary. Inside the engine a malformed date is never fatal:
	// the record is simply excluded from every sum.
	ErrMalformedDate = errors.New("malformed date")

	// ErrNegativeAmount is returned when an entry or payment carries a
	// negative amount. Rejected at the boundary; the engine assumes
	// non-negative inputs.
	ErrNegativeAmount = errors.New("negative amount")

	// ErrNonPositivePayment is returned for payments of zero or less.
	ErrNonPositivePayment = errors.New("payment amount must be positive")

	// ErrUnknownModel is returned when a profile update names a
	// compensation model the engine doesn't know.
	ErrUnknownModel = errors.New("unknown compensation model")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// NegativeAmountError reports which field failed the non-negative check.
type NegativeAmountError struct {
	Field string
	Value Money
}

func (e *NegativeAmountError) Error() string {
	return fmt.Sprintf("negative amount: %s = %s", e.Field, e.Value)
}

func (e *NegativeAmountError) Unwrap() error { return ErrNegativeAmount }

// MalformedDateError reports the raw value that failed to parse.
type MalformedDateError struct {
	Field string
	Raw   string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date: %s = %q", e.Field, e.Raw)
}

func (e *MalformedDateError) Unwrap() error { return ErrMalformedDate }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound reports whether the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrWorkerNotFound) ||
		errors.Is(err, ErrEntryNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}

// IsClientError reports whether the error is due to invalid input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMalformedDate) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrNonPositivePayment) ||
		errors.Is(err, ErrUnknownModel)
}
