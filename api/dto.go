/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's domain model from the external API contract. Amounts cross
  the wire as JSON numbers; precision lives in the engine's decimal Money,
  formatting and currency symbols live in the client.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/Mahesh3757/WorkForce-Hub/payroll"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// WorkerDTO is a worker with their computed position, as the admin
// dashboard consumes it.
type WorkerDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone,omitempty"`
	SalaryModel     string  `json:"salary_model"`
	PerEntryRate    float64 `json:"per_entry_rate"`
	RecurringAmount float64 `json:"recurring_amount"`
	RecordCount     int     `json:"record_count"`
	TotalExpenses   float64 `json:"total_expenses"`
	TotalEarnings   float64 `json:"total_earnings"`
	TotalPayments   float64 `json:"total_payments"`
	BalanceDue      float64 `json:"balance_due"`
}

// CreateWorkerRequest creates a worker. ID is optional; one is generated
// when absent.
type CreateWorkerRequest struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// WorkerDetailDTO is the full drill-down view for one worker.
type WorkerDetailDTO struct {
	Worker   WorkerDTO    `json:"worker"`
	Balance  BalanceDTO   `json:"balance"`
	Entries  []EntryDTO   `json:"entries"`
	Payments []PaymentDTO `json:"payments"`
}

// EntryDTO represents a work entry in API responses.
type EntryDTO struct {
	ID          string  `json:"id"`
	WorkerID    string  `json:"worker_id"`
	Date        string  `json:"date"`
	Earned      float64 `json:"earned"`
	Expense     float64 `json:"expense"`
	Details     string  `json:"details,omitempty"`
	ExpenseNote string  `json:"expense_note,omitempty"`
	Paid        bool    `json:"paid"`
}

// CreateEntryRequest logs a day of work. Earned is optional: when nil
// the worker's profile rate is stamped on (0 for recurring workers),
// fixing the amount at creation time.
type CreateEntryRequest struct {
	WorkerID    string   `json:"worker_id"`
	Date        string   `json:"date"`
	Earned      *float64 `json:"earned,omitempty"`
	Expense     float64  `json:"expense"`
	Details     string   `json:"details,omitempty"`
	ExpenseNote string   `json:"expense_note,omitempty"`
}

// UpdateEntryRequest mutates an existing entry. Nil fields keep their
// stored value; Earned in particular stays fixed unless explicitly set.
type UpdateEntryRequest struct {
	Date        *string  `json:"date,omitempty"`
	Earned      *float64 `json:"earned,omitempty"`
	Expense     *float64 `json:"expense,omitempty"`
	Details     *string  `json:"details,omitempty"`
	ExpenseNote *string  `json:"expense_note,omitempty"`
	Paid        *bool    `json:"paid,omitempty"`
}

// PaymentDTO represents a recorded payment.
type PaymentDTO struct {
	ID       string  `json:"id"`
	WorkerID string  `json:"worker_id"`
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Method   string  `json:"method,omitempty"`
	Note     string  `json:"note,omitempty"`
}

// CreatePaymentRequest records a transfer to a worker. Amount must be
// strictly positive.
type CreatePaymentRequest struct {
	WorkerID string  `json:"worker_id"`
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Method   string  `json:"method,omitempty"`
	Note     string  `json:"note,omitempty"`
}

// ProfileDTO represents a salary profile.
type ProfileDTO struct {
	WorkerID        string  `json:"worker_id"`
	Model           string  `json:"model"`
	PerEntryRate    float64 `json:"per_entry_rate"`
	RecurringAmount float64 `json:"recurring_amount"`
}

// PutProfileRequest upserts a worker's salary profile.
type PutProfileRequest struct {
	Model           string  `json:"model"`
	PerEntryRate    float64 `json:"per_entry_rate"`
	RecurringAmount float64 `json:"recurring_amount"`
}

// BalanceDTO is one worker's reconciled position.
type BalanceDTO struct {
	WorkerID        string  `json:"worker_id"`
	PeriodStart     string  `json:"period_start"`
	PeriodEnd       string  `json:"period_end"`
	PeriodEarnings  float64 `json:"period_earnings"`
	CumulativeCarry float64 `json:"cumulative_carry"`
	TotalExpenses   float64 `json:"total_expenses"`
	TotalEarnings   float64 `json:"total_earnings"`
	TotalReceived   float64 `json:"total_received"`
	Due             float64 `json:"due"`
	Status          string  `json:"status"` // "due", "advance", "settled"
}

// SummaryDTO is the organization-wide report.
type SummaryDTO struct {
	WorkerCount   int     `json:"worker_count"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalEarnings float64 `json:"total_earnings"`
	TotalPayments float64 `json:"total_payments"`
	NetBalance    float64 `json:"net_balance"`
}

// MonthlyDTO is one calendar month's totals.
type MonthlyDTO struct {
	Month    string  `json:"month"` // "2006-01"
	Expenses float64 `json:"expenses"`
	Earnings float64 `json:"earnings"`
	Payments float64 `json:"payments"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toBalanceDTO(b payroll.Balance) BalanceDTO {
	status := "settled"
	if b.Owed() {
		status = "due"
	} else if b.Advanced() {
		status = "advance"
	}
	return BalanceDTO{
		WorkerID:        string(b.WorkerID),
		PeriodStart:     b.Period.Start.String(),
		PeriodEnd:       b.Period.End.String(),
		PeriodEarnings:  b.PeriodEarnings.Float64(),
		CumulativeCarry: b.CumulativeCarry.Float64(),
		TotalExpenses:   b.TotalExpenses.Float64(),
		TotalEarnings:   b.TotalEarnings.Float64(),
		TotalReceived:   b.TotalReceived.Float64(),
		Due:             b.Due.Float64(),
		Status:          status,
	}
}

func toEntryDTO(e payroll.WorkEntry) EntryDTO {
	return EntryDTO{
		ID:          e.ID,
		WorkerID:    string(e.WorkerID),
		Date:        e.Date.String(),
		Earned:      e.Earned.Float64(),
		Expense:     e.Expense.Float64(),
		Details:     e.Details,
		ExpenseNote: e.ExpenseNote,
		Paid:        e.Paid,
	}
}

func toEntryDTOs(entries []payroll.WorkEntry) []EntryDTO {
	dtos := make([]EntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toEntryDTO(e)
	}
	return dtos
}

func toPaymentDTO(p payroll.Payment) PaymentDTO {
	return PaymentDTO{
		ID:       p.ID,
		WorkerID: string(p.WorkerID),
		Date:     p.Date.String(),
		Amount:   p.Amount.Float64(),
		Method:   p.Method,
		Note:     p.Note,
	}
}

func toPaymentDTOs(payments []payroll.Payment) []PaymentDTO {
	dtos := make([]PaymentDTO, len(payments))
	for i, p := range payments {
		dtos[i] = toPaymentDTO(p)
	}
	return dtos
}

func toProfileDTO(p payroll.SalaryProfile) ProfileDTO {
	return ProfileDTO{
		WorkerID:        string(p.WorkerID),
		Model:           string(p.Model),
		PerEntryRate:    p.PerEntryRate.Float64(),
		RecurringAmount: p.RecurringAmount.Float64(),
	}
}
