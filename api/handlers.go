/*
handlers.go - HTTP API handlers for the payroll balance system

PURPOSE:
  Exposes the payroll engine via REST API. Handles HTTP request/response,
  JSON serialization, input validation, and delegates to domain logic.

ENDPOINTS:
  Workers:
    GET    /api/workers                  List workers with balances
    POST   /api/workers                  Create worker
    GET    /api/workers/{id}             Worker drill-down (records + balance)
    GET    /api/workers/{id}/balance     Balance only (?as_of=YYYY-MM-DD)
    GET    /api/workers/{id}/entries     Worker's work entries
    GET    /api/workers/{id}/payments    Worker's payments
    GET    /api/workers/{id}/profile     Salary profile (defaulted if absent)
    PUT    /api/workers/{id}/profile     Upsert salary profile

  Records:
    GET    /api/entries                  List entries (?worker_id&from&to&month)
    POST   /api/entries                  Log a work entry
    PUT    /api/entries/{id}             Update an entry
    DELETE /api/entries/{id}             Delete an entry
    GET    /api/payments                 List payments (?worker_id&from&to)
    POST   /api/payments                 Record a payment
    DELETE /api/payments/{id}            Delete a payment

  Reports:
    GET    /api/reports/summary          Organization-wide totals
    GET    /api/reports/monthly          Calendar-month breakdown
    GET    /api/reports/top-workers      Top earners (?limit=N)

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input (dates, amounts)
  3. Call domain logic (snapshot load, balance, ledger)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed dates, negative amounts, unknown models
  - 404: Record not found
  - 500: Store failures

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Mahesh3757/WorkForce-Hub/payroll"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store payroll.Store
}

// NewHandler creates a new handler with the given store.
func NewHandler(store payroll.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// WORKER HANDLERS
// =============================================================================

// ListWorkers returns all workers with their computed balances.
func (h *Handler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	workers, err := h.Store.ListWorkers(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list workers", err)
		return
	}

	ids := make([]payroll.WorkerID, len(workers))
	for i, wk := range workers {
		ids[i] = wk.ID
	}

	snapshots, err := payroll.LoadSnapshots(ctx, h.Store, ids)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load worker records", err)
		return
	}

	asOf := payroll.Today()
	dtos := make([]WorkerDTO, len(workers))
	for i, wk := range workers {
		dtos[i] = toWorkerDTO(wk, snapshots[i], asOf)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// CreateWorker creates a new worker.
func (h *Handler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required", nil)
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	worker := payroll.Worker{
		ID:        payroll.WorkerID(id),
		Name:      req.Name,
		Phone:     req.Phone,
		CreatedAt: payroll.Today(),
	}

	if err := h.Store.SaveWorker(r.Context(), worker); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create worker", err)
		return
	}

	writeJSON(w, http.StatusCreated, WorkerDTO{
		ID:          string(worker.ID),
		Name:        worker.Name,
		Phone:       worker.Phone,
		SalaryModel: string(payroll.ModelPerEntry),
	})
}

// GetWorker returns one worker with their full record history and balance.
func (h *Handler) GetWorker(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := payroll.WorkerID(chi.URLParam(r, "id"))

	worker, err := h.Store.GetWorker(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get worker", err)
		return
	}
	if worker == nil {
		writeError(w, http.StatusNotFound, "Worker not found", payroll.ErrWorkerNotFound)
		return
	}

	snapshot, err := payroll.LoadSnapshot(ctx, h.Store, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load worker records", err)
		return
	}

	asOf := payroll.Today()
	writeJSON(w, http.StatusOK, WorkerDetailDTO{
		Worker:   toWorkerDTO(*worker, snapshot, asOf),
		Balance:  toBalanceDTO(snapshot.Balance(asOf)),
		Entries:  toEntryDTOs(snapshot.Entries),
		Payments: toPaymentDTOs(snapshot.Payments),
	})
}

// GetBalance returns one worker's balance, optionally as of a given day.
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := payroll.WorkerID(chi.URLParam(r, "id"))

	asOf := payroll.Today()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		d, err := payroll.ParseDay(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid as_of date (use YYYY-MM-DD)", err)
			return
		}
		asOf = d
	}

	// A balance for a worker that doesn't exist is a 404, not a zero-due
	// default. Zero balances belong to real workers with no records.
	worker, err := h.Store.GetWorker(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get worker", err)
		return
	}
	if worker == nil {
		writeError(w, http.StatusNotFound, "Worker not found", payroll.ErrWorkerNotFound)
		return
	}

	snapshot, err := payroll.LoadSnapshot(ctx, h.Store, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load worker records", err)
		return
	}

	writeJSON(w, http.StatusOK, toBalanceDTO(snapshot.Balance(asOf)))
}

// ListWorkerEntries returns one worker's work entries.
func (h *Handler) ListWorkerEntries(w http.ResponseWriter, r *http.Request) {
	f, err := entryFilterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date filter (use YYYY-MM-DD)", err)
		return
	}
	f.WorkerID = payroll.WorkerID(chi.URLParam(r, "id"))

	entries, err := h.Store.ListEntries(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list entries", err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryDTOs(entries))
}

// ListWorkerPayments returns one worker's payments.
func (h *Handler) ListWorkerPayments(w http.ResponseWriter, r *http.Request) {
	f, err := paymentFilterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date filter (use YYYY-MM-DD)", err)
		return
	}
	f.WorkerID = payroll.WorkerID(chi.URLParam(r, "id"))

	payments, err := h.Store.ListPayments(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list payments", err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentDTOs(payments))
}

// =============================================================================
// PROFILE HANDLERS
// =============================================================================

// GetProfile returns a worker's salary profile, defaulted when absent.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := payroll.WorkerID(chi.URLParam(r, "id"))

	profile, err := h.Store.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get profile", err)
		return
	}
	if profile == nil {
		p := payroll.DefaultProfile(id)
		profile = &p
	}

	writeJSON(w, http.StatusOK, toProfileDTO(*profile))
}

// PutProfile upserts a worker's salary profile.
func (h *Handler) PutProfile(w http.ResponseWriter, r *http.Request) {
	id := payroll.WorkerID(chi.URLParam(r, "id"))

	var req PutProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	model := payroll.CompensationModel(req.Model)
	if model != payroll.ModelPerEntry && model != payroll.ModelRecurring {
		writeError(w, http.StatusBadRequest, "Unknown compensation model", payroll.ErrUnknownModel)
		return
	}
	if req.PerEntryRate < 0 {
		writeError(w, http.StatusBadRequest, "Rate must not be negative",
			&payroll.NegativeAmountError{Field: "per_entry_rate", Value: payroll.NewMoney(req.PerEntryRate)})
		return
	}
	if req.RecurringAmount < 0 {
		writeError(w, http.StatusBadRequest, "Amount must not be negative",
			&payroll.NegativeAmountError{Field: "recurring_amount", Value: payroll.NewMoney(req.RecurringAmount)})
		return
	}

	profile := payroll.SalaryProfile{
		WorkerID:        id,
		Model:           model,
		PerEntryRate:    payroll.NewMoney(req.PerEntryRate),
		RecurringAmount: payroll.NewMoney(req.RecurringAmount),
	}

	if err := h.Store.SaveProfile(r.Context(), profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save profile", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// =============================================================================
// WORK ENTRY HANDLERS
// =============================================================================

// ListEntries returns work entries matching the query filters.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	f, err := entryFilterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date filter (use YYYY-MM-DD)", err)
		return
	}
	f.WorkerID = payroll.WorkerID(r.URL.Query().Get("worker_id"))

	entries, err := h.Store.ListEntries(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list entries", err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryDTOs(entries))
}

// CreateEntry logs a work entry. When the request omits the earned amount,
// the worker's profile rate is stamped on, fixing it at creation time.
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.WorkerID == "" {
		writeError(w, http.StatusBadRequest, "worker_id is required", nil)
		return
	}

	date, err := payroll.ParseDay(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)",
			&payroll.MalformedDateError{Field: "date", Raw: req.Date})
		return
	}
	if req.Expense < 0 {
		writeError(w, http.StatusBadRequest, "Expense must not be negative",
			&payroll.NegativeAmountError{Field: "expense", Value: payroll.NewMoney(req.Expense)})
		return
	}
	if req.Earned != nil && *req.Earned < 0 {
		writeError(w, http.StatusBadRequest, "Earned must not be negative",
			&payroll.NegativeAmountError{Field: "earned", Value: payroll.NewMoney(*req.Earned)})
		return
	}

	var earned payroll.Money
	if req.Earned != nil {
		earned = payroll.NewMoney(*req.Earned)
	} else {
		profile, err := h.Store.GetProfile(ctx, payroll.WorkerID(req.WorkerID))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to get profile", err)
			return
		}
		if profile == nil {
			p := payroll.DefaultProfile(payroll.WorkerID(req.WorkerID))
			profile = &p
		}
		earned = profile.EntryEarning()
	}

	entry := payroll.WorkEntry{
		ID:          uuid.NewString(),
		WorkerID:    payroll.WorkerID(req.WorkerID),
		Date:        date,
		Earned:      earned,
		Expense:     payroll.NewMoney(req.Expense),
		Details:     req.Details,
		ExpenseNote: req.ExpenseNote,
	}

	if err := h.Store.SaveEntry(ctx, entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save entry", err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryDTO(entry))
}

// UpdateEntry mutates an existing work entry. Absent fields keep their
// stored value.
func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	entry, err := h.Store.GetEntry(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get entry", err)
		return
	}
	if entry == nil {
		writeError(w, http.StatusNotFound, "Work entry not found", nil)
		return
	}

	var req UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Date != nil {
		date, err := payroll.ParseDay(*req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)",
				&payroll.MalformedDateError{Field: "date", Raw: *req.Date})
			return
		}
		entry.Date = date
	}
	if req.Earned != nil {
		if *req.Earned < 0 {
			writeError(w, http.StatusBadRequest, "Earned must not be negative",
				&payroll.NegativeAmountError{Field: "earned", Value: payroll.NewMoney(*req.Earned)})
			return
		}
		entry.Earned = payroll.NewMoney(*req.Earned)
	}
	if req.Expense != nil {
		if *req.Expense < 0 {
			writeError(w, http.StatusBadRequest, "Expense must not be negative",
				&payroll.NegativeAmountError{Field: "expense", Value: payroll.NewMoney(*req.Expense)})
			return
		}
		entry.Expense = payroll.NewMoney(*req.Expense)
	}
	if req.Details != nil {
		entry.Details = *req.Details
	}
	if req.ExpenseNote != nil {
		entry.ExpenseNote = *req.ExpenseNote
	}
	if req.Paid != nil {
		entry.Paid = *req.Paid
	}

	if err := h.Store.SaveEntry(ctx, *entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save entry", err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryDTO(*entry))
}

// DeleteEntry removes a work entry.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.DeleteEntry(r.Context(), id); err != nil {
		if payroll.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Work entry not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete entry", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// PAYMENT HANDLERS
// =============================================================================

// ListPayments returns payments matching the query filters.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	f, err := paymentFilterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date filter (use YYYY-MM-DD)", err)
		return
	}
	f.WorkerID = payroll.WorkerID(r.URL.Query().Get("worker_id"))

	payments, err := h.Store.ListPayments(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list payments", err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentDTOs(payments))
}

// CreatePayment records a transfer to a worker. The amount must be
// strictly positive; payments are immutable once recorded.
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.WorkerID == "" {
		writeError(w, http.StatusBadRequest, "worker_id is required", nil)
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "Amount must be positive", payroll.ErrNonPositivePayment)
		return
	}

	date, err := payroll.ParseDay(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)",
			&payroll.MalformedDateError{Field: "date", Raw: req.Date})
		return
	}

	payment := payroll.Payment{
		ID:       uuid.NewString(),
		WorkerID: payroll.WorkerID(req.WorkerID),
		Date:     date,
		Amount:   payroll.NewMoney(req.Amount),
		Method:   req.Method,
		Note:     req.Note,
	}

	if err := h.Store.SavePayment(r.Context(), payment); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save payment", err)
		return
	}

	writeJSON(w, http.StatusCreated, toPaymentDTO(payment))
}

// DeletePayment removes a payment.
func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.DeletePayment(r.Context(), id); err != nil {
		if payroll.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Payment not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete payment", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// REPORT HANDLERS
// =============================================================================

// GetSummary returns organization-wide totals across all workers.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	balances, err := h.allBalances(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute balances", err)
		return
	}

	summary := payroll.ComputeLedgerSummary(balances)
	writeJSON(w, http.StatusOK, SummaryDTO{
		WorkerCount:   len(balances),
		TotalExpenses: summary.TotalExpenses.Float64(),
		TotalEarnings: summary.TotalEarnings.Float64(),
		TotalPayments: summary.TotalPayments.Float64(),
		NetBalance:    summary.NetBalance.Float64(),
	})
}

// GetMonthlyBreakdown returns per-calendar-month totals across all records.
func (h *Handler) GetMonthlyBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.Store.ListEntries(ctx, payroll.EntryFilter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list entries", err)
		return
	}
	payments, err := h.Store.ListPayments(ctx, payroll.PaymentFilter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list payments", err)
		return
	}

	breakdown := payroll.MonthlyBreakdown(entries, payments)
	months := payroll.SortedMonths(breakdown)

	dtos := make([]MonthlyDTO, 0, len(months))
	for _, month := range months {
		totals := breakdown[month]
		dtos = append(dtos, MonthlyDTO{
			Month:    month,
			Expenses: totals.Expenses.Float64(),
			Earnings: totals.Earnings.Float64(),
			Payments: totals.Payments.Float64(),
		})
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetTopWorkers returns the top earners across the organization.
// GET /api/reports/top-workers?limit=N (default 5)
func (h *Handler) GetTopWorkers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit", err)
			return
		}
		limit = n
	}

	workers, err := h.Store.ListWorkers(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list workers", err)
		return
	}

	names := make(map[payroll.WorkerID]string, len(workers))
	ids := make([]payroll.WorkerID, len(workers))
	for i, wk := range workers {
		ids[i] = wk.ID
		names[wk.ID] = wk.Name
	}

	balances, err := h.balancesFor(ctx, ids)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute balances", err)
		return
	}

	type TopWorkerDTO struct {
		WorkerID      string  `json:"worker_id"`
		Name          string  `json:"name"`
		TotalEarnings float64 `json:"total_earnings"`
		TotalExpenses float64 `json:"total_expenses"`
		Due           float64 `json:"due"`
	}

	top := payroll.TopEarners(balances, limit)
	dtos := make([]TopWorkerDTO, len(top))
	for i, b := range top {
		dtos[i] = TopWorkerDTO{
			WorkerID:      string(b.WorkerID),
			Name:          names[b.WorkerID],
			TotalEarnings: b.TotalEarnings.Float64(),
			TotalExpenses: b.TotalExpenses.Float64(),
			Due:           b.Due.Float64(),
		}
	}

	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) allBalances(ctx context.Context) ([]payroll.Balance, error) {
	workers, err := h.Store.ListWorkers(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]payroll.WorkerID, len(workers))
	for i, wk := range workers {
		ids[i] = wk.ID
	}
	return h.balancesFor(ctx, ids)
}

func (h *Handler) balancesFor(ctx context.Context, ids []payroll.WorkerID) ([]payroll.Balance, error) {
	snapshots, err := payroll.LoadSnapshots(ctx, h.Store, ids)
	if err != nil {
		return nil, err
	}
	asOf := payroll.Today()
	balances := make([]payroll.Balance, len(snapshots))
	for i, s := range snapshots {
		balances[i] = s.Balance(asOf)
	}
	return balances, nil
}

func toWorkerDTO(wk payroll.Worker, s payroll.Snapshot, asOf payroll.Day) WorkerDTO {
	b := s.Balance(asOf)
	return WorkerDTO{
		ID:              string(wk.ID),
		Name:            wk.Name,
		Phone:           wk.Phone,
		SalaryModel:     string(s.Profile.Model),
		PerEntryRate:    s.Profile.PerEntryRate.Float64(),
		RecurringAmount: s.Profile.RecurringAmount.Float64(),
		RecordCount:     len(s.Entries),
		TotalExpenses:   b.TotalExpenses.Float64(),
		TotalEarnings:   b.TotalEarnings.Float64(),
		TotalPayments:   b.TotalReceived.Float64(),
		BalanceDue:      b.Due.Float64(),
	}
}

func entryFilterFromQuery(r *http.Request) (payroll.EntryFilter, error) {
	var f payroll.EntryFilter
	q := r.URL.Query()

	if raw := q.Get("from"); raw != "" {
		d, err := payroll.ParseDay(raw)
		if err != nil {
			return f, &payroll.MalformedDateError{Field: "from", Raw: raw}
		}
		f.From = d
	}
	if raw := q.Get("to"); raw != "" {
		d, err := payroll.ParseDay(raw)
		if err != nil {
			return f, &payroll.MalformedDateError{Field: "to", Raw: raw}
		}
		f.To = d
	}
	f.Month = q.Get("month")
	return f, nil
}

func paymentFilterFromQuery(r *http.Request) (payroll.PaymentFilter, error) {
	var f payroll.PaymentFilter
	q := r.URL.Query()

	if raw := q.Get("from"); raw != "" {
		d, err := payroll.ParseDay(raw)
		if err != nil {
			return f, &payroll.MalformedDateError{Field: "from", Raw: raw}
		}
		f.From = d
	}
	if raw := q.Get("to"); raw != "" {
		d, err := payroll.ParseDay(raw)
		if err != nil {
			return f, &payroll.MalformedDateError{Field: "to", Raw: raw}
		}
		f.To = d
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
