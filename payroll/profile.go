package payroll

// =============================================================================
// SALARY PROFILE - Per-worker compensation configuration
// =============================================================================

// CompensationModel selects how a worker's earnings accrue.
type CompensationModel string

const (
	// ModelPerEntry pays per logged work item: each entry carries its own
	// earned amount, fixed at creation time.
	ModelPerEntry CompensationModel = "per_entry"

	// ModelRecurring pays a fixed amount once per 15th-to-15th pay period,
	// regardless of how many entries were logged.
	ModelRecurring CompensationModel = "recurring"
)

// SalaryProfile is one worker's compensation configuration. Mutated only
// by admins; read-only to the engine. At most one profile per worker.
type SalaryProfile struct {
	WorkerID WorkerID
	Model    CompensationModel

	// PerEntryRate is the default earning stamped onto a new entry when
	// Model is ModelPerEntry. The entry's own Earned stays authoritative
	// afterwards, so rate changes never rewrite history.
	PerEntryRate Money

	// RecurringAmount is earned once per pay period when Model is
	// ModelRecurring.
	RecurringAmount Money
}

// DefaultProfile is the profile assumed when a worker has none:
// per-entry with a zero rate. Absence of a profile is not an error.
func DefaultProfile(workerID WorkerID) SalaryProfile {
	return SalaryProfile{
		WorkerID:        workerID,
		Model:           ModelPerEntry,
		PerEntryRate:    ZeroMoney(),
		RecurringAmount: ZeroMoney(),
	}
}

// EntryEarning returns the earning to stamp onto a newly created entry.
func (p SalaryProfile) EntryEarning() Money {
	switch p.Model {
	case ModelRecurring:
		// Recurring workers earn per period, not per entry.
		return ZeroMoney()
	default:
		return p.PerEntryRate
	}
}

// IsRecurring reports whether this profile accrues per pay period.
// Any unknown model is treated as the defaulted per-entry model.
func (p SalaryProfile) IsRecurring() bool {
	return p.Model == ModelRecurring
}
