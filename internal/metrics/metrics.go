package metrics

import "time"

// Recorder abstracts operational metrics so the ledger does not depend on a
// concrete metrics backend.
type Recorder interface {
	// RecordOperation counts one ledger operation with its outcome
	// ("success", "failed" or "error").
	RecordOperation(operation, status string)

	// RecordDuration records how long a ledger operation took.
	RecordDuration(operation string, duration time.Duration)

	// SetOpenAccounts tracks the current number of open accounts.
	SetOpenAccounts(count float64)

	// ObserveAmount records the monetary amount moved by an operation.
	ObserveAmount(operation string, amount float64)
}

// noopRecorder discards all metrics. Used by tests and as a default when no
// backend is wired.
type noopRecorder struct{}

// NewNoop returns a Recorder that does nothing.
func NewNoop() Recorder {
	return noopRecorder{}
}

func (noopRecorder) RecordOperation(operation, status string)               {}
func (noopRecorder) RecordDuration(operation string, duration time.Duration) {}
func (noopRecorder) SetOpenAccounts(count float64)                          {}
func (noopRecorder) ObserveAmount(operation string, amount float64)         {}
