package clause

import (
	"time"

	"github.com/shopspring/decimal"
)

// Clock supplies the current time for Decision.EvaluatedAt.
// Injecting it keeps Evaluate deterministic under test; production
// callers use SystemClock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock used outside tests.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// Decision is the immutable outcome of a single evaluation. A fresh
// value is produced per call and never mutated after return.
type Decision struct {
	// PenaltyAmount is the monetary penalty in the same currency units
	// as the request's goods value, at full precision. Any currency
	// rounding is the caller's concern.
	PenaltyAmount decimal.Decimal `json:"penaltyAmount"`

	// BuyerMayTerminate is true when the delay strictly exceeds the
	// termination threshold and force majeure is not active.
	BuyerMayTerminate bool `json:"buyerMayTerminate"`

	// AppliedPercent is the accrued percentage after capping,
	// in [0, CapPercent].
	AppliedPercent decimal.Decimal `json:"appliedPercent"`

	// EvaluatedAt is the clock reading at evaluation time.
	EvaluatedAt time.Time `json:"evaluatedAt"`

	// Periods is the number of complete proration periods that
	// elapsed. Informational: used by text output and the audit log.
	Periods int64 `json:"periods"`

	// RawPercent is the accrued percentage before capping.
	// Informational.
	RawPercent decimal.Decimal `json:"rawPercent"`
}
