package clause

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParametersInput is the raw shape of a clause parameter record as it
// arrives from the outside world (typically a decoded JSON document).
// It is not safe to use directly: pass it through NewParameters.
type ParametersInput struct {
	ClauseID             string          `json:"clauseId"`
	ForceMajeure         bool            `json:"forceMajeure"`
	PenaltyDuration      Period          `json:"penaltyDuration"`
	PenaltyRatePercent   decimal.Decimal `json:"penaltyRatePercent"`
	CapPercent           decimal.Decimal `json:"capPercent"`
	TerminationThreshold Period          `json:"terminationThreshold"`
	FractionalUnit       TimeUnit        `json:"fractionalUnit"`
}

// Parameters is the validated, immutable parameter set of one clause
// instance. Construct only via NewParameters and treat as read-only
// afterwards.
type Parameters struct {
	// ClauseID is an opaque identifier with no computational meaning.
	ClauseID string

	// ForceMajeureActive waives penalty and termination unconditionally
	// when true.
	ForceMajeureActive bool

	// PenaltyDuration is the proration period: one penalty increment
	// accrues per this much delay.
	PenaltyDuration Period

	// PenaltyRatePercent is the percentage of goods value charged per
	// complete proration period.
	PenaltyRatePercent decimal.Decimal

	// CapPercent bounds the total accrued percentage, in [0, 100].
	CapPercent decimal.Decimal

	// TerminationThreshold is the delay beyond which (strictly) the
	// buyer may terminate.
	TerminationThreshold Period

	// FractionalUnit is the unit used to express sub-period remainders
	// of the delay in drafted prose. It never affects what accrues.
	FractionalUnit TimeUnit
}

var oneHundred = decimal.NewFromInt(100)

// NewParameters validates a raw parameter record and returns the
// immutable Parameters. It fails with a ValidationError when any
// duration amount is non-positive, any percentage is negative, the cap
// is outside [0, 100], or a unit is unrecognized.
func NewParameters(in ParametersInput) (*Parameters, error) {
	if err := in.PenaltyDuration.validate("penaltyDuration"); err != nil {
		return nil, err
	}
	if err := in.TerminationThreshold.validate("terminationThreshold"); err != nil {
		return nil, err
	}
	if !in.FractionalUnit.Valid() {
		return nil, &ValidationError{
			Field:   "fractionalUnit",
			Message: fmt.Sprintf("unrecognized time unit %q", string(in.FractionalUnit)),
		}
	}
	if in.PenaltyRatePercent.IsNegative() {
		return nil, &ValidationError{
			Field:   "penaltyRatePercent",
			Message: fmt.Sprintf("percentage must not be negative, got %s", in.PenaltyRatePercent),
		}
	}
	if in.CapPercent.IsNegative() || in.CapPercent.GreaterThan(oneHundred) {
		return nil, &ValidationError{
			Field:   "capPercent",
			Message: fmt.Sprintf("cap must be between 0 and 100, got %s", in.CapPercent),
		}
	}

	return &Parameters{
		ClauseID:             in.ClauseID,
		ForceMajeureActive:   in.ForceMajeure,
		PenaltyDuration:      in.PenaltyDuration,
		PenaltyRatePercent:   in.PenaltyRatePercent,
		CapPercent:           in.CapPercent,
		TerminationThreshold: in.TerminationThreshold,
		FractionalUnit:       in.FractionalUnit,
	}, nil
}
