package clause

import (
	"time"

	"github.com/shopspring/decimal"
)

// Evaluate applies the late-delivery-and-penalty rule to one request.
//
// It is a total function: given inputs built by NewParameters and
// NewRequest it cannot fail, performs no I/O, and may be called
// concurrently from any number of goroutines.
//
// The rule, in order:
//  1. Active force majeure waives everything. Checked first,
//     short-circuiting all other logic.
//  2. A non-positive delay (on time or early) accrues nothing.
//  3. One rate increment accrues per COMPLETE proration period; a
//     partial period never accrues by itself.
//  4. The accrued percentage is capped; the cap bounds the total,
//     never a single period's rate.
//  5. Termination eligibility is the delay strictly exceeding the
//     threshold. It is orthogonal to the cap.
func Evaluate(params *Parameters, req *Request, clock Clock) Decision {
	now := clock.Now()

	if params.ForceMajeureActive {
		return zeroDecision(now)
	}

	delay := req.Delay
	if delay <= 0 {
		return zeroDecision(now)
	}

	// Integer division in the base unit: floor of complete periods.
	periods := int64(delay / params.PenaltyDuration.Base())

	rawPercent := decimal.NewFromInt(periods).Mul(params.PenaltyRatePercent)

	appliedPercent := rawPercent
	if appliedPercent.GreaterThan(params.CapPercent) {
		appliedPercent = params.CapPercent
	}

	// Shift(-2) is an exact decimal divide-by-100; Div would round to
	// a fixed precision.
	penalty := req.GoodsValue.Mul(appliedPercent).Shift(-2)

	return Decision{
		PenaltyAmount:     penalty,
		BuyerMayTerminate: delay > params.TerminationThreshold.Base(),
		AppliedPercent:    appliedPercent,
		EvaluatedAt:       now,
		Periods:           periods,
		RawPercent:        rawPercent,
	}
}

func zeroDecision(now time.Time) Decision {
	return Decision{
		PenaltyAmount:     decimal.Zero,
		BuyerMayTerminate: false,
		AppliedPercent:    decimal.Zero,
		EvaluatedAt:       now,
		Periods:           0,
		RawPercent:        decimal.Zero,
	}
}
