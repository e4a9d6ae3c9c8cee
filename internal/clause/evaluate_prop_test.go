package clause

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"

	"github.com/clauselab/smartclause/internal/testutil"
)

// propParams builds a valid parameter set from generated raw values.
// Rates are scaled into tenths of a percent to exercise fractional
// rates without going through floats.
func propParams(forceMajeure bool, durationDays, rateTenths, capTenths, thresholdDays int) *Parameters {
	params, err := NewParameters(ParametersInput{
		ClauseID:             "prop",
		ForceMajeure:         forceMajeure,
		PenaltyDuration:      Period{Amount: int64(durationDays), Unit: UnitDays},
		PenaltyRatePercent:   decimal.New(int64(rateTenths), -1),
		CapPercent:           decimal.New(int64(capTenths), -1),
		TerminationThreshold: Period{Amount: int64(thresholdDays), Unit: UnitDays},
		FractionalUnit:       UnitDays,
	})
	if err != nil {
		panic(err)
	}
	return params
}

func propRequest(goodsValue, delayDays int) *Request {
	req, err := NewRequest(RequestInput{
		GoodsValue: decimal.NewFromInt(int64(goodsValue)),
		Delay:      &DelayInput{Amount: decimal.NewFromInt(int64(delayDays)), Unit: UnitDays},
	})
	if err != nil {
		panic(err)
	}
	return req
}

var propClock = testutil.NewFixedClock(time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC))

// Force majeure dominance: penalty 0, no termination, for any inputs.
func TestPropForceMajeureDominance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("force majeure waives everything", prop.ForAll(
		func(durationDays, rateTenths, capTenths, thresholdDays, goodsValue, delayDays int) bool {
			params := propParams(true, durationDays, rateTenths, capTenths, thresholdDays)
			dec := Evaluate(params, propRequest(goodsValue, delayDays), propClock)
			return dec.PenaltyAmount.IsZero() &&
				dec.AppliedPercent.IsZero() &&
				!dec.BuyerMayTerminate
		},
		gen.IntRange(1, 60),
		gen.IntRange(0, 500),
		gen.IntRange(0, 1000),
		gen.IntRange(1, 120),
		gen.IntRange(0, 1_000_000),
		gen.IntRange(-100, 1000),
	))

	properties.TestingRun(t)
}

// Cap monotonicity: more delay never decreases the applied percent,
// and the applied percent never exceeds the cap.
func TestPropCapMonotonicity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("applied percent is monotone and capped", prop.ForAll(
		func(durationDays, rateTenths, capTenths, thresholdDays, delayDays, extraDays int) bool {
			params := propParams(false, durationDays, rateTenths, capTenths, thresholdDays)

			shorter := Evaluate(params, propRequest(100, delayDays), propClock)
			longer := Evaluate(params, propRequest(100, delayDays+extraDays), propClock)

			if shorter.AppliedPercent.GreaterThan(longer.AppliedPercent) {
				return false
			}
			return !shorter.AppliedPercent.GreaterThan(params.CapPercent) &&
				!longer.AppliedPercent.GreaterThan(params.CapPercent)
		},
		gen.IntRange(1, 60),
		gen.IntRange(0, 500),
		gen.IntRange(0, 1000),
		gen.IntRange(1, 120),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

// No penalty when on time: delay <= 0 yields the zero decision.
func TestPropOnTimeIsFree(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("non-late delivery accrues nothing", prop.ForAll(
		func(durationDays, rateTenths, capTenths, thresholdDays, goodsValue, earlyDays int) bool {
			params := propParams(false, durationDays, rateTenths, capTenths, thresholdDays)
			dec := Evaluate(params, propRequest(goodsValue, -earlyDays), propClock)
			return dec.PenaltyAmount.IsZero() && !dec.BuyerMayTerminate
		},
		gen.IntRange(1, 60),
		gen.IntRange(0, 500),
		gen.IntRange(0, 1000),
		gen.IntRange(1, 120),
		gen.IntRange(0, 1_000_000),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

// Scale invariance: doubling goods value doubles the penalty.
func TestPropScaleInvariance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("penalty scales linearly with goods value", prop.ForAll(
		func(durationDays, rateTenths, capTenths, thresholdDays, goodsValue, delayDays int) bool {
			params := propParams(false, durationDays, rateTenths, capTenths, thresholdDays)

			single := Evaluate(params, propRequest(goodsValue, delayDays), propClock)
			double := Evaluate(params, propRequest(2*goodsValue, delayDays), propClock)

			return double.PenaltyAmount.Equal(single.PenaltyAmount.Mul(decimal.NewFromInt(2)))
		},
		gen.IntRange(1, 60),
		gen.IntRange(0, 500),
		gen.IntRange(0, 1000),
		gen.IntRange(1, 120),
		gen.IntRange(0, 500_000),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

// Termination strictness: delay equal to the threshold never grants
// termination; one day beyond always does.
func TestPropTerminationStrictness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("termination requires strictly exceeding the threshold", prop.ForAll(
		func(durationDays, rateTenths, capTenths, thresholdDays int) bool {
			params := propParams(false, durationDays, rateTenths, capTenths, thresholdDays)

			atThreshold := Evaluate(params, propRequest(100, thresholdDays), propClock)
			beyond := Evaluate(params, propRequest(100, thresholdDays+1), propClock)

			return !atThreshold.BuyerMayTerminate && beyond.BuyerMayTerminate
		},
		gen.IntRange(1, 60),
		gen.IntRange(0, 500),
		gen.IntRange(0, 1000),
		gen.IntRange(1, 120),
	))

	properties.TestingRun(t)
}
