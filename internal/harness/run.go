package harness

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clauselab/smartclause/internal/clause"
)

// Result is the outcome of one scenario execution.
type Result struct {
	// Pass indicates the decision matched the expectation.
	Pass bool `json:"pass"`

	// Decision is the evaluator's output.
	Decision clause.Decision `json:"decision"`

	// Errors contains expectation mismatches. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// Run builds the scenario's inputs, evaluates the clause against the
// given clock, and checks the expectation. A returned error means the
// scenario itself is malformed; expectation mismatches go into
// Result.Errors instead.
func Run(s *Scenario, clock clause.Clock) (*Result, error) {
	params, req, err := s.buildInputs()
	if err != nil {
		return nil, err
	}

	decision := clause.Evaluate(params, req, clock)

	result := &Result{Pass: true, Decision: decision}

	checkDecimal(result, "penaltyAmount", s.Expect.PenaltyAmount, decision.PenaltyAmount)
	checkDecimal(result, "appliedPercent", s.Expect.AppliedPercent, decision.AppliedPercent)

	if decision.BuyerMayTerminate != s.Expect.BuyerMayTerminate {
		result.addError(fmt.Sprintf("buyerMayTerminate: expected %v, got %v",
			s.Expect.BuyerMayTerminate, decision.BuyerMayTerminate))
	}
	if decision.Periods != s.Expect.Periods {
		result.addError(fmt.Sprintf("periods: expected %d, got %d",
			s.Expect.Periods, decision.Periods))
	}

	return result, nil
}

func checkDecimal(result *Result, field, expected string, actual decimal.Decimal) {
	want, err := decimal.NewFromString(expected)
	if err != nil {
		result.addError(fmt.Sprintf("%s: bad expectation %q: %v", field, expected, err))
		return
	}
	if !actual.Equal(want) {
		result.addError(fmt.Sprintf("%s: expected %s, got %s", field, want, actual))
	}
}

func (r *Result) addError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
