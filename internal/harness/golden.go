package harness

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/clauselab/smartclause/internal/testutil"
)

// goldenEpoch is the fixed instant every golden run evaluates at, so
// EvaluatedAt is byte-identical across runs.
var goldenEpoch = time.Date(2019, time.January, 1, 12, 0, 0, 0, time.UTC)

// DecisionSnapshot is the serialized form compared against golden
// files. Field order is fixed by the struct.
type DecisionSnapshot struct {
	ScenarioName      string `json:"scenario_name"`
	Description       string `json:"description,omitempty"`
	PenaltyAmount     string `json:"penalty_amount"`
	AppliedPercent    string `json:"applied_percent"`
	RawPercent        string `json:"raw_percent"`
	Periods           int64  `json:"periods"`
	BuyerMayTerminate bool   `json:"buyer_may_terminate"`
	EvaluatedAt       string `json:"evaluated_at"`
}

// RunWithGolden executes a scenario against the golden epoch clock and
// compares the decision snapshot to testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the scenario is malformed; expectation mismatches
// and golden drift fail t.
func RunWithGolden(t *testing.T, s *Scenario) error {
	t.Helper()

	result, err := Run(s, testutil.NewFixedClock(goldenEpoch))
	if err != nil {
		return err
	}

	if !result.Pass {
		for _, msg := range result.Errors {
			t.Errorf("scenario %s: %s", s.Name, msg)
		}
	}

	snapshot := DecisionSnapshot{
		ScenarioName:      s.Name,
		Description:       s.Description,
		PenaltyAmount:     result.Decision.PenaltyAmount.String(),
		AppliedPercent:    result.Decision.AppliedPercent.String(),
		RawPercent:        result.Decision.RawPercent.String(),
		Periods:           result.Decision.Periods,
		BuyerMayTerminate: result.Decision.BuyerMayTerminate,
		EvaluatedAt:       result.Decision.EvaluatedAt.Format(time.RFC3339),
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, payload)

	return nil
}
