package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/clauselab/smartclause/internal/clause"
)

// Scenario defines one conformance scenario: inputs plus the expected
// decision.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Params is the clause parameter document.
	Params ParamsDoc `yaml:"params"`

	// Request is the runtime request document.
	Request RequestDoc `yaml:"request"`

	// Expect is the expected decision.
	Expect Expectation `yaml:"expect"`
}

// PeriodDoc mirrors clause.Period in scenario YAML.
type PeriodDoc struct {
	Amount int64  `yaml:"amount"`
	Unit   string `yaml:"unit"`
}

// ParamsDoc mirrors clause.ParametersInput in scenario YAML.
// Decimal fields are strings so values stay exact.
type ParamsDoc struct {
	ClauseID             string    `yaml:"clauseId"`
	ForceMajeure         bool      `yaml:"forceMajeure"`
	PenaltyDuration      PeriodDoc `yaml:"penaltyDuration"`
	PenaltyRatePercent   string    `yaml:"penaltyRatePercent"`
	CapPercent           string    `yaml:"capPercent"`
	TerminationThreshold PeriodDoc `yaml:"terminationThreshold"`
	FractionalUnit       string    `yaml:"fractionalUnit"`
}

// DelayDoc mirrors clause.DelayInput in scenario YAML.
type DelayDoc struct {
	Amount string `yaml:"amount"`
	Unit   string `yaml:"unit"`
}

// RequestDoc mirrors clause.RequestInput in scenario YAML.
type RequestDoc struct {
	GoodsValue  string    `yaml:"goodsValue"`
	Delay       *DelayDoc `yaml:"delay,omitempty"`
	AgreedAt    string    `yaml:"agreedAt,omitempty"`
	DeliveredAt string    `yaml:"deliveredAt,omitempty"`
}

// Expectation is the expected decision. Decimal fields are compared by
// numeric value, not string form.
type Expectation struct {
	PenaltyAmount     string `yaml:"penaltyAmount"`
	AppliedPercent    string `yaml:"appliedPercent"`
	BuyerMayTerminate bool   `yaml:"buyerMayTerminate"`
	Periods           int64  `yaml:"periods"`
}

// LoadScenario reads and parses a single scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	return &s, nil
}

// LoadScenarios reads every *.yaml scenario in a directory, sorted by
// file name for deterministic test order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	var scenarios []*Scenario
	for _, path := range matches {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// buildInputs converts the YAML documents into validated clause
// inputs.
func (s *Scenario) buildInputs() (*clause.Parameters, *clause.Request, error) {
	rate, err := decimal.NewFromString(s.Params.PenaltyRatePercent)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: penaltyRatePercent: %w", s.Name, err)
	}
	capPct, err := decimal.NewFromString(s.Params.CapPercent)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: capPercent: %w", s.Name, err)
	}

	params, err := clause.NewParameters(clause.ParametersInput{
		ClauseID:             s.Params.ClauseID,
		ForceMajeure:         s.Params.ForceMajeure,
		PenaltyDuration:      clause.Period{Amount: s.Params.PenaltyDuration.Amount, Unit: clause.TimeUnit(s.Params.PenaltyDuration.Unit)},
		PenaltyRatePercent:   rate,
		CapPercent:           capPct,
		TerminationThreshold: clause.Period{Amount: s.Params.TerminationThreshold.Amount, Unit: clause.TimeUnit(s.Params.TerminationThreshold.Unit)},
		FractionalUnit:       clause.TimeUnit(s.Params.FractionalUnit),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	goods, err := decimal.NewFromString(s.Request.GoodsValue)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: goodsValue: %w", s.Name, err)
	}

	in := clause.RequestInput{
		GoodsValue:  goods,
		AgreedAt:    s.Request.AgreedAt,
		DeliveredAt: s.Request.DeliveredAt,
	}
	if s.Request.Delay != nil {
		amount, err := decimal.NewFromString(s.Request.Delay.Amount)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario %s: delay.amount: %w", s.Name, err)
		}
		in.Delay = &clause.DelayInput{Amount: amount, Unit: clause.TimeUnit(s.Request.Delay.Unit)}
	}

	req, err := clause.NewRequest(in)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	return params, req, nil
}
