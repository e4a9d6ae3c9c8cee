package harness

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauselab/smartclause/internal/testutil"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/prorated-penalty.yaml")
	require.NoError(t, err)

	assert.Equal(t, "prorated-penalty", s.Name)
	assert.Equal(t, "clause-281", s.Params.ClauseID)
	assert.Equal(t, "10.5", s.Params.PenaltyRatePercent)
	require.NotNil(t, s.Request.Delay)
	assert.Equal(t, "4", s.Request.Delay.Amount)
	assert.Equal(t, "42", s.Expect.PenaltyAmount)
	assert.Equal(t, int64(2), s.Expect.Periods)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/no-such-scenario.yaml")
	require.Error(t, err)
}

func TestLoadScenarioRequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nameless.yaml")
	require.NoError(t, os.WriteFile(path, []byte("description: missing a name\n"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	// Sorted by file name, so the listing is deterministic.
	assert.Equal(t, "capped-and-terminate", scenarios[0].Name)

	names := map[string]bool{}
	for _, s := range scenarios {
		names[s.Name] = true
	}
	assert.True(t, names["prorated-penalty"])
	assert.True(t, names["force-majeure"])
	assert.True(t, names["timestamp-delay"])
}

func TestRunPassingScenario(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/capped-and-terminate.yaml")
	require.NoError(t, err)

	clock := testutil.NewFixedClock(time.Date(2019, 1, 1, 12, 0, 0, 0, time.UTC))
	result, err := Run(s, clock)
	require.NoError(t, err)

	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "110", result.Decision.PenaltyAmount.String())
	assert.True(t, result.Decision.BuyerMayTerminate)
}

func TestRunReportsMismatch(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/prorated-penalty.yaml")
	require.NoError(t, err)
	s.Expect.PenaltyAmount = "999"
	s.Expect.BuyerMayTerminate = true

	clock := testutil.NewFixedClock(time.Date(2019, 1, 1, 12, 0, 0, 0, time.UTC))
	result, err := Run(s, clock)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "penaltyAmount")
	assert.Contains(t, result.Errors[1], "buyerMayTerminate")
}

func TestRunMalformedScenario(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/prorated-penalty.yaml")
	require.NoError(t, err)
	s.Params.CapPercent = "not-a-number"

	clock := testutil.NewFixedClock(time.Date(2019, 1, 1, 12, 0, 0, 0, time.UTC))
	_, err = Run(s, clock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capPercent")
}
