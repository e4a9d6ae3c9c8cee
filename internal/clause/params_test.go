package clause

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParamsInput() ParametersInput {
	return ParametersInput{
		ClauseID:             "clause-281",
		ForceMajeure:         false,
		PenaltyDuration:      Period{Amount: 2, Unit: UnitDays},
		PenaltyRatePercent:   decimal.RequireFromString("10.5"),
		CapPercent:           decimal.RequireFromString("55"),
		TerminationThreshold: Period{Amount: 15, Unit: UnitDays},
		FractionalUnit:       UnitDays,
	}
}

func TestNewParameters(t *testing.T) {
	params, err := NewParameters(validParamsInput())
	require.NoError(t, err)

	assert.Equal(t, "clause-281", params.ClauseID)
	assert.False(t, params.ForceMajeureActive)
	assert.Equal(t, Period{Amount: 2, Unit: UnitDays}, params.PenaltyDuration)
	assert.True(t, params.PenaltyRatePercent.Equal(decimal.RequireFromString("10.5")))
	assert.True(t, params.CapPercent.Equal(decimal.NewFromInt(55)))
	assert.Equal(t, UnitDays, params.FractionalUnit)
}

func TestNewParametersRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ParametersInput)
		field  string
	}{
		{
			name:   "zero penalty duration",
			mutate: func(in *ParametersInput) { in.PenaltyDuration.Amount = 0 },
			field:  "penaltyDuration.amount",
		},
		{
			name:   "negative penalty duration",
			mutate: func(in *ParametersInput) { in.PenaltyDuration.Amount = -3 },
			field:  "penaltyDuration.amount",
		},
		{
			name:   "unknown penalty duration unit",
			mutate: func(in *ParametersInput) { in.PenaltyDuration.Unit = "fortnights" },
			field:  "penaltyDuration.unit",
		},
		{
			name:   "zero termination threshold",
			mutate: func(in *ParametersInput) { in.TerminationThreshold.Amount = 0 },
			field:  "terminationThreshold.amount",
		},
		{
			name:   "unknown termination unit",
			mutate: func(in *ParametersInput) { in.TerminationThreshold.Unit = "minutes" },
			field:  "terminationThreshold.unit",
		},
		{
			name:   "unknown fractional unit",
			mutate: func(in *ParametersInput) { in.FractionalUnit = "décades" },
			field:  "fractionalUnit",
		},
		{
			name:   "negative rate",
			mutate: func(in *ParametersInput) { in.PenaltyRatePercent = decimal.RequireFromString("-0.5") },
			field:  "penaltyRatePercent",
		},
		{
			name:   "negative cap",
			mutate: func(in *ParametersInput) { in.CapPercent = decimal.NewFromInt(-1) },
			field:  "capPercent",
		},
		{
			name:   "cap above 100",
			mutate: func(in *ParametersInput) { in.CapPercent = decimal.RequireFromString("100.01") },
			field:  "capPercent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validParamsInput()
			tt.mutate(&in)

			params, err := NewParameters(in)
			require.Error(t, err)
			assert.Nil(t, params)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestNewParametersBoundaryValues(t *testing.T) {
	// Zero rate and zero cap are legal: the clause then never charges.
	in := validParamsInput()
	in.PenaltyRatePercent = decimal.Zero
	in.CapPercent = decimal.Zero
	_, err := NewParameters(in)
	require.NoError(t, err)

	// Cap of exactly 100 is legal.
	in = validParamsInput()
	in.CapPercent = decimal.NewFromInt(100)
	_, err = NewParameters(in)
	require.NoError(t, err)
}
