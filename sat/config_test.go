package sat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptionsAreWellFormed(t *testing.T) {
	o := DefaultOptions
	require.Greater(t, o.VSIDSDecay, 0.5)
	require.LessOrEqual(t, o.VSIDSDecay, 1.0)
	require.Equal(t, RestartGlucose, o.RestartStrategy)
	require.True(t, o.PhaseSaving)
	require.True(t, o.InitialPhase)
	require.Equal(t, int64(-1), o.ConflictBudget)
}

func TestOptionsLoggerDefaultsToStandardLogger(t *testing.T) {
	o := Options{}
	require.NotNil(t, o.logger())
}

func TestRestartStrategyString(t *testing.T) {
	require.Equal(t, "glucose", RestartGlucose.String())
	require.Equal(t, "luby", RestartLuby.String())
}
