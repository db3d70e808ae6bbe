package vibration

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/swk211/core"
)

func TestRegimeOf(t *testing.T) {
	tests := []struct {
		zeta float64
		want Regime
	}{
		{zeta: 0, want: Undamped},
		{zeta: 0.1, want: Underdamped},
		{zeta: 0.9, want: Underdamped},
		{zeta: 1, want: CriticallyDamped},
		{zeta: 1.5, want: Overdamped},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RegimeOf(tt.zeta), "zeta=%v", tt.zeta)
	}
}

func TestSolve(t *testing.T) {
	in := DefaultInput()
	require.NoError(t, in.Validate(core.Validate))

	sol := Solve(in)
	assert.InDelta(t, 5, sol.NaturalFrequency, 1e-12)
	assert.InDelta(t, 5/(2*math.Pi), sol.NaturalFrequencyHz, 1e-12)
	assert.InDelta(t, 0.1, sol.Zeta, 1e-12)
	assert.InDelta(t, 0.5, sol.X0, 1e-12)
	assert.Equal(t, Underdamped, sol.Regime)
	assert.InDelta(t, 5*math.Sqrt(0.99), sol.DampedFrequency, 1e-12)
	assert.InDelta(t, 2*math.Pi*0.1/math.Sqrt(0.99), sol.LogarithmicDecrement, 1e-12)

	assert.Error(t, Input{Mass: 0, Stiffness: 50, Damping: 1, Displacement: 5}.Validate(core.Validate))
	assert.Error(t, Input{Mass: 2, Stiffness: 55, Damping: 1, Displacement: 5}.Validate(core.Validate))
}

func TestResponse_undamped(t *testing.T) {
	sol := Solve(Input{Mass: 4, Stiffness: 100, Damping: 0, Displacement: 3})
	require.Equal(t, Undamped, sol.Regime)
	assert.InDelta(t, 2*math.Pi/5, sol.DampedPeriod, 1e-12)

	ts := Times()
	for i, x := range sol.Response(ts) {
		assert.InDelta(t, 0.3*math.Cos(5*ts[i]), x, 1e-12)
	}
}

func TestResponse_envelope(t *testing.T) {
	for _, d := range []float64{1, 3, 5, 9} {
		sol := Solve(Input{Mass: 2, Stiffness: 50, Damping: d, Displacement: 5})
		require.Equal(t, Underdamped, sol.Regime)
		for _, tm := range Times() {
			assert.LessOrEqual(t, math.Abs(sol.At(tm)), sol.Envelope(tm)+1e-12, "damping=%v t=%v", d, tm)
		}
	}
}

func TestResponse_initialConditions(t *testing.T) {
	for _, d := range []float64{0, 5, 10, 20} {
		sol := Solve(Input{Mass: 3, Stiffness: 60, Damping: d, Displacement: 4})
		assert.InDelta(t, 0.4, sol.At(0), 1e-12, "damping=%v", d)

		// released from rest
		h := 1e-6
		v0 := (sol.At(h) - sol.At(0)) / h
		assert.InDelta(t, 0, v0, 1e-3, "damping=%v", d)
	}
}

// Without oscillation the mass creeps back without crossing zero.
func TestResponse_nonOscillating(t *testing.T) {
	for _, d := range []float64{10, 20} {
		sol := Solve(Input{Mass: 1, Stiffness: 10, Damping: d, Displacement: 5})
		assert.Zero(t, sol.DampedFrequency)
		prev := sol.At(0)
		for _, tm := range Times()[1:] {
			x := sol.At(tm)
			require.Positive(t, x)
			require.LessOrEqual(t, x, prev)
			prev = x
		}
	}
}

func TestFigure(t *testing.T) {
	fig := Figure(Solve(DefaultInput()))
	require.Len(t, fig.Traces, 3)
	assert.Equal(t, "Envelope", fig.Traces[0].Name)
	assert.Equal(t, "Displacement", fig.Traces[2].Name)
	assert.Equal(t, "Free Vibration (underdamped)", fig.Title)
	assert.Greater(t, fig.Y.Max, 0.5)

	fig = Figure(Solve(Input{Mass: 1, Stiffness: 10, Damping: 20, Displacement: 5}))
	require.Len(t, fig.Traces, 1)
	assert.InDelta(t, 0.55, fig.Y.Max, 1e-12)
}
