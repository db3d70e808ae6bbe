package resonance

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/swk211/core"
)

func TestTimes(t *testing.T) {
	ts := Times()
	require.Len(t, ts, 1000)
	assert.Equal(t, 0.0, ts[0])
	assert.Equal(t, Duration, ts[len(ts)-1])
}

func TestSuperpose(t *testing.T) {
	ts := Times()
	a := Signal{Amplitude: 1, Frequency: 3}
	b := Signal{Amplitude: 0.5, Frequency: 7}

	ya, yb := a.Sample(ts), b.Sample(ts)
	want := make([]float64, len(ts))
	for i := range ts {
		want[i] = ya[i] + yb[i]
	}
	if diff := cmp.Diff(want, Superpose(ts, a, b), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Superpose() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, make([]float64, len(ts)), Superpose(ts))
}

// Equal frequencies add in phase.
func TestSuperpose_inPhase(t *testing.T) {
	ts := Times()
	s := Signal{Amplitude: 1, Frequency: 4}
	double := Signal{Amplitude: 2, Frequency: 4}
	if diff := cmp.Diff(double.Sample(ts), Superpose(ts, s, s), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Superpose() mismatch (-want +got):\n%s", diff)
	}
}

func TestSolve(t *testing.T) {
	in := DefaultInput()
	require.NoError(t, in.Validate(core.Validate))

	sol := Solve(in)
	assert.Equal(t, 2.0, sol.Beat)
	assert.LessOrEqual(t, sol.Peak, 2.0)

	same := Solve(Input{Freq1: 5, Freq2: 5})
	assert.Zero(t, same.Beat)
	assert.Len(t, same.Quantities(), 2)

	assert.Error(t, Input{Freq1: 0, Freq2: 1}.Validate(core.Validate))
	assert.Error(t, Input{Freq1: 2.5, Freq2: 1}.Validate(core.Validate))
}

func TestFigures(t *testing.T) {
	in := DefaultInput()

	sig := SignalsFigure(in)
	require.Len(t, sig.Traces, 2)
	assert.Equal(t, "Freq1", sig.Traces[0].Name)
	assert.InDelta(t, 1.2*math.Sin(3*sig.Traces[0].X[10]), sig.Traces[0].Y[10], 1e-12)

	ticks := sig.X.Ticks
	require.Len(t, ticks, 13)
	assert.Equal(t, "π/2", ticks[1].Label)
	assert.InDelta(t, 6*math.Pi, ticks[12].Value, 1e-12)

	sup := SuperpositionFigure(in)
	assert.Equal(t, "Superposition", sup.Title)
	require.Len(t, sup.Traces, 1)
	assert.InDelta(t, math.Sin(3*sup.Traces[0].X[10])+math.Sin(sup.Traces[0].X[10]), sup.Traces[0].Y[10], 1e-12)
}
