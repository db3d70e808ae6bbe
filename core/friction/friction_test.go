package friction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/swk211/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		mt, mb float64
		mu     float64
		deg    float64
		want   SlipCase
	}{
		{name: "flat", mt: 50, mb: 50, mu: 0.4, deg: 0, want: Static},
		{name: "default sliders", mt: 50, mb: 50, mu: 0.4, deg: 10, want: Static},
		{name: "heavy bottom, steep", mt: 10, mb: 100, mu: 0.05, deg: 45, want: TopUpBottomDown},
		{name: "heavy top, steep", mt: 100, mb: 10, mu: 0.05, deg: 45, want: TopDownBottomUp},
		{name: "heavy top, rough", mt: 100, mb: 10, mu: 1, deg: 45, want: Static},
		{name: "heavy bottom, rough", mt: 10, mb: 100, mu: 1, deg: 30, want: Static},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.mt*Gravity, tt.mb*Gravity, tt.mu, tt.deg)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Increasing the angle from 0 moves from Static into at most one slip case
// and never back.
func TestClassify_monotonicInAngle(t *testing.T) {
	p := core.MustPage("friction")
	masses, _ := p.Slider("top_mass")
	frictions, _ := p.Slider("friction")

	for _, mt := range masses.Marks() {
		for _, mb := range masses.Marks() {
			for _, f := range frictions.Marks() {
				mu := frictions.Scaled(f)
				first := Static
				for deg := 0.0; deg <= 90; deg += 0.5 {
					got := Classify(mt*Gravity, mb*Gravity, mu, deg)
					if deg == 0 {
						require.Equal(t, Static, got, "mt=%v mb=%v mu=%v", mt, mb, mu)
					}
					if first == Static {
						first = got
						continue
					}
					require.Equal(t, first, got, "mt=%v mb=%v mu=%v deg=%v", mt, mb, mu, deg)
				}
			}
		}
	}
}

// The last two branches of the decision table both answer Static. The third
// one is redundant with the fallback; both are kept as taught and this test
// pins that behaviour rather than a corrected one.
func TestTensions_Classify_redundantBranches(t *testing.T) {
	third := Tensions{Top1: 3, Top2: 1, Bottom1: 2, Bottom2: 4}
	assert.Equal(t, Static, third.Classify())

	fallback := Tensions{Top1: 1, Top2: 5, Bottom1: 2, Bottom2: 3}
	assert.Equal(t, Static, fallback.Classify())
}

func TestSolve(t *testing.T) {
	in := DefaultInput()
	require.NoError(t, in.Validate(core.Validate))

	sol := Solve(in)
	assert.InDelta(t, 0.4, sol.Coefficient, 1e-12)
	assert.InDelta(t, 490.5, sol.TopWeight, 1e-9)
	assert.Equal(t, Static, sol.Case)
	assert.Equal(t, []string{"The blocks DO NOT slide."}, Describe(sol.Case))

	in.Friction = 21
	assert.Error(t, in.Validate(core.Validate))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "The top block slides UPWARDS.", Describe(TopUpBottomDown)[0])
	assert.Equal(t, "The top block slides DOWNWARDS.", Describe(TopDownBottomUp)[0])
}

func TestFigure(t *testing.T) {
	in := Input{TopMass: 10, BottomMass: 100, Friction: 1, Angle: 45}
	sol := Solve(in)
	require.Equal(t, TopUpBottomDown, sol.Case)

	fig := Figure(sol)
	require.NotEmpty(t, fig.Traces)
	top := fig.Traces[len(fig.Traces)-1]
	assert.Equal(t, "Mass = 10 kg", top.Name)

	// at 90 degrees the incline stands upright above the hinge
	fig = Figure(Solve(Input{TopMass: 50, BottomMass: 50, Friction: 8, Angle: 90}))
	incline := fig.Traces[1]
	assert.InDelta(t, 5, incline.X[2], 1e-9)
	assert.InDelta(t, 0, incline.Y[2], 1e-9)
	assert.InDelta(t, 5, incline.X[1], 1e-9)
	assert.InDelta(t, 5, incline.Y[1], 1e-9)
}
