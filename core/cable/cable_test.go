package cable

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/swk211/core"
)

func TestSolve(t *testing.T) {
	sol, err := Solve(Input{SelfWeight: 5, Length: 25, HeightB: 20})
	require.NoError(t, err)

	assert.Greater(t, sol.TurningPoint, 0.0)
	assert.Less(t, sol.TurningPoint, Span)
	assert.Greater(t, sol.HorizontalTension, 0.0)

	assert.InDelta(t, 10.9237, sol.C, 1e-4)
	assert.InDelta(t, 5.3722, sol.Vertex, 1e-4)
	assert.InDelta(t, 54.6183, sol.HorizontalTension, 1e-4)
	assert.InDelta(t, 4.0340, sol.Sag, 1e-4)
	assert.InDelta(t, 111.3575, sol.MaxTension, 1e-4)
	assert.InDelta(t, sol.Vertex, sol.TurningPoint, 1e-9)
}

func TestSolve_roundTrip(t *testing.T) {
	p := core.MustPage("cables")
	lengths, _ := p.Slider("length")
	heights, _ := p.Slider("height_b")

	for _, L := range lengths.Marks() {
		for _, H := range heights.Marks() {
			in := Input{SelfWeight: 3, Length: L, HeightB: H}
			sol, err := Solve(in)
			require.NoError(t, err, "L=%v H=%v", L, H)

			assert.InDelta(t, L, sol.ArcLength(0, Span), 1e-9, "arc length L=%v H=%v", L, H)
			assert.InDelta(t, HeightA, sol.Y(0), 1e-9, "support A L=%v H=%v", L, H)
			assert.InDelta(t, H, sol.Y(Span), 1e-9, "support B L=%v H=%v", L, H)
			assert.InDelta(t, sol.Tension(sol.Vertex), sol.HorizontalTension, 1e-9)
		}
	}
}

func TestSolve_domainErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		wantErr error
	}{
		{name: "shorter than chord", in: Input{SelfWeight: 5, Length: 20, HeightB: 20}, wantErr: ErrInfeasibleSpan},
		{name: "equal to chord", in: Input{SelfWeight: 5, Length: math.Hypot(Span, 10), HeightB: 20}, wantErr: ErrInfeasibleSpan},
		{name: "no weight", in: Input{SelfWeight: 0, Length: 25, HeightB: 20}, wantErr: ErrSelfWeight},
		{name: "NaN length", in: Input{SelfWeight: 5, Length: math.NaN(), HeightB: 20}, wantErr: ErrInfeasibleSpan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.in)
			require.Error(t, err)
			assert.True(t, core.IsValidation(err))
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestInput_Validate(t *testing.T) {
	assert.NoError(t, DefaultInput().Validate(core.Validate))

	in := DefaultInput()
	in.Length = 22.5
	assert.Error(t, in.Validate(core.Validate))

	in = DefaultInput()
	in.HeightB = 21
	assert.Error(t, in.Validate(core.Validate))
}

func TestFigure(t *testing.T) {
	sol, err := Solve(DefaultInput())
	require.NoError(t, err)

	fig := Figure(sol)
	var names []string
	for _, tr := range fig.Traces {
		assert.Equal(t, len(tr.X), len(tr.Y), tr.Name)
		if tr.Legend {
			names = append(names, tr.Name)
		}
	}
	assert.Equal(t, []string{"Cable", "h"}, names)
	require.Len(t, fig.Annotations, 1)
	assert.Equal(t, "h = 4.03 m", fig.Annotations[0].Text)
}
