package numeric

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewton(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	tests := []struct {
		name string
		df   Func
		x0   float64
	}{
		{name: "newton", df: df, x0: 1},
		{name: "newton from below the root", df: df, x0: 0.5},
		{name: "newton from far", df: df, x0: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Newton(f, tt.df, tt.x0)
			require.NoError(t, err)
			assert.InDelta(t, math.Sqrt2, got, 1e-8)
		})
	}
}

func TestNewton_failures(t *testing.T) {
	_, err := Newton(
		func(x float64) float64 { return x*x + 1 },
		func(x float64) float64 { return 2 * x },
		0,
	)
	assert.True(t, errors.Is(err, ErrZeroDerivative))

	// x^(1/3) overshoots further on every step
	cbrt := func(x float64) float64 { return math.Cbrt(x) }
	dcbrt := func(x float64) float64 { return 1 / (3 * math.Cbrt(x*x)) }
	_, err = Newton(cbrt, dcbrt, 1, Options{MaxIter: 20})
	assert.True(t, errors.Is(err, ErrNoConvergence))
}

func TestNewtonBracket(t *testing.T) {
	// the same function that defeats plain Newton
	cbrt := func(x float64) float64 { return math.Cbrt(x - 0.3) }
	dcbrt := func(x float64) float64 { return 1 / (3 * math.Cbrt((x-0.3)*(x-0.3))) }
	got, err := NewtonBracket(cbrt, dcbrt, -2, 5, Options{Tol: 1e-12, MaxIter: 200})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, got, 1e-9)

	got, err = NewtonBracket(math.Cos, func(x float64) float64 { return -math.Sin(x) }, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, got, 1e-8)

	_, err = NewtonBracket(math.Cos, func(x float64) float64 { return -math.Sin(x) }, 2, 3)
	assert.True(t, errors.Is(err, ErrNoBracket))
}

func TestBracket(t *testing.T) {
	lo, hi, err := Bracket(func(x float64) float64 { return x - 37 }, 0, 1, 10)
	require.NoError(t, err)
	assert.LessOrEqual(t, lo, 37.0)
	assert.GreaterOrEqual(t, hi, 37.0)

	_, _, err = Bracket(func(x float64) float64 { return x*x + 1 }, 0, 1, 5)
	assert.True(t, errors.Is(err, ErrNoBracket))
}

func TestLinspace(t *testing.T) {
	assert.Nil(t, Linspace(0, 1, 0))
	assert.Equal(t, []float64{3}, Linspace(3, 4, 1))
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5))

	xs := Linspace(0, 6*math.Pi+0.1, 1000)
	assert.Len(t, xs, 1000)
	assert.Equal(t, 6*math.Pi+0.1, xs[999])
}

func TestMap(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 4}, Map([]float64{0, 1, 2}, func(x float64) float64 { return x * x }))
}
