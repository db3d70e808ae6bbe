// Package cable solves a cable hanging under its own weight between two supports.
//
// Support A sits at (0, HeightA) and support B at (Span, HeightB). The cable
// follows the catenary y(x) = c·cosh((x-v)/c) + k, where c is the catenary
// parameter and v the x position of the vertex.
package cable

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/swk211/core"
	"github.com/trezcool/swk211/core/numeric"
)

const (
	Span    = 20.0 // horizontal distance between the supports [m]
	HeightA = 10.0 // height of support A [m]
)

var (
	ErrInfeasibleSpan = errors.New("cable length must exceed the distance between the supports")
	ErrSelfWeight     = errors.New("cable self weight must be positive")

	solverOpts = numeric.Options{Tol: 1e-12, MaxIter: 100}
)

type Input struct {
	SelfWeight float64 `json:"self_weight" query:"self_weight" validate:"slider=cables.self_weight"` // [kN/m]
	Length     float64 `json:"length" query:"length" validate:"slider=cables.length"`                // [m]
	HeightB    float64 `json:"height_b" query:"height_b" validate:"slider=cables.height_b"`          // [m]
}

// DefaultInput holds the initial slider positions.
func DefaultInput() Input {
	p := core.MustPage("cables")
	return Input{
		SelfWeight: p.Default("self_weight"),
		Length:     p.Default("length"),
		HeightB:    p.Default("height_b"),
	}
}

func (in Input) Validate(validate *validator.Validate) error {
	return validate.Struct(in)
}

// Rise is the height of B above A.
func (in Input) Rise() float64 { return in.HeightB - HeightA }

// Chord is the straight-line distance between the supports.
func (in Input) Chord() float64 { return math.Hypot(Span, in.Rise()) }

type Solution struct {
	Input             Input   `json:"input"`
	C                 float64 `json:"c"`      // catenary parameter [m]
	Vertex            float64 `json:"vertex"` // v [m]
	Offset            float64 `json:"offset"` // k [m]
	TurningPoint      float64 `json:"x_turn"` // [m]
	Sag               float64 `json:"sag"`    // h [m]
	HorizontalTension float64 `json:"t0"`     // [kN]
	MaxTension        float64 `json:"t_max"`  // [kN]
}

// Solve finds the cable shape. Geometrically impossible inputs are rejected
// with a *core.ValidationError before any iteration starts.
func Solve(in Input) (Solution, error) {
	if !(in.SelfWeight > 0) {
		return Solution{}, core.NewValidationError(ErrSelfWeight,
			core.FieldError{Field: "self_weight", Error: ErrSelfWeight.Error()})
	}
	if !(in.Length > in.Chord()) {
		return Solution{}, core.NewValidationError(ErrInfeasibleSpan,
			core.FieldError{
				Field: "length",
				Error: fmt.Sprintf("%s (%.2f m)", ErrInfeasibleSpan, in.Chord()),
			})
	}

	c, err := solveParameter(in)
	if err != nil {
		return Solution{}, errors.Wrap(err, "solving for c")
	}
	v, err := solveVertex(in, c)
	if err != nil {
		return Solution{}, errors.Wrap(err, "solving for the vertex")
	}
	sol := Solution{
		Input:  in,
		C:      c,
		Vertex: v,
		Offset: HeightA - c*math.Cosh(-v/c),
	}

	sol.TurningPoint, err = numeric.Newton(
		func(x float64) float64 { return math.Sinh((x - v) / c) },
		func(x float64) float64 { return math.Cosh((x-v)/c) / c },
		Span/2, solverOpts,
	)
	if err != nil {
		return Solution{}, errors.Wrap(err, "solving for the turning point")
	}

	sol.Sag = math.Abs(sol.Chord(sol.TurningPoint) - sol.Y(sol.TurningPoint))
	sol.HorizontalTension = in.SelfWeight * c
	sol.MaxTension = in.SelfWeight * (math.Max(sol.Y(0), sol.Y(Span)) - sol.Offset)
	return sol, nil
}

// solveParameter solves (2c/Span)·sinh(Span/2c) = sqrt(L² - rise²)/Span.
// It iterates on u = Span/2c, where sinh(u)/u is convex and increasing, from
// a start known to lie right of the root, so Newton converges monotonically.
func solveParameter(in Input) (float64, error) {
	rise := in.Rise()
	target := math.Sqrt(in.Length*in.Length-rise*rise) / Span

	f := func(u float64) float64 { return math.Sinh(u)/u - target }
	df := func(u float64) float64 { return (u*math.Cosh(u) - math.Sinh(u)) / (u * u) }

	// sinh(u)/u >= 1 + u²/6, so the root is at most sqrt(6(target-1)).
	u0 := math.Sqrt(6 * (target - 1))
	u, err := numeric.Newton(f, df, u0, solverOpts)
	if err != nil {
		return 0, err
	}
	if !(u > 0) {
		return 0, errors.Wrapf(numeric.ErrNoConvergence, "non-positive root u=%g", u)
	}
	return Span / (2 * u), nil
}

// solveVertex solves c·cosh((Span-v)/c) - c·cosh(v/c) = rise, which is
// strictly decreasing in v.
func solveVertex(in Input, c float64) (float64, error) {
	rise := in.Rise()
	f := func(v float64) float64 { return c*math.Cosh((Span-v)/c) - c*math.Cosh(v/c) - rise }
	df := func(v float64) float64 { return -math.Sinh((Span-v)/c) - math.Sinh(v/c) }

	lo, hi, err := numeric.Bracket(f, Span/2, Span/2, 16)
	if err != nil {
		return 0, err
	}
	return numeric.NewtonBracket(f, df, lo, hi, solverOpts)
}

// Y is the cable height at x.
func (s Solution) Y(x float64) float64 {
	return s.C*math.Cosh((x-s.Vertex)/s.C) + s.Offset
}

// Chord is the height of the straight line between the supports at x.
func (s Solution) Chord(x float64) float64 {
	return s.Input.Rise()*x/Span + HeightA
}

// Tension is the cable tension at x [kN].
func (s Solution) Tension(x float64) float64 {
	return s.Input.SelfWeight * s.C * math.Cosh((x-s.Vertex)/s.C)
}

// ArcLength is the cable length between x0 and x1.
func (s Solution) ArcLength(x0, x1 float64) float64 {
	return s.C * (math.Sinh((x1-s.Vertex)/s.C) - math.Sinh((x0-s.Vertex)/s.C))
}

func (s Solution) Quantities() []core.Quantity {
	return []core.Quantity{
		{Name: "Horizontal tension", Symbol: "T₀", Value: s.HorizontalTension, Unit: "kN", Precision: 2},
		{Name: "Maximum tension", Symbol: "Tmax", Value: s.MaxTension, Unit: "kN", Precision: 2},
		{Name: "Catenary parameter", Symbol: "c", Value: s.C, Precision: 2},
		{Name: "Sag", Symbol: "h", Value: s.Sag, Unit: "m", Precision: 2},
		{Name: "Turning point", Symbol: "xturn", Value: s.TurningPoint, Unit: "m", Precision: 2},
	}
}
