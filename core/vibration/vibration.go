// Package vibration describes the free vibration of a damped single degree
// of freedom oscillator released from rest.
package vibration

import (
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/swk211/core"
)

type Regime int

const (
	Undamped Regime = iota
	Underdamped
	CriticallyDamped
	Overdamped
)

func (r Regime) String() string {
	switch r {
	case Underdamped:
		return "underdamped"
	case CriticallyDamped:
		return "critically damped"
	case Overdamped:
		return "overdamped"
	default:
		return "undamped"
	}
}

func (r Regime) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

const criticalTol = 1e-9

// RegimeOf classifies the damping ratio zeta.
func RegimeOf(zeta float64) Regime {
	switch {
	case zeta <= 0:
		return Undamped
	case math.Abs(zeta-1) < criticalTol:
		return CriticallyDamped
	case zeta < 1:
		return Underdamped
	default:
		return Overdamped
	}
}

type Input struct {
	Mass         float64 `json:"mass" query:"mass" validate:"slider=vibrations.mass"`                         // [kg]
	Stiffness    float64 `json:"stiffness" query:"stiffness" validate:"slider=vibrations.stiffness"`          // [N/m]
	Damping      float64 `json:"damping" query:"damping" validate:"slider=vibrations.damping"`                // slider position, see DampingRatio
	Displacement float64 `json:"displacement" query:"displacement" validate:"slider=vibrations.displacement"` // slider position, see InitialDisplacement
}

// DefaultInput holds the initial slider positions.
func DefaultInput() Input {
	p := core.MustPage("vibrations")
	return Input{
		Mass:         p.Default("mass"),
		Stiffness:    p.Default("stiffness"),
		Damping:      p.Default("damping"),
		Displacement: p.Default("displacement"),
	}
}

func (in Input) Validate(validate *validator.Validate) error {
	return validate.Struct(in)
}

func scaled(id string, v float64) float64 {
	s, _ := core.MustPage("vibrations").Slider(id)
	return s.Scaled(v)
}

// DampingRatio is ζ.
func (in Input) DampingRatio() float64 { return scaled("damping", in.Damping) }

// InitialDisplacement is x0 [m].
func (in Input) InitialDisplacement() float64 { return scaled("displacement", in.Displacement) }

type Solution struct {
	Input                Input   `json:"input"`
	Zeta                 float64 `json:"zeta"`
	X0                   float64 `json:"x0"`                      // [m]
	NaturalFrequency     float64 `json:"omega_n"`                 // [rad/s]
	NaturalFrequencyHz   float64 `json:"f_n"`                     // [Hz]
	Regime               Regime  `json:"regime"`                  // see RegimeOf
	DampedFrequency      float64 `json:"omega_d,omitempty"`       // [rad/s], oscillating regimes only
	DampedPeriod         float64 `json:"t_d,omitempty"`           // [s], oscillating regimes only
	LogarithmicDecrement float64 `json:"log_decrement,omitempty"` // underdamped only
}

func Solve(in Input) Solution {
	wn := math.Sqrt(in.Stiffness / in.Mass)
	sol := Solution{
		Input:              in,
		Zeta:               in.DampingRatio(),
		X0:                 in.InitialDisplacement(),
		NaturalFrequency:   wn,
		NaturalFrequencyHz: wn / (2 * math.Pi),
	}
	sol.Regime = RegimeOf(sol.Zeta)
	switch sol.Regime {
	case Undamped:
		sol.DampedFrequency = wn
	case Underdamped:
		root := math.Sqrt(1 - sol.Zeta*sol.Zeta)
		sol.DampedFrequency = wn * root
		sol.LogarithmicDecrement = 2 * math.Pi * sol.Zeta / root
	}
	if sol.DampedFrequency > 0 {
		sol.DampedPeriod = 2 * math.Pi / sol.DampedFrequency
	}
	return sol
}

// At is the displacement at time t [s].
func (s Solution) At(t float64) float64 {
	wn, zeta, x0 := s.NaturalFrequency, s.Zeta, s.X0
	switch s.Regime {
	case Undamped:
		return x0 * math.Cos(wn*t)
	case Underdamped:
		wd := s.DampedFrequency
		sin, cos := math.Sincos(wd * t)
		return math.Exp(-zeta*wn*t) * (x0*cos + zeta*wn*x0/wd*sin)
	case CriticallyDamped:
		return x0 * (1 + wn*t) * math.Exp(-wn*t)
	default:
		root := math.Sqrt(zeta*zeta - 1)
		s1, s2 := -wn*(zeta-root), -wn*(zeta+root)
		a1, a2 := -s2*x0/(s1-s2), s1*x0/(s1-s2)
		return a1*math.Exp(s1*t) + a2*math.Exp(s2*t)
	}
}

// Envelope bounds |At(t)| in the oscillating regimes.
func (s Solution) Envelope(t float64) float64 {
	switch s.Regime {
	case Undamped:
		return s.X0
	case Underdamped:
		return s.X0 / math.Sqrt(1-s.Zeta*s.Zeta) * math.Exp(-s.Zeta*s.NaturalFrequency*t)
	default:
		return math.Abs(s.At(t))
	}
}

// Response samples the displacement at ts.
func (s Solution) Response(ts []float64) []float64 {
	xs := make([]float64, len(ts))
	for i, t := range ts {
		xs[i] = s.At(t)
	}
	return xs
}

func (s Solution) Quantities() []core.Quantity {
	q := []core.Quantity{
		{Name: "Natural frequency", Symbol: "ωn", Value: s.NaturalFrequency, Unit: "rad/s", Precision: 3},
		{Name: "Natural frequency", Symbol: "fn", Value: s.NaturalFrequencyHz, Unit: "Hz", Precision: 3},
		{Name: "Damping ratio", Symbol: "ζ", Value: s.Zeta, Precision: 1},
	}
	if s.DampedFrequency > 0 {
		q = append(q,
			core.Quantity{Name: "Damped frequency", Symbol: "ωd", Value: s.DampedFrequency, Unit: "rad/s", Precision: 3},
			core.Quantity{Name: "Damped period", Symbol: "Td", Value: s.DampedPeriod, Unit: "s", Precision: 3},
		)
	}
	if s.Regime == Underdamped {
		q = append(q, core.Quantity{Name: "Logarithmic decrement", Symbol: "δ", Value: s.LogarithmicDecrement, Precision: 3})
	}
	return q
}
