// Package friction decides whether two blocks tied over a pulley system slip
// on an incline, and in which direction.
package friction

import (
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/swk211/core"
	"github.com/trezcool/swk211/core/geometry"
)

const Gravity = 9.81 // [m/s²]

type SlipCase int

const (
	Static          SlipCase = 0
	TopUpBottomDown SlipCase = 1 // the top block slides up, the bottom block down
	TopDownBottomUp SlipCase = 2 // the top block slides down, the bottom block up
)

func (c SlipCase) String() string {
	switch c {
	case TopUpBottomDown:
		return "top-up/bottom-down"
	case TopDownBottomUp:
		return "top-down/bottom-up"
	default:
		return "static"
	}
}

func (c SlipCase) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Tensions are the cable tensions needed to hold each block at impending
// motion in either direction.
type Tensions struct {
	Top1    float64 `json:"top1"`
	Top2    float64 `json:"top2"`
	Bottom1 float64 `json:"bottom1"`
	Bottom2 float64 `json:"bottom2"`
}

// ComputeTensions evaluates the four tensions for weights wt, wb [N],
// static coefficient mu and incline deg.
func ComputeTensions(wt, wb, mu, deg float64) Tensions {
	sin, cos := math.Sincos(geometry.Radians(deg))
	return Tensions{
		Top1:    0.5*wt*sin + 0.5*mu*wt*cos,
		Top2:    0.5*wt*sin - 0.5*mu*wt*cos,
		Bottom1: wb*sin - mu*(2*wt+wb)*cos,
		Bottom2: wb*sin + mu*(2*wt+wb)*cos,
	}
}

// Classify applies the slip decision table to the tensions.
//
// The third branch and the fallback both yield Static; the table is kept as
// taught rather than collapsed.
func (t Tensions) Classify() SlipCase {
	switch {
	case t.Top1 <= t.Bottom1 && t.Top2 < t.Bottom2:
		return TopUpBottomDown
	case t.Bottom2 <= t.Top2 && t.Bottom1 < t.Top1:
		return TopDownBottomUp
	case t.Bottom1 < t.Top1 && t.Top2 < t.Bottom2:
		return Static
	default:
		return Static
	}
}

// Classify returns the slip case of the two-block system.
func Classify(wt, wb, mu, deg float64) SlipCase {
	return ComputeTensions(wt, wb, mu, deg).Classify()
}

type Input struct {
	TopMass    float64 `json:"top_mass" query:"top_mass" validate:"slider=friction.top_mass"`          // [kg]
	BottomMass float64 `json:"bottom_mass" query:"bottom_mass" validate:"slider=friction.bottom_mass"` // [kg]
	Friction   float64 `json:"friction" query:"friction" validate:"slider=friction.friction"`          // slider position, see Coefficient
	Angle      float64 `json:"angle" query:"angle" validate:"slider=friction.angle"`                   // [deg]
}

// DefaultInput holds the initial slider positions.
func DefaultInput() Input {
	p := core.MustPage("friction")
	return Input{
		TopMass:    p.Default("top_mass"),
		BottomMass: p.Default("bottom_mass"),
		Friction:   p.Default("friction"),
		Angle:      p.Default("angle"),
	}
}

func (in Input) Validate(validate *validator.Validate) error {
	return validate.Struct(in)
}

// Coefficient is the static friction coefficient the slider stands for.
func (in Input) Coefficient() float64 {
	s, _ := core.MustPage("friction").Slider("friction")
	return s.Scaled(in.Friction)
}

type Solution struct {
	Input        Input    `json:"input"`
	TopWeight    float64  `json:"top_weight"`    // [N]
	BottomWeight float64  `json:"bottom_weight"` // [N]
	Coefficient  float64  `json:"mu"`
	Tensions     Tensions `json:"tensions"`
	Case         SlipCase `json:"case"`
}

func Solve(in Input) Solution {
	sol := Solution{
		Input:        in,
		TopWeight:    in.TopMass * Gravity,
		BottomWeight: in.BottomMass * Gravity,
		Coefficient:  in.Coefficient(),
	}
	sol.Tensions = ComputeTensions(sol.TopWeight, sol.BottomWeight, sol.Coefficient, in.Angle)
	sol.Case = sol.Tensions.Classify()
	return sol
}

// Describe is the answer shown to the student.
func Describe(c SlipCase) []string {
	switch c {
	case TopUpBottomDown:
		return []string{"The top block slides UPWARDS.", "The bottom block slides DOWNWARDS."}
	case TopDownBottomUp:
		return []string{"The top block slides DOWNWARDS.", "The bottom block slides UPWARDS."}
	default:
		return []string{"The blocks DO NOT slide."}
	}
}

func (s Solution) Quantities() []core.Quantity {
	return []core.Quantity{
		{Name: "Friction coefficient", Symbol: "μs", Value: s.Coefficient, Precision: 2},
		{Name: "Top block weight", Symbol: "Wt", Value: s.TopWeight, Unit: "N", Precision: 1},
		{Name: "Bottom block weight", Symbol: "Wb", Value: s.BottomWeight, Unit: "N", Precision: 1},
	}
}
