// Package inertia rotates second moments of area (Mohr's circle) and uses the
// result for the deflection of a simply supported channel beam.
package inertia

import (
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/swk211/core"
	"github.com/trezcool/swk211/core/geometry"
)

// Section holds second moments of area about centroidal x/y axes [mm⁴].
type Section struct {
	Ix  float64 `json:"ix"`
	Iy  float64 `json:"iy"`
	Ixy float64 `json:"ixy"`
}

// Channel is the section used on the deflections page.
var Channel = Section{Ix: 759_071, Iy: 9_941_055}

// Centre is the abscissa of the Mohr circle centre.
func (s Section) Centre() float64 { return (s.Ix + s.Iy) / 2 }

// Radius of the Mohr circle.
func (s Section) Radius() float64 { return math.Hypot((s.Ix-s.Iy)/2, s.Ixy) }

// Rotated second moments about u/v axes turned by Angle degrees from x/y.
type Rotated struct {
	Angle float64 `json:"angle"`
	Iu    float64 `json:"iu"`
	Iv    float64 `json:"iv"`
	Iuv   float64 `json:"iuv"`
}

// Transform rotates the section axes by deg degrees.
// Iu + Iv == Ix + Iy for every angle.
func Transform(s Section, deg float64) Rotated {
	sin2, cos2 := math.Sincos(2 * geometry.Radians(deg))
	mean, half := s.Centre(), (s.Ix-s.Iy)/2
	return Rotated{
		Angle: deg,
		Iu:    mean + half*cos2 - s.Ixy*sin2,
		Iv:    mean - half*cos2 + s.Ixy*sin2,
		Iuv:   half*sin2 + s.Ixy*cos2,
	}
}

type Input struct {
	Modulus float64 `json:"modulus" query:"modulus" validate:"slider=deflections.modulus"` // E [GPa]
	Angle   float64 `json:"angle" query:"angle" validate:"slider=deflections.angle"`       // [deg]
}

// DefaultInput holds the initial slider positions.
func DefaultInput() Input {
	p := core.MustPage("deflections")
	return Input{Modulus: p.Default("modulus"), Angle: p.Default("angle")}
}

func (in Input) Validate(validate *validator.Validate) error {
	return validate.Struct(in)
}

type Solution struct {
	Input     Input   `json:"input"`
	Section   Section `json:"section"`
	Rotated   Rotated `json:"rotated"`
	Beam      Beam    `json:"beam"`
	MaxDefl   float64 `json:"max_deflection"` // [mm], negative is downwards
	Stiffness float64 `json:"ei"`             // E·Iu [N·mm²]
}

// Solve rotates the channel and loads it as the standard beam.
func Solve(in Input) Solution {
	rot := Transform(Channel, in.Angle)
	beam := StandardBeam
	E := in.Modulus * 1000 // MPa
	return Solution{
		Input:     in,
		Section:   Channel,
		Rotated:   rot,
		Beam:      beam,
		MaxDefl:   beam.Deflection(beam.Length/2, E, rot.Iu),
		Stiffness: E * rot.Iu,
	}
}

func (s Solution) Quantities() []core.Quantity {
	return []core.Quantity{
		{Name: "Second moment about u", Symbol: "Iu", Value: s.Rotated.Iu, Unit: "mm⁴", Precision: -1},
		{Name: "Second moment about v", Symbol: "Iv", Value: s.Rotated.Iv, Unit: "mm⁴", Precision: -1},
		{Name: "Product moment", Symbol: "Iuv", Value: s.Rotated.Iuv, Unit: "mm⁴", Precision: -1},
		{Name: "Maximum deflection", Symbol: "δmax", Value: s.MaxDefl, Unit: "mm", Precision: 2},
	}
}
