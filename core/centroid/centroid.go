// Package centroid locates the centroid of a circular arc and of the sector
// it bounds, for a circle centred at the origin.
package centroid

import (
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/swk211/core"
	"github.com/trezcool/swk211/core/geometry"
)

// Radius of the circle drawn on the centroids page.
const Radius = 1.0

var ErrDegenerateSector = errors.New("start angle must be smaller than end angle")

// degenerateMessage is shown to the student in place of the figures.
const degenerateMessage = "Starting angle must be smaller than ending angle!"

type Input struct {
	Start float64 `json:"start_angle" query:"start_angle" validate:"slider=centroids.start_angle"` // [deg]
	End   float64 `json:"end_angle" query:"end_angle" validate:"slider=centroids.end_angle"`       // [deg]
}

// DefaultInput holds the initial slider positions.
func DefaultInput() Input {
	p := core.MustPage("centroids")
	return Input{Start: p.Default("start_angle"), End: p.Default("end_angle")}
}

func (in Input) Validate(validate *validator.Validate) error {
	return validate.Struct(in)
}

// Centroid of a line (Size is its length) or an area (Size is its area).
type Centroid struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
}

func (c Centroid) Point() geometry.Point { return geometry.Point{X: c.X, Y: c.Y} }

func checkAngles(sa, ea float64) error {
	if sa >= ea {
		return core.NewValidationError(ErrDegenerateSector,
			core.FieldError{Field: "end_angle", Error: degenerateMessage})
	}
	return nil
}

// Arc returns the centroid of the arc of radius r from sa to ea degrees.
func Arc(r, sa, ea float64) (Centroid, error) {
	if err := checkAngles(sa, ea); err != nil {
		return Centroid{}, err
	}
	theta := geometry.Radians(ea - sa)
	length := r * theta
	ssa, csa := math.Sincos(geometry.Radians(sa))
	sea, cea := math.Sincos(geometry.Radians(ea))
	return Centroid{
		X:    r * r * (sea - ssa) / length,
		Y:    r * r * (csa - cea) / length,
		Size: length,
	}, nil
}

// Sector returns the centroid of the circular sector of radius r from sa to
// ea degrees.
func Sector(r, sa, ea float64) (Centroid, error) {
	if err := checkAngles(sa, ea); err != nil {
		return Centroid{}, err
	}
	area := r * r * geometry.Radians(ea-sa) / 2
	ssa, csa := math.Sincos(geometry.Radians(sa))
	sea, cea := math.Sincos(geometry.Radians(ea))
	r3 := r * r * r
	return Centroid{
		X:    r3 * (sea - ssa) / (3 * area),
		Y:    r3 * (csa - cea) / (3 * area),
		Size: area,
	}, nil
}

type Solution struct {
	Input  Input    `json:"input"`
	Arc    Centroid `json:"arc"`
	Sector Centroid `json:"sector"`
}

func Solve(in Input) (Solution, error) {
	arc, err := Arc(Radius, in.Start, in.End)
	if err != nil {
		return Solution{}, err
	}
	sector, err := Sector(Radius, in.Start, in.End)
	if err != nil {
		return Solution{}, err
	}
	return Solution{Input: in, Arc: arc, Sector: sector}, nil
}

func (s Solution) Quantities() []core.Quantity {
	return []core.Quantity{
		{Name: "Arc length", Symbol: "L", Value: s.Arc.Size, Unit: "m", Precision: 3},
		{Name: "Line centroid x", Symbol: "x̄", Value: s.Arc.X, Unit: "m", Precision: 2},
		{Name: "Line centroid y", Symbol: "ȳ", Value: s.Arc.Y, Unit: "m", Precision: 2},
		{Name: "Sector area", Symbol: "A", Value: s.Sector.Size, Unit: "m²", Precision: 3},
		{Name: "Area centroid x", Symbol: "x̄", Value: s.Sector.X, Unit: "m", Precision: 2},
		{Name: "Area centroid y", Symbol: "ȳ", Value: s.Sector.Y, Unit: "m", Precision: 2},
	}
}
