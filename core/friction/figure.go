package friction

import (
	"fmt"

	"github.com/trezcool/swk211/core/geometry"
	"github.com/trezcool/swk211/core/plot"
)

const slipOffset = 0.5 // how far a slipping block is drawn from its rest position

var (
	hinge = geometry.Point{X: 5, Y: 0} // foot of the incline; everything turns about it

	incline = geometry.Path{{X: 0, Y: 2}, {X: 0, Y: 0}, {X: 5, Y: 0}}

	bottomPulley = geometry.Circle(geometry.Point{X: 0.75, Y: 0.875}, 0.375, 64)
	topPulley    = geometry.Circle(geometry.Point{X: 1.75, Y: 1.5}, 0.25, 64)
)

// Figure draws the incline, pulleys, cables and both blocks tilted by the
// incline angle, with the slipping block moved along the slope.
func Figure(s Solution) plot.Figure {
	var dtop, dbot float64
	switch s.Case {
	case TopUpBottomDown:
		dbot = slipOffset
	case TopDownBottomUp:
		dtop = slipOffset
	}
	tilt := -s.Input.Angle

	fig := plot.Figure{
		X:           plot.Axis{Min: -1, Max: 7.5, Hidden: true},
		Y:           plot.Axis{Min: -1, Max: 6.5, Hidden: true},
		EqualAspect: true,
	}
	fig.Add(
		plot.Line("", []float64{0, 5}, []float64{0, 0}, plot.Black),
		plot.PathLine("", incline.Rotate(tilt, hinge), plot.Black),
		plot.Filled("", bottomPulley.Rotate(tilt, hinge), plot.Black, plot.Black),
		plot.Filled("", topPulley.Rotate(tilt, hinge), plot.Black, plot.Black),
	)

	cables := []geometry.Path{
		{{X: 0.75, Y: 0.5}, {X: 2.5 + dbot, Y: 0.5}},
		{{X: 0.75, Y: 1.25}, {X: 1.75, Y: 1.25}},
		{{X: 0, Y: 1.75}, {X: 1.75, Y: 1.75}},
		{{X: 0, Y: 0.875}, {X: 0.75, Y: 0.875}},
		{{X: 1.75, Y: 1.5}, {X: 2.5 + dtop, Y: 1.5}},
	}
	for _, c := range cables {
		fig.Add(plot.PathLine("", c.Rotate(tilt, hinge), plot.Black))
	}

	bottom := geometry.Rect(2.5+dbot, 0, 4+dbot, 1).Rotate(tilt, hinge)
	top := geometry.Rect(2.5+dtop, 1, 4+dtop, 2).Rotate(tilt, hinge)
	fig.Add(
		plot.Filled(fmt.Sprintf("Mass = %g kg", s.Input.BottomMass), bottom, plot.Black, plot.Black),
		plot.Filled(fmt.Sprintf("Mass = %g kg", s.Input.TopMass), top, plot.Blue, plot.Blue),
	)
	return fig
}
