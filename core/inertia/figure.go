package inertia

import (
	"fmt"
	"math"

	"github.com/trezcool/swk211/core/geometry"
	"github.com/trezcool/swk211/core/numeric"
	"github.com/trezcool/swk211/core/plot"
)

const (
	circleSamples = 500
	beamSamples   = 200
	wall          = 5.0 // channel wall thickness [mm]
)

// ChannelOutline is the drawn channel cross-section (not to the scale of Channel).
var ChannelOutline = geometry.Polygon{
	pt(25, 100), pt(25, 175), pt(275, 175), pt(275, 100), pt(255, 100), pt(255, 100+wall),
	pt(275-wall, 100+wall), pt(275-wall, 175-wall), pt(25+wall, 175-wall),
	pt(25+wall, 100+wall), pt(45, 100+wall), pt(45, 100),
}

func pt(x, y float64) geometry.Point { return geometry.Point{X: x, Y: y} }

// MohrFigure draws the Mohr circle of s and the diameter for the rotated axes.
func MohrFigure(s Section, r Rotated) plot.Figure {
	c, rad := s.Centre(), s.Radius()
	fig := plot.Figure{
		X:           plot.Axis{Title: "I [mm⁴]", Min: 0, Max: 10e6},
		Y:           plot.Axis{Title: "Ixy [mm⁴]", Min: -5e6 - s.Ix/2, Max: 5e6 + s.Ix/2},
		EqualAspect: true,
	}

	phis := numeric.Linspace(0, 2*math.Pi, circleSamples)
	xs := numeric.Map(phis, func(phi float64) float64 { return c + rad*math.Cos(phi) })
	ys := numeric.Map(phis, func(phi float64) float64 { return rad * math.Sin(phi) })
	fig.Add(plot.Line("Mohr Circle", xs, ys, plot.Black))

	fig.Add(plot.Trace{
		Name:   "(Iu/Iv, Iuv)",
		X:      []float64{r.Iu, r.Iv},
		Y:      []float64{r.Iuv, -r.Iuv},
		Mode:   plot.ModeLinesMarkers,
		Color:  plot.Red,
		Symbol: plot.SymbolCircle,
	})
	return fig
}

// ChannelFigure draws ChannelOutline turned by deg about its centroid with the
// horizontal axis and the rotated u axis through the centroid.
func ChannelFigure(deg float64) plot.Figure {
	fig := plot.Figure{
		X:           plot.Axis{Min: -50, Max: 300, Hidden: true},
		Y:           plot.Axis{Min: -50, Max: 300, Hidden: true},
		EqualAspect: true,
	}
	ctr := ChannelOutline.Centroid()
	axis := geometry.Path{{X: 0, Y: ctr.Y}, {X: 300, Y: ctr.Y}}

	fig.Add(
		plot.Filled("", ChannelOutline.Rotate(deg, ctr), plot.Black, plot.Black),
		plot.PathLine("", axis, plot.Black),
		plot.PathLine("", axis.Rotate(deg, ctr), plot.Red),
	)
	return fig
}

// DeflectionFigure draws the deflected beam, its supports and the midspan deflection.
func DeflectionFigure(s Solution) plot.Figure {
	b := s.Beam
	E := s.Input.Modulus * 1000
	defl := func(x float64) float64 { return b.Deflection(x, E, s.Rotated.Iu) }

	fig := plot.Figure{
		X: plot.Axis{Min: -250, Max: b.Length + 250, Hidden: true},
		Y: plot.Axis{Title: "Deflection [mm]", Min: math.Min(-200, 1.1*s.MaxDefl), Max: 50},
	}

	xs := numeric.Linspace(0, b.Length, beamSamples)
	fig.Add(
		plot.Line("Deflection", xs, numeric.Map(xs, defl), plot.Blue),
		plot.Marker("", geometry.Point{X: 0, Y: -11}, plot.SymbolTriangleUp, 20, plot.Black),
		plot.Marker("", geometry.Point{X: b.Length, Y: -11}, plot.SymbolCircle, 20, plot.Black),
	)

	peak := plot.Marker("Maximum Deflection", geometry.Point{X: b.Length / 2, Y: s.MaxDefl}, plot.SymbolCircle, 6, plot.Black)
	peak.Text = []string{fmt.Sprintf("%.2f mm", s.MaxDefl)}
	fig.Add(peak)

	// load arrow
	fig.Add(plot.Line("", []float64{b.Length / 2, b.Length / 2}, []float64{40, 0}, plot.Red))
	fig.Annotate(b.Length/2, 45, fmt.Sprintf("%g kN", b.Load/1000))
	return fig
}
