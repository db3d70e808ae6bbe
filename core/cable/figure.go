package cable

import (
	"fmt"

	"github.com/trezcool/swk211/core/geometry"
	"github.com/trezcool/swk211/core/numeric"
	"github.com/trezcool/swk211/core/plot"
)

const curveSamples = 500

// Figure draws the supports, the chord, the cable and its sag at the turning point.
func Figure(s Solution) plot.Figure {
	fig := plot.Figure{
		X:           plot.Axis{Title: "x [m]", Min: -2, Max: Span + 2},
		Y:           plot.Axis{Title: "y [m]", Min: -2, Max: 22},
		EqualAspect: true,
	}

	// supports & chord
	fig.Add(
		plot.Marker("", geometry.Point{X: 0, Y: HeightA - 1}, plot.SymbolTriangleUp, 20, plot.Black),
		plot.Marker("", geometry.Point{X: Span, Y: s.Input.HeightB - 1}, plot.SymbolTriangleUp, 20, plot.Black),
		plot.Line("", []float64{0, Span}, []float64{HeightA, s.Input.HeightB}, plot.Gray),
	)

	xs := numeric.Linspace(0, Span, curveSamples)
	cable := plot.Line("Cable", xs, numeric.Map(xs, s.Y), plot.Blue)
	cable.Legend = true
	fig.Add(cable)

	xt, yt := s.TurningPoint, s.Y(s.TurningPoint)
	turn := plot.Marker("Turning Point", geometry.Point{X: xt, Y: yt}, plot.SymbolCircle, 6, plot.Black)
	turn.Text = []string{fmt.Sprintf("x = %.2f m", xt)}
	fig.Add(turn)

	sag := plot.Trace{
		Name:   "h",
		X:      []float64{xt, xt},
		Y:      []float64{s.Chord(xt), yt},
		Mode:   plot.ModeLinesMarkers,
		Color:  plot.Black,
		Symbol: plot.SymbolCircle,
		Legend: true,
	}
	fig.Add(sag)
	fig.Annotate(xt+2, 0.5*(s.Chord(xt)+yt), fmt.Sprintf("h = %.2f m", s.Sag))
	return fig
}
