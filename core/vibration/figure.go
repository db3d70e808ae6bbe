package vibration

import (
	"math"

	"github.com/trezcool/swk211/core/numeric"
	"github.com/trezcool/swk211/core/plot"
)

const (
	window  = 10.0 // [s]
	samples = 1000
)

// Times returns the sample instants of the response figure.
func Times() []float64 {
	return numeric.Linspace(0, window, samples)
}

// Figure plots the displacement over the first ten seconds, with the decay
// envelope when the system oscillates.
func Figure(s Solution) plot.Figure {
	ts := Times()
	xs := s.Response(ts)

	peak := s.X0
	for _, x := range xs {
		peak = math.Max(peak, math.Abs(x))
	}

	fig := plot.Figure{
		Title: "Free Vibration (" + s.Regime.String() + ")",
		X:     plot.Axis{Title: "Time [s]", Min: 0, Max: window},
	}
	if s.Regime == Underdamped {
		upper := numeric.Map(ts, s.Envelope)
		lower := numeric.Map(upper, func(e float64) float64 { return -e })
		peak = math.Max(peak, upper[0])
		env := plot.Line("Envelope", ts, upper, plot.Gray)
		env.Legend = true
		fig.Add(env, plot.Line("", ts, lower, plot.Gray))
	}
	resp := plot.Line("Displacement", ts, xs, plot.Blue)
	resp.Legend = true
	fig.Add(resp)

	fig.Y = plot.Axis{Title: "Displacement [m]", Min: -1.1 * peak, Max: 1.1 * peak}
	return fig
}
