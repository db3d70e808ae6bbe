package resonance

import (
	"math"

	"github.com/trezcool/swk211/core/plot"
)

var piTicks = []string{"0", "π/2", "π", "3π/2", "2π", "5π/2", "3π", "7π/2", "4π", "9π/2", "5π", "11π/2", "6π"}

func timeAxis() plot.Axis {
	ticks := make([]plot.Tick, len(piTicks))
	for i, label := range piTicks {
		ticks[i] = plot.Tick{Value: float64(i) * math.Pi / 2, Label: label}
	}
	return plot.Axis{Title: "Time", Min: 0, Max: 6 * math.Pi, Ticks: ticks}
}

func frame(title string) plot.Figure {
	return plot.Figure{
		Title: title,
		X:     timeAxis(),
		Y:     plot.Axis{Title: "Amplitude", Min: -2, Max: 2},
	}
}

// SignalsFigure draws both signals separately.
func SignalsFigure(in Input) plot.Figure {
	fig := frame("")
	ts := Times()
	s1, s2 := in.Signals()
	freq1 := plot.Line("Freq1", ts, s1.Sample(ts), plot.Blue)
	freq2 := plot.Line("Freq2", ts, s2.Sample(ts), plot.Red)
	freq1.Legend, freq2.Legend = true, true
	fig.Add(freq1, freq2)
	return fig
}

// SuperpositionFigure draws the sum of the unit amplitude signals.
func SuperpositionFigure(in Input) plot.Figure {
	fig := frame("Superposition")
	ts := Times()
	fig.Add(plot.Line("superposition", ts, Superpose(ts, in.Components()...), plot.Black))
	return fig
}
