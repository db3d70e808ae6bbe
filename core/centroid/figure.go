package centroid

import (
	"fmt"

	"github.com/trezcool/swk211/core/geometry"
	"github.com/trezcool/swk211/core/plot"
)

const arcSteps = 500

var origin geometry.Point

func frame(title string) plot.Figure {
	return plot.Figure{
		Title:       title,
		X:           plot.Axis{Min: -1.1, Max: 1.1},
		Y:           plot.Axis{Min: -1.1, Max: 1.1},
		EqualAspect: true,
	}
}

func markCentroid(fig *plot.Figure, c Centroid) {
	fig.Add(plot.Marker("Centroid", c.Point(), plot.SymbolX, 10, plot.Red))
	fig.Annotate(c.X+0.35, c.Y, fmt.Sprintf("(%.2f, %.2f)", c.X, c.Y))
}

// ArcFigure draws the arc and its centroid.
func ArcFigure(s Solution) plot.Figure {
	fig := frame("Line Centroid")
	arc := geometry.Arc(origin, s.Input.Start, s.Input.End, Radius, arcSteps)
	fig.Add(plot.PathLine("", arc, plot.Black))
	markCentroid(&fig, s.Arc)
	return fig
}

// SectorFigure draws the filled sector and its centroid.
func SectorFigure(s Solution) plot.Figure {
	fig := frame("Area Centroid")
	sector := geometry.Sector(origin, s.Input.Start, s.Input.End, Radius, arcSteps)
	fig.Add(plot.Filled("", sector, plot.LightGray, plot.LightGray))
	markCentroid(&fig, s.Sector)
	return fig
}
