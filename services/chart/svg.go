// Package chartsvc draws plot figures as SVG with go-chart.
package chartsvc

import (
	"bytes"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/trezcool/swk211/core/plot"
)

const (
	lineWidth   = 2.0
	fontSize    = 10.0
	legendWidth = 110
)

var padding = chart.Box{Top: 30, Left: 20, Right: 20, Bottom: 20}

// Renderer turns a plot.Figure into an SVG document of a fixed size.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// SVG renders fig and returns the document.
func (r *Renderer) SVG(fig plot.Figure) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, fig); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render writes fig to w as SVG.
func (r *Renderer) Render(w io.Writer, fig plot.Figure) error {
	if !(fig.X.Max > fig.X.Min) || !(fig.Y.Max > fig.Y.Min) {
		return errors.Errorf("chartsvc: empty axis range x=[%g, %g] y=[%g, %g]", fig.X.Min, fig.X.Max, fig.Y.Min, fig.Y.Max)
	}
	if fig.EqualAspect {
		fig.X, fig.Y = r.equalAspect(fig.X, fig.Y)
	}

	ch := chart.Chart{
		Title:      fig.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: padding},
		XAxis:      chart.XAxis{Name: fig.X.Title, Range: axisRange(fig.X), Ticks: ticks(fig.X), Style: axisStyle(fig.X)},
		YAxis:      chart.YAxis{Name: fig.Y.Title, Range: axisRange(fig.Y), Ticks: ticks(fig.Y), Style: axisStyle(fig.Y)},
	}

	// keeps the chart valid when no trace is drawn as a series
	ch.Series = append(ch.Series, chart.ContinuousSeries{
		Style:   chart.Style{Hidden: true},
		XValues: []float64{fig.X.Min, fig.X.Max},
		YValues: []float64{fig.Y.Min, fig.Y.Max},
	})
	for _, t := range fig.Traces {
		if t.Mode == plot.ModeLines || t.Mode == plot.ModeLinesMarkers {
			ch.Series = append(ch.Series, chart.ContinuousSeries{
				Name:    t.Name,
				XValues: t.X,
				YValues: t.Y,
				Style:   chart.Style{StrokeColor: color(t.Color), StrokeWidth: lineWidth},
			})
		}
	}
	if len(fig.Annotations) > 0 {
		notes := make([]chart.Value2, len(fig.Annotations))
		for i, a := range fig.Annotations {
			notes[i] = chart.Value2{XValue: a.X, YValue: a.Y, Label: a.Text}
		}
		ch.Series = append(ch.Series, chart.AnnotationSeries{Annotations: notes})
	}

	p := projection{x: fig.X, y: fig.Y}
	ch.Elements = []chart.Renderable{
		p.fills(fig.Traces),
		p.markers(fig.Traces),
		legend(fig.Traces),
	}
	return errors.Wrap(ch.Render(chart.SVG, w), "chartsvc: rendering")
}

// equalAspect widens the shorter axis so that one data unit has the same
// length on both axes of the plotting area.
func (r *Renderer) equalAspect(x, y plot.Axis) (plot.Axis, plot.Axis) {
	w := float64(r.Width - padding.Left - padding.Right)
	h := float64(r.Height - padding.Top - padding.Bottom)
	if w <= 0 || h <= 0 {
		return x, y
	}
	dx, dy := x.Max-x.Min, y.Max-y.Min
	if dx/w > dy/h {
		grow := (dx*h/w - dy) / 2
		y.Min, y.Max = y.Min-grow, y.Max+grow
	} else {
		grow := (dy*w/h - dx) / 2
		x.Min, x.Max = x.Min-grow, x.Max+grow
	}
	return x, y
}

func axisRange(a plot.Axis) *chart.ContinuousRange {
	return &chart.ContinuousRange{Min: a.Min, Max: a.Max}
}

func axisStyle(a plot.Axis) chart.Style {
	return chart.Style{Hidden: a.Hidden}
}

func ticks(a plot.Axis) []chart.Tick {
	if len(a.Ticks) == 0 {
		return nil
	}
	out := make([]chart.Tick, len(a.Ticks))
	for i, t := range a.Ticks {
		out[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

func color(hex string) drawing.Color {
	if hex == "" {
		return drawing.ColorBlack
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// projection maps data coordinates onto the plotting area.
type projection struct {
	x, y plot.Axis
}

func (p projection) point(box chart.Box, x, y float64) (int, int) {
	px := float64(box.Left) + (x-p.x.Min)/(p.x.Max-p.x.Min)*float64(box.Width())
	py := float64(box.Bottom) - (y-p.y.Min)/(p.y.Max-p.y.Min)*float64(box.Height())
	return int(math.Round(px)), int(math.Round(py))
}

func (p projection) fills(traces []plot.Trace) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, _ chart.Style) {
		for _, t := range traces {
			if t.Mode != plot.ModeFill || len(t.X) < 3 {
				continue
			}
			r.SetFillColor(color(t.FillColor))
			r.SetStrokeColor(color(t.Color))
			r.SetStrokeWidth(1)
			x0, y0 := p.point(box, t.X[0], t.Y[0])
			r.MoveTo(x0, y0)
			for i := 1; i < len(t.X); i++ {
				r.LineTo(p.point(box, t.X[i], t.Y[i]))
			}
			r.Close()
			r.FillStroke()
		}
	}
}

func (p projection) markers(traces []plot.Trace) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		r.SetFont(defaults.Font)
		r.SetFontSize(fontSize)
		for _, t := range traces {
			if !t.HasMarkers() {
				continue
			}
			size := t.MarkerSize
			if size <= 0 {
				size = 6
			}
			for i := range t.X {
				px, py := p.point(box, t.X[i], t.Y[i])
				drawSymbol(r, t.Symbol, color(t.Color), size, px, py)
				if i < len(t.Text) && t.Text[i] != "" {
					r.SetFontColor(color(t.Color))
					tb := r.MeasureText(t.Text[i])
					r.Text(t.Text[i], px-tb.Width()/2, py+int(size)+tb.Height())
				}
			}
		}
	}
}

func drawSymbol(r chart.Renderer, sym plot.Symbol, c drawing.Color, size float64, x, y int) {
	half := int(size / 2)
	r.SetStrokeColor(c)
	r.SetFillColor(c)
	r.SetStrokeWidth(lineWidth)
	switch sym {
	case plot.SymbolTriangleUp:
		r.MoveTo(x, y-half)
		r.LineTo(x+half, y+half)
		r.LineTo(x-half, y+half)
		r.Close()
		r.FillStroke()
	case plot.SymbolX:
		r.MoveTo(x-half, y-half)
		r.LineTo(x+half, y+half)
		r.Stroke()
		r.MoveTo(x-half, y+half)
		r.LineTo(x+half, y-half)
		r.Stroke()
	default:
		r.Circle(size/2, x, y)
		r.FillStroke()
	}
}

// legend lists the traces flagged for it in the top right corner.
func legend(traces []plot.Trace) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		r.SetFont(defaults.Font)
		r.SetFontSize(fontSize)
		r.SetFontColor(drawing.ColorBlack)
		x, y := box.Right-legendWidth, box.Top+int(fontSize)
		for _, t := range traces {
			if !t.Legend || t.Name == "" {
				continue
			}
			r.SetStrokeColor(color(t.Color))
			r.SetStrokeWidth(lineWidth)
			r.MoveTo(x, y-int(fontSize)/3)
			r.LineTo(x+20, y-int(fontSize)/3)
			r.Stroke()
			r.Text(t.Name, x+26, y)
			y += int(fontSize) + 6
		}
	}
}
