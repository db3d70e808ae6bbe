// Package plot describes figures independently of how they get drawn.
package plot

import "github.com/trezcool/swk211/core/geometry"

type Mode string

const (
	ModeLines        Mode = "lines"
	ModeMarkers      Mode = "markers"
	ModeLinesMarkers Mode = "lines+markers"
	ModeFill         Mode = "fill" // closed outline, filled with FillColor
)

type Symbol string

const (
	SymbolCircle     Symbol = "circle"
	SymbolTriangleUp Symbol = "triangle-up"
	SymbolX          Symbol = "x"
)

// Colors used across the dashboard.
const (
	Black     = "#000000"
	Blue      = "#0000ff"
	Red       = "#ff0000"
	Gray      = "#808080"
	LightGray = "#b4b4b4"
)

type (
	Trace struct {
		Name       string    `json:"name,omitempty"`
		X          []float64 `json:"x"`
		Y          []float64 `json:"y"`
		Mode       Mode      `json:"mode"`
		Color      string    `json:"color"`
		FillColor  string    `json:"fill_color,omitempty"`
		Symbol     Symbol    `json:"symbol,omitempty"`
		MarkerSize float64   `json:"marker_size,omitempty"`
		Text       []string  `json:"text,omitempty"` // one label per point, drawn below it
		Legend     bool      `json:"legend,omitempty"`
	}

	Tick struct {
		Value float64 `json:"value"`
		Label string  `json:"label"`
	}

	Axis struct {
		Title  string  `json:"title,omitempty"`
		Min    float64 `json:"min"`
		Max    float64 `json:"max"`
		Ticks  []Tick  `json:"ticks,omitempty"`
		Hidden bool    `json:"hidden,omitempty"`
	}

	Annotation struct {
		X    float64 `json:"x"`
		Y    float64 `json:"y"`
		Text string  `json:"text"`
	}

	Figure struct {
		Title       string       `json:"title,omitempty"`
		X           Axis         `json:"x_axis"`
		Y           Axis         `json:"y_axis"`
		EqualAspect bool         `json:"equal_aspect,omitempty"`
		Traces      []Trace      `json:"traces"`
		Annotations []Annotation `json:"annotations,omitempty"`
	}
)

// Add appends traces and returns the figure for chaining.
func (f *Figure) Add(traces ...Trace) *Figure {
	f.Traces = append(f.Traces, traces...)
	return f
}

// Annotate places a text label at (x, y).
func (f *Figure) Annotate(x, y float64, text string) *Figure {
	f.Annotations = append(f.Annotations, Annotation{X: x, Y: y, Text: text})
	return f
}

// Line is a plain polyline trace.
func Line(name string, xs, ys []float64, color string) Trace {
	return Trace{Name: name, X: xs, Y: ys, Mode: ModeLines, Color: color}
}

// PathLine draws a geometry.Path.
func PathLine(name string, p geometry.Path, color string) Trace {
	xs, ys := p.XY()
	return Line(name, xs, ys, color)
}

// Marker is a single point drawn with symbol.
func Marker(name string, at geometry.Point, symbol Symbol, size float64, color string) Trace {
	return Trace{
		Name:       name,
		X:          []float64{at.X},
		Y:          []float64{at.Y},
		Mode:       ModeMarkers,
		Color:      color,
		Symbol:     symbol,
		MarkerSize: size,
	}
}

// Filled draws a polygon filled with fill and outlined with color.
func Filled(name string, pg geometry.Polygon, color, fill string) Trace {
	xs, ys := pg.Ring().XY()
	return Trace{Name: name, X: xs, Y: ys, Mode: ModeFill, Color: color, FillColor: fill}
}

// HasLines reports whether the trace draws connecting segments.
func (t Trace) HasLines() bool {
	return t.Mode == ModeLines || t.Mode == ModeLinesMarkers || t.Mode == ModeFill
}

// HasMarkers reports whether the trace draws a symbol at each point.
func (t Trace) HasMarkers() bool {
	return t.Mode == ModeMarkers || t.Mode == ModeLinesMarkers
}
