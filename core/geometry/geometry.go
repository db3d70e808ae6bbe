// Package geometry provides the few planar shapes the diagrams are drawn from.
// Angles are in degrees, positive counter-clockwise.
package geometry

import "math"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rotate turns p by deg degrees about origin.
func (p Point) Rotate(deg float64, origin Point) Point {
	sin, cos := math.Sincos(Radians(deg))
	dx, dy := p.X-origin.X, p.Y-origin.Y
	return Point{
		X: origin.X + dx*cos - dy*sin,
		Y: origin.Y + dx*sin + dy*cos,
	}
}

// Polar returns the point at distance r from origin in direction deg.
func Polar(origin Point, deg, r float64) Point {
	sin, cos := math.Sincos(Radians(deg))
	return Point{X: origin.X + r*cos, Y: origin.Y + r*sin}
}

// Path is an open polyline.
type Path []Point

func (p Path) Rotate(deg float64, origin Point) Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[i] = pt.Rotate(deg, origin)
	}
	return out
}

// XY splits the path into coordinate slices.
func (p Path) XY() (xs, ys []float64) {
	xs = make([]float64, len(p))
	ys = make([]float64, len(p))
	for i, pt := range p {
		xs[i], ys[i] = pt.X, pt.Y
	}
	return xs, ys
}

// Polygon is a simple polygon given by its vertices; the closing edge is implicit.
type Polygon []Point

func (pg Polygon) Rotate(deg float64, origin Point) Polygon {
	return Polygon(Path(pg).Rotate(deg, origin))
}

// Ring returns the closed outline (first vertex repeated at the end).
func (pg Polygon) Ring() Path {
	if len(pg) == 0 {
		return nil
	}
	ring := make(Path, 0, len(pg)+1)
	ring = append(ring, pg...)
	return append(ring, pg[0])
}

// SignedArea is positive for counter-clockwise vertex order.
func (pg Polygon) SignedArea() float64 {
	var a float64
	for i := range pg {
		j := (i + 1) % len(pg)
		a += pg[i].X*pg[j].Y - pg[j].X*pg[i].Y
	}
	return a / 2
}

func (pg Polygon) Area() float64 {
	return math.Abs(pg.SignedArea())
}

// Centroid is the area centroid; degenerate polygons yield the vertex mean.
func (pg Polygon) Centroid() Point {
	a := pg.SignedArea()
	if a == 0 {
		var c Point
		for _, pt := range pg {
			c.X += pt.X
			c.Y += pt.Y
		}
		if n := float64(len(pg)); n > 0 {
			c.X /= n
			c.Y /= n
		}
		return c
	}
	var cx, cy float64
	for i := range pg {
		j := (i + 1) % len(pg)
		cross := pg[i].X*pg[j].Y - pg[j].X*pg[i].Y
		cx += (pg[i].X + pg[j].X) * cross
		cy += (pg[i].Y + pg[j].Y) * cross
	}
	return Point{X: cx / (6 * a), Y: cy / (6 * a)}
}

// Rect is the axis-aligned rectangle spanning (x0, y0)-(x1, y1).
func Rect(x0, y0, x1, y1 float64) Polygon {
	return Polygon{{x0, y0}, {x0, y1}, {x1, y1}, {x1, y0}}
}

// Circle approximates a circle with n vertices.
func Circle(center Point, r float64, n int) Polygon {
	pg := make(Polygon, n)
	for i := range pg {
		pg[i] = Polar(center, 360*float64(i)/float64(n), r)
	}
	return pg
}

// Arc samples a circular arc from startDeg to endDeg with steps segments.
// A start angle past the end angle wraps the start around by one turn.
func Arc(center Point, startDeg, endDeg, r float64, steps int) Path {
	if startDeg > endDeg {
		startDeg -= 360
	}
	if steps < 1 {
		steps = 1
	}
	width := (endDeg - startDeg) / float64(steps)
	arc := make(Path, steps+1)
	for i := range arc {
		arc[i] = Polar(center, startDeg+float64(i)*width, r)
	}
	arc[steps] = Polar(center, endDeg, r)
	return arc
}

// Sector is the pie slice bounded by Arc and the two radii.
func Sector(center Point, startDeg, endDeg, r float64, steps int) Polygon {
	arc := Arc(center, startDeg, endDeg, r, steps)
	pg := make(Polygon, 0, len(arc)+1)
	pg = append(pg, center)
	return append(pg, arc...)
}

func Radians(deg float64) float64 { return deg * math.Pi / 180 }
