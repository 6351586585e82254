package stroke

import "math"

// Point is a 2D point, kept local to this package to avoid an import cycle
// with the root package.
type Point struct{ X, Y float64 }

func (p Point) add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) mul(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}
func (p Point) length() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

// leftPerp returns the left perpendicular of v: rotate 90 degrees
// counter-clockwise in a y-down coordinate system.
func leftPerp(v Point) Point { return Point{-v.Y, v.X} }

// normalize returns v scaled to unit length, or the zero vector if v is
// zero-length.
func normalize(v Point) Point {
	l := v.length()
	if l == 0 {
		return Point{}
	}
	return Point{v.X / l, v.Y / l}
}

// Polyline is an input stroke path: a sequence of points plus a closed
// flag. It has the same shape as the root package's Contour but lives
// here as its own type to keep this package import-cycle-free.
type Polyline struct {
	Points []Point
	Closed bool
}

// Contour is a synthesized filled contour, always closed.
type Contour struct {
	Points []Point
	Closed bool
}

// Expand synthesizes the filled contours that reproduce the thick stroke
// of every polyline in lines at the given width and miter limit, per spec
// §4.7. Polylines with fewer than 2 points are skipped.
func Expand(lines []Polyline, width, miterLimit float64) []Contour {
	hw := width / 2
	var out []Contour
	for _, pl := range lines {
		out = append(out, expandOne(pl, hw, miterLimit)...)
	}
	return out
}

func expandOne(pl Polyline, hw, miterLimit float64) []Contour {
	n := len(pl.Points)
	if n < 2 {
		return nil
	}
	if n == 2 {
		if pl.Points[0] == pl.Points[1] {
			return nil
		}
		return []Contour{quad(pl.Points[0], pl.Points[1], hw, true, true)}
	}

	var out []Contour

	segCount := n - 1
	if pl.Closed {
		segCount = n
	}
	for i := 0; i < segCount; i++ {
		a := pl.Points[i%n]
		b := pl.Points[(i+1)%n]
		if a == b {
			continue
		}
		startCap := !pl.Closed && i == 0
		endCap := !pl.Closed && i == segCount-1
		out = append(out, quad(a, b, hw, startCap, endCap))
	}

	jointCount := n - 2
	if pl.Closed {
		jointCount = n
	}
	for i := 0; i < jointCount; i++ {
		var a, b, c Point
		if pl.Closed {
			a = pl.Points[i%n]
			b = pl.Points[(i+1)%n]
			c = pl.Points[(i+2)%n]
		} else {
			a, b, c = pl.Points[i], pl.Points[i+1], pl.Points[i+2]
		}
		if j, ok := joint(a, b, c, hw, miterLimit); ok {
			out = append(out, j)
		}
	}

	return out
}

// quad builds the filled quad around segment a->b offset by hw on each
// side. When startCap/endCap is set, the corresponding endpoint is first
// extended by hw along the segment direction (a butt-style cap, per
// spec §4.7).
func quad(a, b Point, hw float64, startCap, endCap bool) Contour {
	dir := normalize(b.sub(a))
	if startCap {
		a = a.sub(dir.mul(hw))
	}
	if endCap {
		b = b.add(dir.mul(hw))
	}
	n := leftPerp(dir).mul(hw)
	return Contour{
		Points: []Point{a.add(n), b.add(n), b.sub(n), a.sub(n)},
		Closed: true,
	}
}

// joint builds the join geometry at vertex b between incoming segment a->b
// and outgoing segment b->c: a miter quad B-Q-P-R when the miter length is
// within the limit, a bevel triangle B-Q-R otherwise. Degenerate segments
// (zero length) or a perfectly straight joint (zero cross product, no gap
// to fill) produce no geometry.
func joint(a, b, c Point, hw, miterLimit float64) (Contour, bool) {
	ab := normalize(b.sub(a))
	bc := normalize(c.sub(b))
	if ab == (Point{}) || bc == (Point{}) {
		return Contour{}, false
	}
	cross := ab.cross(bc)
	if cross == 0 {
		return Contour{}, false
	}

	nAB := leftPerp(ab).mul(hw)
	nBC := leftPerp(bc).mul(hw)

	sign := 1.0
	if cross > 0 {
		sign = -1
	}
	q := b.add(nAB.mul(sign))
	r := b.add(nBC.mul(sign))

	// The interior angle at b is pi-theta, where cos(theta) = ab.bc, so
	// the miter length hw/sin((pi-theta)/2) is
	// hw*sqrt(2/(1+ab.bc)): hw*sqrt(2) for a right angle, growing without
	// bound as the turn approaches a full reversal.
	dot := ab.dot(bc)
	denom := 1 + dot
	if denom <= 0 {
		// bc reverses ab (dot == -1): a U-turn, already excluded by the
		// cross==0 check above, but guard the sqrt domain regardless.
		return Contour{}, false
	}
	miterLen := hw * math.Sqrt(2/denom)

	if miterLen > miterLimit*hw {
		return Contour{Points: []Point{b, q, r}, Closed: true}, true
	}

	bisector := normalize(q.sub(b).add(r.sub(b)))
	p := b.add(bisector.mul(miterLen))
	return Contour{Points: []Point{b, q, p, r}, Closed: true}, true
}
