// Package raster implements the integer-coverage scan-conversion core: the
// edge record, the six-case segment clipper that builds edges against a
// device rectangle, and the two scanline walks (convex, general winding)
// that turn a sorted edge list into shaded spans.
//
// The package defines its own Point, independent of the root package's, to
// avoid an import cycle: Canvas (root) imports raster, so raster cannot
// import the root package back.
package raster

import (
	"math"

	"github.com/vellum-gfx/raster2d/internal/clip"
)

// Point is a 2D point in device space (after the caller's CTM has already
// been applied).
type Point struct {
	X, Y float64
}

// Edge is one active raster edge: an integer scanline range, the slope of
// x with respect to y, the current x at the scanline being walked, and a
// winding orientation. Edge is immutable after construction except for
// XCurrent, which Advance moves by Slope once per surviving scanline.
type Edge struct {
	YMin, YMax  int     // integer scanlines, YMin < YMax
	Slope       float64 // dx/dy; 0 for vertical clip stubs
	XCurrent    float64 // x at y = YMin+0.5
	Orientation int     // +1 or -1
}

// Advance moves e one scanline forward.
func (e *Edge) Advance() { e.XCurrent += e.Slope }

// roundHalfUp rounds y to the nearest integer scanline with the spec's
// +0.5 bias (round-half-up, matching round(y+0.5) truncated toward
// -infinity being equivalent to floor(y+0.5) for the values this package
// ever rounds).
func roundHalfUp(y float64) int {
	return int(math.Floor(y + 0.5))
}

// BuildEdges appends to out the zero to three edges produced by
// clipping the directed segment p0->p1 against c, per spec §4.3. It
// returns the extended slice.
func BuildEdges(out []Edge, p0, p1 Point, c clip.Rect) []Edge {
	orientation := 1

	// 1. Canonicalize by ascending y.
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		orientation = -orientation
	}

	// 2. Trivial reject.
	if p1.Y < c.Top || p0.Y > c.Bottom {
		return out
	}

	// 3. Clip y against top/bottom by linear x-interpolation.
	if p0.Y < c.Top {
		t := (c.Top - p0.Y) / (p1.Y - p0.Y)
		p0 = Point{X: p0.X + t*(p1.X-p0.X), Y: c.Top}
	}
	if p1.Y > c.Bottom {
		t := (c.Bottom - p0.Y) / (p1.Y - p0.Y)
		p1 = Point{X: p0.X + t*(p1.X-p0.X), Y: c.Bottom}
	}

	// 4. Degenerate after clipping (horizontal, or collapses to one row).
	if roundHalfUp(p0.Y) == roundHalfUp(p1.Y) {
		return out
	}

	// 5. Canonicalize by ascending x. This pair is now x-ascending but,
	// except where p0.Y == p1.Y, no longer necessarily y-ascending: the
	// six-case classification below only needs x-order, and each edge it
	// emits derives its own y_min/y_max and orientation from whichever of
	// its two endpoints actually has the smaller y (see edgeFromPoints),
	// rather than forcing a second global y-re-swap that would just undo
	// this one.
	if p0.X > p1.X {
		p0, p1 = p1, p0
		orientation = -orientation
	}

	// edgeFromPoints builds one Edge from two points on the clipped
	// segment, in either y order, canonicalizing to y-ascending (YMin <
	// YMax) and flipping orient if a and b arrive y-descending. Used for
	// every interior and vertical-stub edge below; a vertical stub is
	// just edgeFromPoints with a.X == b.X, which naturally yields slope 0.
	edgeFromPoints := func(a, b Point, orient int) Edge {
		if a.Y > b.Y {
			a, b = b, a
			orient = -orient
		}
		s := 0.0
		if b.Y != a.Y {
			s = (b.X - a.X) / (b.Y - a.Y)
		}
		yLo := roundHalfUp(a.Y)
		return Edge{
			YMin:        yLo,
			YMax:        roundHalfUp(b.Y),
			Slope:       s,
			XCurrent:    a.X + s*(float64(yLo)+0.5-a.Y),
			Orientation: orient,
		}
	}

	// lerpX returns the point on segment p0->p1 at the given target x,
	// parameterized by x (safe in every case below: each call site only
	// fires when p0.X <= targetX <= p1.X with p0.X < p1.X, guaranteeing a
	// nonzero denominator).
	lerpX := func(targetX float64) Point {
		t := (targetX - p0.X) / (p1.X - p0.X)
		return Point{X: targetX, Y: p0.Y + t*(p1.Y-p0.Y)}
	}

	// 6. Classify by x-overlap against [c.Left, c.Right].
	switch {
	case p0.X <= c.Left && p1.X <= c.Left:
		// Both left of the clip: one vertical stub pinned to Left.
		out = appendNonEmpty(out, edgeFromPoints(Point{X: c.Left, Y: p0.Y}, Point{X: c.Left, Y: p1.Y}, orientation))

	case p0.X >= c.Right && p1.X >= c.Right:
		// Both right of the clip: one vertical stub pinned to Right.
		out = appendNonEmpty(out, edgeFromPoints(Point{X: c.Right, Y: p0.Y}, Point{X: c.Right, Y: p1.Y}, orientation))

	case p0.X <= c.Left && p1.X > c.Left && p1.X <= c.Right:
		// Crosses the left border only.
		left := lerpX(c.Left)
		out = appendNonEmpty(out, edgeFromPoints(Point{X: c.Left, Y: p0.Y}, left, orientation))
		out = appendNonEmpty(out, edgeFromPoints(left, p1, orientation))

	case p1.X >= c.Right && p0.X < c.Right && p0.X >= c.Left:
		// Crosses the right border only.
		right := lerpX(c.Right)
		out = appendNonEmpty(out, edgeFromPoints(p0, right, orientation))
		out = appendNonEmpty(out, edgeFromPoints(right, Point{X: c.Right, Y: p1.Y}, orientation))

	case p0.X < c.Left && p1.X > c.Right:
		// Crosses both borders.
		left := lerpX(c.Left)
		right := lerpX(c.Right)
		out = appendNonEmpty(out, edgeFromPoints(Point{X: c.Left, Y: p0.Y}, left, orientation))
		out = appendNonEmpty(out, edgeFromPoints(left, right, orientation))
		out = appendNonEmpty(out, edgeFromPoints(right, Point{X: c.Right, Y: p1.Y}, orientation))

	default:
		// Entirely inside.
		out = appendNonEmpty(out, edgeFromPoints(p0, p1, orientation))
	}

	return out
}

// appendNonEmpty appends e to out unless it is degenerate (y-zero-height),
// which can happen at the boundary between the clip-stub and interior
// pieces of a border-crossing segment.
func appendNonEmpty(out []Edge, e Edge) []Edge {
	if e.YMin == e.YMax {
		return out
	}
	return append(out, e)
}
