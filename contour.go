package raster2d

// Contour is a polyline in caller (paint-space) coordinates: a sequence of
// points plus a flag saying whether an implicit closing segment connects
// the last point back to the first. The rasterizer may transform a copy of
// Points but never retains the caller's backing storage past the draw call.
type Contour struct {
	Points []Point
	Closed bool
}

// NewContour returns a Contour over pts with the given closed flag.
func NewContour(pts []Point, closed bool) Contour {
	return Contour{Points: pts, Closed: closed}
}

// segmentCount returns how many directed segments c contributes to the
// edge pipeline: len(Points)-1 for an open contour, len(Points) for a
// closed one (the wrap-around segment included).
func (c Contour) segmentCount() int {
	n := len(c.Points)
	if n < 2 {
		return 0
	}
	if c.Closed {
		return n
	}
	return n - 1
}

// segment returns the i'th directed segment of c, wrapping for closed
// contours. Callers must only ask for i < segmentCount().
func (c Contour) segment(i int) (p0, p1 Point) {
	p0 = c.Points[i]
	if i+1 < len(c.Points) {
		p1 = c.Points[i+1]
	} else {
		p1 = c.Points[0]
	}
	return p0, p1
}

// Mesh is a triangle soup: T triangles described by an optional index
// buffer (defaulting to sequential triples), per-vertex positions, and
// optional per-vertex colors and/or texture coordinates. See §4.8.
type Mesh struct {
	// Triangles is the number of triangles to draw.
	Triangles int

	// Positions holds at least 3*Triangles points when Indices is nil,
	// otherwise at least max(Indices)+1 points.
	Positions []Point

	// Indices, if non-nil, has length 3*Triangles; each consecutive triple
	// names the vertices of one triangle. When nil, vertices are taken
	// sequentially: triangle i uses Positions[3i], [3i+1], [3i+2].
	Indices []int

	// Colors, if non-nil, has the same length as Positions (when Indices
	// is nil) — one color per vertex, indexed the same way as Positions.
	Colors []RGBA

	// Tex, if non-nil, is one texture coordinate per vertex, indexed the
	// same way as Positions.
	Tex []Point
}

func (m Mesh) triangleVertices(t int) (i0, i1, i2 int) {
	if m.Indices != nil {
		return m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]
	}
	return 3 * t, 3*t + 1, 3*t + 2
}
