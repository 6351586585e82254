package raster2d

import (
	"github.com/vellum-gfx/raster2d/internal/blend"
	"github.com/vellum-gfx/raster2d/internal/clip"
	"github.com/vellum-gfx/raster2d/internal/raster"
	"github.com/vellum-gfx/raster2d/internal/stroke"
)

// maxShadeChunk bounds how many pixels a single ShadeRow call shades at
// once, per spec §4.4 ("chunk the span into buffers of at most 256
// pixels").
const maxShadeChunk = 256

// Canvas is the rasterizer entry point: a CTM save/restore stack bound to
// a destination Bitmap. It is not safe for concurrent use; two canvases
// bound to disjoint bitmaps may run independently (see §5).
type Canvas struct {
	bmp      *Bitmap
	ctm      Matrix
	stack    []Matrix
	clipRect clip.Rect
}

// NewCanvas returns a canvas bound to bmp with CTM = identity and an empty
// save stack. It returns ErrInvalidBitmap if bmp fails its validity check.
func NewCanvas(bmp *Bitmap) (*Canvas, error) {
	if !bmp.Valid() {
		return nil, ErrInvalidBitmap
	}
	return &Canvas{
		bmp:      bmp,
		ctm:      Identity(),
		clipRect: clip.NewRect(0, 0, float64(bmp.W), float64(bmp.H)),
	}, nil
}

// Bitmap returns the canvas's destination bitmap.
func (c *Canvas) Bitmap() *Bitmap { return c.bmp }

// CTM returns the current transformation matrix.
func (c *Canvas) CTM() Matrix { return c.ctm }

// Save pushes the current CTM onto the save stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.ctm)
}

// Restore pops the top of the save stack into the current CTM. It returns
// ErrUnbalancedRestore, leaving the CTM unchanged, when the stack is
// empty — a deliberate hardening over the source's undefined behavior.
func (c *Canvas) Restore() error {
	if len(c.stack) == 0 {
		return ErrUnbalancedRestore
	}
	n := len(c.stack) - 1
	c.ctm = c.stack[n]
	c.stack = c.stack[:n]
	return nil
}

// Concat sets CTM <- CTM.Concat(m) = CTM*m: new geometry is modeled as if
// transformed by m first, then by the previous CTM.
func (c *Canvas) Concat(m Matrix) { c.ctm = c.ctm.Concat(m) }

// Translate is sugar over Concat(Translate(tx, ty)).
func (c *Canvas) Translate(tx, ty float64) { c.Concat(Translate(tx, ty)) }

// Scale is sugar over Concat(Scale(sx, sy)).
func (c *Canvas) Scale(sx, sy float64) { c.Concat(Scale(sx, sy)) }

// Rotate is sugar over Concat(Rotate(angle)).
func (c *Canvas) Rotate(angle float64) { c.Concat(Rotate(angle)) }

// Clear overwrites every pixel of the destination bitmap with the
// premultiplied conversion of color.
func (c *Canvas) Clear(color RGBA) {
	px := PixelFromColor(color)
	row := make([]Pixel, c.bmp.W)
	for i := range row {
		row[i] = px
	}
	for y := 0; y < c.bmp.H; y++ {
		c.bmp.SetRowPixels(y, 0, row)
	}
}

// DrawRect fills rect using the "pixel center strictly inside" containment
// rule, via the convex-polygon path.
func (c *Canvas) DrawRect(r Rect, paint *Paint) {
	pts := r.Points()
	c.DrawConvexPolygon(pts[:], paint)
}

// FillBitmapRect draws src mapped onto dst using a Clamp-mode bitmap
// shader, per §6/§10: the local transform is
// translate(dst.Left,dst.Top)*scale(dst.Width/src.W, dst.Height/src.H).
func (c *Canvas) FillBitmapRect(src *Bitmap, dst Rect) error {
	local := Matrix{
		A: dst.Width() / float64(src.W), B: 0, C: dst.Left,
		D: 0, E: dst.Height() / float64(src.H), F: dst.Top,
	}
	shader, err := NewBitmapShader(src, local, TileClamp)
	if err != nil {
		return err
	}
	paint := NewPaint()
	paint.Shader = shader
	c.DrawRect(dst, paint)
	return nil
}

// DrawConvexPolygon fills a single-winding convex polygon, per §4.4.
// Fewer than 3 points is a no-op.
func (c *Canvas) DrawConvexPolygon(pts []Point, paint *Paint) {
	if len(pts) < 3 {
		return
	}
	edges := c.buildEdges([]Contour{{Points: pts, Closed: true}})
	Logger().Debug("draw convex polygon", "points", len(pts), "edges", len(edges))
	if len(edges) < 2 {
		return
	}
	raster.SortEdges(edges)
	if !c.beginShading(paint) {
		Logger().Warn("skipping draw: singular shader transform")
		return
	}
	raster.ScanConvex(edges, func(y, x0, x1 int) { c.shadeSpan(y, x0, x1, paint) })
}

// DrawContours fills (or, in stroke mode, strokes then fills) an array of
// possibly-concave, possibly-self-intersecting, possibly-multiple
// contours using the non-zero winding rule, per §4.5. Stroke mode
// synthesizes filled contours via internal/stroke and recurses in fill
// mode (§4.7).
func (c *Canvas) DrawContours(contours []Contour, paint *Paint) {
	if paint.IsStroke {
		c.drawStrokedContours(contours, paint)
		return
	}
	edges := c.buildEdges(contours)
	Logger().Debug("draw contours", "contours", len(contours), "edges", len(edges))
	if len(edges) == 0 {
		return
	}
	raster.SortEdges(edges)
	if !c.beginShading(paint) {
		Logger().Warn("skipping draw: singular shader transform")
		return
	}
	raster.ScanGeneral(edges, func(y, x0, x1 int) { c.shadeSpan(y, x0, x1, paint) })
}

func (c *Canvas) drawStrokedContours(contours []Contour, paint *Paint) {
	lines := make([]stroke.Polyline, 0, len(contours))
	for _, ct := range contours {
		if len(ct.Points) < 2 {
			continue
		}
		lines = append(lines, stroke.Polyline{Points: toStrokePoints(ct.Points), Closed: ct.Closed})
	}
	if len(lines) == 0 {
		return
	}
	expanded := stroke.Expand(lines, paint.StrokeWidth, paint.MiterLimit)
	if len(expanded) == 0 {
		return
	}
	fillContours := make([]Contour, len(expanded))
	for i, sc := range expanded {
		fillContours[i] = Contour{Points: fromStrokePoints(sc.Points), Closed: sc.Closed}
	}
	fillPaint := paint.Clone()
	fillPaint.IsStroke = false
	c.DrawContours(fillContours, fillPaint)
}

func toStrokePoints(pts []Point) []stroke.Point {
	out := make([]stroke.Point, len(pts))
	for i, p := range pts {
		out[i] = stroke.Point{X: p.X, Y: p.Y}
	}
	return out
}

func fromStrokePoints(pts []stroke.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}

// beginShading calls SetContext on paint's shader, if any, returning
// false (meaning "skip the draw") when the shader reports a singular
// transform.
func (c *Canvas) beginShading(paint *Paint) bool {
	if paint.Shader == nil {
		return true
	}
	return paint.Shader.SetContext(c.ctm, paint.Color.A)
}

// buildEdges maps every contour's points through the current CTM and
// builds the clipped edge list for them.
func (c *Canvas) buildEdges(contours []Contour) []raster.Edge {
	var edges []raster.Edge
	for _, ct := range contours {
		n := ct.segmentCount()
		for i := 0; i < n; i++ {
			p0, p1 := ct.segment(i)
			dp0 := c.ctm.MapPoint(p0)
			dp1 := c.ctm.MapPoint(p1)
			edges = raster.BuildEdges(edges,
				raster.Point{X: dp0.X, Y: dp0.Y},
				raster.Point{X: dp1.X, Y: dp1.Y},
				c.clipRect)
		}
	}
	return edges
}

// shadeSpan shades columns [x0,x1) of row y using paint, clamped to the
// bitmap's bounds, and blends (or opaquely fills) the result in place.
func (c *Canvas) shadeSpan(y, x0, x1 int, paint *Paint) {
	if y < 0 || y >= c.bmp.H {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > c.bmp.W {
		x1 = c.bmp.W
	}
	if x0 >= x1 {
		return
	}
	n := x1 - x0

	if paint.Shader == nil {
		px := PixelFromColor(paint.Color)
		if px.A() == 255 {
			c.fillOpaque(y, x0, n, px)
		} else {
			c.blendSolid(y, x0, n, px)
		}
		return
	}

	var buf [maxShadeChunk]Pixel
	for off := 0; off < n; off += maxShadeChunk {
		chunk := n - off
		if chunk > maxShadeChunk {
			chunk = maxShadeChunk
		}
		paint.Shader.ShadeRow(x0+off, y, chunk, buf[:chunk])
		c.blendPixels(y, x0+off, buf[:chunk])
	}
}

func (c *Canvas) fillOpaque(y, x0, n int, p Pixel) {
	buf := make([]uint32, n)
	blend.FillOpaque(uint32(p), buf)
	c.writeU32Row(y, x0, buf)
}

func (c *Canvas) blendSolid(y, x0, n int, p Pixel) {
	dst := c.readU32Row(y, x0, n)
	blend.BlendRow(uint32(p), dst)
	c.writeU32Row(y, x0, dst)
}

func (c *Canvas) blendPixels(y, x0 int, src []Pixel) {
	n := len(src)
	srcU := make([]uint32, n)
	for i, p := range src {
		srcU[i] = uint32(p)
	}
	dst := c.readU32Row(y, x0, n)
	blend.BlendRowSrc(srcU, dst)
	c.writeU32Row(y, x0, dst)
}

func (c *Canvas) readU32Row(y, x0, n int) []uint32 {
	pix := make([]Pixel, n)
	c.bmp.RowPixels(y, x0, n, pix)
	out := make([]uint32, n)
	for i, p := range pix {
		out[i] = uint32(p)
	}
	return out
}

func (c *Canvas) writeU32Row(y, x0 int, src []uint32) {
	pix := make([]Pixel, len(src))
	for i, v := range src {
		pix[i] = Pixel(v)
	}
	c.bmp.SetRowPixels(y, x0, pix)
}
