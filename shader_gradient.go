package raster2d

// LinearGradientShader interpolates between two colors along the segment
// p0->p1, folded through a tile mode outside [0,1]. A 256-entry lookup
// table is rebuilt on every SetContext so ShadeRow is a single table
// index per pixel.
type LinearGradientShader struct {
	p0, p1 Point
	c0, c1 RGBA
	tile   TileMode
	local  Matrix

	inv   Matrix
	lut   [256]Pixel
}

// NewLinearGradientShader returns a shader for the segment p0->p1 with
// endpoint colors c0, c1 and the given tile mode.
func NewLinearGradientShader(p0, p1 Point, c0, c1 RGBA, tile TileMode) *LinearGradientShader {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	local := Matrix{A: dx, B: -dy, C: p0.X, D: dy, E: dx, F: p0.Y}
	return &LinearGradientShader{p0: p0, p1: p1, c0: c0, c1: c1, tile: tile, local: local}
}

func (s *LinearGradientShader) SetContext(ctm Matrix, alpha float64) bool {
	inv, ok := deviceToSource(ctm, s.local)
	if !ok {
		return false
	}
	s.inv = inv
	for i := 0; i < 256; i++ {
		t := float64(i) / 255
		c := scaleColorAlpha(lerpColor(s.c0, s.c1, t), alpha)
		s.lut[i] = PixelFromColor(c)
	}
	return true
}

func (s *LinearGradientShader) ShadeRow(x, y, count int, out []Pixel) {
	step := newRowStepper(s.inv, x, y)
	for i := 0; i < count; i++ {
		p := step.next()
		t := foldTile(p.X, s.tile)
		idx := clampInt(int(t*255+0.5), 0, 255)
		out[i] = s.lut[idx]
	}
}

var _ Shader = (*LinearGradientShader)(nil)
