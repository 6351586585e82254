package raster2d

// BitmapShader samples a bitmap through a tile mode, nearest-neighbor, in
// source pixel units. Its local transform L maps source pixel space to
// paint space (for example, FillBitmapRect builds L as
// translate(dst.Left,dst.Top)*scale(dst.Width/src.W, dst.Height/src.H)).
type BitmapShader struct {
	bmp   *Bitmap
	local Matrix
	tile  TileMode

	inv   Matrix
	alpha float64
}

// NewBitmapShader returns a shader sampling bmp through tile, with local
// transform local mapping bmp's pixel space to paint space. It returns an
// error if bmp fails its validity check.
func NewBitmapShader(bmp *Bitmap, local Matrix, tile TileMode) (*BitmapShader, error) {
	if !bmp.Valid() {
		return nil, ErrInvalidBitmap
	}
	return &BitmapShader{bmp: bmp, local: local, tile: tile}, nil
}

func (s *BitmapShader) SetContext(ctm Matrix, alpha float64) bool {
	inv, ok := deviceToSource(ctm, s.local)
	if !ok {
		return false
	}
	s.inv = inv
	s.alpha = alpha
	return true
}

func (s *BitmapShader) ShadeRow(x, y, count int, out []Pixel) {
	step := newRowStepper(s.inv, x, y)
	w, h := s.bmp.W, s.bmp.H
	for i := 0; i < count; i++ {
		p := step.next()
		sx, sy := sampleCoord(p.X, w, s.tile), sampleCoord(p.Y, h, s.tile)
		px := s.bmp.At(sx, sy)
		if s.alpha < 1 {
			px = scalePixelAlpha(px, s.alpha)
		}
		out[i] = px
	}
}

// sampleCoord maps a source-space coordinate u to an integer pixel index
// in [0, n) per the tile mode's rule (§4.6): Clamp clips; Repeat wraps
// with period n; Mirror reflects every other period of 2n.
func sampleCoord(u float64, n int, tile TileMode) int {
	if n <= 0 {
		return 0
	}
	iu := floorInt(u)
	switch tile {
	case TileRepeat:
		return floorMod(iu, n)
	case TileMirror:
		m := floorMod(iu, 2*n)
		if m >= n {
			m = 2*n - m - 1
		}
		return m
	default: // TileClamp
		return clampInt(iu, 0, n-1)
	}
}

func floorInt(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}

var _ Shader = (*BitmapShader)(nil)
