package raster2d

import "encoding/binary"

// Bitmap is a packed, premultiplied-ARGB pixel buffer: W columns by H rows,
// RowBytes bytes per row (RowBytes >= 4*W), Pix holding H*RowBytes bytes.
// It is the data model's one input/output primitive: callers build one to
// hand the rasterizer a source image, and Canvas draws into one as its
// destination surface.
//
// Validity (W >= 0, H >= 0, RowBytes >= 4*W, len(Pix) >= H*RowBytes) is
// checked once, by Valid, when a bitmap is first accepted by NewCanvas or
// a bitmap-backed shader constructor.
type Bitmap struct {
	W, H     int
	RowBytes int
	Pix      []byte
}

// NewBitmap allocates a zeroed (fully transparent) w x h bitmap with the
// tightest valid stride, RowBytes = 4*w.
func NewBitmap(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	rowBytes := 4 * w
	return &Bitmap{
		W:        w,
		H:        h,
		RowBytes: rowBytes,
		Pix:      make([]byte, rowBytes*h),
	}
}

// Valid reports whether b satisfies the bitmap invariants: non-negative
// dimensions, a stride covering at least 4 bytes per column, and a pixel
// buffer large enough to back every row at that stride.
func (b *Bitmap) Valid() bool {
	if b == nil || b.W < 0 || b.H < 0 {
		return false
	}
	if b.RowBytes < 4*b.W {
		return false
	}
	if b.H == 0 {
		return true
	}
	return len(b.Pix) >= b.RowBytes*b.H
}

// At returns the pixel at (x, y). x and y must be in [0, W) x [0, H); no
// bounds check is performed, matching the core's "clipping prevents
// out-of-range access" error-handling policy (see §7).
func (b *Bitmap) At(x, y int) Pixel {
	off := y*b.RowBytes + x*4
	return Pixel(binary.LittleEndian.Uint32(b.Pix[off : off+4]))
}

// Set writes p at (x, y). See At for the bounds-checking contract.
func (b *Bitmap) Set(x, y int, p Pixel) {
	off := y*b.RowBytes + x*4
	binary.LittleEndian.PutUint32(b.Pix[off:off+4], uint32(p))
}

// RowPixels decodes w pixels of row y, starting at column x, into dst,
// which must have length >= w. Used by the blend row helpers so they can operate on a
// contiguous []Pixel even though the backing store is bytes.
func (b *Bitmap) RowPixels(y, x, w int, dst []Pixel) {
	off := y*b.RowBytes + x*4
	for i := 0; i < w; i++ {
		dst[i] = Pixel(binary.LittleEndian.Uint32(b.Pix[off : off+4]))
		off += 4
	}
}

// SetRowPixels writes src into row y starting at column x.
func (b *Bitmap) SetRowPixels(y, x int, src []Pixel) {
	off := y*b.RowBytes + x*4
	for _, p := range src {
		binary.LittleEndian.PutUint32(b.Pix[off:off+4], uint32(p))
		off += 4
	}
}

// Bounds returns the bitmap's extent as a Rect anchored at the origin.
func (b *Bitmap) Bounds() Rect {
	return Rect{Left: 0, Top: 0, Right: float64(b.W), Bottom: float64(b.H)}
}
