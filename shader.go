package raster2d

import "math"

// TileMode governs out-of-range sampling for bitmap and gradient shaders.
type TileMode int

const (
	// TileClamp clips to the boundary value.
	TileClamp TileMode = iota
	// TileRepeat tiles the pattern with the source's period.
	TileRepeat
	// TileMirror tiles the pattern, reflecting every other period.
	TileMirror
)

// Shader is the uniform contract every shading strategy satisfies: set up
// once per draw call with the canvas's current CTM and the paint's alpha,
// then asked to fill rows of premultiplied device pixels.
//
// SetContext must be called, and must return true, before any call to
// ShadeRow; calling ShadeRow without a successful prior SetContext is a
// programmer error and may panic.
type Shader interface {
	// SetContext supplies the canvas's current CTM and the paint's alpha
	// in [0,1]. It returns false when the shader's combined device-to-
	// source transform is singular; the caller must skip the draw.
	SetContext(ctm Matrix, alpha float64) bool

	// ShadeRow fills out[0:count) with premultiplied source pixels for
	// device pixels (x,y)..(x+count-1,y), sampled at each pixel's center.
	ShadeRow(x, y, count int, out []Pixel)
}

// deviceToSource combines the canvas's CTM with a shader's local transform
// L (intrinsic shader space -> paint space) into M = (CTM*L)^-1, the
// inverse transform every shader implementation uses to map a device pixel
// back to its sampling coordinate.
func deviceToSource(ctm, local Matrix) (Matrix, bool) {
	return ctm.Concat(local).Invert()
}

// rowStepper holds the running source-space sample point and its per-pixel
// step, shared by every shader's ShadeRow loop.
type rowStepper struct {
	p          Point
	stepX, stepY float64
}

func newRowStepper(inv Matrix, x, y int) rowStepper {
	return rowStepper{
		p:     inv.MapPoint(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}),
		stepX: inv.A,
		stepY: inv.D,
	}
}

func (s *rowStepper) next() Point {
	p := s.p
	s.p.X += s.stepX
	s.p.Y += s.stepY
	return p
}

// foldTile maps a 1D coordinate through a tile mode into source units:
// Clamp saturates to [0,1]; Repeat wraps with period 1; Mirror reflects
// every other period, per spec §4.6.
func foldTile(t float64, mode TileMode) float64 {
	switch mode {
	case TileRepeat:
		return t - math.Floor(t)
	case TileMirror:
		half := t / 2
		frac := half - math.Floor(half)
		return 1 - math.Abs(1-2*frac)
	default: // TileClamp
		if t < 0 {
			return 0
		}
		if t > 1 {
			return 1
		}
		return t
	}
}

// floorMod returns the non-negative modulus of a with respect to m (m>0),
// unlike Go's %, which can return a negative result for negative a.
func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// scaleColorAlpha returns c with its alpha channel multiplied by alpha,
// used by every gradient/triangle shader to apply the paint's alpha to
// the whole interpolated color before premultiplied conversion.
func scaleColorAlpha(c RGBA, alpha float64) RGBA {
	c.A *= alpha
	return c
}

// scalePixelAlpha scales every channel of an already-premultiplied pixel
// by alpha (valid because premultiplied channels scale uniformly), used by
// the bitmap shader when alpha < 1.
func scalePixelAlpha(p Pixel, alpha float64) Pixel {
	a := clampByte(int(float64(p.A())*alpha + 0.5))
	r := clampByte(int(float64(p.R())*alpha + 0.5))
	g := clampByte(int(float64(p.G())*alpha + 0.5))
	b := clampByte(int(float64(p.B())*alpha + 0.5))
	return PackARGB(uint32(a), uint32(r), uint32(g), uint32(b))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// lerpColor linearly interpolates two colors channel by channel.
func lerpColor(c0, c1 RGBA, t float64) RGBA {
	return c0.Lerp(c1, t)
}
