package raster2d

import "math"

// RadialGradientShader distributes n>=2 colors evenly along the radius of
// a circle centered at (cx, cy) with radius r.
type RadialGradientShader struct {
	colors []RGBA
	local  Matrix

	inv   Matrix
	alpha float64
}

// NewRadialGradientShader returns a shader for a circle centered at
// (cx, cy) with radius r and the given colors (len(colors) >= 2).
func NewRadialGradientShader(cx, cy, r float64, colors []RGBA) *RadialGradientShader {
	local := Matrix{A: r, B: 0, C: cx, D: 0, E: r, F: cy}
	cs := make([]RGBA, len(colors))
	copy(cs, colors)
	return &RadialGradientShader{colors: cs, local: local}
}

func (s *RadialGradientShader) SetContext(ctm Matrix, alpha float64) bool {
	inv, ok := deviceToSource(ctm, s.local)
	if !ok {
		return false
	}
	s.inv = inv
	s.alpha = alpha
	return true
}

func (s *RadialGradientShader) ShadeRow(x, y, count int, out []Pixel) {
	step := newRowStepper(s.inv, x, y)
	n := len(s.colors)
	last := s.colors[n-1]
	for i := 0; i < count; i++ {
		p := step.next()
		d := math.Sqrt(p.X*p.X + p.Y*p.Y)
		var c RGBA
		if d >= 1 {
			c = last
		} else {
			f := d * float64(n-1)
			i0 := int(math.Floor(f))
			i1 := int(math.Ceil(f))
			if i1 >= n {
				i1 = n - 1
			}
			t := f - float64(i0)
			c = lerpColor(s.colors[i0], s.colors[i1], t)
		}
		c = scaleColorAlpha(c, s.alpha)
		out[i] = PixelFromColor(c)
	}
}

var _ Shader = (*RadialGradientShader)(nil)
