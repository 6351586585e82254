package raster2d

import "github.com/vellum-gfx/raster2d/internal/blend"

// ComposeShader evaluates two shaders and produces their componentwise
// product divided by 255 ("modulate" composition, valid because both
// inputs are premultiplied).
type ComposeShader struct {
	a, b Shader
}

// NewComposeShader returns a shader that modulates a and b.
func NewComposeShader(a, b Shader) *ComposeShader {
	return &ComposeShader{a: a, b: b}
}

func (s *ComposeShader) SetContext(ctm Matrix, alpha float64) bool {
	okA := s.a.SetContext(ctm, alpha)
	okB := s.b.SetContext(ctm, alpha)
	return okA && okB
}

func (s *ComposeShader) ShadeRow(x, y, count int, out []Pixel) {
	bufA := make([]Pixel, count)
	bufB := make([]Pixel, count)
	s.a.ShadeRow(x, y, count, bufA)
	s.b.ShadeRow(x, y, count, bufB)
	for i := 0; i < count; i++ {
		out[i] = modulate(bufA[i], bufB[i])
	}
}

func modulate(a, b Pixel) Pixel {
	return PackARGB(
		blend.DivideBy255(a.A()*b.A()),
		blend.DivideBy255(a.R()*b.R()),
		blend.DivideBy255(a.G()*b.G()),
		blend.DivideBy255(a.B()*b.B()),
	)
}

var _ Shader = (*ComposeShader)(nil)
