package raster2d

// ColorTriangleShader barycentrically interpolates three vertex colors
// across the triangle p0,p1,p2.
type ColorTriangleShader struct {
	c0, c1, c2 RGBA
	local      Matrix

	inv   Matrix
	alpha float64
}

// NewColorTriangleShader returns a shader for triangle p0,p1,p2 with
// per-vertex colors c0,c1,c2.
func NewColorTriangleShader(p0, p1, p2 Point, c0, c1, c2 RGBA) *ColorTriangleShader {
	local := baryLocal(p0, p1, p2)
	return &ColorTriangleShader{c0: c0, c1: c1, c2: c2, local: local}
}

// baryLocal returns the affine transform mapping the barycentric frame
// ((0,0)=p0, (1,0)=p1, (0,1)=p2) into device/paint space.
func baryLocal(p0, p1, p2 Point) Matrix {
	return Matrix{
		A: p1.X - p0.X, B: p2.X - p0.X, C: p0.X,
		D: p1.Y - p0.Y, E: p2.Y - p0.Y, F: p0.Y,
	}
}

func (s *ColorTriangleShader) SetContext(ctm Matrix, alpha float64) bool {
	inv, ok := deviceToSource(ctm, s.local)
	if !ok {
		return false
	}
	s.inv = inv
	s.alpha = alpha
	return true
}

func (s *ColorTriangleShader) ShadeRow(x, y, count int, out []Pixel) {
	step := newRowStepper(s.inv, x, y)
	for i := 0; i < count; i++ {
		p := step.next()
		u, v := p.X, p.Y
		w0 := 1 - u - v
		c := RGBA{
			A: w0*s.c0.A + u*s.c1.A + v*s.c2.A,
			R: w0*s.c0.R + u*s.c1.R + v*s.c2.R,
			G: w0*s.c0.G + u*s.c1.G + v*s.c2.G,
			B: w0*s.c0.B + u*s.c1.B + v*s.c2.B,
		}
		c = scaleColorAlpha(c, s.alpha)
		out[i] = PixelFromColor(c)
	}
}

var _ Shader = (*ColorTriangleShader)(nil)
