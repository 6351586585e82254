package raster2d

// BitmapProxyShader wraps an inner shader (typically a BitmapShader) and
// remaps it through the affine transform that carries a triangle's device
// positions to its texture coordinates, so the inner shader can be
// evaluated in texture space while the triangle itself is drawn in device
// space. See §4.6/§4.8.
type BitmapProxyShader struct {
	inner    Shader
	posToTex Matrix
}

// NewBitmapProxyShader returns a proxy around inner using the affine
// mapping that carries tex[i] to pos[i] for i in {0,1,2}: the barycentric
// frame of the positions, composed with the inverse barycentric frame of
// the texture coordinates. It returns false when the texture-coordinate
// mapping is singular (the three texture coordinates are collinear).
func NewBitmapProxyShader(inner Shader, pos [3]Point, tex [3]Point) (*BitmapProxyShader, bool) {
	posLocal := baryLocal(pos[0], pos[1], pos[2])
	texLocal := baryLocal(tex[0], tex[1], tex[2])
	texToBary, ok := texLocal.Invert()
	if !ok {
		return nil, false
	}
	posToTex := posLocal.Concat(texToBary)
	return &BitmapProxyShader{inner: inner, posToTex: posToTex}, true
}

func (s *BitmapProxyShader) SetContext(ctm Matrix, alpha float64) bool {
	return s.inner.SetContext(ctm.Concat(s.posToTex), alpha)
}

func (s *BitmapProxyShader) ShadeRow(x, y, count int, out []Pixel) {
	s.inner.ShadeRow(x, y, count, out)
}

var _ Shader = (*BitmapProxyShader)(nil)
