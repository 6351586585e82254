package raster2d

import "testing"

// TestBitmapProxyShaderSamplesThroughTexCoords exercises the normal mesh
// case where a triangle's texture-coordinate frame differs from its device
// position frame (non-square position triangle, shifted texture triangle).
// Each checked device pixel's center sits, by construction, at the center
// of a distinct, distinctly-colored bitmap pixel, so a wrong pos<->tex
// mapping direction shows up as the wrong color.
func TestBitmapProxyShaderSamplesThroughTexCoords(t *testing.T) {
	bmp := NewBitmap(4, 4)
	red := PackARGB(255, 255, 0, 0)
	green := PackARGB(255, 0, 255, 0)
	blue := PackARGB(255, 0, 0, 255)
	bmp.Set(1, 1, red)
	bmp.Set(2, 1, green)
	bmp.Set(1, 2, blue)

	inner, err := NewBitmapShader(bmp, Identity(), TileClamp)
	if err != nil {
		t.Fatal(err)
	}

	pos := [3]Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 2}}
	tex := [3]Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 2}}
	proxy, ok := NewBitmapProxyShader(inner, pos, tex)
	if !ok {
		t.Fatal("NewBitmapProxyShader reported a singular mapping")
	}
	if !proxy.SetContext(Identity(), 1) {
		t.Fatal("SetContext failed on a non-singular setup")
	}

	cases := []struct {
		x, y int
		want Pixel
	}{
		{0, 0, red},   // pos (0.5,0.5) -> tex (1.25,1.25) -> bitmap(1,1)
		{2, 0, green}, // pos (2.5,0.5) -> tex (2.25,1.25) -> bitmap(2,1)
		{0, 2, blue},  // pos (0.5,2.5) -> tex (1.25,2.25) -> bitmap(1,2)
	}
	for _, c := range cases {
		out := make([]Pixel, 1)
		proxy.ShadeRow(c.x, c.y, 1, out)
		if out[0] != c.want {
			t.Errorf("ShadeRow(%d,%d) = %v, want %v", c.x, c.y, out[0], c.want)
		}
	}
}
