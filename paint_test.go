package raster2d

import "testing"

func TestNewPaintDefaults(t *testing.T) {
	p := NewPaint()
	if p.Color != (RGBA{A: 1}) {
		t.Errorf("NewPaint().Color = %v, want opaque black", p.Color)
	}
	if p.Shader != nil {
		t.Error("NewPaint().Shader should be nil")
	}
	if p.IsStroke {
		t.Error("NewPaint().IsStroke should be false")
	}
	if p.StrokeWidth != 1 {
		t.Errorf("NewPaint().StrokeWidth = %v, want 1", p.StrokeWidth)
	}
	if p.MiterLimit != 4 {
		t.Errorf("NewPaint().MiterLimit = %v, want 4", p.MiterLimit)
	}
}

func TestPaintCloneIsIndependent(t *testing.T) {
	p := NewPaint()
	p.Color = Red
	clone := p.Clone()
	clone.Color = Blue
	if p.Color != Red {
		t.Errorf("mutating the clone affected the original: %v", p.Color)
	}
	if clone.Color != Blue {
		t.Errorf("clone.Color = %v, want Blue", clone.Color)
	}
}

func TestPaintCloneSharesShader(t *testing.T) {
	shader, err := NewBitmapShader(NewBitmap(2, 2), Identity(), TileClamp)
	if err != nil {
		t.Fatal(err)
	}
	p := NewPaint()
	p.Shader = shader
	clone := p.Clone()
	if clone.Shader != p.Shader {
		t.Error("Clone should share the Shader reference, not deep-copy it")
	}
}
