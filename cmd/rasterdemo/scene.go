package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vellum-gfx/raster2d"
)

// scene is the small JSON document rasterdemo drives: background color
// plus an ordered list of shapes, each carrying its own paint and an
// optional transform applied around it (saved and restored so sibling
// shapes are unaffected).
type scene struct {
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Background string       `json:"background"`
	Shapes     []sceneShape `json:"shapes"`

	// OutputWidth/OutputHeight, when both set and different from
	// Width/Height, request that the rendered surface be resized before
	// it is written out (see resizeToOutput in main.go).
	OutputWidth  int `json:"outputWidth,omitempty"`
	OutputHeight int `json:"outputHeight,omitempty"`
}

type sceneShape struct {
	Type   string       `json:"type"` // "rect" | "polygon"
	Rect   *[4]float64  `json:"rect,omitempty"`
	Points [][2]float64 `json:"points,omitempty"`

	Color string    `json:"color,omitempty"`
	Alpha *float64  `json:"alpha,omitempty"`
	Paint *scenePaint `json:"paint,omitempty"`
	Stroke *sceneStroke `json:"stroke,omitempty"`

	Transform []sceneTransform `json:"transform,omitempty"`
}

type sceneStroke struct {
	Width      float64 `json:"width"`
	MiterLimit float64 `json:"miterLimit"`
}

type scenePaint struct {
	Kind   string    `json:"kind"` // "linear" | "radial"
	From   [2]float64 `json:"from,omitempty"`
	To     [2]float64 `json:"to,omitempty"`
	Center [2]float64 `json:"center,omitempty"`
	Radius float64    `json:"radius,omitempty"`
	Colors []string   `json:"colors,omitempty"`
	Tile   string     `json:"tile,omitempty"` // "clamp" | "repeat" | "mirror"
}

type sceneTransform struct {
	Op   string    `json:"op"` // "translate" | "rotate" | "scale"
	Args []float64 `json:"args"`
}

// parseScene decodes a scene document from r.
func parseScene(r io.Reader) (*scene, error) {
	var s scene
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("rasterdemo: parse scene: %w", err)
	}
	return &s, nil
}

// render draws every shape in s onto a freshly cleared canvas bound to a
// width x height bitmap, returning the canvas for the caller to encode.
func render(s *scene) (*raster2d.Canvas, error) {
	bmp := raster2d.NewBitmap(s.Width, s.Height)
	c, err := raster2d.NewCanvas(bmp)
	if err != nil {
		return nil, fmt.Errorf("rasterdemo: new canvas: %w", err)
	}

	bg := raster2d.White
	if s.Background != "" {
		bg = raster2d.Hex(s.Background)
	}
	c.Clear(bg)

	for i, sh := range s.Shapes {
		if err := drawShape(c, sh); err != nil {
			return nil, fmt.Errorf("rasterdemo: shape %d: %w", i, err)
		}
	}
	return c, nil
}

func drawShape(c *raster2d.Canvas, sh sceneShape) error {
	c.Save()
	defer func() {
		_ = c.Restore()
	}()

	for _, t := range sh.Transform {
		if err := applyTransform(c, t); err != nil {
			return err
		}
	}

	paint, err := buildPaint(sh)
	if err != nil {
		return err
	}

	switch sh.Type {
	case "rect":
		if sh.Rect == nil {
			return fmt.Errorf("rect shape missing \"rect\"")
		}
		r := sh.Rect
		c.DrawRect(raster2d.NewRect(r[0], r[1], r[2], r[3]), paint)
	case "polygon":
		if len(sh.Points) < 3 {
			return fmt.Errorf("polygon shape needs at least 3 points")
		}
		pts := make([]raster2d.Point, len(sh.Points))
		for i, p := range sh.Points {
			pts[i] = raster2d.Pt(p[0], p[1])
		}
		c.DrawContours([]raster2d.Contour{raster2d.NewContour(pts, true)}, paint)
	default:
		return fmt.Errorf("unknown shape type %q", sh.Type)
	}
	return nil
}

func applyTransform(c *raster2d.Canvas, t sceneTransform) error {
	switch t.Op {
	case "translate":
		if len(t.Args) != 2 {
			return fmt.Errorf("translate needs 2 args")
		}
		c.Translate(t.Args[0], t.Args[1])
	case "rotate":
		if len(t.Args) != 1 {
			return fmt.Errorf("rotate needs 1 arg")
		}
		c.Rotate(t.Args[0])
	case "scale":
		if len(t.Args) != 2 {
			return fmt.Errorf("scale needs 2 args")
		}
		c.Scale(t.Args[0], t.Args[1])
	default:
		return fmt.Errorf("unknown transform op %q", t.Op)
	}
	return nil
}

func buildPaint(sh sceneShape) (*raster2d.Paint, error) {
	paint := raster2d.NewPaint()
	if sh.Color != "" {
		paint.Color = raster2d.Hex(sh.Color)
	}
	if sh.Alpha != nil {
		paint.Color.A = *sh.Alpha
	}
	if sh.Stroke != nil {
		paint.IsStroke = true
		paint.StrokeWidth = sh.Stroke.Width
		if sh.Stroke.MiterLimit > 0 {
			paint.MiterLimit = sh.Stroke.MiterLimit
		}
	}
	if sh.Paint != nil {
		shader, err := buildShader(*sh.Paint)
		if err != nil {
			return nil, err
		}
		paint.Shader = shader
	}
	return paint, nil
}

func buildShader(p scenePaint) (raster2d.Shader, error) {
	colors := make([]raster2d.RGBA, len(p.Colors))
	for i, hex := range p.Colors {
		colors[i] = raster2d.Hex(hex)
	}
	tile := tileModeFromString(p.Tile)

	switch p.Kind {
	case "linear":
		if len(colors) < 2 {
			return nil, fmt.Errorf("linear gradient needs at least 2 colors")
		}
		from := raster2d.Pt(p.From[0], p.From[1])
		to := raster2d.Pt(p.To[0], p.To[1])
		return raster2d.NewLinearGradientShader(from, to, colors[0], colors[len(colors)-1], tile), nil
	case "radial":
		if len(colors) < 2 {
			return nil, fmt.Errorf("radial gradient needs at least 2 colors")
		}
		return raster2d.NewRadialGradientShader(p.Center[0], p.Center[1], p.Radius, colors), nil
	default:
		return nil, fmt.Errorf("unknown paint kind %q", p.Kind)
	}
}

func tileModeFromString(s string) raster2d.TileMode {
	switch s {
	case "repeat":
		return raster2d.TileRepeat
	case "mirror":
		return raster2d.TileMirror
	default:
		return raster2d.TileClamp
	}
}
