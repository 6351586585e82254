package stroke

import "testing"

func TestExpandTooShortDiscarded(t *testing.T) {
	out := Expand([]Polyline{{Points: []Point{{X: 0, Y: 0}}}}, 4, 4)
	if out != nil {
		t.Fatalf("expected nil for single-point polyline, got %v", out)
	}
}

func TestExpandTwoPointButtQuad(t *testing.T) {
	out := Expand([]Polyline{{Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}, 4, 4)
	if len(out) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(out))
	}
	c := out[0]
	if len(c.Points) != 4 || !c.Closed {
		t.Fatalf("expected closed 4-point quad, got %+v", c)
	}
	// Butt caps extend the quad by hw=2 beyond each endpoint along X.
	for _, p := range c.Points {
		if p.X < -2.0001 || p.X > 12.0001 {
			t.Fatalf("cap extension out of expected range: %+v", p)
		}
	}
}

func TestExpandOpenPolylineProducesJointsAndCaps(t *testing.T) {
	pl := Polyline{Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}}
	out := Expand([]Polyline{pl}, 4, 4)
	// 2 segment quads + 1 joint.
	if len(out) != 3 {
		t.Fatalf("expected 3 contours (2 quads + 1 joint), got %d", len(out))
	}
}

func TestExpandClosedPolylineHasJointAtEveryVertex(t *testing.T) {
	pl := Polyline{
		Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Closed: true,
	}
	out := Expand([]Polyline{pl}, 2, 4)
	// 4 segment quads + 4 joints (no caps on a closed polyline).
	if len(out) != 8 {
		t.Fatalf("expected 8 contours (4 quads + 4 joints), got %d", len(out))
	}
}

func TestJointStraightLineProducesNoGeometry(t *testing.T) {
	_, ok := joint(Point{X: 0, Y: 0}, Point{X: 10, Y: 0}, Point{X: 20, Y: 0}, 2, 4)
	if ok {
		t.Fatalf("expected no joint geometry for a perfectly straight run")
	}
}

func TestJointBevelVsMiter(t *testing.T) {
	// A near-180-degree (sharp, acute) turn should exceed any reasonable
	// miter limit and fall back to a bevel triangle.
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 0}
	c := Point{X: 0.1, Y: 0.01}
	j, ok := joint(a, b, c, 2, 4)
	if !ok {
		t.Fatalf("expected joint geometry")
	}
	if len(j.Points) != 3 {
		t.Fatalf("expected bevel triangle (3 points) for a sharp turn, got %d", len(j.Points))
	}

	// A gentle right-angle turn with a generous miter limit should miter.
	c2 := Point{X: 10, Y: 10}
	j2, ok := joint(a, b, c2, 2, 10)
	if !ok {
		t.Fatalf("expected joint geometry")
	}
	if len(j2.Points) != 4 {
		t.Fatalf("expected miter quad (4 points) for a right-angle turn with generous limit, got %d", len(j2.Points))
	}
}
