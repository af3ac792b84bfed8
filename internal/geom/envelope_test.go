package geom

import "testing"

func TestNewRejectsMalformedEnvelope(t *testing.T) {
	if _, err := New(10, 5, 0, 1); err == nil {
		t.Fatal("expected an error when minX > maxX")
	}
	if _, err := New(0, 1, 10, 5); err == nil {
		t.Fatal("expected an error when minY > maxY")
	}
}

func TestUnion(t *testing.T) {
	a := Envelope{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	b := Envelope{MinX: 2, MaxX: 3, MinY: -1, MaxY: 0.5}

	got := a.Union(b)
	want := Envelope{MinX: 0, MaxX: 3, MinY: -1, MaxY: 1}
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestIntersects(t *testing.T) {
	a := Envelope{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}

	cases := []struct {
		name  string
		other Envelope
		want  bool
	}{
		{"overlapping", Envelope{MinX: 5, MaxX: 15, MinY: 5, MaxY: 15}, true},
		{"touching edge", Envelope{MinX: 10, MaxX: 20, MinY: 0, MaxY: 10}, true},
		{"disjoint", Envelope{MinX: 20, MaxX: 30, MinY: 20, MaxY: 30}, false},
		{"contained", Envelope{MinX: 2, MaxX: 3, MinY: 2, MaxY: 3}, true},
	}
	for _, c := range cases {
		if got := a.Intersects(c.other); got != c.want {
			t.Errorf("%s: Intersects() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCentroid(t *testing.T) {
	e := Envelope{MinX: 0, MaxX: 10, MinY: 0, MaxY: 20}
	c := e.Centroid()
	if c.X != 5 || c.Y != 10 {
		t.Errorf("Centroid() = %+v, want {5 10}", c)
	}
}

func TestClone(t *testing.T) {
	e := Envelope{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	cl := e.Clone()
	cl.MaxX = 100
	if e.MaxX == 100 {
		t.Fatal("Clone() did not produce an independent copy")
	}
}

func TestDistanceSquaredToPoint(t *testing.T) {
	e := Envelope{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}

	if got := e.DistanceSquaredToPoint(Point{X: 5, Y: 5}); got != 0 {
		t.Errorf("point inside envelope: got %v, want 0", got)
	}
	if got := e.DistanceSquaredToPoint(Point{X: 13, Y: 0}); got != 9 {
		t.Errorf("point outside on X: got %v, want 9", got)
	}
	if got := e.DistanceSquaredToPoint(Point{X: 13, Y: 14}); got != 9+16 {
		t.Errorf("point outside on both axes: got %v, want %v", got, 9+16)
	}
}
