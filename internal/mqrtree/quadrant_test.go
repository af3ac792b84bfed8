package mqrtree

import (
	"testing"

	"github.com/444lessio/mqrtree/internal/geom"
)

func TestFindInsertQuad(t *testing.T) {
	node := geom.Envelope{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10} // centroid (0,0)

	cases := []struct {
		name string
		pt   geom.Envelope
		want Quadrant
	}{
		{"exact center", geom.NewFromPoint(0, 0), Center},
		{"southwest", geom.NewFromPoint(-5, -5), SW},
		{"northwest", geom.NewFromPoint(-5, 5), NW},
		{"northeast", geom.NewFromPoint(5, 5), NE},
		{"southeast", geom.NewFromPoint(5, -5), SE},
		{"tie on x resolves east", geom.NewFromPoint(0, 5), NE},
		{"tie on y resolves north", geom.NewFromPoint(-5, 0), NW},
		{"tie on both resolves center", geom.NewFromPoint(0, 0), Center},
	}
	for _, c := range cases {
		if got := findInsertQuad(c.pt, node); got != c.want {
			t.Errorf("%s: findInsertQuad() = %v, want %v", c.name, got, c.want)
		}
	}
}
