package morton

import (
	"sort"
	"testing"

	"github.com/444lessio/mqrtree/internal/geom"
)

func TestCodeIsDeterministic(t *testing.T) {
	bounds := geom.Envelope{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}
	e := geom.NewFromPoint(42, 17)

	a := Code(e, bounds)
	b := Code(e, bounds)
	if a != b {
		t.Fatalf("Code() is not deterministic: %d != %d", a, b)
	}
}

func TestCodeOrdersNearbyPointsCloser(t *testing.T) {
	bounds := geom.Envelope{MinX: 0, MaxX: 1000, MinY: 0, MaxY: 1000}

	origin := Code(geom.NewFromPoint(0, 0), bounds)
	near := Code(geom.NewFromPoint(1, 1), bounds)
	far := Code(geom.NewFromPoint(999, 999), bounds)

	if near > far || origin > far {
		t.Fatalf("expected a nearby point to not be morton-ordered further than a distant one")
	}
}

func TestCompareSortsWithoutPanicking(t *testing.T) {
	bounds := geom.Envelope{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}
	envs := []geom.Envelope{
		geom.NewFromPoint(90, 90),
		geom.NewFromPoint(10, 10),
		geom.NewFromPoint(50, 50),
		geom.NewFromPoint(0, 0),
	}
	less := Compare(bounds)
	sort.Slice(envs, func(i, j int) bool { return less(envs[i], envs[j]) })

	for i := 1; i < len(envs); i++ {
		if Code(envs[i-1], bounds) > Code(envs[i], bounds) {
			t.Fatalf("envs not sorted by morton code at index %d", i)
		}
	}
}

func TestDegenerateBoundsDoNotPanic(t *testing.T) {
	bounds := geom.Envelope{MinX: 5, MaxX: 5, MinY: 5, MaxY: 5}
	if Code(geom.NewFromPoint(5, 5), bounds) != 0 {
		t.Fatalf("expected degenerate bounds to normalize to 0")
	}
}
