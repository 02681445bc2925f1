package game

import (
	"math"
	"testing"
)

func TestPointSegmentDistance(t *testing.T) {
	cases := []struct {
		name                         string
		px, py, x1, y1, x2, y2, want float64
	}{
		{"perpendicular foot inside", 0, 1, -1, 0, 1, 0, 1},
		{"clamped to right end", 3, 4, -1, 0, 1, 0, math.Hypot(2, 4)},
		{"clamped to left end", -5, 0, -1, 0, 1, 0, 4},
		{"on the segment", 0.5, 0, -1, 0, 1, 0, 0},
		{"degenerate segment", 5, 6, 2, 2, 2, 2, 5},
	}
	for _, c := range cases {
		got := pointSegmentDistance(c.px, c.py, c.x1, c.y1, c.x2, c.y2)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s: distance = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSegmentHitsMultipleEntities(t *testing.T) {
	tr := newBladeTrail(10, 0.05)
	tr.Append(0, 100)
	tr.Append(400, 100)

	entities := []*Entity{
		{ID: 1, X: 100, Y: 110, Radius: 30},
		{ID: 2, X: 300, Y: 95, Radius: 30},
		{ID: 3, X: 200, Y: 300, Radius: 30}, // too far
	}
	hits := segmentHits(entities, tr)
	if len(hits) != 2 {
		t.Fatalf("hits = %d entities, want 2 (no first-hit-wins rule)", len(hits))
	}
	if hits[0].ID != 1 || hits[1].ID != 2 {
		t.Errorf("hit IDs = %d, %d, want 1, 2", hits[0].ID, hits[1].ID)
	}
}

// Once sliced, an entity can never re-trigger effect resolution.
func TestSegmentHitsExcludesSliced(t *testing.T) {
	tr := newBladeTrail(10, 0.05)
	tr.Append(0, 100)
	tr.Append(400, 100)

	e := &Entity{ID: 1, X: 100, Y: 100, Radius: 30, Sliced: true}
	if hits := segmentHits([]*Entity{e}, tr); len(hits) != 0 {
		t.Fatal("sliced entity must be excluded from collision")
	}
}

func TestSegmentHitsNeedsSegment(t *testing.T) {
	tr := newBladeTrail(10, 0.05)
	tr.Append(100, 100)
	e := &Entity{ID: 1, X: 100, Y: 100, Radius: 30}
	if hits := segmentHits([]*Entity{e}, tr); hits != nil {
		t.Fatal("a single trail point must not cut")
	}
}
