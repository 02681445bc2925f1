package game

import "testing"

func TestTrailCapacityDropsOldest(t *testing.T) {
	tr := newBladeTrail(3, 0.05)
	for i := 0; i < 5; i++ {
		tr.Append(float64(i), 0)
	}
	pts := tr.Points()
	if len(pts) != 3 {
		t.Fatalf("trail length = %d, want 3", len(pts))
	}
	for i, want := range []float64{2, 3, 4} {
		if pts[i].X != want {
			t.Errorf("point %d X = %v, want %v (oldest must be dropped first)", i, pts[i].X, want)
		}
	}
}

func TestTrailDecayPrunesExpired(t *testing.T) {
	tr := newBladeTrail(10, 0.5)
	tr.Append(0, 0)
	tr.Decay()
	if got := tr.Points(); len(got) != 1 || got[0].Life != 0.5 {
		t.Fatalf("after one decay: %+v, want one point at life 0.5", got)
	}
	tr.Append(1, 1) // fresher point, decays independently
	tr.Decay()
	pts := tr.Points()
	if len(pts) != 1 || pts[0].X != 1 {
		t.Fatalf("after second decay: %+v, want only the fresh point", pts)
	}
}

func TestTrailLatestSegment(t *testing.T) {
	tr := newBladeTrail(10, 0.05)
	if _, _, ok := tr.LatestSegment(); ok {
		t.Fatal("empty trail must not produce a segment")
	}
	tr.Append(1, 1)
	if _, _, ok := tr.LatestSegment(); ok {
		t.Fatal("single point must not produce a segment")
	}
	tr.Append(2, 2)
	tr.Append(3, 3)
	p1, p2, ok := tr.LatestSegment()
	if !ok || p1.X != 2 || p2.X != 3 {
		t.Fatalf("latest segment = (%v, %v, %v), want points 2 and 3", p1, p2, ok)
	}
}

func TestTrailClear(t *testing.T) {
	tr := newBladeTrail(10, 0.05)
	tr.Append(1, 1)
	tr.Append(2, 2)
	tr.Clear()
	if len(tr.Points()) != 0 {
		t.Fatal("clear must drop every point")
	}
}
