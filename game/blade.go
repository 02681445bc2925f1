package game

// TrailPoint is one timestamped gesture sample. Life runs from 1 down
// to 0 and doubles as the render opacity.
type TrailPoint struct {
	X, Y float64
	Life float64
}

// BladeTrail is the cutting weapon: a short, decaying, chronologically
// ordered buffer of recent gesture points. Capacity is fixed; the
// oldest point is dropped on overflow so the trail always represents
// the most recent stretch of the swipe, never its whole history.
type BladeTrail struct {
	points   []TrailPoint
	capacity int
	decay    float64
}

func newBladeTrail(capacity int, decay float64) *BladeTrail {
	return &BladeTrail{
		points:   make([]TrailPoint, 0, capacity),
		capacity: capacity,
		decay:    decay,
	}
}

// Append adds a fresh gesture sample, evicting the oldest point if the
// trail is full.
func (t *BladeTrail) Append(x, y float64) {
	if len(t.points) >= t.capacity {
		t.points = t.points[1:]
	}
	t.points = append(t.points, TrailPoint{X: x, Y: y, Life: 1})
}

// Decay ages every point by one tick and prunes the expired ones. All
// points decay at the same rate, so pruning from the front preserves
// chronological order.
func (t *BladeTrail) Decay() {
	for i := range t.points {
		t.points[i].Life -= t.decay
	}
	alive := 0
	for alive < len(t.points) && t.points[alive].Life <= 0 {
		alive++
	}
	t.points = t.points[alive:]
}

// Clear drops every point. Called on entering a paused or frozen
// condition so no stale segment can register hits after resuming.
func (t *BladeTrail) Clear() {
	t.points = t.points[:0]
}

// LatestSegment returns the segment between the two most recent
// surviving points. ok is false while the trail is too short to cut.
func (t *BladeTrail) LatestSegment() (p1, p2 TrailPoint, ok bool) {
	n := len(t.points)
	if n < 2 {
		return TrailPoint{}, TrailPoint{}, false
	}
	return t.points[n-2], t.points[n-1], true
}

// Points returns the live points, oldest first.
func (t *BladeTrail) Points() []TrailPoint {
	return t.points
}
