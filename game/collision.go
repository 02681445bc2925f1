package game

import "math"

// pointSegmentDistance returns the minimum distance from point (px, py)
// to the segment (x1, y1)-(x2, y2). The projection parameter is clamped
// to [0, 1]; a zero-length segment degenerates to point-to-point
// distance.
func pointSegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x1, py-y1)
	}

	t := ((px-x1)*dx + (py-y1)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	cx := x1 + t*dx
	cy := y1 + t*dy
	return math.Hypot(px-cx, py-cy)
}

// segmentHits tests the newest blade segment against every live,
// unsliced entity and returns all of them that the segment cuts. There
// is no first-hit-wins rule: one swipe can cut several entities in the
// same tick.
func segmentHits(entities []*Entity, trail *BladeTrail) []*Entity {
	p1, p2, ok := trail.LatestSegment()
	if !ok {
		return nil
	}

	var hits []*Entity
	for _, e := range entities {
		if e.Sliced {
			continue
		}
		if pointSegmentDistance(e.X, e.Y, p1.X, p1.Y, p2.X, p2.Y) < e.Radius {
			hits = append(hits, e)
		}
	}
	return hits
}
