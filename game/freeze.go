package game

import "time"

// FreezeTimer tracks the blade-freezing effect granted by ice hits.
// A single absolute end timestamp is the sole authority for whether
// slicing is currently suspended; it is never inferred from tick
// counts. Consecutive hits stack additively on top of any still-active
// freeze, while each individual hit's contribution is capped.
type FreezeTimer struct {
	end time.Time

	// Cumulative ice hits for the current run; reset only by a new game.
	hits int

	// Remaining duration captured while paused, so wall-clock time spent
	// paused never counts against the countdown.
	suspended bool
	remaining time.Duration
}

// Active reports whether the freeze is currently in effect.
func (f *FreezeTimer) Active(now time.Time) bool {
	return now.Before(f.end)
}

// Remaining returns how much freeze time is left, zero when inactive.
func (f *FreezeTimer) Remaining(now time.Time) time.Duration {
	if f.suspended {
		return f.remaining
	}
	if !now.Before(f.end) {
		return 0
	}
	return f.end.Sub(now)
}

// Hits returns the cumulative ice-hit count for the run.
func (f *FreezeTimer) Hits() int {
	return f.hits
}

// RegisterHit records one more ice hit and extends the freeze by the
// per-hit duration from cfg: end = max(now, end) + duration. Returns
// the duration applied by this hit.
func (f *FreezeTimer) RegisterHit(now time.Time, cfg Config) time.Duration {
	f.hits++
	dur := cfg.FreezePerHit(f.hits)

	base := f.end
	if base.Before(now) {
		base = now
	}
	f.end = base.Add(dur)
	return dur
}

// Suspend captures the remaining duration on pause. Idempotent.
func (f *FreezeTimer) Suspend(now time.Time) {
	if f.suspended {
		return
	}
	f.suspended = true
	f.remaining = 0
	if now.Before(f.end) {
		f.remaining = f.end.Sub(now)
	}
}

// Resume re-anchors the end timestamp so exactly the captured remaining
// duration is left, regardless of how long the pause lasted.
func (f *FreezeTimer) Resume(now time.Time) {
	if !f.suspended {
		return
	}
	f.suspended = false
	f.end = now.Add(f.remaining)
	f.remaining = 0
}

// Reset clears the freeze and the cumulative hit counter for a new run.
func (f *FreezeTimer) Reset() {
	*f = FreezeTimer{}
}
