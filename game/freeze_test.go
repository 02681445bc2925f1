package game

import (
	"testing"
	"time"
)

var freezeEpoch = time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

func TestFreezePerHitCap(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		hits int
		want time.Duration
	}{
		{1, 3 * time.Second},
		{2, 6 * time.Second},
		{3, 9 * time.Second},
		{4, 9 * time.Second},
		{10, 9 * time.Second},
	}
	for _, c := range cases {
		if got := cfg.FreezePerHit(c.hits); got != c.want {
			t.Errorf("FreezePerHit(%d) = %v, want %v", c.hits, got, c.want)
		}
	}
}

// Three immediate ice hits stack additively: 3s + 6s + 9s of freeze,
// 18s total. The cap applies per hit, never to the sum.
func TestFreezeStacksAdditively(t *testing.T) {
	cfg := DefaultConfig()
	var f FreezeTimer
	now := freezeEpoch

	f.RegisterHit(now, cfg)
	f.RegisterHit(now, cfg)
	f.RegisterHit(now, cfg)

	if got, want := f.Remaining(now), 18*time.Second; got != want {
		t.Fatalf("remaining after three hits = %v, want %v", got, want)
	}

	// every further hit keeps adding the capped 9s
	f.RegisterHit(now, cfg)
	if got, want := f.Remaining(now), 27*time.Second; got != want {
		t.Fatalf("remaining after four hits = %v, want %v", got, want)
	}
}

func TestFreezeHitAfterExpiryAnchorsAtNow(t *testing.T) {
	cfg := DefaultConfig()
	var f FreezeTimer
	f.RegisterHit(freezeEpoch, cfg)

	// long after the first freeze ran out
	later := freezeEpoch.Add(time.Minute)
	f.RegisterHit(later, cfg)
	if got, want := f.Remaining(later), 6*time.Second; got != want {
		t.Fatalf("remaining = %v, want %v (second hit grants 6s from now)", got, want)
	}
}

// Pausing with R remaining and resuming after any wall-clock delay T
// must leave exactly R on the countdown, independent of T.
func TestFreezeSuspendResumeInvariance(t *testing.T) {
	cfg := DefaultConfig()
	var f FreezeTimer
	f.RegisterHit(freezeEpoch, cfg) // 3s

	pausedAt := freezeEpoch.Add(time.Second)
	remaining := f.Remaining(pausedAt)
	f.Suspend(pausedAt)

	for _, delay := range []time.Duration{0, time.Second, time.Hour} {
		resumedAt := pausedAt.Add(delay)
		g := f // copy keeps each delay independent
		g.Resume(resumedAt)
		if got := g.Remaining(resumedAt); got != remaining {
			t.Errorf("delay %v: remaining after resume = %v, want %v", delay, got, remaining)
		}
		if !g.Active(resumedAt) {
			t.Errorf("delay %v: freeze must still be active after resume", delay)
		}
	}
}

func TestFreezeInactiveReportsZero(t *testing.T) {
	var f FreezeTimer
	if f.Active(freezeEpoch) {
		t.Error("fresh timer must be inactive")
	}
	if got := f.Remaining(freezeEpoch); got != 0 {
		t.Errorf("fresh timer remaining = %v, want 0", got)
	}
}

func TestFreezeResetClearsHits(t *testing.T) {
	cfg := DefaultConfig()
	var f FreezeTimer
	f.RegisterHit(freezeEpoch, cfg)
	f.RegisterHit(freezeEpoch, cfg)
	f.Reset()
	if f.Hits() != 0 {
		t.Errorf("hits after reset = %d, want 0", f.Hits())
	}
	// the counter restarts, so the next hit grants the base duration
	f.RegisterHit(freezeEpoch, cfg)
	if got, want := f.Remaining(freezeEpoch), 3*time.Second; got != want {
		t.Errorf("remaining after reset and one hit = %v, want %v", got, want)
	}
}
