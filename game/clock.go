package game

import "time"

// Clock is the wall-clock source for every timer in the simulation
// (spawn cadence, freeze countdown, pause bookkeeping). Timers compare
// timestamps from it and never count ticks, so the simulation behaves
// the same at any tick rate.
type Clock interface {
	Now() time.Time
}

// systemClock reads the real wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
