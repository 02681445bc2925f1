package game

import (
	"math/rand"
	"time"
)

// pendingSpawn is the deferred second toss of a double-spawn burst. It
// carries the state epoch at scheduling time; if the epoch has moved by
// the time it comes due, the spawn is discarded, not deferred.
type pendingSpawn struct {
	due   time.Time
	epoch uint64
}

// SpawnScheduler decides when to introduce new entities and which kind.
// It enforces the ice uniqueness rule: at most one live unsliced ice
// entity at any time, with ice draws redrawn as fruit while one is up.
type SpawnScheduler struct {
	cfg Config
	rng *rand.Rand

	lastSpawn time.Time
	pending   *pendingSpawn
}

func newSpawnScheduler(cfg Config, rng *rand.Rand) *SpawnScheduler {
	return &SpawnScheduler{cfg: cfg, rng: rng}
}

// reset re-anchors the cadence and drops any scheduled toss.
func (s *SpawnScheduler) reset(now time.Time) {
	s.lastSpawn = now
	s.pending = nil
}

// advance runs one tick of spawn decisions. spawn must commit the
// entity immediately so that iceLive sees same-batch spawns; epoch is
// the current state-transition counter used to invalidate the deferred
// toss.
func (s *SpawnScheduler) advance(now time.Time, score int, epoch uint64, spawn func(Kind), iceLive func() bool) {
	if s.pending != nil && !now.Before(s.pending.due) {
		p := *s.pending
		s.pending = nil
		if p.epoch == epoch {
			spawn(s.drawKind(iceLive()))
		}
	}

	if now.Sub(s.lastSpawn) < s.cfg.SpawnInterval(score) {
		return
	}
	s.lastSpawn = now
	spawn(s.drawKind(iceLive()))

	if s.rng.Float64() < s.cfg.DoubleSpawnChance {
		s.pending = &pendingSpawn{due: now.Add(s.cfg.DoubleSpawnDelay()), epoch: epoch}
	}
}

// drawKind picks a kind by weighted draw. An ice draw while another ice
// is live always yields fruit.
func (s *SpawnScheduler) drawKind(iceLive bool) Kind {
	r := s.rng.Float64()
	switch {
	case r < s.cfg.BombChance:
		return KindBomb
	case r < s.cfg.BombChance+s.cfg.IceChance:
		if iceLive {
			return KindFruit
		}
		return KindIce
	default:
		return KindFruit
	}
}
