package game

import (
	"math/rand"
	"strings"
	"time"
)

// Menu idle-animation cadence and damage feedback tuning.
const (
	menuSpawnInterval = 1400 * time.Millisecond
	shakeDuration     = 300 * time.Millisecond
)

// ScoreStore persists a finished run's score under a player name.
// A nil store disables persistence without affecting play.
type ScoreStore interface {
	Submit(name string, score int) error
}

// Game owns the whole session state and orchestrates the per-tick
// pipeline: state gating, spawning, physics, trail decay, collision,
// effect resolution and bounds cleanup. It is driven by an external
// fixed tick signal and is not safe for concurrent use; every caller
// (input, timer, render) goes through the same goroutine.
type Game struct {
	cfg   Config
	clock Clock
	rng   *rand.Rand
	board ScoreStore

	state State

	// epoch counts state transitions; deferred spawns scheduled under an
	// older epoch are discarded when they come due
	epoch uint64

	score int
	lives int

	// consecutive unsliced fruit drops; every DropPenaltyEvery-th costs
	// a life and resets the counter
	drops int

	entities  []*Entity
	particles []Particle
	trail     *BladeTrail
	spawner   *SpawnScheduler
	freeze    FreezeTimer

	shakeUntil    time.Time
	menuLastSpawn time.Time
}

// NewGame creates a session in the menu state. board may be nil.
func NewGame(cfg Config, board ScoreStore) *Game {
	g := &Game{
		cfg:   cfg,
		clock: systemClock{},
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		board: board,
		state: StateMenu,
		lives: cfg.StartLives,
	}
	g.trail = newBladeTrail(cfg.TrailCapacity, cfg.TrailDecay)
	g.spawner = newSpawnScheduler(cfg, g.rng)
	g.menuLastSpawn = g.clock.Now()
	g.spawnShowcase()
	return g
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// transition moves to a new state and invalidates anything scheduled
// under the old one.
func (g *Game) transition(to State) {
	g.state = to
	g.epoch++
}

// Tick advances the simulation by one frame. Paused and game-over
// states keep their last rendered state untouched.
func (g *Game) Tick() {
	now := g.clock.Now()
	switch g.state {
	case StateMenu:
		g.tickMenu(now)
	case StatePlaying:
		g.tickPlaying(now)
	}
}

func (g *Game) tickPlaying(now time.Time) {
	frozen := g.freeze.Active(now)

	g.spawner.advance(now, g.score, g.epoch, func(k Kind) {
		g.entities = append(g.entities, newTossedEntity(g.cfg, g.rng, g.score, k))
	}, g.iceLive)

	for _, e := range g.entities {
		e.Advance()
	}
	g.advanceParticles()

	g.trail.Decay()
	if !frozen {
		for _, e := range segmentHits(g.entities, g.trail) {
			g.resolveHit(e, now)
		}
	}

	g.removeFinished(now)
}

// tickMenu runs the decorative idle toss: sparse fruit, full physics,
// no lives, score or collision logic.
func (g *Game) tickMenu(now time.Time) {
	if now.Sub(g.menuLastSpawn) >= menuSpawnInterval {
		g.menuLastSpawn = now
		g.entities = append(g.entities, newTossedEntity(g.cfg, g.rng, 0, KindFruit))
	}

	for _, e := range g.entities {
		e.Advance()
	}
	g.advanceParticles()

	kept := g.entities[:0]
	for _, e := range g.entities {
		if !e.BelowScreen(float64(g.cfg.ScreenHeight)) {
			kept = append(kept, e)
		}
	}
	g.entities = kept
}

// spawnShowcase tosses three hand-tuned entities for the menu screen,
// one of each kind. They follow the exact same integration rule as
// gameplay tosses.
func (g *Game) spawnShowcase() {
	w := float64(g.cfg.ScreenWidth)
	h := float64(g.cfg.ScreenHeight)
	startY := h + g.cfg.SpawnOffsetY

	showcase := []struct {
		kind     Kind
		x        float64
		vx, vy   float64
		rotSpeed float64
	}{
		{KindFruit, w * 0.25, 0.6, -14.5, 0.05},
		{KindIce, w * 0.50, 0, -16.0, -0.03},
		{KindBomb, w * 0.75, -0.6, -13.5, 0.04},
	}
	for _, s := range showcase {
		g.entities = append(g.entities, &Entity{
			ID:            newEntityID(),
			Kind:          s.kind,
			X:             s.x,
			Y:             startY,
			VX:            s.vx,
			VY:            s.vy,
			Gravity:       g.cfg.BaseGravity,
			RotationSpeed: s.rotSpeed,
			Radius:        radiusForKind(s.kind),
			Variant:       g.rng.Intn(len(FruitPalette)),
		})
	}
}

func (g *Game) advanceParticles() {
	kept := g.particles[:0]
	for i := range g.particles {
		g.particles[i].Advance()
		if g.particles[i].Alive() {
			kept = append(kept, g.particles[i])
		}
	}
	g.particles = kept
}

// iceLive reports whether an unsliced ice entity is currently in play.
func (g *Game) iceLive() bool {
	for _, e := range g.entities {
		if e.Kind == KindIce && !e.Sliced {
			return true
		}
	}
	return false
}

// removeFinished drops sliced entities and entities that fell out of
// the visible area, applying the fruit drop penalty on the way.
func (g *Game) removeFinished(now time.Time) {
	h := float64(g.cfg.ScreenHeight)
	kept := g.entities[:0]
	for _, e := range g.entities {
		if e.Sliced {
			continue
		}
		if e.BelowScreen(h) {
			g.handleDropped(e, now)
			continue
		}
		kept = append(kept, e)
	}
	g.entities = kept
}

// StartGame resets the whole session and begins play. Valid from the
// menu and from the game-over screen (restart); a no-op otherwise.
func (g *Game) StartGame() {
	if g.state != StateMenu && g.state != StateGameOver {
		return
	}
	now := g.clock.Now()

	g.score = 0
	g.lives = g.cfg.StartLives
	g.drops = 0
	g.entities = nil
	g.particles = nil
	g.trail.Clear()
	g.freeze.Reset()
	g.spawner.reset(now)
	g.shakeUntil = time.Time{}

	g.transition(StatePlaying)
}

// PauseGame suspends the simulation. The remaining freeze duration is
// captured so time spent paused never counts against it, and the trail
// is cleared so no stale segment can cut after resuming.
func (g *Game) PauseGame() {
	if g.state != StatePlaying {
		return
	}
	now := g.clock.Now()
	g.freeze.Suspend(now)
	g.trail.Clear()
	g.transition(StatePaused)
}

// ResumeGame re-anchors the freeze countdown and the spawn cadence to
// the resume instant and continues play.
func (g *Game) ResumeGame() {
	if g.state != StatePaused {
		return
	}
	now := g.clock.Now()
	g.freeze.Resume(now)
	g.spawner.reset(now)
	g.transition(StatePlaying)
}

// GoHome abandons a paused run or leaves the game-over screen. The
// session is discarded and the menu idle animation starts over.
func (g *Game) GoHome() {
	if g.state != StatePaused && g.state != StateGameOver {
		return
	}
	now := g.clock.Now()

	g.score = 0
	g.lives = g.cfg.StartLives
	g.drops = 0
	g.entities = nil
	g.particles = nil
	g.trail.Clear()
	g.freeze.Reset()
	g.shakeUntil = time.Time{}

	g.transition(StateMenu)
	g.menuLastSpawn = now
	g.spawnShowcase()
}

// SubmitScore persists the finished run under the given name. Only
// valid on the game-over screen; an empty or whitespace-only name is
// silently ignored.
func (g *Game) SubmitScore(name string) error {
	if g.state != StateGameOver {
		return nil
	}
	name = strings.TrimSpace(name)
	if name == "" || g.board == nil {
		return nil
	}
	return g.board.Submit(name, g.score)
}

// OnPointerSample feeds one gesture sample to the blade trail. Samples
// arriving while not playing, or while the blade is frozen, are
// dropped.
func (g *Game) OnPointerSample(x, y float64) {
	if g.state != StatePlaying {
		return
	}
	if g.freeze.Active(g.clock.Now()) {
		return
	}
	g.trail.Append(x, y)
}
