package game

import "sync/atomic"

// EntityID is a unique identifier for a toss target. Unique IDs instead
// of slice indices keep references stable while entities are added and
// removed mid-tick.
type EntityID uint64

var nextEntityID uint64

func newEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Kind discriminates the three toss targets. Behavior on hit is
// dispatched on this tag rather than on distinct types.
type Kind int

const (
	// KindFruit scores points when sliced.
	KindFruit Kind = iota

	// KindBomb costs a life when sliced.
	KindBomb

	// KindIce freezes the blade for a stacking, per-hit-capped duration.
	KindIce
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFruit:
		return "fruit"
	case KindBomb:
		return "bomb"
	case KindIce:
		return "ice"
	default:
		return "unknown"
	}
}

// Collision radii per kind, in pixels.
const (
	fruitRadius = 30.0
	bombRadius  = 26.0
	iceRadius   = 26.0
)

// Entity is a single object in flight.
type Entity struct {
	// Unique identifier
	ID EntityID

	// Kind tag driving hit dispatch
	Kind Kind

	// Position in screen coordinates
	X, Y float64

	// Velocity in pixels per tick
	VX, VY float64

	// Downward acceleration in pixels per tick squared, fixed at launch
	Gravity float64

	// Rotation in radians and its per-tick increment
	Rotation      float64
	RotationSpeed float64

	// Collision radius in pixels
	Radius float64

	// Visual variant (palette index for fruit)
	Variant int

	// Sliced is set once by a registered hit and never cleared; a sliced
	// entity is excluded from collision and removed by end of tick
	Sliced bool
}

// Advance integrates one tick of projectile motion.
func (e *Entity) Advance() {
	e.X += e.VX
	e.Y += e.VY
	e.VY += e.Gravity
	e.Rotation += e.RotationSpeed
}

// BelowScreen reports whether the entity has fallen out of the visible
// area. Only a descending entity counts; an ascending one that starts
// below the bottom edge is still on its way up.
func (e *Entity) BelowScreen(screenHeight float64) bool {
	return e.VY > 0 && e.Y-e.Radius > screenHeight
}

func radiusForKind(k Kind) float64 {
	switch k {
	case KindBomb:
		return bombRadius
	case KindIce:
		return iceRadius
	default:
		return fruitRadius
	}
}
