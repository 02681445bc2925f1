package game

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the gameplay tuning constants. All values have sensible
// defaults; an optional yaml file can overlay any of them.
type Config struct {
	// ScreenWidth is the playfield width in pixels
	ScreenWidth int `yaml:"screenWidth"`

	// ScreenHeight is the playfield height in pixels
	ScreenHeight int `yaml:"screenHeight"`

	// BaseGravity is the downward acceleration in pixels per tick squared
	// before the score-based speed multiplier is applied
	BaseGravity float64 `yaml:"baseGravity"`

	// SpawnBaseMillis is the spawn interval at score zero
	SpawnBaseMillis float64 `yaml:"spawnBaseMillis"`

	// SpawnFloorMillis is the fastest the spawn interval may ever get
	SpawnFloorMillis float64 `yaml:"spawnFloorMillis"`

	// SpawnScoreMillis is how many milliseconds the interval shrinks
	// per point of score
	SpawnScoreMillis float64 `yaml:"spawnScoreMillis"`

	// DoubleSpawnChance is the probability of scheduling a second toss
	// shortly after a regular one
	DoubleSpawnChance float64 `yaml:"doubleSpawnChance"`

	// DoubleSpawnDelayMillis is the delay before the scheduled second toss
	DoubleSpawnDelayMillis float64 `yaml:"doubleSpawnDelayMillis"`

	// BombChance and IceChance weight the kind draw; the remainder is fruit
	BombChance float64 `yaml:"bombChance"`
	IceChance  float64 `yaml:"iceChance"`

	// TrailCapacity bounds the blade trail length in points
	TrailCapacity int `yaml:"trailCapacity"`

	// TrailDecay is the per-tick life loss of each trail point
	TrailDecay float64 `yaml:"trailDecay"`

	// FreezePerHitMillis is the freeze duration gained per cumulative
	// ice hit, FreezeCapMillis the per-hit ceiling
	FreezePerHitMillis float64 `yaml:"freezePerHitMillis"`
	FreezeCapMillis    float64 `yaml:"freezeCapMillis"`

	// StartLives is the life count at the start of a run
	StartLives int `yaml:"startLives"`

	// DropPenaltyEvery is how many consecutive dropped fruit cost a life
	DropPenaltyEvery int `yaml:"dropPenaltyEvery"`

	// PeakBandTop is the highest allowed apex in pixels from the top of
	// the screen (keeps tosses below the HUD)
	PeakBandTop float64 `yaml:"peakBandTop"`

	// PeakBandBottomFrac is the lowest allowed apex as a fraction of the
	// screen height
	PeakBandBottomFrac float64 `yaml:"peakBandBottomFrac"`

	// SpawnOffsetY is how far below the bottom edge entities are tossed from
	SpawnOffsetY float64 `yaml:"spawnOffsetY"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:            480,
		ScreenHeight:           720,
		BaseGravity:            0.25,
		SpawnBaseMillis:        1100,
		SpawnFloorMillis:       500,
		SpawnScoreMillis:       1.5,
		DoubleSpawnChance:      0.10,
		DoubleSpawnDelayMillis: 250,
		BombChance:             0.10,
		IceChance:              0.40,
		TrailCapacity:          10,
		TrailDecay:             0.05,
		FreezePerHitMillis:     3000,
		FreezeCapMillis:        9000,
		StartLives:             3,
		DropPenaltyEvery:       3,
		PeakBandTop:            100,
		PeakBandBottomFrac:     0.65,
		SpawnOffsetY:           80,
	}
}

// LoadConfig overlays the default tuning with values from a yaml file.
// A missing file is not an error; a malformed one is logged and the
// defaults are used unchanged.
func LoadConfig(path string) Config {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("config: ignoring malformed %s: %v", path, err)
		return DefaultConfig()
	}
	// the trail needs two live points to form a cutting segment
	if cfg.TrailCapacity < 2 {
		cfg.TrailCapacity = 2
	}
	return cfg
}

// SpawnInterval returns the spawn cadence for the given score. The
// interval shrinks linearly with score down to a hard floor.
func (c Config) SpawnInterval(score int) time.Duration {
	ms := c.SpawnBaseMillis - float64(score)*c.SpawnScoreMillis
	if ms < c.SpawnFloorMillis {
		ms = c.SpawnFloorMillis
	}
	return time.Duration(ms * float64(time.Millisecond))
}

// FreezePerHit returns the freeze duration granted by the n-th
// cumulative ice hit: linear in n, hard-capped per hit.
func (c Config) FreezePerHit(hits int) time.Duration {
	ms := float64(hits) * c.FreezePerHitMillis
	if ms > c.FreezeCapMillis {
		ms = c.FreezeCapMillis
	}
	return time.Duration(ms * float64(time.Millisecond))
}

// DoubleSpawnDelay returns the delay of the scheduled second toss.
func (c Config) DoubleSpawnDelay() time.Duration {
	return time.Duration(c.DoubleSpawnDelayMillis * float64(time.Millisecond))
}
