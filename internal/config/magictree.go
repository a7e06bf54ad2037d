// Package config provides YAML-based game configuration loading for
// Magic Tree. Every balance constant of the simulation lives here so that
// tuning stays out of the engine code.
package config

// MagicTreeConfig contains all configuration for the Magic Tree game.
type MagicTreeConfig struct {
	Viewport    ViewportConfig    `yaml:"viewport"`
	Player      PlayerConfig      `yaml:"player"`
	Camera      CameraConfig      `yaml:"camera"`
	Platforms   PlatformConfig    `yaml:"platforms"`
	Projectile  ProjectileConfig  `yaml:"projectile"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Hazard      HazardConfig      `yaml:"hazard"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Enemies     EnemiesConfig     `yaml:"enemies"`
	Sections    []SectionConfig   `yaml:"sections"`
	Audio       AudioConfig       `yaml:"audio"`
}

// ViewportConfig is the default world-space viewport a host should supply.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines player physics and presentation parameters.
type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`      // Horizontal units per tick
	JumpPower      float64 `yaml:"jump_power"` // Upward impulse magnitude
	Gravity        float64 `yaml:"gravity"`    // Added to velocity every tick
	Lives          int     `yaml:"lives"`
	AnimFrames     int     `yaml:"anim_frames"`
	AnimSpeed      int     `yaml:"anim_speed"` // Ticks per animation frame
	RespawnGraceMS int     `yaml:"respawn_grace_ms"`
}

// CameraConfig defines scrolling and progress thresholds.
type CameraConfig struct {
	ScrollThreshold float64 `yaml:"scroll_threshold"` // Fraction of viewport height
	SectionHeight   float64 `yaml:"section_height"`
	ClearY          float64 `yaml:"clear_y"` // Absolute world Y that clears the game
}

// PlatformConfig defines procedural platform generation parameters.
type PlatformConfig struct {
	Height         float64 `yaml:"height"`
	MinWidth       float64 `yaml:"min_width"`
	MaxWidth       float64 `yaml:"max_width"`
	GapY           float64 `yaml:"gap_y"`
	GapYJitter     float64 `yaml:"gap_y_jitter"`
	GapX           float64 `yaml:"gap_x"` // Max horizontal distance from the previous platform
	StartWidth     float64 `yaml:"start_width"`
	SeedRows       int     `yaml:"seed_rows"`
	WideFactor     float64 `yaml:"wide_factor"` // Max width multiplier for the wide pattern
	SparseMinWidth float64 `yaml:"sparse_min_width"`
	SparseRange    float64 `yaml:"sparse_range"`
}

// ProjectileConfig defines the dropped apple.
type ProjectileConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// CollectibleConfig defines diamonds and their score tiers.
type CollectibleConfig struct {
	Size  float64      `yaml:"size"`
	Speed float64      `yaml:"speed"`
	Tiers []TierConfig `yaml:"tiers"`
}

// TierConfig maps a collectible tier to its score award.
type TierConfig struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
}

// HazardConfig defines the lightning bolt.
type HazardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// ScoringConfig defines fixed score awards.
type ScoringConfig struct {
	KillBonus int `yaml:"kill_bonus"`
}

// EnemiesConfig holds one entry per enemy kind.
type EnemiesConfig struct {
	SeedInitial  bool              `yaml:"seed_initial"`
	Caterpillar  BobEnemyConfig    `yaml:"caterpillar"`
	Owl          BobEnemyConfig    `yaml:"owl"`
	Bug          JumperEnemyConfig `yaml:"bug"`
	Thundercloud RangedEnemyConfig `yaml:"thundercloud"`
}

// EnemyBody is shared by every enemy kind.
type EnemyBody struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	SpawnOffsetY float64 `yaml:"spawn_offset_y"` // Added to the spawn anchor Y
}

// BobEnemyConfig is a patrolling enemy that bobs on a wave.
type BobEnemyConfig struct {
	EnemyBody `yaml:",inline"`
	Wave      string  `yaml:"wave"` // "sin" or "cos"
	Rate      float64 `yaml:"rate"` // Radians per millisecond
	Amplitude float64 `yaml:"amplitude"`
}

// JumperEnemyConfig is a patrolling enemy that hops periodically.
type JumperEnemyConfig struct {
	EnemyBody      `yaml:",inline"`
	JumpIntervalMS int     `yaml:"jump_interval_ms"`
	JumpHeight     float64 `yaml:"jump_height"`
	FallPerTick    float64 `yaml:"fall_per_tick"`
}

// RangedEnemyConfig is a slow patrolling enemy that fires hazards.
type RangedEnemyConfig struct {
	EnemyBody        `yaml:",inline"`
	AttackIntervalMS int `yaml:"attack_interval_ms"`
	Damage           int `yaml:"damage"`
}

// SectionConfig is the rule table for one difficulty section.
type SectionConfig struct {
	Pattern string        `yaml:"pattern"` // "uniform", "wide" or "sparse"
	Spawns  []SpawnConfig `yaml:"spawns"`
}

// SpawnConfig is the per-tick spawn chance for one enemy kind.
type SpawnConfig struct {
	Enemy  string  `yaml:"enemy"`
	Chance float64 `yaml:"chance"`
}

// AudioConfig defines default clip volumes.
type AudioConfig struct {
	MusicVolume float64 `yaml:"music_volume"`
	SfxVolume   float64 `yaml:"sfx_volume"`
}

// Platform pattern names.
const (
	PatternUniform = "uniform"
	PatternWide    = "wide"
	PatternSparse  = "sparse"
)

// Enemy kind names used in spawn tables.
const (
	EnemyCaterpillar  = "caterpillar"
	EnemyOwl          = "owl"
	EnemyBug          = "bug"
	EnemyThundercloud = "thundercloud"
)

// Section returns the rule table for the given section index.
// Sections past the end of the table reuse the last entry.
func (c *MagicTreeConfig) Section(index int) SectionConfig {
	if len(c.Sections) == 0 {
		return SectionConfig{Pattern: PatternUniform}
	}
	if index < 0 {
		index = 0
	}
	if index >= len(c.Sections) {
		index = len(c.Sections) - 1
	}
	return c.Sections[index]
}
