package config

import (
	_ "embed"
)

//go:embed defaults/magictree.yaml
var defaultMagicTreeYAML []byte

// DefaultMagicTreeConfig returns the hardcoded Magic Tree configuration.
// It mirrors defaults/magictree.yaml and is used when the embedded YAML
// cannot be parsed.
func DefaultMagicTreeConfig() MagicTreeConfig {
	return MagicTreeConfig{
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:          50,
			Height:         50,
			Speed:          5,
			JumpPower:      15,
			Gravity:        0.8,
			Lives:          3,
			AnimFrames:     4,
			AnimSpeed:      10,
			RespawnGraceMS: 1000,
		},
		Camera: CameraConfig{
			ScrollThreshold: 1.0 / 3.0,
			SectionHeight:   600,
			ClearY:          -2000,
		},
		Platforms: PlatformConfig{
			Height:         20,
			MinWidth:       80,
			MaxWidth:       150,
			GapY:           80,
			GapYJitter:     50,
			GapX:           100,
			StartWidth:     100,
			SeedRows:       5,
			WideFactor:     1.5,
			SparseMinWidth: 20,
			SparseRange:    100,
		},
		Projectile: ProjectileConfig{
			Size:  20,
			Speed: 5,
		},
		Collectible: CollectibleConfig{
			Size:  30,
			Speed: 3,
			Tiers: []TierConfig{
				{Name: "blue", Score: 200},
				{Name: "white", Score: 400},
				{Name: "green", Score: 600},
			},
		},
		Hazard: HazardConfig{
			Width:  5,
			Height: 20,
			Speed:  10,
		},
		Scoring: ScoringConfig{
			KillBonus: 100,
		},
		Enemies: EnemiesConfig{
			Caterpillar: BobEnemyConfig{
				EnemyBody: EnemyBody{Width: 40, Height: 40, Speed: 1, SpawnOffsetY: -50},
				Wave:      "sin",
				Rate:      0.005,
				Amplitude: 50,
			},
			Owl: BobEnemyConfig{
				EnemyBody: EnemyBody{Width: 50, Height: 50, Speed: 2, SpawnOffsetY: -100},
				Wave:      "cos",
				Rate:      0.007,
				Amplitude: 100,
			},
			Bug: JumperEnemyConfig{
				EnemyBody:      EnemyBody{Width: 30, Height: 30, Speed: 3, SpawnOffsetY: -50},
				JumpIntervalMS: 6000,
				JumpHeight:     50,
				FallPerTick:    2,
			},
			Thundercloud: RangedEnemyConfig{
				EnemyBody:        EnemyBody{Width: 80, Height: 60, Speed: 0.5, SpawnOffsetY: -150},
				AttackIntervalMS: 18000,
				Damage:           1,
			},
		},
		Sections: []SectionConfig{
			{
				Pattern: PatternUniform,
				Spawns: []SpawnConfig{
					{Enemy: EnemyCaterpillar, Chance: 0.01},
					{Enemy: EnemyOwl, Chance: 0.005},
				},
			},
			{
				Pattern: PatternWide,
				Spawns: []SpawnConfig{
					{Enemy: EnemyBug, Chance: 0.01},
					{Enemy: EnemyThundercloud, Chance: 0.003},
				},
			},
			{
				Pattern: PatternSparse,
				Spawns:  []SpawnConfig{},
			},
		},
		Audio: AudioConfig{
			MusicVolume: 0.5,
			SfxVolume:   1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMagicTreeYAML
}
