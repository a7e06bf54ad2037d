package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config can drive a simulation.
func (c *MagicTreeConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height))
	}

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	positive("player.gravity", c.Player.Gravity)
	positive("player.jump_power", c.Player.JumpPower)
	if c.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player.lives must be positive, got %d", c.Player.Lives))
	}
	if c.Player.AnimFrames <= 0 || c.Player.AnimSpeed <= 0 {
		errs = append(errs, errors.New("player animation frames and speed must be positive"))
	}

	positive("camera.section_height", c.Camera.SectionHeight)
	if c.Camera.ScrollThreshold <= 0 || c.Camera.ScrollThreshold >= 1 {
		errs = append(errs, fmt.Errorf("camera.scroll_threshold must be in (0, 1), got %v", c.Camera.ScrollThreshold))
	}

	positive("platforms.height", c.Platforms.Height)
	positive("platforms.min_width", c.Platforms.MinWidth)
	positive("platforms.gap_y", c.Platforms.GapY)
	positive("platforms.start_width", c.Platforms.StartWidth)
	if c.Platforms.MaxWidth < c.Platforms.MinWidth {
		errs = append(errs, errors.New("platforms.max_width must not be below min_width"))
	}

	positive("projectile.size", c.Projectile.Size)
	positive("projectile.speed", c.Projectile.Speed)
	positive("collectible.size", c.Collectible.Size)
	positive("hazard.speed", c.Hazard.Speed)
	if len(c.Collectible.Tiers) == 0 {
		errs = append(errs, errors.New("collectible.tiers must not be empty"))
	}

	for _, b := range []struct {
		name string
		body EnemyBody
	}{
		{EnemyCaterpillar, c.Enemies.Caterpillar.EnemyBody},
		{EnemyOwl, c.Enemies.Owl.EnemyBody},
		{EnemyBug, c.Enemies.Bug.EnemyBody},
		{EnemyThundercloud, c.Enemies.Thundercloud.EnemyBody},
	} {
		positive("enemies."+b.name+".width", b.body.Width)
		positive("enemies."+b.name+".height", b.body.Height)
	}
	for _, w := range []string{c.Enemies.Caterpillar.Wave, c.Enemies.Owl.Wave} {
		if w != "sin" && w != "cos" {
			errs = append(errs, fmt.Errorf("enemy wave must be sin or cos, got %q", w))
		}
	}

	if len(c.Sections) == 0 {
		errs = append(errs, errors.New("sections must not be empty"))
	}
	for i, s := range c.Sections {
		switch s.Pattern {
		case PatternUniform, PatternWide, PatternSparse:
		default:
			errs = append(errs, fmt.Errorf("sections[%d]: unknown pattern %q", i, s.Pattern))
		}
		for _, sp := range s.Spawns {
			switch sp.Enemy {
			case EnemyCaterpillar, EnemyOwl, EnemyBug, EnemyThundercloud:
			default:
				errs = append(errs, fmt.Errorf("sections[%d]: unknown enemy %q", i, sp.Enemy))
			}
			if sp.Chance < 0 || sp.Chance > 1 {
				errs = append(errs, fmt.Errorf("sections[%d]: chance for %s must be in [0, 1]", i, sp.Enemy))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
