package magictree

import (
	"math/rand"

	"github.com/vovakirdan/magic-tree/internal/config"
	"github.com/vovakirdan/magic-tree/internal/core"
)

// Player is the climbing character. Exactly one exists per world.
type Player struct {
	X, Y        float64
	W, H        float64
	VelY        float64
	Airborne    bool
	Lives       int
	FacingRight bool
	Frame       int // Current walk animation frame
	frameTimer  int
	graceUntil  float64 // Sim clock (ms) until which contact damage is ignored
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Platform is a static ledge. Platforms never move.
type Platform struct {
	X, Y, W, H float64
}

// Bounds returns the platform's collision box.
func (p Platform) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Projectile is a dropped apple falling straight down.
type Projectile struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Bounds returns the projectile's collision box.
func (p Projectile) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Tier is a collectible's value class, an index into the tier table.
type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh
)

// Collectible is a diamond produced when an apple strikes a platform.
type Collectible struct {
	X, Y  float64
	Size  float64
	Speed float64
	Tier  Tier
}

// Bounds returns the collectible's collision box.
func (c Collectible) Bounds() core.Rect {
	return core.NewRect(c.X, c.Y, c.Size, c.Size)
}

// Hazard is a lightning bolt travelling along a direction fixed at spawn.
type Hazard struct {
	X, Y             float64
	W, H             float64
	VX, VY           float64
	TargetX, TargetY float64
	Damage           int
}

// Bounds returns the hazard's collision box.
func (h Hazard) Bounds() core.Rect {
	return core.NewRect(h.X, h.Y, h.W, h.H)
}

// World is the complete session state. It is owned by Game and mutated
// only inside Game.Step; every component receives it explicitly.
type World struct {
	cfg   *config.MagicTreeConfig
	rng   *rand.Rand
	viewW float64
	viewH float64
	tps   int

	Player       Player
	Platforms    []Platform
	Enemies      []Enemy
	Projectiles  []Projectile
	Collectibles []Collectible
	Hazards      []Hazard

	Score   int
	Scroll  float64 // Camera Y; world Y minus Scroll is screen Y
	Section int
	Phase   core.Phase
	Tick    int // Simulated ticks while playing

	level   levelState
	pending pendingSpawns
}

// pendingSpawns holds entities created during a step. They join the live
// lists when the step ends, so nothing created mid-pass is moved or
// collided in the pass that created it.
type pendingSpawns struct {
	enemies      []Enemy
	projectiles  []Projectile
	collectibles []Collectible
	hazards      []Hazard
}

func newWorld(cfg *config.MagicTreeConfig, rt core.RuntimeConfig, rng *rand.Rand) *World {
	tps := rt.TickRate
	if tps <= 0 {
		tps = 60
	}
	w := &World{
		cfg:   cfg,
		rng:   rng,
		viewW: float64(rt.ViewW),
		viewH: float64(rt.ViewH),
		tps:   tps,
		Phase: core.PhaseNotStarted,
	}
	w.populate()
	return w
}

// populate puts the world into its initial layout: empty entity lists,
// a freshly seeded level and the player standing on the start platform.
func (w *World) populate() {
	w.Platforms = w.Platforms[:0]
	w.Enemies = w.Enemies[:0]
	w.Projectiles = w.Projectiles[:0]
	w.Collectibles = w.Collectibles[:0]
	w.Hazards = w.Hazards[:0]
	w.pending = pendingSpawns{}
	w.Score = 0
	w.Scroll = 0
	w.Section = 0
	w.Tick = 0

	seedLevel(w)

	pc := w.cfg.Player
	start := w.Platforms[0]
	w.Player = Player{
		X:           w.viewW/2 - pc.Width/2,
		Y:           start.Y - pc.Height,
		W:           pc.Width,
		H:           pc.Height,
		Lives:       pc.Lives,
		FacingRight: true,
	}

	if w.cfg.Enemies.SeedInitial {
		seedEnemies(w)
	}
}

// Now returns the simulation clock in milliseconds. Periodic behaviors
// compare against this instead of the host's wall clock.
func (w *World) Now() float64 {
	return float64(w.Tick) * 1000 / float64(w.tps)
}

// ViewSize returns the viewport dimensions in world units.
func (w *World) ViewSize() (float64, float64) {
	return w.viewW, w.viewH
}

// ScreenY converts a world Y to a screen Y.
func (w *World) ScreenY(worldY float64) float64 {
	return worldY - w.Scroll
}

// flushPending moves entities created during the step into the live lists.
func (w *World) flushPending() {
	w.Enemies = append(w.Enemies, w.pending.enemies...)
	w.Projectiles = append(w.Projectiles, w.pending.projectiles...)
	w.Collectibles = append(w.Collectibles, w.pending.collectibles...)
	w.Hazards = append(w.Hazards, w.pending.hazards...)
	w.pending.enemies = w.pending.enemies[:0]
	w.pending.projectiles = w.pending.projectiles[:0]
	w.pending.collectibles = w.pending.collectibles[:0]
	w.pending.hazards = w.pending.hazards[:0]
}
