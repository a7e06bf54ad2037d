// Package magictree implements the Magic Tree climbing simulation: a
// player climbs an endless column of generated platforms, drops apples on
// enemies and collects the diamonds the apples turn into.
package magictree

import (
	"math/rand"

	"github.com/vovakirdan/magic-tree/internal/audio"
	"github.com/vovakirdan/magic-tree/internal/config"
	"github.com/vovakirdan/magic-tree/internal/core"
)

// Game drives one session. It owns the World and mutates it only inside
// Step.
type Game struct {
	cfg     config.MagicTreeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	world   *World
	paused  bool
	fx      effects
}

// Option configures a Game.
type Option func(*Game)

// WithAudio routes audio requests to p instead of discarding them.
func WithAudio(p audio.Player) Option {
	return func(g *Game) {
		if p != nil {
			g.fx.audio = p
		}
	}
}

// New creates a game using the given balance configuration.
func New(cfg config.MagicTreeConfig, opts ...Option) *Game {
	g := &Game{
		cfg: cfg,
		fx: effects{
			audio:       audio.Nop{},
			musicVolume: cfg.Audio.MusicVolume,
			sfxVolume:   cfg.Audio.SfxVolume,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "magictree"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Magic Tree"
}

// Reset builds a fresh world for the given runtime and waits for the
// confirm input before play starts.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.ViewW <= 0 || runtime.ViewH <= 0 {
		runtime.ViewW = g.cfg.Viewport.Width
		runtime.ViewH = g.cfg.Viewport.Height
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- deterministic gameplay RNG
	g.world = newWorld(&g.cfg, runtime, g.rng)
	g.paused = false
	g.fx.events = nil
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.RuntimeConfig{Seed: g.runtime.Seed})
	}
	w := g.world
	fx := &g.fx

	switch {
	case w.Phase == core.PhaseNotStarted && in.Consume(core.ActionConfirm):
		g.start(core.EventStart)
	case w.Phase.Finished() && in.Consume(core.ActionConfirm):
		g.restart()
	case w.Phase == core.PhasePlaying && in.Consume(core.ActionPause):
		g.paused = !g.paused
	}

	if w.Phase == core.PhasePlaying && !g.paused {
		g.tick(&in)
	}

	return core.StepResult{State: g.State(), Events: fx.drain()}
}

// tick runs one playing step: player, camera, level, spawns, entity
// behaviors, collisions, then progress.
func (g *Game) tick(in *core.InputFrame) {
	w := g.world
	fx := &g.fx
	w.Tick++

	updatePlayer(w, in, fx)
	followCamera(w)
	if fellOff(w) {
		gameOver(w, fx)
		w.flushPending()
		return
	}

	topUp(w, w.Scroll-w.viewH)
	prunePlatforms(w)

	spawnEnemies(w)
	updateEnemies(w, fx)
	moveFalling(w)

	resolveCollisions(w, fx)
	pruneEnemies(w)
	pruneFalling(w)

	if w.Phase == core.PhasePlaying {
		updateProgress(w, fx)
	}
	w.flushPending()
}

// start enters the playing phase and begins the main music loop.
func (g *Game) start(kind core.EventKind) {
	g.world.Phase = core.PhasePlaying
	g.paused = false
	g.fx.music(audio.ClipBGMMain)
	g.fx.emit(kind, 0)
}

// restart performs a full reset into the playing phase.
func (g *Game) restart() {
	g.world.populate()
	g.fx.audio.StopAll()
	g.start(core.EventReset)
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Phase:   g.world.Phase,
		Score:   g.world.Score,
		Lives:   g.world.Player.Lives,
		Section: g.world.Section,
		Paused:  g.paused,
	}
}

// World exposes the live world for rendering. Callers must treat it as
// read-only.
func (g *Game) World() *World {
	return g.world
}

// Config returns the balance configuration in use.
func (g *Game) Config() config.MagicTreeConfig {
	return g.cfg
}
