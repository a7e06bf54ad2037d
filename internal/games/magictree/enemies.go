package magictree

import (
	"math"

	"github.com/vovakirdan/magic-tree/internal/audio"
	"github.com/vovakirdan/magic-tree/internal/config"
	"github.com/vovakirdan/magic-tree/internal/core"
)

// EnemyKind identifies an enemy variant.
type EnemyKind int

const (
	KindCaterpillar EnemyKind = iota
	KindOwl
	KindBug
	KindThundercloud
)

// String returns the kind's config name.
func (k EnemyKind) String() string {
	switch k {
	case KindCaterpillar:
		return config.EnemyCaterpillar
	case KindOwl:
		return config.EnemyOwl
	case KindBug:
		return config.EnemyBug
	case KindThundercloud:
		return config.EnemyThundercloud
	default:
		return "unknown"
	}
}

// ParseEnemyKind maps a config name to a kind.
func ParseEnemyKind(name string) (EnemyKind, bool) {
	switch name {
	case config.EnemyCaterpillar:
		return KindCaterpillar, true
	case config.EnemyOwl:
		return KindOwl, true
	case config.EnemyBug:
		return KindBug, true
	case config.EnemyThundercloud:
		return KindThundercloud, true
	default:
		return 0, false
	}
}

// Enemy is a patrolling hostile. Its variant-specific state lives in
// Behavior, one of *Bob, *Hop or *Storm.
type Enemy struct {
	Kind     EnemyKind
	X, Y     float64
	W, H     float64
	Speed    float64
	Dir      float64 // -1 moving left, +1 moving right
	Behavior Behavior
}

// Bounds returns the enemy's collision box.
func (e Enemy) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Behavior is the closed set of enemy movement variants.
type Behavior interface {
	behavior()
}

// Bob oscillates vertically around OriginY.
type Bob struct {
	OriginY   float64
	Amplitude float64
	Rate      float64 // Radians per millisecond
	Cosine    bool
}

// Hop jumps up at a fixed interval and sinks slowly in between.
type Hop struct {
	LastJumpMS float64
	IntervalMS float64
	Height     float64
	Fall       float64
}

// Storm fires a hazard at the player at a fixed interval.
type Storm struct {
	LastAttackMS float64
	IntervalMS   float64
	Damage       int
}

func (*Bob) behavior()   {}
func (*Hop) behavior()   {}
func (*Storm) behavior() {}

// body returns the shared dimensions for a kind.
func body(cfg *config.EnemiesConfig, kind EnemyKind) config.EnemyBody {
	switch kind {
	case KindOwl:
		return cfg.Owl.EnemyBody
	case KindBug:
		return cfg.Bug.EnemyBody
	case KindThundercloud:
		return cfg.Thundercloud.EnemyBody
	default:
		return cfg.Caterpillar.EnemyBody
	}
}

// newEnemy builds an enemy of the given kind. Periodic behaviors start
// due, so their first update acts immediately.
func newEnemy(cfg *config.EnemiesConfig, kind EnemyKind, x, y, dir, now float64) Enemy {
	b := body(cfg, kind)
	e := Enemy{
		Kind:  kind,
		X:     x,
		Y:     y,
		W:     b.Width,
		H:     b.Height,
		Speed: b.Speed,
		Dir:   dir,
	}
	switch kind {
	case KindCaterpillar:
		e.Behavior = bobFrom(cfg.Caterpillar, y)
	case KindOwl:
		e.Behavior = bobFrom(cfg.Owl, y)
	case KindBug:
		interval := float64(cfg.Bug.JumpIntervalMS)
		e.Behavior = &Hop{
			LastJumpMS: now - interval,
			IntervalMS: interval,
			Height:     cfg.Bug.JumpHeight,
			Fall:       cfg.Bug.FallPerTick,
		}
	case KindThundercloud:
		interval := float64(cfg.Thundercloud.AttackIntervalMS)
		e.Behavior = &Storm{
			LastAttackMS: now - interval,
			IntervalMS:   interval,
			Damage:       cfg.Thundercloud.Damage,
		}
	}
	return e
}

func bobFrom(c config.BobEnemyConfig, originY float64) *Bob {
	return &Bob{
		OriginY:   originY,
		Amplitude: c.Amplitude,
		Rate:      c.Rate,
		Cosine:    c.Wave == "cos",
	}
}

// seedEnemies places one enemy of each kind near the bottom of the
// first screen.
func seedEnemies(w *World) {
	h := w.viewH
	placements := []struct {
		kind EnemyKind
		x, y float64
		dir  float64
	}{
		{KindCaterpillar, 200, h - 150, 1},
		{KindOwl, 500, h - 250, -1},
		{KindBug, 100, h - 350, 1},
		{KindThundercloud, 300, h - 450, 1},
	}
	for _, p := range placements {
		w.Enemies = append(w.Enemies, newEnemy(&w.cfg.Enemies, p.kind, p.x, p.y, p.dir, w.Now()))
	}
}

// patrol moves the enemy horizontally and turns it at the viewport edges.
func patrol(e *Enemy, viewW float64) {
	e.X += e.Speed * e.Dir
	if e.X <= 0 {
		e.Dir = 1
	} else if e.X+e.W >= viewW {
		e.Dir = -1
	}
}

// updateEnemies advances every live enemy by one tick.
func updateEnemies(w *World, fx *effects) {
	now := w.Now()
	for i := range w.Enemies {
		e := &w.Enemies[i]
		patrol(e, w.viewW)

		switch b := e.Behavior.(type) {
		case *Bob:
			phase := now * b.Rate
			if b.Cosine {
				e.Y = b.OriginY + b.Amplitude*math.Cos(phase)
			} else {
				e.Y = b.OriginY + b.Amplitude*math.Sin(phase)
			}
		case *Hop:
			if now-b.LastJumpMS > b.IntervalMS {
				e.Y -= b.Height
				b.LastJumpMS = now
			}
			e.Y += b.Fall
		case *Storm:
			if now-b.LastAttackMS > b.IntervalMS {
				w.pending.hazards = append(w.pending.hazards, aimBolt(w, e, b.Damage))
				b.LastAttackMS = now
				fx.sfx(audio.ClipThunder)
				fx.emit(core.EventAttack, b.Damage)
			}
		}
	}
}

// aimBolt creates a hazard at the enemy's bottom center heading toward
// the player's horizontal center at the bottom of the screen.
func aimBolt(w *World, e *Enemy, damage int) Hazard {
	hc := w.cfg.Hazard
	ox := e.X + e.W/2
	oy := e.Y + e.H
	px, _ := w.Player.Bounds().Center()
	tx, ty := px, w.Scroll+w.viewH

	dx, dy := tx-ox, ty-oy
	dist := math.Hypot(dx, dy)
	vx, vy := 0.0, hc.Speed
	if dist > 0 {
		vx = dx / dist * hc.Speed
		vy = dy / dist * hc.Speed
	}
	return Hazard{
		X:       ox - hc.Width/2,
		Y:       oy,
		W:       hc.Width,
		H:       hc.Height,
		VX:      vx,
		VY:      vy,
		TargetX: tx,
		TargetY: ty,
		Damage:  damage,
	}
}
