package magictree

import (
	"github.com/vovakirdan/magic-tree/internal/audio"
	"github.com/vovakirdan/magic-tree/internal/core"
)

// updatePlayer applies input, integrates gravity and resolves landings.
func updatePlayer(w *World, in *core.InputFrame, fx *effects) {
	p := &w.Player
	pc := w.cfg.Player

	left := in.Has(core.ActionLeft)
	right := in.Has(core.ActionRight)
	if left && p.X > 0 {
		p.X -= pc.Speed
		p.FacingRight = false
	}
	if right && p.X < w.viewW-p.W {
		p.X += pc.Speed
		p.FacingRight = true
	}
	p.X = core.ClampF(p.X, 0, w.viewW-p.W)
	animate(p, left || right, pc.AnimFrames, pc.AnimSpeed)

	if in.Has(core.ActionJump) && !p.Airborne {
		p.VelY = -pc.JumpPower
		p.Airborne = true
		fx.sfx(audio.ClipJump)
		fx.emit(core.EventJump, 0)
	}

	if in.Consume(core.ActionDrop) {
		dropApple(w)
		fx.sfx(audio.ClipAppleDrop)
		fx.emit(core.EventDrop, 0)
	}

	prevFoot := p.Bounds().Bottom()
	vel := p.VelY
	p.Y += p.VelY
	p.VelY += pc.Gravity

	if top, ok := landing(w, prevFoot, vel); ok {
		p.Y = top - p.H
		p.VelY = 0
		p.Airborne = false
	} else {
		p.Airborne = true
	}
}

// landing finds the highest platform top the player's feet crossed this
// tick while moving down or resting.
func landing(w *World, prevFoot, vel float64) (float64, bool) {
	if vel < 0 {
		return 0, false
	}
	p := &w.Player
	box := p.Bounds()
	foot := box.Bottom()
	best, found := 0.0, false
	for _, pl := range w.Platforms {
		if prevFoot > pl.Y || foot < pl.Y {
			continue
		}
		if !box.SpansOverlap(pl.Bounds()) {
			continue
		}
		if !found || pl.Y < best {
			best, found = pl.Y, true
		}
	}
	return best, found
}

// animate advances the walk cycle while moving and rests on frame 0
// otherwise.
func animate(p *Player, moving bool, frames, speed int) {
	if frames <= 0 || speed <= 0 {
		return
	}
	p.frameTimer++
	if p.frameTimer < speed {
		return
	}
	p.frameTimer = 0
	if moving {
		p.Frame = (p.Frame + 1) % frames
	} else {
		p.Frame = 0
	}
}

// dropApple queues a projectile at the player's center.
func dropApple(w *World) {
	pc := w.cfg.Projectile
	p := &w.Player
	w.pending.projectiles = append(w.pending.projectiles, Projectile{
		X:     p.X + p.W/2 - pc.Size/2,
		Y:     p.Y + p.H/2,
		Size:  pc.Size,
		Speed: pc.Speed,
	})
}

// invulnerable reports whether the player is inside the respawn grace
// window.
func (w *World) invulnerable() bool {
	return w.Now() < w.Player.graceUntil
}

// hurtPlayer subtracts lives and either respawns the player or ends the
// game. Reports whether the game ended.
func hurtPlayer(w *World, fx *effects, damage int) bool {
	p := &w.Player
	p.Lives = max(0, p.Lives-damage)
	fx.emit(core.EventDamage, damage)
	if p.Lives == 0 {
		gameOver(w, fx)
		return true
	}
	softRespawn(w)
	return false
}

// softRespawn moves the player to a fresh ledge at the bottom of the
// current screen and grants a short grace window. Score, camera and
// entities are untouched.
func softRespawn(w *World) {
	pc := w.cfg.Platforms
	ledge := Platform{
		X: w.viewW/2 - pc.StartWidth/2,
		Y: w.Scroll + w.viewH - pc.Height,
		W: pc.StartWidth,
		H: pc.Height,
	}
	w.Platforms = append(w.Platforms, ledge)

	p := &w.Player
	p.X = w.viewW/2 - p.W/2
	p.Y = ledge.Y - p.H
	p.VelY = 0
	p.Airborne = false
	p.graceUntil = w.Now() + float64(w.cfg.Player.RespawnGraceMS)
}
