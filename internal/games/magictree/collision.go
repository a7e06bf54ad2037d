package magictree

import (
	"github.com/vovakirdan/magic-tree/internal/audio"
	"github.com/vovakirdan/magic-tree/internal/core"
)

// moveFalling advances projectiles, collectibles and hazards along their
// fixed paths.
func moveFalling(w *World) {
	for i := range w.Projectiles {
		w.Projectiles[i].Y += w.Projectiles[i].Speed
	}
	for i := range w.Collectibles {
		w.Collectibles[i].Y += w.Collectibles[i].Speed
	}
	for i := range w.Hazards {
		h := &w.Hazards[i]
		h.X += h.VX
		h.Y += h.VY
	}
}

// resolveCollisions runs every pairwise check once, in a fixed order.
// Removals build the surviving lists by predicate. Resolution stops as
// soon as the game ends.
func resolveCollisions(w *World, fx *effects) {
	projectilesHitPlatforms(w)
	projectilesHitEnemies(w, fx)
	collectPickups(w, fx)
	if enemiesHitPlayer(w, fx) {
		return
	}
	hazardsHitPlayer(w, fx)
}

// projectilesHitPlatforms turns apples that strike a platform top into
// diamonds at the apple's position.
func projectilesHitPlatforms(w *World) {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if struck(w, p) {
			w.pending.collectibles = append(w.pending.collectibles, newCollectible(w, p.X, p.Y))
			continue
		}
		kept = append(kept, p)
	}
	w.Projectiles = kept
}

// struck reports whether the projectile overlaps a platform whose top its
// leading edge was still above before this tick's move.
func struck(w *World, p Projectile) bool {
	box := p.Bounds()
	for _, pl := range w.Platforms {
		if box.Intersects(pl.Bounds()) && box.Bottom()-p.Speed <= pl.Y {
			return true
		}
	}
	return false
}

func newCollectible(w *World, x, y float64) Collectible {
	cc := w.cfg.Collectible
	tier := TierLow
	if n := len(cc.Tiers); n > 0 {
		tier = Tier(w.rng.Intn(n))
	}
	return Collectible{X: x, Y: y, Size: cc.Size, Speed: cc.Speed, Tier: tier}
}

// projectilesHitEnemies destroys each enemy together with the first live
// projectile overlapping it. A projectile kills at most one enemy and an
// enemy pays the bonus at most once.
func projectilesHitEnemies(w *World, fx *effects) {
	if len(w.Projectiles) == 0 || len(w.Enemies) == 0 {
		return
	}
	spent := make([]bool, len(w.Projectiles))
	keptEnemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		box := e.Bounds()
		hit := -1
		for i, p := range w.Projectiles {
			if !spent[i] && box.Intersects(p.Bounds()) {
				hit = i
				break
			}
		}
		if hit < 0 {
			keptEnemies = append(keptEnemies, e)
			continue
		}
		spent[hit] = true
		bonus := w.cfg.Scoring.KillBonus
		w.Score += bonus
		fx.sfx(audio.ClipEnemyHit)
		fx.emit(core.EventKill, bonus)
	}
	w.Enemies = keptEnemies

	keptProjectiles := w.Projectiles[:0]
	for i, p := range w.Projectiles {
		if !spent[i] {
			keptProjectiles = append(keptProjectiles, p)
		}
	}
	w.Projectiles = keptProjectiles
}

// collectPickups awards the tier score for every diamond the player
// touches.
func collectPickups(w *World, fx *effects) {
	box := w.Player.Bounds()
	kept := w.Collectibles[:0]
	for _, c := range w.Collectibles {
		if !box.Intersects(c.Bounds()) {
			kept = append(kept, c)
			continue
		}
		award := tierScore(w, c.Tier)
		w.Score += award
		fx.sfx(audio.ClipDiamond)
		fx.emit(core.EventPickup, award)
	}
	w.Collectibles = kept
}

func tierScore(w *World, t Tier) int {
	tiers := w.cfg.Collectible.Tiers
	if int(t) < 0 || int(t) >= len(tiers) {
		return 0
	}
	return tiers[t].Score
}

// enemiesHitPlayer costs one life on the first enemy contact. The enemy
// survives. Reports whether the game ended.
func enemiesHitPlayer(w *World, fx *effects) bool {
	if w.invulnerable() {
		return false
	}
	box := w.Player.Bounds()
	for _, e := range w.Enemies {
		if box.Intersects(e.Bounds()) {
			return hurtPlayer(w, fx, 1)
		}
	}
	return false
}

// hazardsHitPlayer applies hazard damage and consumes the hazard. Bolts
// are ignored while the player is inside a respawn grace window.
func hazardsHitPlayer(w *World, fx *effects) {
	kept := w.Hazards[:0]
	for i, h := range w.Hazards {
		if w.invulnerable() || !w.Player.Bounds().Intersects(h.Bounds()) {
			kept = append(kept, h)
			continue
		}
		if hurtPlayer(w, fx, h.Damage) {
			kept = append(kept, w.Hazards[i+1:]...)
			break
		}
	}
	w.Hazards = kept
}

// pruneFalling drops projectiles, collectibles and hazards that left the
// visible range.
func pruneFalling(w *World) {
	keptP := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if w.ScreenY(p.Y) <= w.viewH {
			keptP = append(keptP, p)
		}
	}
	w.Projectiles = keptP

	keptC := w.Collectibles[:0]
	for _, c := range w.Collectibles {
		if w.ScreenY(c.Y) <= w.viewH {
			keptC = append(keptC, c)
		}
	}
	w.Collectibles = keptC

	keptH := w.Hazards[:0]
	for _, h := range w.Hazards {
		if w.ScreenY(h.Y) <= w.viewH && h.X+h.W >= 0 && h.X <= w.viewW {
			keptH = append(keptH, h)
		}
	}
	w.Hazards = keptH
}
