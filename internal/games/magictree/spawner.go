package magictree

// spawnEnemies rolls the current section's spawn table once. Each kind
// spawns independently with its configured chance, one screen above the
// visible top edge.
func spawnEnemies(w *World) {
	anchor := w.Scroll - w.viewH
	now := w.Now()
	for _, sp := range w.cfg.Section(w.Section).Spawns {
		if w.rng.Float64() >= sp.Chance {
			continue
		}
		kind, ok := ParseEnemyKind(sp.Enemy)
		if !ok {
			continue
		}
		b := body(&w.cfg.Enemies, kind)
		x := w.rng.Float64() * max(0, w.viewW-b.Width)
		dir := 1.0
		if w.rng.Intn(2) == 0 {
			dir = -1
		}
		e := newEnemy(&w.cfg.Enemies, kind, x, anchor+b.SpawnOffsetY, dir, now)
		w.pending.enemies = append(w.pending.enemies, e)
	}
}

// pruneEnemies drops enemies more than a screen below the visible bottom.
func pruneEnemies(w *World) {
	limit := 2 * w.viewH
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if w.ScreenY(e.Y) <= limit {
			kept = append(kept, e)
		}
	}
	w.Enemies = kept
}
