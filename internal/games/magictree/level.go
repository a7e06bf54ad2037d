package magictree

import (
	"github.com/vovakirdan/magic-tree/internal/config"
	"github.com/vovakirdan/magic-tree/internal/core"
)

// levelState tracks the generation frontier: the Y of the most recently
// generated platform and its bounds for gap constraints.
type levelState struct {
	FrontierY float64
	Prev      Platform
}

// seedLevel places the start platform and fills the first screens.
func seedLevel(w *World) {
	pc := w.cfg.Platforms
	start := Platform{
		X: w.viewW/2 - pc.StartWidth/2,
		Y: w.viewH - pc.Height,
		W: pc.StartWidth,
		H: pc.Height,
	}
	w.Platforms = append(w.Platforms, start)
	w.level = levelState{FrontierY: start.Y, Prev: start}
	topUp(w, start.Y-pc.GapY*float64(pc.SeedRows))
}

// topUp generates platforms upward until the frontier reaches targetY.
func topUp(w *World, targetY float64) {
	for w.level.FrontierY > targetY {
		w.Platforms = append(w.Platforms, nextPlatform(w))
	}
}

// nextPlatform creates the platform above the frontier using the current
// section's pattern. Its span stays within the horizontal gap of the
// previous platform so consecutive ledges remain reachable.
func nextPlatform(w *World) Platform {
	pc := w.cfg.Platforms
	width := platformWidth(w, w.cfg.Section(w.Section).Pattern)
	width = min(width, w.viewW)

	prev := w.level.Prev
	minX := max(0, prev.X-pc.GapX)
	maxX := min(w.viewW-width, prev.X+prev.W+pc.GapX-width)
	if maxX < minX {
		maxX = minX
	}
	x := core.ClampF(minX+w.rng.Float64()*(maxX-minX), 0, w.viewW-width)

	w.level.FrontierY -= pc.GapY + w.rng.Float64()*pc.GapYJitter
	p := Platform{X: x, Y: w.level.FrontierY, W: width, H: pc.Height}
	w.level.Prev = p
	return p
}

func platformWidth(w *World, pattern string) float64 {
	pc := w.cfg.Platforms
	switch pattern {
	case config.PatternWide:
		return pc.MinWidth + w.rng.Float64()*(pc.MaxWidth*pc.WideFactor-pc.MinWidth)
	case config.PatternSparse:
		return pc.SparseMinWidth + w.rng.Float64()*pc.SparseRange
	default:
		return pc.MinWidth + w.rng.Float64()*(pc.MaxWidth-pc.MinWidth)
	}
}

// prunePlatforms drops platforms more than a screen below the visible
// bottom edge.
func prunePlatforms(w *World) {
	limit := 2 * w.viewH
	kept := w.Platforms[:0]
	for _, p := range w.Platforms {
		if w.ScreenY(p.Y) <= limit {
			kept = append(kept, p)
		}
	}
	w.Platforms = kept
}
