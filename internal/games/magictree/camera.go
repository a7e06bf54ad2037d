package magictree

import (
	"math"

	"github.com/vovakirdan/magic-tree/internal/audio"
	"github.com/vovakirdan/magic-tree/internal/core"
)

// followCamera ratchets the scroll upward when the player climbs above
// the threshold line. The camera never moves back down.
func followCamera(w *World) {
	line := w.viewH * w.cfg.Camera.ScrollThreshold
	if w.Player.Y-w.Scroll < line {
		w.Scroll = min(w.Scroll, w.Player.Y-line)
	}
}

// fellOff reports whether the player dropped below the visible bottom.
func fellOff(w *World) bool {
	return w.ScreenY(w.Player.Y) > w.viewH
}

// updateProgress advances the section counter and checks the clear line.
func updateProgress(w *World, fx *effects) {
	if h := w.cfg.Camera.SectionHeight; h > 0 {
		section := int(math.Floor(math.Abs(w.Scroll) / h))
		if section > w.Section {
			w.Section = section
			fx.emit(core.EventSection, section)
			if section == 1 {
				fx.audio.Stop(audio.ClipBGMMain)
				fx.music(audio.ClipBGMSection2)
			}
		}
	}

	if w.Player.Y < w.cfg.Camera.ClearY {
		w.Phase = core.PhaseCleared
		fx.audio.StopAll()
		fx.sfx(audio.ClipGameClear)
		fx.emit(core.EventCleared, w.Score)
	}
}

func gameOver(w *World, fx *effects) {
	w.Phase = core.PhaseGameOver
	fx.audio.StopAll()
	fx.sfx(audio.ClipGameOver)
	fx.emit(core.EventGameOver, w.Score)
}
