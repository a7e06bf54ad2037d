package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/magic-tree/internal/assets"
	"github.com/vovakirdan/magic-tree/internal/core"
	"github.com/vovakirdan/magic-tree/internal/games/magictree"
)

func baseSnapshot() magictree.Snapshot {
	return magictree.Snapshot{
		Phase: core.PhasePlaying,
		Score: 1234,
		ViewW: 800,
		ViewH: 600,
		Player: magictree.PlayerSnapshot{
			X: 375, Y: 530, W: 50, H: 50, Lives: 3,
		},
		Platforms: []magictree.Platform{{X: 350, Y: 580, W: 100, H: 20}},
	}
}

func TestRenderPlayfield(t *testing.T) {
	r := NewRenderer(nil, []string{"blue"})
	s := core.NewScreen(80, 25)
	snap := baseSnapshot()

	r.Render(s, &snap, HUD{NowPlaying: "Magic Tree", Status: "copied"})

	hud := s.Row(0)
	assert.Contains(t, hud, "Score: 1234")
	assert.Contains(t, hud, "♥♥♥")
	assert.Contains(t, hud, "Section: 1")
	assert.Contains(t, hud, "♪ Magic Tree")
	assert.Contains(t, hud, "copied")

	// Empty catalog: every image falls back.
	player := s.GetCell(38, 1+22)
	assert.Equal(t, assets.Fallback.Rune, player.Rune)
	assert.Equal(t, assets.Fallback.Color, player.Color)
}

func TestRenderScrollsWithCamera(t *testing.T) {
	r := NewRenderer(nil, nil)
	s := core.NewScreen(80, 25)
	snap := baseSnapshot()
	snap.Scroll = -600 // Everything is one screen below the view.

	r.Render(s, &snap, HUD{})

	for y := 1; y < s.Height(); y++ {
		assert.NotContains(t, s.Row(y), "?", "row %d", y)
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		phase core.Phase
		pause bool
		want  string
	}{
		{"start", core.PhaseNotStarted, false, "Press Enter to start"},
		{"paused", core.PhasePlaying, true, "PAUSED"},
		{"game over", core.PhaseGameOver, false, "GAME OVER"},
		{"cleared", core.PhaseCleared, false, "YOU CLEARED THE TREE!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(nil, nil)
			s := core.NewScreen(80, 25)
			snap := baseSnapshot()
			snap.Phase = tt.phase
			snap.Paused = tt.pause

			r.Render(s, &snap, HUD{Summary: []string{"Kills 7"}})

			out := s.String()
			assert.Contains(t, out, tt.want)
			assert.Equal(t, tt.phase.Finished(), strings.Contains(out, "Kills 7"))
		})
	}
}
