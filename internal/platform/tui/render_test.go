package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/magic-tree/internal/core"
)

func TestRenderScreenPlainCellsAreUnstyled(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "apple")
	s.DrawText(1, 1, "tree")

	assert.Equal(t, s.String(), RenderScreen(s, 0))
}

func TestRenderScreenKeepsEveryRune(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawTextColor(0, 0, "Score", core.ColorBrightWhite)
	s.FillRect(0, 2, 4, 1, '=', core.ColorBrown)
	s.SetColor(5, 2, '◆', core.ColorBrightBlue)

	out := RenderScreen(s, hudRows)
	assert.Equal(t, 3, strings.Count(out, "\n")+1)
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "====")
	assert.Contains(t, out, "◆")
}

func TestPaletteCoversNamedColors(t *testing.T) {
	for c := core.ColorRed; c <= core.ColorLeaf; c++ {
		_, ok := palette[c]
		assert.True(t, ok, "color %d has no palette entry", c)
	}
}
