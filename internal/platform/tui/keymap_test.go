package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/magic-tree/internal/core"
)

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionDrop},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, km.Action(tt.msg))
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	start := time.Unix(0, 0)
	h.Press(core.ActionLeft, start)

	frame := core.NewInputFrame()
	h.Apply(&frame, start.Add(50*time.Millisecond))
	assert.True(t, frame.Has(core.ActionLeft))

	frame.Clear()
	h.Apply(&frame, start.Add(150*time.Millisecond))
	assert.False(t, frame.Has(core.ActionLeft))
}

func TestHeldKeysOppositeDirection(t *testing.T) {
	h := NewHeldKeys(time.Second)
	now := time.Unix(0, 0)
	h.Press(core.ActionLeft, now)
	h.Press(core.ActionJump, now)
	h.Press(core.ActionRight, now)

	frame := core.NewInputFrame()
	h.Apply(&frame, now)
	assert.False(t, frame.Has(core.ActionLeft))
	assert.True(t, frame.Has(core.ActionRight))
	assert.True(t, frame.Has(core.ActionJump))

	h.Reset()
	frame.Clear()
	h.Apply(&frame, now)
	assert.False(t, frame.Has(core.ActionJump))
}
