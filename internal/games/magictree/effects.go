package magictree

import (
	"github.com/vovakirdan/magic-tree/internal/audio"
	"github.com/vovakirdan/magic-tree/internal/core"
)

// effects collects the side effects of one step: audio requests go out
// immediately, events are returned to the host with the step result.
type effects struct {
	audio       audio.Player
	musicVolume float64
	sfxVolume   float64
	events      []core.Event
}

func (fx *effects) emit(kind core.EventKind, value int) {
	fx.events = append(fx.events, core.Event{Kind: kind, Value: value})
}

func (fx *effects) sfx(clip audio.Clip) {
	fx.audio.Play(clip, false, fx.sfxVolume)
}

func (fx *effects) music(clip audio.Clip) {
	fx.audio.Play(clip, true, fx.musicVolume)
}

func (fx *effects) drain() []core.Event {
	if len(fx.events) == 0 {
		return nil
	}
	out := fx.events
	fx.events = nil
	return out
}
