package audio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipIsMusic(t *testing.T) {
	assert.True(t, ClipBGMMain.IsMusic())
	assert.True(t, ClipBGMSection2.IsMusic())
	assert.False(t, ClipJump.IsMusic())
	assert.False(t, Clip("bgm").IsMusic())
}

func TestRecorderKeepsOrder(t *testing.T) {
	var r Recorder
	r.Play(ClipBGMMain, true, 0.5)
	r.Stop(ClipBGMMain)
	r.Play(ClipJump, false, 1)
	r.StopAll()

	assert.Equal(t, []Clip{ClipBGMMain, ClipJump}, r.Played())
	assert.Equal(t, 1, r.Count(ClipJump))
	assert.Equal(t, OpStopAll, r.Calls[3].Op)

	r.Reset()
	assert.Empty(t, r.Calls)
}

func TestMixerIgnoresUnknownClips(t *testing.T) {
	m := NewMixer([]Clip{ClipBGMMain}, DefaultLevels(), nil)
	m.Play(ClipThunder, true, 1)
	assert.Empty(t, m.Playing())

	m.Play(ClipBGMMain, true, 0.5)
	assert.Equal(t, []Clip{ClipBGMMain}, m.Playing())
}

func TestMixerStopAndStopAll(t *testing.T) {
	m := NewMixer([]Clip{ClipBGMMain, ClipBGMSection2}, DefaultLevels(), nil)
	m.Play(ClipBGMMain, true, 0.5)
	m.Play(ClipBGMSection2, true, 0.5)

	m.Stop(ClipBGMMain)
	assert.Equal(t, []Clip{ClipBGMSection2}, m.Playing())

	m.StopAll()
	assert.Empty(t, m.Playing())
}

func TestMixerAppliesLevels(t *testing.T) {
	levels := DefaultLevels()
	levels.MusicEnabled = false
	m := NewMixer([]Clip{ClipBGMMain, ClipJump}, levels, nil)

	var bell bytes.Buffer
	m.SetBell(&bell)

	m.Play(ClipBGMMain, true, 0.5)
	assert.Empty(t, m.Playing(), "muted music must not start")

	m.Play(ClipJump, false, 1)
	assert.Equal(t, "\a", bell.String())

	m.SetLevels(DefaultLevels())
	m.Play(ClipBGMMain, true, 0.5)
	assert.Equal(t, []Clip{ClipBGMMain}, m.Playing())

	muted := DefaultLevels()
	muted.MusicVolume = 0
	m.SetLevels(muted)
	assert.Empty(t, m.Playing(), "zero music volume stops playing music")
}

func TestMixerNoBellWhenSoundDisabled(t *testing.T) {
	levels := DefaultLevels()
	levels.SoundEnabled = false
	m := NewMixer([]Clip{ClipJump}, levels, nil)

	var bell bytes.Buffer
	m.SetBell(&bell)
	m.Play(ClipJump, false, 1)
	assert.Zero(t, bell.Len())
}
