package audio

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"
)

// Levels are the user-controlled volume settings applied by the Mixer.
type Levels struct {
	MusicVolume  float64
	SoundVolume  float64
	MusicEnabled bool
	SoundEnabled bool
}

// DefaultLevels returns full volume with everything enabled.
func DefaultLevels() Levels {
	return Levels{MusicVolume: 1, SoundVolume: 1, MusicEnabled: true, SoundEnabled: true}
}

// Mixer is the terminal host's audio backend. A terminal cannot play
// sampled audio, so the mixer tracks what would be playing (for the HUD),
// logs each request and optionally rings the terminal bell for effects.
// Clips missing from the catalog are ignored, like an asset that failed
// to load.
type Mixer struct {
	logger  *log.Logger
	known   map[Clip]bool
	levels  Levels
	playing map[Clip]float64
	bell    io.Writer
}

// NewMixer creates a mixer that accepts the given clips.
// A nil logger discards log output.
func NewMixer(known []Clip, levels Levels, logger *log.Logger) *Mixer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Mixer{
		logger:  logger,
		known:   make(map[Clip]bool, len(known)),
		levels:  levels,
		playing: make(map[Clip]float64),
	}
	for _, c := range known {
		m.known[c] = true
	}
	return m
}

// SetBell enables the terminal bell for sound effects. Nil disables it.
func (m *Mixer) SetBell(w io.Writer) {
	m.bell = w
}

// SetLevels replaces the volume settings. Playing music is re-leveled
// and muted clips stop.
func (m *Mixer) SetLevels(levels Levels) {
	m.levels = levels
	for clip := range m.playing {
		if m.effectiveVolume(clip, 1) == 0 {
			delete(m.playing, clip)
		}
	}
}

// Levels returns the current volume settings.
func (m *Mixer) Levels() Levels {
	return m.levels
}

// Play implements Player.
func (m *Mixer) Play(clip Clip, loop bool, volume float64) {
	if !m.known[clip] {
		m.logger.Debug("audio clip not loaded", "clip", clip)
		return
	}
	v := m.effectiveVolume(clip, volume)
	if v == 0 {
		return
	}
	m.logger.Debug("audio play", "clip", clip, "loop", loop, "volume", v)
	if loop {
		m.playing[clip] = v
		return
	}
	if m.bell != nil && !clip.IsMusic() {
		//nolint:errcheck // Best-effort bell
		m.bell.Write([]byte{'\a'})
	}
}

// Stop implements Player.
func (m *Mixer) Stop(clip Clip) {
	if _, ok := m.playing[clip]; ok {
		m.logger.Debug("audio stop", "clip", clip)
		delete(m.playing, clip)
	}
}

// StopAll implements Player.
func (m *Mixer) StopAll() {
	if len(m.playing) > 0 {
		m.logger.Debug("audio stop all", "clips", len(m.playing))
	}
	clear(m.playing)
}

// Playing returns the looping clips currently active, sorted by name.
func (m *Mixer) Playing() []Clip {
	out := make([]Clip, 0, len(m.playing))
	for c := range m.playing {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (m *Mixer) effectiveVolume(clip Clip, volume float64) float64 {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	if clip.IsMusic() {
		if !m.levels.MusicEnabled {
			return 0
		}
		return volume * m.levels.MusicVolume
	}
	if !m.levels.SoundEnabled {
		return 0
	}
	return volume * m.levels.SoundVolume
}
