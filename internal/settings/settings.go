// Package settings persists the player's audio preferences with gdata.
// Without a storage manager the settings live in memory only.
package settings

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/magic-tree/internal/audio"
)

// AppName is the gdata application name; it selects the storage folder.
const AppName = "magictree"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are user preferences that survive restarts.
type Settings struct {
	MusicVolume  float64 `yaml:"music_volume"` // 0.0 - 1.0
	SoundVolume  float64 `yaml:"sound_volume"` // 0.0 - 1.0
	MusicEnabled bool    `yaml:"music_enabled"`
	SoundEnabled bool    `yaml:"sound_enabled"`
	Bell         bool    `yaml:"bell"` // Ring the terminal bell for sound effects
}

// Default returns the settings used before anything is saved.
func Default() Settings {
	return Settings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
		Bell:         false,
	}
}

// Levels converts the settings into mixer levels.
func (s Settings) Levels() audio.Levels {
	return audio.Levels{
		MusicVolume:  s.MusicVolume,
		SoundVolume:  s.SoundVolume,
		MusicEnabled: s.MusicEnabled,
		SoundEnabled: s.SoundEnabled,
	}
}

// Manager loads, edits and saves Settings.
type Manager struct {
	store    *gdata.Manager // nil means in-memory only
	settings Settings
	logger   *log.Logger
}

// Open creates a gdata-backed manager. If storage cannot be opened the
// manager degrades to memory-only and the error is logged.
func Open(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		logger.Warn("settings storage unavailable, using defaults", "err", err)
		store = nil
	}
	return NewManager(store, logger)
}

// NewManager wraps an existing storage manager, which may be nil, and
// loads saved settings. Load failures fall back to defaults.
func NewManager(store *gdata.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{store: store, settings: Default(), logger: logger}
	if err := m.Load(); err != nil {
		logger.Warn("failed to load settings, using defaults", "err", err)
	}
	return m
}

// Persistent reports whether the manager writes to disk.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Load reads saved settings. Missing data is not an error.
func (m *Manager) Load() error {
	m.settings = Default()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: decode: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	m.settings = loaded
	m.logger.Debug("settings loaded")
	return nil
}

// Save writes the current settings. Memory-only managers succeed silently.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	m.logger.Debug("settings saved")
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	return m.settings
}

// SetMusicVolume sets the music volume, clamped to [0, 1].
func (m *Manager) SetMusicVolume(v float64) {
	m.settings.MusicVolume = clampVolume(v)
}

// SetSoundVolume sets the effect volume, clamped to [0, 1].
func (m *Manager) SetSoundVolume(v float64) {
	m.settings.SoundVolume = clampVolume(v)
}

func (m *Manager) SetMusicEnabled(on bool) { m.settings.MusicEnabled = on }
func (m *Manager) SetSoundEnabled(on bool) { m.settings.SoundEnabled = on }
func (m *Manager) SetBell(on bool)         { m.settings.Bell = on }

// Set assigns a setting by its YAML key. Used by the CLI.
func (m *Manager) Set(key, value string) error {
	switch key {
	case "music_volume", "sound_volume":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(v) {
			return fmt.Errorf("settings: %s: not a number: %q", key, value)
		}
		if key == "music_volume" {
			m.SetMusicVolume(v)
		} else {
			m.SetSoundVolume(v)
		}
	case "music_enabled", "sound_enabled", "bell":
		on, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("settings: %s: %w", key, err)
		}
		switch key {
		case "music_enabled":
			m.SetMusicEnabled(on)
		case "sound_enabled":
			m.SetSoundEnabled(on)
		default:
			m.SetBell(on)
		}
	default:
		return fmt.Errorf("settings: unknown key %q", key)
	}
	return nil
}

// Reset restores the defaults in memory.
func (m *Manager) Reset() {
	m.settings = Default()
}

// Keys lists the settable keys in display order.
func Keys() []string {
	return []string{"music_volume", "sound_volume", "music_enabled", "sound_enabled", "bell"}
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
