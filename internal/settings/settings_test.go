package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	store, err := gdata.Open(gdata.Config{AppName: "magictree_test"})
	require.NoError(t, err)
	return store
}

func TestDefaults(t *testing.T) {
	s := Default()
	assert.Equal(t, 0.7, s.MusicVolume)
	assert.Equal(t, 0.8, s.SoundVolume)
	assert.True(t, s.MusicEnabled)
	assert.True(t, s.SoundEnabled)
	assert.False(t, s.Bell)

	lv := s.Levels()
	assert.Equal(t, 0.7, lv.MusicVolume)
	assert.Equal(t, 0.8, lv.SoundVolume)
	assert.True(t, lv.MusicEnabled)
}

func TestMemoryOnlyManager(t *testing.T) {
	m := NewManager(nil, nil)
	assert.False(t, m.Persistent())
	assert.Equal(t, Default(), m.Get())

	m.SetMusicVolume(0.2)
	require.NoError(t, m.Save())
	require.NoError(t, m.Load())
	assert.Equal(t, Default(), m.Get(), "nothing persists without storage")
}

func TestSaveAndReload(t *testing.T) {
	store := openStore(t)

	m := NewManager(store, nil)
	require.True(t, m.Persistent())
	m.SetMusicVolume(0.25)
	m.SetSoundEnabled(false)
	m.SetBell(true)
	require.NoError(t, m.Save())

	reloaded := NewManager(store, nil)
	got := reloaded.Get()
	assert.Equal(t, 0.25, got.MusicVolume)
	assert.False(t, got.SoundEnabled)
	assert.True(t, got.Bell)
	assert.Equal(t, 0.8, got.SoundVolume)
}

func TestCorruptDataFallsBack(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.SaveObjectProp(settingsObject, settingsProperty, []byte("music_volume: [")))

	m := NewManager(store, nil)
	assert.Equal(t, Default(), m.Get())
	assert.Error(t, m.Load())
}

func TestVolumeClamped(t *testing.T) {
	m := NewManager(nil, nil)
	m.SetMusicVolume(3)
	m.SetSoundVolume(-1)
	assert.Equal(t, 1.0, m.Get().MusicVolume)
	assert.Equal(t, 0.0, m.Get().SoundVolume)
}

func TestSetByKey(t *testing.T) {
	tests := []struct {
		key, value string
		wantErr    bool
		check      func(t *testing.T, s Settings)
	}{
		{"music_volume", "0.4", false, func(t *testing.T, s Settings) { assert.Equal(t, 0.4, s.MusicVolume) }},
		{"sound_volume", "2", false, func(t *testing.T, s Settings) { assert.Equal(t, 1.0, s.SoundVolume) }},
		{"music_enabled", "off", false, func(t *testing.T, s Settings) { assert.False(t, s.MusicEnabled) }},
		{"sound_enabled", "no", false, func(t *testing.T, s Settings) { assert.False(t, s.SoundEnabled) }},
		{"bell", "on", false, func(t *testing.T, s Settings) { assert.True(t, s.Bell) }},
		{"music_volume", "loud", true, nil},
		{"music_volume", "NaN", true, nil},
		{"bell", "maybe", true, nil},
		{"fullscreen", "true", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			m := NewManager(nil, nil)
			err := m.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, Default(), m.Get())
				return
			}
			require.NoError(t, err)
			tt.check(t, m.Get())
		})
	}
}

func TestReset(t *testing.T) {
	m := NewManager(nil, nil)
	m.SetBell(true)
	m.Reset()
	assert.Equal(t, Default(), m.Get())
	assert.Len(t, Keys(), 5)
}
