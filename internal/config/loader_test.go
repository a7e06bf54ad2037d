package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)

	want := DefaultMagicTreeConfig()
	// The YAML spells the threshold as a decimal.
	assert.InDelta(t, want.Camera.ScrollThreshold, cfg.Camera.ScrollThreshold, 1e-6)
	cfg.Camera.ScrollThreshold = want.Camera.ScrollThreshold

	assert.Equal(t, want, cfg)
}

func TestDefaultSpawnTables(t *testing.T) {
	cfg := DefaultMagicTreeConfig()
	require.Len(t, cfg.Sections, 3)

	assert.Equal(t, []SpawnConfig{{Enemy: EnemyCaterpillar, Chance: 0.01}, {Enemy: EnemyOwl, Chance: 0.005}}, cfg.Sections[0].Spawns)
	assert.Equal(t, []SpawnConfig{{Enemy: EnemyBug, Chance: 0.01}, {Enemy: EnemyThundercloud, Chance: 0.003}}, cfg.Sections[1].Spawns)
	assert.Empty(t, cfg.Sections[2].Spawns)
	assert.Empty(t, cfg.Section(7).Spawns, "sections past the table reuse the last entry")
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  lives: 5\nscoring:\n  kill_bonus: 250\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Player.Lives)
	assert.Equal(t, 250, cfg.Scoring.KillBonus)
	// Untouched values keep their defaults.
	assert.Equal(t, 15.0, cfg.Player.JumpPower)
	assert.Len(t, cfg.Sections, 3)
}

func TestParseListsReplaceDefaults(t *testing.T) {
	data := []byte(`
sections:
  - pattern: sparse
    spawns:
      - enemy: owl
        chance: 0.5
`)
	cfg, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, cfg.Sections, 1)
	assert.Equal(t, PatternSparse, cfg.Sections[0].Pattern)
	assert.Equal(t, []SpawnConfig{{Enemy: EnemyOwl, Chance: 0.5}}, cfg.Sections[0].Spawns)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative gravity", "player:\n  gravity: -1\n"},
		{"unknown pattern", "sections:\n  - pattern: zigzag\n"},
		{"unknown enemy", "sections:\n  - pattern: uniform\n    spawns:\n      - enemy: dragon\n        chance: 0.1\n"},
		{"chance above one", "sections:\n  - pattern: uniform\n    spawns:\n      - enemy: owl\n        chance: 2\n"},
		{"empty tiers", "collectible:\n  tiers: []\n"},
		{"bad wave", "enemies:\n  owl:\n    wave: square\n"},
		{"threshold out of range", "camera:\n  scroll_threshold: 1.5\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("player: [unterminated"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidConfig))
}

func TestLoadMagicTreeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  speed: 7\n"), 0o600))

	cfg, err := LoadMagicTree(path)
	require.NoError(t, err)
	assert.Equal(t, 7.0, cfg.Player.Speed)
}

func TestLoadMagicTreeMissingCustomPath(t *testing.T) {
	_, err := LoadMagicTree(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadMagicTreeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadMagicTree("")
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Viewport.Width)
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	want := DefaultMagicTreeConfig()
	want.Player.Lives = 9

	data, err := Marshal(want)
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSectionLookup(t *testing.T) {
	cfg := DefaultMagicTreeConfig()

	assert.Equal(t, PatternUniform, cfg.Section(0).Pattern)
	assert.Equal(t, PatternWide, cfg.Section(1).Pattern)
	assert.Equal(t, PatternSparse, cfg.Section(2).Pattern)
	// Deeper sections reuse the last table.
	assert.Equal(t, PatternSparse, cfg.Section(7).Pattern)
	assert.Equal(t, PatternUniform, cfg.Section(-1).Pattern)

	empty := MagicTreeConfig{}
	assert.Equal(t, PatternUniform, empty.Section(3).Pattern)
}
