package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/magic-tree/internal/core"
)

func TestEnvInt(t *testing.T) {
	t.Setenv("MAGICTREE_TEST_INT", "")
	assert.Equal(t, 7, envInt("MAGICTREE_TEST_INT", 7))

	t.Setenv("MAGICTREE_TEST_INT", "30")
	assert.Equal(t, 30, envInt("MAGICTREE_TEST_INT", 7))

	t.Setenv("MAGICTREE_TEST_INT", "fast")
	assert.Equal(t, 7, envInt("MAGICTREE_TEST_INT", 7))
}

func TestEnvString(t *testing.T) {
	t.Setenv("MAGICTREE_TEST_STR", "")
	assert.Equal(t, "info", envString("MAGICTREE_TEST_STR", "info"))

	t.Setenv("MAGICTREE_TEST_STR", "debug")
	assert.Equal(t, "debug", envString("MAGICTREE_TEST_STR", "info"))
}

func TestClimberPolicyIsDeterministic(t *testing.T) {
	a, err := newPolicy("climber", 9)
	require.NoError(t, err)
	b, err := newPolicy("climber", 9)
	require.NoError(t, err)

	for tick := 0; tick < 300; tick++ {
		fa, fb := a(tick), b(tick)
		assert.Equal(t, fa.Actions, fb.Actions, "tick %d", tick)
		assert.True(t, fa.Has(core.ActionJump))
		assert.NotEqual(t, fa.Has(core.ActionLeft), fa.Has(core.ActionRight))
	}
}

func TestIdlePolicy(t *testing.T) {
	p, err := newPolicy("idle", 1)
	require.NoError(t, err)
	assert.Empty(t, p(0).Actions)
}

func TestUnknownPolicy(t *testing.T) {
	_, err := newPolicy("speedrun", 1)
	assert.Error(t, err)
}

// setFlag overrides a command flag variable for one test.
func setFlag[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

func TestPlayReturnsConfigError(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "magictree.log")
	setFlag(t, &flagLogFile, logPath)
	setFlag(t, &flagConfig, filepath.Join(dir, "missing.yaml"))

	err := runPlay(playCmd, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
	_, statErr := os.Stat(logPath)
	assert.NoError(t, statErr, "log file is opened before the failure")
}

func TestSimRejectsBadInput(t *testing.T) {
	setFlag(t, &flagConfig, "")
	setFlag(t, &flagSimTicks, 0)
	assert.Error(t, runSim(simCmd, nil))

	setFlag(t, &flagSimTicks, 10)
	setFlag(t, &flagSimPolicy, "speedrun")
	assert.Error(t, runSim(simCmd, nil))
}

func TestSimWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.msgpack")
	setFlag(t, &flagConfig, "")
	setFlag(t, &flagSeed, int64(3))
	setFlag(t, &flagSimTicks, 120)
	setFlag(t, &flagSimPolicy, "idle")
	setFlag(t, &flagSimSnapshot, path)

	require.NoError(t, runSim(simCmd, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestConfigResolvedReportsBadPath(t *testing.T) {
	setFlag(t, &flagConfigResolved, true)
	setFlag(t, &flagConfig, filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, runConfig(configCmd, nil))
}
