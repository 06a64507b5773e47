package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTarget(t *testing.T) {
	tests := []struct {
		fps  int
		want int
	}{
		{fps: 70, want: 60},
		{fps: 56, want: 60},
		{fps: 55, want: 50},
		{fps: 50, want: 50},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, deriveTarget(tc.fps), "fps=%d", tc.fps)
	}
}

// Run the optimize command end to end in a temp dir: settings must come
// out clamped to the target and persisted.
func TestOptimizeCommand(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.txt")
	settingsFile := filepath.Join(dir, "settings.txt")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{
		"optimize",
		"--config", cfgFile,
		"--target", "80",
		"--workers", "4",
	})
	// Point the settings file into the temp dir through the config.
	writeConfig(t, cfgFile, "settings_file="+settingsFile+"\n")

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Optimized 3 settings to target 80")
	assert.Contains(t, out.String(), "- Resolution: 720")
	assert.Contains(t, out.String(), "- Texture Quality: 5")
	assert.FileExists(t, settingsFile)
	assert.FileExists(t, cfgFile) // last_run written back
}

func TestSettingsCommand(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.txt")
	writeConfig(t, cfgFile, "settings_file="+filepath.Join(dir, "settings.txt")+"\n")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"settings", "--config", cfgFile})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Current Settings:")
	assert.Contains(t, out.String(), "- Resolution: 1080")
}

func TestTweaksCommand(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.txt")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"tweaks", "--config", cfgFile})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Boost FPS")
	assert.Contains(t, out.String(), "Enhance Graphics")
	assert.Contains(t, out.String(), "Reduce Input Lag")

	// Unknown tweak surfaces as a command error.
	root2 := newRootCmd()
	root2.SetOut(&out)
	root2.SetErr(&out)
	root2.SetArgs([]string{"tweaks", "Nope", "--config", cfgFile})
	require.Error(t, root2.Execute())
}

func writeConfig(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
