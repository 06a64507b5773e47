package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorTarget(t *testing.T) {
	tests := []struct {
		fps        int
		wantTarget int
		wantAdjust bool
	}{
		{fps: 30, wantTarget: 40, wantAdjust: true},
		{fps: 49, wantTarget: 40, wantAdjust: true},
		{fps: 50, wantAdjust: false},
		{fps: 55, wantAdjust: false},
		{fps: 60, wantAdjust: false},
		{fps: 61, wantTarget: 70, wantAdjust: true},
		{fps: 70, wantTarget: 70, wantAdjust: true},
	}

	for _, tc := range tests {
		target, adjust := monitorTarget(tc.fps)
		assert.Equal(t, tc.wantAdjust, adjust, "fps=%d", tc.fps)
		if tc.wantAdjust {
			assert.Equal(t, tc.wantTarget, target, "fps=%d", tc.fps)
		}
	}
}

// Run the monitor loop end to end: every round either reports stable FPS
// or re-optimizes, and the final settings are always persisted in bounds.
func TestMonitorCommand(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.txt")
	settingsFile := filepath.Join(dir, "settings.txt")
	writeConfig(t, cfgFile, "settings_file="+settingsFile+"\n")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{
		"monitor",
		"--config", cfgFile,
		"--iterations", "5",
		"--interval", "0",
		"--workers", "2",
	})

	require.NoError(t, root.Execute())

	// Simulated FPS lands in [50, 70], so each round is either stable or
	// an upward adjustment.
	assert.Regexp(t, `Stable FPS detected|High FPS detected`, out.String())
	assert.FileExists(t, settingsFile)
	assert.FileExists(t, cfgFile)
}
