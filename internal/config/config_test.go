package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "rclone", cfg.Rclone.Binary)
	assert.Equal(t, "onedrive", cfg.Rclone.RemoteType)
	assert.Equal(t, "copy", cfg.Transfer.DefaultMode)
	assert.Empty(t, cfg.Rclone.ExtraArgs)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloudshift.yaml")
	content := `log_level: debug
rclone:
  binary: /usr/local/bin/rclone
  remote_type: drive
  extra_args: ["--transfers", "8"]
transfer:
  default_mode: sync
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/usr/local/bin/rclone", cfg.Rclone.Binary)
	assert.Equal(t, "drive", cfg.Rclone.RemoteType)
	assert.Equal(t, []string{"--transfers", "8"}, cfg.Rclone.ExtraArgs)
	assert.Equal(t, "sync", cfg.Transfer.DefaultMode)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloudshift.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "rclone", cfg.Rclone.Binary)
	assert.Equal(t, "copy", cfg.Transfer.DefaultMode)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloudshift.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":[broken\n"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}
