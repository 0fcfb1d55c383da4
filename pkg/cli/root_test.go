package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudshift-cli/cloudshift/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeStub installs a fake rclone that succeeds on every subcommand.
func writeStub(t *testing.T) string {
	t.Helper()

	binary := filepath.Join(t.TempDir(), "rclone")
	script := `#!/bin/sh
case "$1" in
  version) echo "rclone v1.66.0";;
  listremotes) printf 'srcAcct:\ndstAcct:\n';;
esac
exit 0
`
	require.NoError(t, os.WriteFile(binary, []byte(script), 0o755))
	return binary
}

// writeConfig pins a config file so tests never read ~/.cloudshift.yaml.
func writeConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cloudshift.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: error\n"), 0o644))
	return path
}

func TestRunVersion(t *testing.T) {
	code := Run([]string{"version"})

	assert.Equal(t, common.ExitOK, code)
}

func TestRunRemotes(t *testing.T) {
	code := Run([]string{"remotes", "--config", writeConfig(t), "--rclone", writeStub(t)})

	assert.Equal(t, common.ExitOK, code)
}

func TestRunRemotesToolNotFound(t *testing.T) {
	code := Run([]string{"remotes", "--config", writeConfig(t), "--rclone", "definitely-not-a-real-binary-name"})

	assert.Equal(t, common.ExitToolNotFound, code)
}

func TestRunMissingConfigFile(t *testing.T) {
	code := Run([]string{"remotes", "--config", filepath.Join(t.TempDir(), "nope.yaml")})

	assert.Equal(t, common.ExitConfigFailed, code)
}

func TestRunMalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloudshift.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":[broken\n"), 0o644))

	code := Run([]string{"remotes", "--config", path})

	// A config parse failure must not report the user-cancellation code.
	assert.Equal(t, common.ExitConfigFailed, code)
}
