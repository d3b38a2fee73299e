// ABOUTME: Tests for XDG Base Directory support
// ABOUTME: Includes regression tests for HOME variable handling

package xdg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/harper/infoflow/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_CONFIG_HOME", "")

	assert.Equal(t, filepath.Join("/home/tester", ".config", "infoflow"), ConfigHome())
}

func TestConfigHome_WithEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	assert.Equal(t, filepath.Join("/tmp/custom-config", "infoflow"), ConfigHome())
}

func TestDataHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_DATA_HOME", "")

	assert.Equal(t, filepath.Join("/home/tester", ".local", "share", "infoflow"), DataHome())
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/etc/xdg")

	tests := []struct {
		in   string
		want string
	}{
		{"~/notes/log.txt", "/home/tester/notes/log.txt"},
		{"$XDG_DATA_HOME/infoflow/infoflow.log", "/home/tester/.local/share/infoflow/infoflow.log"},
		{"$XDG_CONFIG_HOME/infoflow/config.yaml", "/etc/xdg/infoflow/config.yaml"},
		{"/var/log/infoflow.log", "/var/log/infoflow.log"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

// Regression: an unset HOME must not produce paths rooted at "/".
func TestGetHome_FallsBackToWorkingDir(t *testing.T) {
	t.Setenv("HOME", "")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, getHome())
}

func TestEnsureParent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "infoflow.log")

	require.NoError(t, EnsureParent("XDG_DATA_HOME", path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureParent_FileInTheWay(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := EnsureParent("XDG_DATA_HOME", filepath.Join(blocker, "sub", "infoflow.log"))

	var pathErr *apperrors.XDGPathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "XDG_DATA_HOME", pathErr.Variable)
}
