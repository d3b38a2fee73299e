// ABOUTME: XDG Base Directory support for infoflow config and data files
// ABOUTME: Resolves app directories, expands ~ and $XDG_* prefixes, creates dirs

package xdg

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/harper/infoflow/internal/errors"
)

const appName = "infoflow"

// base describes one XDG variable and its fallback under HOME.
type base struct {
	env      string
	fallback []string
}

var (
	configBase = base{env: "XDG_CONFIG_HOME", fallback: []string{".config"}}
	dataBase   = base{env: "XDG_DATA_HOME", fallback: []string{".local", "share"}}
)

func (b base) dir() string {
	if v := os.Getenv(b.env); v != "" {
		return v
	}
	return filepath.Join(append([]string{getHome()}, b.fallback...)...)
}

// ConfigHome returns ~/.config/infoflow or respects XDG_CONFIG_HOME.
func ConfigHome() string {
	return filepath.Join(configBase.dir(), appName)
}

// DataHome returns ~/.local/share/infoflow or respects XDG_DATA_HOME.
func DataHome() string {
	return filepath.Join(dataBase.dir(), appName)
}

// ExpandPath expands a leading ~/ or $XDG_CONFIG_HOME / $XDG_DATA_HOME.
// Other paths pass through unchanged.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(getHome(), path[2:])
	}

	for _, b := range []base{configBase, dataBase} {
		prefix := "$" + b.env
		if strings.HasPrefix(path, prefix) {
			return b.dir() + path[len(prefix):]
		}
	}

	return path
}

// EnsureParent creates the directory holding path.
func EnsureParent(variable, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.NewXDGPathError(variable, dir, err)
	}
	return nil
}

// getHome returns HOME, falling back to the working directory.
func getHome() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
