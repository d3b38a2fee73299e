// ABOUTME: Unit tests for configuration loading and validation
// ABOUTME: Tests defaults, file loading, env overrides, .env files and clamping

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/harper/infoflow/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points XDG dirs and the .env lookup at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))

	old := DotEnvFile
	DotEnvFile = filepath.Join(tmpDir, ".env")
	t.Cleanup(func() { DotEnvFile = old })

	return tmpDir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://inflowaibackend.onrender.com/ask", cfg.Endpoint.URL)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.UI.Markdown)
	assert.Equal(t, 1, cfg.Input.MinHeight)
	assert.Equal(t, 8, cfg.Input.MaxHeight)
	assert.False(t, cfg.Dark())
}

func TestLoadConfig_NoFile(t *testing.T) {
	tmpDir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpoint, cfg.Endpoint.URL)
	assert.Equal(t, filepath.Join(tmpDir, "data", "infoflow", "infoflow.log"), cfg.Logging.File)

	configPath := filepath.Join(tmpDir, "config", "infoflow", "config.yaml")
	_, err = os.Stat(configPath)
	assert.NoError(t, err, "config file should be created")
}

func TestLoadConfig_UnwritableDefaultIsLogged(t *testing.T) {
	tmpDir := isolate(t)
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(nil) })

	// a dangling link: the path looks missing but cannot be written through
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "missing", "config.yaml"), configPath))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpoint, cfg.Endpoint.URL)
	assert.Contains(t, buf.String(), "could not write default config")
	assert.Contains(t, buf.String(), configPath)
}

func TestLoadConfig_ExistingFile(t *testing.T) {
	tmpDir := isolate(t)
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `endpoint:
  url: "http://localhost:9000/ask"
ui:
  theme: "dark"
  markdown: false
input:
  min_height: 2
  max_height: 6
logging:
  level: "debug"
  file: "~/infoflow.log"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/ask", cfg.Endpoint.URL)
	assert.True(t, cfg.Dark())
	assert.False(t, cfg.UI.Markdown)
	assert.Equal(t, 2, cfg.Input.MinHeight)
	assert.Equal(t, 6, cfg.Input.MaxHeight)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), "infoflow.log"), cfg.Logging.File)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := isolate(t)
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("ui:\n  theme: dark\n"), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.True(t, cfg.Dark())
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint.URL)
	assert.True(t, cfg.UI.Markdown)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	tmpDir := isolate(t)
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("endpoint:\n  url: http://file/ask\n"), 0o644))

	t.Setenv("INFOFLOW_ENDPOINT_URL", "http://env/ask")
	t.Setenv("INFOFLOW_UI_THEME", "dark")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "http://env/ask", cfg.Endpoint.URL)
	assert.True(t, cfg.Dark())
}

func TestLoadConfig_DotEnv(t *testing.T) {
	tmpDir := isolate(t)
	require.NoError(t, os.WriteFile(DotEnvFile, []byte("INFOFLOW_ENDPOINT_URL=http://dotenv/ask\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("INFOFLOW_ENDPOINT_URL") })

	cfg, err := Load(filepath.Join(tmpDir, "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://dotenv/ask", cfg.Endpoint.URL)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := isolate(t)
	configPath := filepath.Join(tmpDir, "config.yaml")

	invalidYAML := `endpoint:
  url: "http://localhost:8081
ui:
    theme: [unclosed array
`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidYAML), 0o644))

	_, err := Load(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate_Theme(t *testing.T) {
	cfg := DefaultConfig()

	cfg.UI.Theme = "solarized"
	cfg.Validate()
	assert.Equal(t, "light", cfg.UI.Theme)

	cfg.UI.Theme = "dark"
	cfg.Validate()
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestValidate_EmptyEndpoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Endpoint.URL = "   "

	cfg.Validate()

	assert.Equal(t, DefaultEndpoint, cfg.Endpoint.URL)
}

func TestValidate_InputHeights(t *testing.T) {
	tests := []struct {
		name        string
		minHeight   int
		maxHeight   int
		expectedMin int
		expectedMax int
	}{
		{"both valid", 2, 8, 2, 8},
		{"min too small", 0, 8, 1, 8},
		{"max too small", 3, 0, 1, 1},
		{"max too large", 1, 50, 1, 20},
		{"min > max", 10, 5, 5, 5},
		{"both zero", 0, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Input.MinHeight = tt.minHeight
			cfg.Input.MaxHeight = tt.maxHeight
			cfg.Validate()
			assert.Equal(t, tt.expectedMin, cfg.Input.MinHeight)
			assert.Equal(t, tt.expectedMax, cfg.Input.MaxHeight)
		})
	}
}

func TestValidate_LoggingLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "chatty"

	cfg.Validate()

	assert.Equal(t, "info", cfg.Logging.Level)
}
