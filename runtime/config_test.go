package runtime_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthesis-agents/runtime/runtime"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := runtime.DefaultConfig()

	assert.Equal(t, 30000, cfg.TimeoutMS)
	assert.Equal(t, 1.0, cfg.UsagePerRunMB)
	assert.Equal(t, 50.0, cfg.Guard.CeilingMB)
	assert.Equal(t, 0.8, cfg.Guard.Threshold)
	assert.Equal(t, "[REDACTED]", cfg.Sanitize.Marker)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "shell.json", `{
		"timeout_ms": 500,
		"guard": {"ceiling_mb": 200, "floor_mb": 20}
	}`)

	cfg, err := runtime.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.TimeoutMS)
	assert.Equal(t, 200.0, cfg.Guard.CeilingMB)
	assert.Equal(t, 20.0, cfg.Guard.FloorMB)
	// Untouched sections keep their defaults.
	assert.Equal(t, 0.8, cfg.Guard.Threshold)
	assert.Equal(t, 1.0, cfg.UsagePerRunMB)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "shell.yaml", `
timeout_ms: 750
observer: noop
guard:
  ceiling_mb: 128
sanitize:
  marker: "(gone)"
  secret_patterns:
    - "internal-[0-9]+"
`)

	cfg, err := runtime.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 750, cfg.TimeoutMS)
	assert.Equal(t, "noop", cfg.Observer)
	assert.Equal(t, 128.0, cfg.Guard.CeilingMB)
	assert.Equal(t, "(gone)", cfg.Sanitize.Marker)
	assert.Equal(t, []string{"internal-[0-9]+"}, cfg.Sanitize.SecretPatterns)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := runtime.LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	path := writeFile(t, "broken.json", `{not json`)
	_, err = runtime.LoadConfig(path)
	assert.Error(t, err)

	path = writeFile(t, "broken.yaml", "\t\tnot yaml")
	_, err = runtime.LoadConfig(path)
	assert.Error(t, err)
}
