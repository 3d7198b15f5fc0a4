package reconnect

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 3*time.Second, cfg.BaseInterval())
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reconnect.yaml")
	content := "max_attempts: 8\nbase_interval_ms: 250\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.BaseInterval())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reconnect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_attempts: 8\n"), 0o644))

	t.Setenv("LATTICE_RECONNECT_MAX_ATTEMPTS", "2")
	t.Setenv("LATTICE_RECONNECT_BASE_INTERVAL_MS", "100")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxAttempts)
	assert.Equal(t, 100, cfg.BaseIntervalMS)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("Invalid Values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_attempts: 0\n"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
