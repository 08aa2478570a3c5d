package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mediai-platform/mediai/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mediai.yaml")
	yaml := `
env: test
api:
  base_url: http://backend.test:8000
  timeout: 3s
session:
  data_dir: ` + dir + `
  refresh_interval: 30s
portal:
  host: 127.0.0.1
  port: "4000"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "test", cfg.Env)
	require.Equal(t, "http://backend.test:8000", cfg.API.BaseURL)
	require.Equal(t, 3*time.Second, cfg.API.Timeout)
	require.Equal(t, 30*time.Second, cfg.Session.RefreshInterval)
	require.Equal(t, filepath.Join(dir, "tokens.json"), cfg.Session.TokenFile())
	require.Equal(t, "127.0.0.1:4000", cfg.Portal.Addr())
}

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("MEDIAI_DATA_DIR", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
	require.Equal(t, time.Minute, cfg.Session.RefreshInterval)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
