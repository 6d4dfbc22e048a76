package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	t.Setenv(EnvAddr, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 5*time.Second, cfg.Client.DismissAfter)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv(EnvAddr, "")
	path := writeFile(t, `
server:
  addr: ":9090"
client:
  timeout: 2s
profile:
  name: Qirat Saeed
  title: Agentic AI Developer
  location: Pakistan
  links:
    - name: GitHub
      url: https://github.com/example
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownGrace)
	assert.Equal(t, 2*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "/api/contact", cfg.Contact.RoutePath)
	assert.Equal(t, "Qirat Saeed", cfg.Profile.Name)
	require.Len(t, cfg.Profile.Links, 1)
	assert.Equal(t, Link{Name: "GitHub", URL: "https://github.com/example"}, cfg.Profile.Links[0])
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesAddr(t *testing.T) {
	t.Setenv(EnvAddr, "127.0.0.1:7000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(EnvAddr, "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "server: [unterminated"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "client:\n  dismiss_after: 0s\ncontact:\n  route_path: \"\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client.dismiss_after")
	assert.Contains(t, err.Error(), "contact.route_path")
}
