package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 3850, config.Server.Port)
	assert.InDelta(t, 844.8e9, config.Reference.NetWorth, 1e3)
	assert.Equal(t, 5*time.Minute, config.Reference.GetRefreshInterval())
	assert.Empty(t, config.Storage.Address)
}

func TestLoadConfigFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "muskunits.toml")
	content := `
environment = "production"

[server]
port = 8080

[reference]
net_worth = 900_000_000_000.0
refresh_interval = "10m"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, config.IsProduction())
	assert.Equal(t, 8080, config.Server.Port)
	assert.InDelta(t, 900e9, config.Reference.NetWorth, 1e3)
	assert.Equal(t, 10*time.Minute, config.Reference.GetRefreshInterval())

	// Untouched sections keep their defaults.
	assert.Equal(t, "0.0.0.0", config.Server.Host)
	assert.Equal(t, "data/gold-reserves.json", config.Gold.ReservesFile)
}

func TestLoadConfigMissingFileSkipped(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "development", config.Environment)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("MUSKUNITS_PORT", "9999")
	t.Setenv("MUSKUNITS_NET_WORTH", "500000000000")
	t.Setenv("MUSKUNITS_STORAGE_ADDRESS", "ws://localhost:8000/rpc")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9999, config.Server.Port)
	assert.InDelta(t, 500e9, config.Reference.NetWorth, 1e3)
	assert.Equal(t, "ws://localhost:8000/rpc", config.Storage.Address)
}

func TestLoadConfigRejectsNonPositiveNetWorth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "muskunits.toml")
	require.NoError(t, os.WriteFile(path, []byte("[reference]\nnet_worth = 0.0\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestGetTimeoutFallback(t *testing.T) {
	p := ProviderConfig{Timeout: "garbage"}
	assert.Equal(t, 30*time.Second, p.GetTimeout())

	p.Timeout = "45s"
	assert.Equal(t, 45*time.Second, p.GetTimeout())
}
