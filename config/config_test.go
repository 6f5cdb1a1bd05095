package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "0.0.0.0:4000", cfg.Bind)
	assert.Equal(t, 4370, cfg.DevicePort)
	assert.Equal(t, "", cfg.DeviceIP)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, "Asia/Manila", cfg.Timezone)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zkgate.yaml")
	data := []byte("bind: 127.0.0.1:9000\ndevice_port: 4371\ndevice_ip: 192.168.1.31\ndevice_timeout_seconds: 10\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("ZKGATE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Bind)
	assert.Equal(t, 4371, cfg.DevicePort)
	assert.Equal(t, "192.168.1.31", cfg.DeviceIP)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	// untouched keys keep their defaults
	assert.Equal(t, "Asia/Manila", cfg.Timezone)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zkgate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("device_port: 4371\n"), 0o600))
	t.Setenv("ZKGATE_CONFIG", path)
	t.Setenv("DEVICE_PORT", "4372")
	t.Setenv("DEVICE_IP", "10.0.0.9")
	t.Setenv("ZKGATE_BIND", "0.0.0.0:8090")
	t.Setenv("DEVICE_TIMEOUT", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4372, cfg.DevicePort)
	assert.Equal(t, "10.0.0.9", cfg.DeviceIP)
	assert.Equal(t, "0.0.0.0:8090", cfg.Bind)
	assert.Equal(t, 2*time.Second, cfg.Timeout())
}

func TestLoadRejectsBadEnvNumbers(t *testing.T) {
	t.Setenv("DEVICE_PORT", "not-a-port")

	_, err := Load()
	assert.ErrorContains(t, err, "DEVICE_PORT")
}

func TestLoadRejectsMissingFile(t *testing.T) {
	t.Setenv("ZKGATE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.ErrorContains(t, err, "read config file")
}

func TestLocationFallsBackToFixedZone(t *testing.T) {
	cfg := Default()
	cfg.Timezone = "Not/AZone"

	loc := cfg.Location()
	require.NotNil(t, loc)

	// Manila has no DST; both the IANA zone and the fallback sit at +8
	_, offset := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC).In(loc).Zone()
	assert.Equal(t, 8*60*60, offset)
}

func TestLocationResolvesConfiguredZone(t *testing.T) {
	cfg := Default()

	_, offset := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC).In(cfg.Location()).Zone()
	assert.Equal(t, 8*60*60, offset)
}
