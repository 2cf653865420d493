package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
env:
  env: test
  serviceName: tourd
  log:
    level: debug
http:
  port: 8080
tracking:
  minMovementMeters: 10
  proximityMarginMeters: 50
  maxAccuracyMeters: 0
session:
  deviceId: phone-1
speech:
  wordsPerMinute: 180
  maxDuration: 2m
snapshot:
  provider: redis
  ttl: 24h
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tour.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := writeConfig(t, sampleYAML)
	t.Chdir(dir)
	t.Setenv("SESSION_DEVICEID", "phone-2")
	t.Setenv("TRACKING_GATENEARBYBYTHROTTLE", "true")

	cfg, err := LoadWithEnv[Config]("tour")
	require.NoError(t, err)
	cfg.applyDefaults()

	assert.Equal(t, "tourd", cfg.Env.ServiceName)
	assert.Equal(t, "phone-2", cfg.Session.DeviceID)
	assert.True(t, cfg.Tracking.GateNearbyByThrottle)
	assert.InDelta(t, 10.0, cfg.Tracking.MinMovementMeters, 1e-9)
	assert.Zero(t, cfg.Tracking.AccuracyLimit())
	assert.Equal(t, 180, cfg.Speech.WordsPerMinute)
	assert.Equal(t, 2*time.Minute, cfg.Speech.MaxDuration)
	assert.Equal(t, time.Second, cfg.Speech.MinDuration)
	assert.Equal(t, 24*time.Hour, cfg.Snapshot.TTL)
	assert.Equal(t, "natural", cfg.Session.RestorePolicy)
	assert.Equal(t, "blob", cfg.Catalog.Provider)
	assert.Equal(t, defaultSnapshotKeyPrefix, cfg.Snapshot.KeyPrefix)
	assert.Equal(t, defaultMaxMonitored, cfg.Tracking.MaxMonitoredRegions)
	assert.Nil(t, cfg.Redis)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestAccuracyLimit_DefaultsWhenUnset(t *testing.T) {
	var tracking TrackingConfig
	assert.InDelta(t, defaultMaxAccuracyMeters, tracking.AccuracyLimit(), 1e-9)
}
