package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Setenv("INFLUXDB_URL", "http://localhost:8086")
	t.Setenv("INFLUXDB_TOKEN", "token")
	t.Setenv("INFLUXDB_ORG", "studio")
	t.Setenv("INFLUXDB_BUCKET", "sensors")

	for _, name := range []string{"RANGE", "ENV_WINDOW", "MOTION_WINDOW", "HI_THRESHOLD", "HUM_MIN", "HUM_MAX", "VIB_THRESHOLD", "REFRESH_SECONDS"} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12*time.Hour, cfg.Lookback)
	assert.Equal(t, 30*time.Second, cfg.EnvWindow)
	assert.Equal(t, 200*time.Millisecond, cfg.MotionWindow)
	assert.Equal(t, 30.0, cfg.HIThreshold)
	assert.Equal(t, 30.0, cfg.HumidityMin)
	assert.Equal(t, 75.0, cfg.HumidityMax)
	assert.Equal(t, 1.5, cfg.VibThreshold)
	assert.Equal(t, 15, cfg.RefreshSeconds)
}

func TestLoadMissingCredentials(t *testing.T) {
	setCredentials(t)
	t.Setenv("INFLUXDB_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INFLUXDB_TOKEN")
}

func TestLoadSelections(t *testing.T) {
	setCredentials(t)
	t.Setenv("RANGE", "7d")
	t.Setenv("ENV_WINDOW", "1m")
	t.Setenv("MOTION_WINDOW", "500ms")
	t.Setenv("VIB_THRESHOLD", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, cfg.Lookback)
	assert.Equal(t, time.Minute, cfg.EnvWindow)
	assert.Equal(t, 500*time.Millisecond, cfg.MotionWindow)
	assert.Equal(t, 2.5, cfg.VibThreshold)
}

func TestLoadRejectsUnknownRange(t *testing.T) {
	setCredentials(t)
	t.Setenv("RANGE", "2h")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RANGE")
}

func TestLoadRejectsOutOfRangeThreshold(t *testing.T) {
	setCredentials(t)
	t.Setenv("HI_THRESHOLD", "45")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HI_THRESHOLD")
}

func TestLoadRejectsMalformedFloat(t *testing.T) {
	setCredentials(t)
	t.Setenv("HUM_MIN", "damp")

	_, err := Load()
	require.Error(t, err)
}
