package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the validated, immutable parameter set for one pipeline run.
// Every stage receives it explicitly; nothing reads the environment after Load.
type Config struct {
	InfluxURL    string
	InfluxToken  string
	InfluxOrg    string
	InfluxBucket string

	Lookback     time.Duration // how far back data is queried
	EnvWindow    time.Duration // aggregation window for the environment fields
	MotionWindow time.Duration // aggregation window for the acceleration fields

	HIThreshold  float64 // thermal index alert threshold (°C)
	HumidityMin  float64 // lower bound of the acceptable humidity band (%)
	HumidityMax  float64 // upper bound of the acceptable humidity band (%)
	VibThreshold float64 // vibration RMS alert threshold (m/s²)

	RefreshSeconds int // cadence of the local runner
}

var lookbackChoices = map[string]time.Duration{
	"30m": 30 * time.Minute,
	"1h":  time.Hour,
	"6h":  6 * time.Hour,
	"12h": 12 * time.Hour,
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"15d": 15 * 24 * time.Hour,
}

var envWindowChoices = map[string]time.Duration{
	"10s": 10 * time.Second,
	"30s": 30 * time.Second,
	"1m":  time.Minute,
}

var motionWindowChoices = map[string]time.Duration{
	"100ms": 100 * time.Millisecond,
	"200ms": 200 * time.Millisecond,
	"500ms": 500 * time.Millisecond,
	"1s":    time.Second,
}

// Load reads the configuration from the environment and validates it.
// Missing connection parameters are fatal; the pipeline must never run
// without them.
func Load() (Config, error) {
	cfg := Config{
		InfluxURL:    os.Getenv("INFLUXDB_URL"),
		InfluxToken:  os.Getenv("INFLUXDB_TOKEN"),
		InfluxOrg:    os.Getenv("INFLUXDB_ORG"),
		InfluxBucket: os.Getenv("INFLUXDB_BUCKET"),
	}

	if cfg.InfluxURL == "" || cfg.InfluxToken == "" || cfg.InfluxOrg == "" || cfg.InfluxBucket == "" {
		return Config{}, fmt.Errorf("missing InfluxDB credentials: set INFLUXDB_URL / INFLUXDB_TOKEN / INFLUXDB_ORG / INFLUXDB_BUCKET")
	}

	var err error

	if cfg.Lookback, err = pickDuration("RANGE", lookbackChoices, "12h"); err != nil {
		return Config{}, err
	}
	if cfg.EnvWindow, err = pickDuration("ENV_WINDOW", envWindowChoices, "30s"); err != nil {
		return Config{}, err
	}
	if cfg.MotionWindow, err = pickDuration("MOTION_WINDOW", motionWindowChoices, "200ms"); err != nil {
		return Config{}, err
	}

	if cfg.HIThreshold, err = pickFloat("HI_THRESHOLD", 25.0, 40.0, 30.0); err != nil {
		return Config{}, err
	}
	if cfg.HumidityMin, err = pickFloat("HUM_MIN", 10, 50, 30); err != nil {
		return Config{}, err
	}
	if cfg.HumidityMax, err = pickFloat("HUM_MAX", 60, 90, 75); err != nil {
		return Config{}, err
	}
	if cfg.VibThreshold, err = pickFloat("VIB_THRESHOLD", 0.5, 3.0, 1.5); err != nil {
		return Config{}, err
	}

	refresh, err := pickFloat("REFRESH_SECONDS", 5, 60, 15)
	if err != nil {
		return Config{}, err
	}
	cfg.RefreshSeconds = int(refresh)

	return cfg, nil
}

func pickDuration(name string, choices map[string]time.Duration, fallback string) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		raw = fallback
	}

	d, ok := choices[raw]
	if !ok {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return d, nil
}

func pickFloat(name string, min, max, fallback float64) (float64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}

	if v < min || v > max {
		return 0, fmt.Errorf("%s %.1f out of range [%.1f, %.1f]", name, v, min, max)
	}
	return v, nil
}
