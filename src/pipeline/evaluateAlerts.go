package pipeline

import (
	"weather-station-analyzer/src/config"
	"weather-station-analyzer/src/types"
)

// EvaluateAlerts compares the latest derived values against the operator
// thresholds. Each alert is independent and an undefined input never raises
// its alert: missing data means no alarm, not a false one.
func EvaluateAlerts(hi, hum, rms types.Value, cfg config.Config) types.AlertSet {
	return types.AlertSet{
		Thermal:   hi.Defined && hi.V > cfg.HIThreshold,
		Humidity:  hum.Defined && (hum.V < cfg.HumidityMin || hum.V > cfg.HumidityMax),
		Vibration: rms.Defined && rms.V > cfg.VibThreshold,
	}
}
