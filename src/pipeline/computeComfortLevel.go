package pipeline

import "weather-station-analyzer/src/types"

// ComputeComfortLevel maps the latest thermal index and humidity to a comfort
// category. The rules are checked in order and the first match wins: the
// comfortable band sits inside the wider caution band, so the ordering is
// load-bearing.
func ComputeComfortLevel(hi, hum types.Value, hiThreshold float64) types.ComfortLevel {
	if !hi.Defined || !hum.Defined {
		return types.UNKNOWN
	}

	if hi.V <= 27 && hum.V >= 30 && hum.V <= 60 {
		return types.COMFORTABLE
	}

	if hi.V <= hiThreshold && hum.V >= 25 && hum.V <= 70 {
		return types.CAUTION
	}

	return types.ALERT
}
