package pipeline

import "weather-station-analyzer/src/types"

// ClassifyMotion thresholds the vibration RMS into a binary motion flag,
// evaluated independently per sample. There is no hysteresis or debounce:
// a signal oscillating around the threshold will flap, which is accepted
// for the simple rule set this station exposes.
func ClassifyMotion(samples []types.VibrationSample, threshold float64) []types.MotionFlag {
	flags := make([]types.MotionFlag, len(samples))
	for i, s := range samples {
		flags[i] = types.MotionFlag{Time: s.Time, Active: s.RMS > threshold}
	}
	return flags
}
