package pipeline

import (
	"math"

	"weather-station-analyzer/src/types"
	"weather-station-analyzer/src/utils"
)

const (
	// Gravity is subtracted from the acceleration magnitude to approximate
	// the dynamic component. The sensor is assumed near-stationary relative
	// to gravity alignment; there is no orientation correction.
	Gravity = 9.81

	// RMSWindow is the trailing window length, in samples, of the rolling RMS.
	RMSWindow = 20

	// RMSMinPeriods is the minimum number of trailing samples required before
	// an RMS value is emitted. Earlier positions produce no sample at all,
	// to avoid misleadingly flat readings at the start of the window.
	RMSMinPeriods = 5
)

// AlignAxes inner-joins the three axis series on timestamp. Rows where any
// axis is missing are dropped; output order follows the x-axis series.
func AlignAxes(x, y, z types.Series) []types.AccelSample {
	ys := make(map[int64]float64, len(y))
	for _, r := range y {
		ys[r.Time.UnixNano()] = r.Value
	}
	zs := make(map[int64]float64, len(z))
	for _, r := range z {
		zs[r.Time.UnixNano()] = r.Value
	}

	var aligned []types.AccelSample
	for _, r := range x {
		yv, okY := ys[r.Time.UnixNano()]
		zv, okZ := zs[r.Time.UnixNano()]
		if !okY || !okZ {
			continue
		}
		aligned = append(aligned, types.AccelSample{Time: r.Time, X: r.Value, Y: yv, Z: zv})
	}

	return aligned
}

// ComputeVibration turns aligned acceleration samples into a vibration RMS
// signal. Per sample: magnitude is the Euclidean norm of the three axes,
// the dynamic component is max(magnitude - Gravity, 0), and the RMS is taken
// over the trailing RMSWindow dynamic values. Samples are only emitted once
// RMSMinPeriods values are available, so fewer aligned samples than that
// yield an empty result.
func ComputeVibration(samples []types.AccelSample) []types.VibrationSample {
	if len(samples) < RMSMinPeriods {
		return nil
	}

	magnitude := make([]float64, len(samples))
	dynamic := make([]float64, len(samples))
	for i, s := range samples {
		magnitude[i] = math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
		dynamic[i] = math.Max(magnitude[i]-Gravity, 0)
	}

	var out []types.VibrationSample
	for i := range samples {
		start := i - RMSWindow + 1
		if start < 0 {
			start = 0
		}
		if i-start+1 < RMSMinPeriods {
			continue
		}

		out = append(out, types.VibrationSample{
			Time:      samples[i].Time,
			Magnitude: magnitude[i],
			RMS:       utils.RMS(dynamic[start : i+1]),
		})
	}

	return out
}
