package schedule

import (
	"go.uber.org/zap"

	"weather-station-analyzer/src/types"
)

// LogAlerts surfaces the active alert conditions of a snapshot.
func LogAlerts(snapshot types.Snapshot, logger *zap.Logger) {
	if snapshot.Alerts.Thermal {
		logger.Warn("high thermal index",
			zap.Float64("thermal_index", snapshot.ThermalIndex.V))
	}

	if snapshot.Alerts.Humidity {
		logger.Warn("humidity out of range",
			zap.Float64("humidity", snapshot.Humidity.V))
	}

	if snapshot.Alerts.Vibration {
		logger.Warn("elevated vibration, possible impact or activity on the surface",
			zap.Float64("vibration_rms", snapshot.VibrationRMS.V))
	}
}
