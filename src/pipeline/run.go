package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"weather-station-analyzer/src/config"
	"weather-station-analyzer/src/types"
)

// Measurement and field names as written by the station firmware.
const (
	EnvMeasurement    = "studio-dht22"
	MotionMeasurement = "mpu6050"

	FieldTemperature  = "temperatura"
	FieldHumidity     = "humedad"
	FieldThermalIndex = "sensacion_termica"

	FieldAccelX = "accel_x"
	FieldAccelY = "accel_y"
	FieldAccelZ = "accel_z"
)

// QueryRequest describes one windowed query against the time-series store.
type QueryRequest struct {
	Measurement string
	Fields      []string
	Lookback    time.Duration
	Window      time.Duration
}

// Querier is the external query engine the pipeline consumes. It must return
// mean-aggregated rows per window bucket, empty (not an error) when there is
// no data, and an error only for connectivity or query failures.
type Querier interface {
	QueryWindow(ctx context.Context, req QueryRequest) ([]types.Reading, error)
}

// Run executes one full pipeline pass: fetch, normalize, derive, classify.
// Absent data degrades to undefined indicators; only collaborator failures
// return an error.
func Run(ctx context.Context, q Querier, cfg config.Config) (types.Snapshot, error) {
	envRows, err := q.QueryWindow(ctx, QueryRequest{
		Measurement: EnvMeasurement,
		Fields:      []string{FieldTemperature, FieldHumidity, FieldThermalIndex},
		Lookback:    cfg.Lookback,
		Window:      cfg.EnvWindow,
	})
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("failed to query environment data: %w", err)
	}

	motionRows, err := q.QueryWindow(ctx, QueryRequest{
		Measurement: MotionMeasurement,
		Fields:      []string{FieldAccelX, FieldAccelY, FieldAccelZ},
		Lookback:    cfg.Lookback,
		Window:      cfg.MotionWindow,
	})
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("failed to query motion data: %w", err)
	}

	env := NormalizeRows(envRows)
	motion := NormalizeRows(motionRows)

	latest := LatestValues(env, FieldTemperature, FieldHumidity, FieldThermalIndex)

	aligned := AlignAxes(motion[FieldAccelX], motion[FieldAccelY], motion[FieldAccelZ])
	vibration := ComputeVibration(aligned)
	flags := ClassifyMotion(vibration, cfg.VibThreshold)

	rms := types.NoValue()
	motionNow := false
	if len(vibration) > 0 {
		rms = types.SomeValue(vibration[len(vibration)-1].RMS)
		motionNow = flags[len(flags)-1].Active
	}

	hi := latest[FieldThermalIndex]
	hum := latest[FieldHumidity]

	return types.Snapshot{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Temperature:  latest[FieldTemperature],
		Humidity:     hum,
		ThermalIndex: hi,
		Comfort:      ComputeComfortLevel(hi, hum, cfg.HIThreshold),
		TempSeries:   env[FieldTemperature],
		HumSeries:    env[FieldHumidity],
		Vibration:    vibration,
		Motion:       flags,
		VibrationRMS: rms,
		MotionNow:    motionNow,
		Alerts:       EvaluateAlerts(hi, hum, rms, cfg),
	}, nil
}
