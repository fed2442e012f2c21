package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-station-analyzer/src/config"
	"weather-station-analyzer/src/types"
)

// fakeQuerier serves canned rows per measurement, standing in for InfluxDB.
type fakeQuerier struct {
	rows     map[string][]types.Reading
	err      error
	requests []QueryRequest
}

func (f *fakeQuerier) QueryWindow(_ context.Context, req QueryRequest) ([]types.Reading, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[req.Measurement], nil
}

func testConfig() config.Config {
	return config.Config{
		Lookback:     12 * time.Hour,
		EnvWindow:    30 * time.Second,
		MotionWindow: 200 * time.Millisecond,
		HIThreshold:  30,
		HumidityMin:  30,
		HumidityMax:  75,
		VibThreshold: 1.5,
	}
}

func motionRows(n int, z float64) []types.Reading {
	var rows []types.Reading
	for i := 0; i < n; i++ {
		ts := base.Add(time.Duration(i) * 200 * time.Millisecond)
		rows = append(rows,
			types.Reading{Time: ts, Field: FieldAccelX, Value: 0},
			types.Reading{Time: ts, Field: FieldAccelY, Value: 0},
			types.Reading{Time: ts, Field: FieldAccelZ, Value: z},
		)
	}
	return rows
}

func TestRunProducesSnapshot(t *testing.T) {
	q := &fakeQuerier{rows: map[string][]types.Reading{
		EnvMeasurement: {
			{Time: at(0), Field: FieldTemperature, Value: 21.0},
			{Time: at(30), Field: FieldTemperature, Value: 21.8},
			{Time: at(0), Field: FieldHumidity, Value: 44},
			{Time: at(30), Field: FieldHumidity, Value: 46},
			{Time: at(0), Field: FieldThermalIndex, Value: 22.0},
			{Time: at(30), Field: FieldThermalIndex, Value: 22.5},
		},
		MotionMeasurement: motionRows(30, 9.81),
	}}

	snapshot, err := Run(context.Background(), q, testConfig())
	require.NoError(t, err)

	assert.NotEmpty(t, snapshot.ID)
	assert.NotEmpty(t, snapshot.Timestamp)

	assert.Equal(t, types.SomeValue(21.8), snapshot.Temperature)
	assert.Equal(t, types.SomeValue(46.0), snapshot.Humidity)
	assert.Equal(t, types.SomeValue(22.5), snapshot.ThermalIndex)
	assert.Equal(t, types.COMFORTABLE, snapshot.Comfort)

	assert.Len(t, snapshot.TempSeries, 2)
	assert.Len(t, snapshot.HumSeries, 2)

	// Stationary sensor: defined RMS of zero, no motion, no alerts.
	require.Len(t, snapshot.Vibration, 30-RMSMinPeriods+1)
	require.Len(t, snapshot.Motion, len(snapshot.Vibration))
	assert.True(t, snapshot.VibrationRMS.Defined)
	assert.InDelta(t, 0.0, snapshot.VibrationRMS.V, 1e-9)
	assert.False(t, snapshot.MotionNow)
	assert.False(t, snapshot.Alerts.Any())
}

func TestRunRequestsBothMeasurements(t *testing.T) {
	q := &fakeQuerier{rows: map[string][]types.Reading{}}
	cfg := testConfig()

	_, err := Run(context.Background(), q, cfg)
	require.NoError(t, err)

	require.Len(t, q.requests, 2)
	assert.Equal(t, EnvMeasurement, q.requests[0].Measurement)
	assert.Equal(t, cfg.EnvWindow, q.requests[0].Window)
	assert.ElementsMatch(t, []string{FieldTemperature, FieldHumidity, FieldThermalIndex}, q.requests[0].Fields)
	assert.Equal(t, MotionMeasurement, q.requests[1].Measurement)
	assert.Equal(t, cfg.MotionWindow, q.requests[1].Window)
	assert.Equal(t, cfg.Lookback, q.requests[1].Lookback)
}

func TestRunNoDataDegradesToAbsence(t *testing.T) {
	q := &fakeQuerier{rows: map[string][]types.Reading{}}

	snapshot, err := Run(context.Background(), q, testConfig())
	require.NoError(t, err, "no data is not a failure")

	assert.False(t, snapshot.Temperature.Defined)
	assert.False(t, snapshot.Humidity.Defined)
	assert.False(t, snapshot.ThermalIndex.Defined)
	assert.False(t, snapshot.VibrationRMS.Defined)
	assert.Equal(t, types.UNKNOWN, snapshot.Comfort)
	assert.Empty(t, snapshot.Vibration)
	assert.Empty(t, snapshot.Motion)
	assert.False(t, snapshot.Alerts.Any(), "missing data never raises alerts")
}

func TestRunPropagatesQueryFailure(t *testing.T) {
	q := &fakeQuerier{err: errors.New("connection refused")}

	_, err := Run(context.Background(), q, testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRunActiveVibration(t *testing.T) {
	// Sensor shaken hard: magnitude well above gravity everywhere.
	q := &fakeQuerier{rows: map[string][]types.Reading{
		MotionMeasurement: motionRows(30, 15.0),
	}}

	snapshot, err := Run(context.Background(), q, testConfig())
	require.NoError(t, err)

	require.True(t, snapshot.VibrationRMS.Defined)
	assert.InDelta(t, 15.0-Gravity, snapshot.VibrationRMS.V, 1e-9)
	assert.True(t, snapshot.MotionNow)
	assert.True(t, snapshot.Alerts.Vibration)
	assert.False(t, snapshot.Alerts.Thermal)
	assert.False(t, snapshot.Alerts.Humidity)
}
