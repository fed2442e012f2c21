package types

import "time"

// Reading is a single raw row returned by the time-series store.
type Reading struct {
	Time  time.Time `json:"time"`
	Field string    `json:"field"`
	Value float64   `json:"value"`
}

// Series is an ordered sequence of readings for one field, ascending by time.
type Series []Reading

// Value is an optional float. Missing sensor data is common and must never
// turn into a spurious zero, so absence is explicit.
type Value struct {
	V       float64 `json:"value"`
	Defined bool    `json:"defined"`
}

func SomeValue(v float64) Value {
	return Value{V: v, Defined: true}
}

func NoValue() Value {
	return Value{}
}

// AccelSample is one fully-aligned row of the three acceleration axes.
type AccelSample struct {
	Time time.Time
	X    float64
	Y    float64
	Z    float64
}

// VibrationSample carries the acceleration magnitude and the trailing RMS of
// its gravity-compensated component. Samples exist only where the RMS is
// defined.
type VibrationSample struct {
	Time      time.Time `json:"time"`
	Magnitude float64   `json:"magnitude"`
	RMS       float64   `json:"rms"`
}

// MotionFlag is the binary motion signal, one per vibration sample.
type MotionFlag struct {
	Time   time.Time `json:"time"`
	Active bool      `json:"active"`
}

type ComfortLevel string

const (
	COMFORTABLE ComfortLevel = "COMFORTABLE"
	CAUTION     ComfortLevel = "CAUTION"
	ALERT       ComfortLevel = "ALERT"
	UNKNOWN     ComfortLevel = "UNKNOWN"
)

func (c ComfortLevel) String() string {
	switch c {
	case COMFORTABLE:
		return "COMFORTABLE"
	case CAUTION:
		return "CAUTION"
	case ALERT:
		return "ALERT"
	default:
		return "UNKNOWN"
	}
}

// AlertSet holds the independent threshold alerts for one pipeline run.
type AlertSet struct {
	Thermal   bool `json:"thermal"`
	Humidity  bool `json:"humidity"`
	Vibration bool `json:"vibration"`
}

func (a AlertSet) Any() bool {
	return a.Thermal || a.Humidity || a.Vibration
}

// Snapshot is the full set of indicators produced by one pipeline run.
type Snapshot struct {
	ID           string            `json:"id"`
	Timestamp    string            `json:"timestamp"`
	Temperature  Value             `json:"temperature"`
	Humidity     Value             `json:"humidity"`
	ThermalIndex Value             `json:"thermal_index"`
	Comfort      ComfortLevel      `json:"comfort"`
	TempSeries   Series            `json:"temperature_series"`
	HumSeries    Series            `json:"humidity_series"`
	Vibration    []VibrationSample `json:"vibration"`
	Motion       []MotionFlag      `json:"motion"`
	VibrationRMS Value             `json:"vibration_rms"`
	MotionNow    bool              `json:"motion_now"`
	Alerts       AlertSet          `json:"alerts"`
}
