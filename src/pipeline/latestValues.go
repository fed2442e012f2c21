package pipeline

import "weather-station-analyzer/src/types"

// LatestValues returns the most recent value for each requested field, or an
// undefined value where the field has no rows. Series are already sorted, so
// the last row is the latest.
func LatestValues(series map[string]types.Series, fields ...string) map[string]types.Value {
	latest := make(map[string]types.Value, len(fields))

	for _, field := range fields {
		s := series[field]
		if len(s) == 0 {
			latest[field] = types.NoValue()
			continue
		}
		latest[field] = types.SomeValue(s[len(s)-1].Value)
	}

	return latest
}
