package pipeline

import (
	"math"
	"sort"

	"weather-station-analyzer/src/types"
)

// NormalizeRows reshapes raw query rows into one sorted series per field.
//
// Rows with a zero timestamp or a non-finite value are dropped silently;
// absent sensor data is expected and is not an error. An empty or fully
// malformed input yields an empty map.
func NormalizeRows(rows []types.Reading) map[string]types.Series {
	grouped := make(map[string]types.Series)

	for _, row := range rows {
		if row.Time.IsZero() || row.Field == "" {
			continue
		}
		if math.IsNaN(row.Value) || math.IsInf(row.Value, 0) {
			continue
		}
		grouped[row.Field] = append(grouped[row.Field], row)
	}

	for field, series := range grouped {
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].Time.Before(series[j].Time)
		})
		grouped[field] = dedupe(series)
	}

	return grouped
}

// dedupe enforces the aggregator contract of strictly ascending timestamps.
// The first occurrence of a timestamp wins; later duplicates are dropped.
func dedupe(series types.Series) types.Series {
	out := series[:0]
	for i, r := range series {
		if i > 0 && !r.Time.After(out[len(out)-1].Time) {
			continue
		}
		out = append(out, r)
	}
	return out
}
