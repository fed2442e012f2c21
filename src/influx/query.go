package influx

import (
	"context"
	"fmt"
	"strings"

	"weather-station-analyzer/src/config"
	"weather-station-analyzer/src/pipeline"
	"weather-station-analyzer/src/types"
)

// Store queries the station's InfluxDB bucket. It implements
// pipeline.Querier.
type Store struct {
	cfg config.Config
}

func NewStore(cfg config.Config) *Store {
	return &Store{cfg: cfg}
}

// QueryWindow fetches mean-aggregated rows for one measurement. Empty
// results are not an error; the pipeline treats "no data" as a first-class
// state. Connectivity and query failures are returned as errors.
func (s *Store) QueryWindow(ctx context.Context, req pipeline.QueryRequest) ([]types.Reading, error) {
	queryAPI := getClient(s.cfg).QueryAPI(s.cfg.InfluxOrg)

	result, err := queryAPI.Query(ctx, buildFlux(s.cfg.InfluxBucket, req))
	if err != nil {
		return nil, fmt.Errorf("influx query for %s failed: %w", req.Measurement, err)
	}

	var rows []types.Reading
	for result.Next() {
		record := result.Record()

		value, ok := record.Value().(float64)
		if !ok {
			// Non-numeric rows are dropped during normalization anyway;
			// skip them here to keep the row shape uniform.
			continue
		}

		rows = append(rows, types.Reading{
			Time:  record.Time(),
			Field: record.Field(),
			Value: value,
		})
	}

	if result.Err() != nil {
		return nil, fmt.Errorf("influx result for %s failed: %w", req.Measurement, result.Err())
	}

	return rows, nil
}

func buildFlux(bucket string, req pipeline.QueryRequest) string {
	filters := make([]string, len(req.Fields))
	for i, f := range req.Fields {
		filters[i] = fmt.Sprintf("r._field == %q", f)
	}

	return fmt.Sprintf(`from(bucket: %q)
  |> range(start: -%s)
  |> filter(fn: (r) => r._measurement == %q)
  |> filter(fn: (r) => %s)
  |> aggregateWindow(every: %s, fn: mean, createEmpty: false)`,
		bucket, req.Lookback, req.Measurement, strings.Join(filters, " or "), req.Window)
}
