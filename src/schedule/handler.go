package schedule

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"weather-station-analyzer/src/config"
	"weather-station-analyzer/src/dynamo"
	"weather-station-analyzer/src/pipeline"
	"weather-station-analyzer/src/websocket"
)

// Handler runs one refresh cycle: execute the pipeline, store the snapshot,
// broadcast it to dashboard clients. Triggered by the scheduled event that
// sets the station's refresh cadence.
func Handler(ctx context.Context, cfg config.Config, q pipeline.Querier, logger *zap.Logger) error {
	snapshot, err := pipeline.Run(ctx, q, cfg)
	if err != nil {
		// Upstream query failure: skip this cycle's update, do not crash
		// the refresh loop.
		logger.Error("pipeline run failed", zap.Error(err))
		return err
	}

	LogAlerts(snapshot, logger)

	if err := dynamo.StoreSnapshot(snapshot); err != nil {
		logger.Error("failed to store snapshot", zap.Error(err))
	}

	responseBytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("failed to marshal snapshot", zap.Error(err))
		return err
	}

	if err := websocket.PostMessage(responseBytes); err != nil {
		logger.Error("failed to broadcast snapshot", zap.Error(err))
	}

	return nil
}
