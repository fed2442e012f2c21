package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"weather-station-analyzer/src/config"
	"weather-station-analyzer/src/influx"
	"weather-station-analyzer/src/pipeline"
	"weather-station-analyzer/src/schedule"
)

// Local runner: executes the pipeline on a fixed cadence and prints each
// snapshot, standing in for the scheduled Lambda trigger during development.
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment")
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	store := influx.NewStore(cfg)

	ticker := time.NewTicker(time.Duration(cfg.RefreshSeconds) * time.Second)
	defer ticker.Stop()

	for ; ; <-ticker.C {
		snapshot, err := pipeline.Run(context.Background(), store, cfg)
		if err != nil {
			logger.Error("pipeline run failed", zap.Error(err))
			continue
		}

		schedule.LogAlerts(snapshot, logger)

		body, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			logger.Error("failed to marshal snapshot", zap.Error(err))
			continue
		}

		fmt.Println(string(body))
	}
}
