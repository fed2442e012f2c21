package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"weather-station-analyzer/src/api"
	"weather-station-analyzer/src/config"
	"weather-station-analyzer/src/influx"
	"weather-station-analyzer/src/schedule"
	"weather-station-analyzer/src/websocket"
)

var (
	logger *zap.Logger
	cfg    config.Config
	store  *influx.Store
)

func detectEventType(event json.RawMessage) (string, error) {
	// Try parsing as a scheduled EventBridge event
	var scheduledEvent events.CloudWatchEvent
	if err := json.Unmarshal(event, &scheduledEvent); err == nil {
		if scheduledEvent.Source == "aws.events" {
			return "scheduled", nil
		}
	}

	// Try parsing as an API Gateway WebSocket event
	var websocketEvent events.APIGatewayWebsocketProxyRequest
	if err := json.Unmarshal(event, &websocketEvent); err == nil {
		if websocketEvent.RequestContext.EventType != "" {
			return "websocket", nil
		}
	}

	// Try parsing as an API Gateway HTTP event
	var httpEvent events.APIGatewayV2HTTPRequest
	if err := json.Unmarshal(event, &httpEvent); err == nil {
		if httpEvent.RouteKey != "" {
			return "http", nil
		}
	}

	return "", fmt.Errorf("unknown event type")
}

// Determine which handler to run based on event type
func main() {
	logger, _ = zap.NewProduction()
	defer logger.Sync()

	var err error
	cfg, err = config.Load()

	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	store = influx.NewStore(cfg)

	lambda.Start(func(ctx context.Context, event json.RawMessage) (interface{}, error) {
		eventType, err := detectEventType(event)

		if err != nil {
			logger.Error("error detecting event type", zap.Error(err))
			return nil, err
		}

		switch eventType {
		case "scheduled":
			return nil, schedule.Handler(ctx, cfg, store, logger)

		case "websocket":
			var websocketEvent events.APIGatewayWebsocketProxyRequest
			if err := json.Unmarshal(event, &websocketEvent); err != nil {
				logger.Error("error unmarshalling websocket event", zap.Error(err))
				return nil, err
			}
			return websocket.Manage(ctx, websocketEvent)

		case "http":
			var httpEvent events.APIGatewayV2HTTPRequest
			if err := json.Unmarshal(event, &httpEvent); err != nil {
				logger.Error("error unmarshalling http event", zap.Error(err))
				return nil, err
			}
			return api.HandleHTTP(ctx, httpEvent, cfg, store)

		default:
			return nil, fmt.Errorf("unknown event type: %s", eventType)
		}
	})
}
