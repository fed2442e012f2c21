package api

import (
	"context"
	"encoding/json"

	"weather-station-analyzer/src/config"
	"weather-station-analyzer/src/dynamo"
	"weather-station-analyzer/src/pipeline"

	"github.com/aws/aws-lambda-go/events"
)

func HandleHTTP(ctx context.Context, req events.APIGatewayV2HTTPRequest, cfg config.Config, q pipeline.Querier) (events.APIGatewayV2HTTPResponse, error) {
	corsHeaders := map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}

	switch req.RouteKey {
	case "GET /dashboard":
		snapshot, err := pipeline.Run(ctx, q, cfg)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{
				StatusCode: 502,
				Headers:    corsHeaders,
				Body:       err.Error(),
			}, nil
		}

		body, _ := json.Marshal(snapshot)
		return events.APIGatewayV2HTTPResponse{
			StatusCode: 200,
			Headers:    corsHeaders,
			Body:       string(body),
		}, nil

	case "GET /history":
		history, err := dynamo.FetchHistory()
		if err != nil {
			return events.APIGatewayV2HTTPResponse{
				StatusCode: 500,
				Headers:    corsHeaders,
				Body:       err.Error(),
			}, nil
		}

		body, _ := json.Marshal(history)
		return events.APIGatewayV2HTTPResponse{
			StatusCode: 200,
			Headers:    corsHeaders,
			Body:       string(body),
		}, nil

	default:
		return events.APIGatewayV2HTTPResponse{
			StatusCode: 404,
			Headers:    corsHeaders,
			Body:       "Not Found",
		}, nil
	}
}
