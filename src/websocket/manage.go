package websocket

import (
	"context"
	"fmt"

	"weather-station-analyzer/src/dynamo"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

// DashboardConnection represents one connected dashboard client
type DashboardConnection struct {
	ConnectionID string `json:"connectionId"`
}

// Dashboard connection management handlers
func Manage(ctx context.Context, req events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch req.RequestContext.RouteKey {
	case "$connect":
		fmt.Println("New dashboard connection:", req.RequestContext.ConnectionID)
		err := storeConnection(req.RequestContext.ConnectionID)
		if err != nil {
			return events.APIGatewayProxyResponse{StatusCode: 500, Body: "Failed to store connection"}, err
		}
		return events.APIGatewayProxyResponse{StatusCode: 200}, nil

	case "$disconnect":
		fmt.Println("Dashboard disconnected:", req.RequestContext.ConnectionID)
		err := deleteConnection(req.RequestContext.ConnectionID)
		if err != nil {
			return events.APIGatewayProxyResponse{StatusCode: 500, Body: "Failed to delete connection"}, err
		}
		return events.APIGatewayProxyResponse{StatusCode: 200}, nil

	default:
		return events.APIGatewayProxyResponse{StatusCode: 400, Body: "Invalid request"}, nil
	}
}

// Store a new dashboard connection in DynamoDB
func storeConnection(connectionID string) error {
	item, _ := dynamodbattribute.MarshalMap(DashboardConnection{ConnectionID: connectionID})
	_, err := dynamo.GetDynamoDBClient().PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      item,
	})
	return err
}

// Remove a dashboard connection from DynamoDB
func deleteConnection(connectionID string) error {
	_, err := dynamo.GetDynamoDBClient().DeleteItem(&dynamodb.DeleteItemInput{
		TableName: aws.String(tableName),
		Key:       map[string]*dynamodb.AttributeValue{"connectionId": {S: aws.String(connectionID)}},
	})
	return err
}
