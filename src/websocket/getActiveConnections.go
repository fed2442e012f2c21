package websocket

import (
	"weather-station-analyzer/src/dynamo"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

var tableName = "DashboardConnections"

// Fetch all connected dashboard clients from DynamoDB
func GetActiveConnections() ([]DashboardConnection, error) {
	client := dynamo.GetDynamoDBClient()

	input := &dynamodb.ScanInput{TableName: aws.String(tableName)}
	result, err := client.Scan(input)

	if err != nil {
		return nil, err
	}

	var connections []DashboardConnection
	err = dynamodbattribute.UnmarshalListOfMaps(result.Items, &connections)
	return connections, err
}
