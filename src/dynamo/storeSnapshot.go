package dynamo

import (
	"fmt"
	"time"

	"weather-station-analyzer/src/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

var snapshotTable = "WeatherSnapshots"

// StoreSnapshot writes one pipeline snapshot to the history table. Items
// expire after 24 hours; the station only keeps one day of history.
func StoreSnapshot(snapshot types.Snapshot) error {
	client := GetDynamoDBClient()

	now := time.Now()

	item, err := dynamodbattribute.MarshalMap(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	// Single-station table: static partition key, timestamp sort key.
	item["PK"] = &dynamodb.AttributeValue{S: aws.String("station")}
	item["SK"] = &dynamodb.AttributeValue{S: aws.String(now.Format(time.RFC3339))}
	item["ttl"] = &dynamodb.AttributeValue{N: aws.String(fmt.Sprintf("%d", now.Add(24*time.Hour).Unix()))}

	_, err = client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(snapshotTable),
		Item:      item,
	})

	if err != nil {
		return fmt.Errorf("failed to put snapshot: %w", err)
	}

	return nil
}
