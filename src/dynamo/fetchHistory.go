package dynamo

import (
	"time"

	"weather-station-analyzer/src/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

// FetchHistory returns the snapshots stored over the last hour, oldest first.
func FetchHistory() ([]types.Snapshot, error) {
	oneHourAgo := time.Now().Add(-1 * time.Hour).Format(time.RFC3339)

	client := GetDynamoDBClient()

	input := &dynamodb.QueryInput{
		TableName:              aws.String(snapshotTable),
		KeyConditionExpression: aws.String("PK = :pk AND SK >= :oneHourAgo"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":pk":         {S: aws.String("station")},
			":oneHourAgo": {S: aws.String(oneHourAgo)},
		},
	}

	output, err := client.Query(input)
	if err != nil {
		return nil, err
	}

	var results []types.Snapshot
	err = dynamodbattribute.UnmarshalListOfMaps(output.Items, &results)
	if err != nil {
		return nil, err
	}

	return results, nil
}
