package websocket

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/apigatewaymanagementapi"
)

// PostMessage broadcasts a payload to every connected dashboard client.
// Failures on individual connections are logged and skipped; a stale
// connection must not block the rest of the broadcast.
func PostMessage(responseBytes []byte) error {
	connections, err := GetActiveConnections()

	if err != nil {
		fmt.Printf("Failed to retrieve connections: %v\n", err)
		return err
	}

	client := GetApiGWClient()

	for _, conn := range connections {
		_, err := client.PostToConnection(&apigatewaymanagementapi.PostToConnectionInput{ConnectionId: aws.String(conn.ConnectionID), Data: responseBytes})

		if err != nil {
			fmt.Printf("Error sending to %s: %v\n", conn.ConnectionID, err)
		}
	}

	return nil
}
