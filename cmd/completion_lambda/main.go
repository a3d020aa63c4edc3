package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chambagt/chamba-payments/pkg/models"
	"github.com/chambagt/chamba-payments/pkg/storage"
	dydbstore "github.com/chambagt/chamba-payments/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.CompletionStore

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	projectsTable := os.Getenv("DYNAMODB_PROJECTS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")

	if projectsTable == "" || transactionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store = dydbstore.New(dbClient, projectsTable, transactionsTable, "")
}

// HandleRequest processes delayed SQS completion events and advances the
// projects to ready_to_release.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var event models.CompletionEvent
		if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
			log.Printf("ERROR: failed to unmarshal completion event from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		log.Printf("Attempting to complete project %s", event.ProjectID)

		if err := store.MarkProjectComplete(ctx, event.ProjectID); err != nil {
			if errors.Is(err, storage.ErrProjectNotCompletable) {
				// The project already moved on; a duplicate delivery is not an error.
				log.Printf("Project %s is no longer escrowed, skipping", event.ProjectID)
				continue
			}
			log.Printf("ERROR: failed to complete project %s: %v", event.ProjectID, err)
			// In a production system, persistent failures would be sent to a DLQ.
			return err
		}

		log.Printf("Successfully completed project %s", event.ProjectID)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
