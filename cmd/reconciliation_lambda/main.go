package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chambagt/chamba-payments/pkg/models"
	"github.com/chambagt/chamba-payments/pkg/scheduler"
	"github.com/chambagt/chamba-payments/pkg/storage"
	dydbstore "github.com/chambagt/chamba-payments/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.CompletionStore
var completionScheduler scheduler.CompletionScheduler

const staleEscrowThreshold = 20 * time.Minute

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	sqsClient := sqs.NewFromConfig(cfg)

	// Initialize dependencies.
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	completionScheduler = scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	projectsTable := os.Getenv("DYNAMODB_PROJECTS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")

	store = dydbstore.New(dbClient, projectsTable, transactionsTable, "")
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation process for stale escrowed projects...")

	stale, err := store.GetStaleEscrowedProjects(ctx, staleEscrowThreshold)
	if err != nil {
		log.Printf("ERROR: failed to get stale escrowed projects: %v", err)
		return err
	}

	if len(stale) == 0 {
		log.Println("No stale escrowed projects found.")
		return nil
	}

	log.Printf("Found %d stale escrowed projects. Re-enqueuing them...", len(stale))

	for _, project := range stale {
		event := &models.CompletionEvent{ProjectID: project.ProjectID, RequestedAt: time.Now()}
		if err := completionScheduler.ScheduleCompletion(ctx, event, 0); err != nil {
			log.Printf("ERROR: failed to re-enqueue project %s: %v", project.ProjectID, err)
			// Continue to the next project, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Successfully re-enqueued project %s", project.ProjectID)
	}

	log.Println("Reconciliation process finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
