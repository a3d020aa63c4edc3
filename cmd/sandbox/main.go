package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chambagt/chamba-payments/pkg/sandbox"
	"github.com/chambagt/chamba-payments/pkg/scheduler"
	dydbstore "github.com/chambagt/chamba-payments/pkg/storage/dynamodb"
	"github.com/chambagt/chamba-payments/pkg/websockets"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	projectsTable := os.Getenv("DYNAMODB_PROJECTS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	if projectsTable == "" || transactionsTable == "" || connectionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// SQS Client and completion scheduler
	sqsClient := sqs.NewFromConfig(cfg)
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	completionScheduler := scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	// Create our storage implementation
	store := dydbstore.New(dbClient, projectsTable, transactionsTable, connectionsTable)

	// Payment update publisher; falls back to a no-op when no websocket API is
	// configured (plain local runs).
	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" {
		publisher, err = websockets.NewPublisher(store, store, endpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}

	token := os.Getenv("SANDBOX_BEARER_TOKEN")
	if token == "" {
		log.Fatal("SANDBOX_BEARER_TOKEN environment variable not set")
	}

	handler := sandbox.NewPaymentsHandler(store, completionScheduler, publisher)
	handler.Token = token
	handler.Freelancer = os.Getenv("SANDBOX_FREELANCER")

	if v := os.Getenv("COMPLETION_DELAY_SECONDS"); v != "" {
		delay, err := time.ParseDuration(v + "s")
		if err != nil {
			log.Fatalf("invalid COMPLETION_DELAY_SECONDS: %v", err)
		}
		handler.CompletionDelay = delay
	}

	wsHandler := sandbox.NewWebSocketHandler(store)
	router := sandbox.NewRouter(handler, wsHandler, slog.Default())

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting sandbox payments server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
