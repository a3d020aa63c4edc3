package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chambagt/chamba-payments/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client the store uses. Narrowing
// it to an interface keeps the store mockable.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB. Project payment
// records live in the projects table keyed by project_id; deposit/release
// events live in the transactions table keyed by id.
type Store struct {
	Client                DynamoDBAPI
	ProjectsTableName     string
	TransactionsTableName string
	ConnectionsTableName  string
}

// New creates a new Store.
func New(client DynamoDBAPI, projectsTable, transactionsTable, connectionsTable string) *Store {
	return &Store{
		Client:                client,
		ProjectsTableName:     projectsTable,
		TransactionsTableName: transactionsTable,
		ConnectionsTableName:  connectionsTable,
	}
}

// Make sure we conform to the interfaces
var _ storage.Storage = (*Store)(nil)
var _ storage.WebSocketManager = (*Store)(nil)
