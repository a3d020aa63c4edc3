package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chambagt/chamba-payments/pkg/models"
	"github.com/chambagt/chamba-payments/pkg/storage"
)

const projectTransactionsGSI = "project_id-transaction_date-index"

// GetProjectPayment retrieves a project's payment record from DynamoDB.
func (s *Store) GetProjectPayment(ctx context.Context, projectID string) (*models.ProjectPayment, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"project_id": projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.ProjectsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get project payment from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrProjectNotFound
	}

	var project models.ProjectPayment
	if err := attributevalue.UnmarshalMap(result.Item, &project); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project payment: %w", err)
	}

	return &project, nil
}

// ListTransactionsByProject retrieves a project's deposit/release events,
// newest first.
func (s *Store) ListTransactionsByProject(ctx context.Context, projectID string) ([]models.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(projectTransactionsGSI),
		KeyConditionExpression: aws.String("project_id = :project_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":project_id": &types.AttributeValueMemberS{Value: projectID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query project transactions: %w", err)
	}

	var transactions []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project transactions: %w", err)
	}

	return transactions, nil
}

// ListPendingPayments retrieves every project whose payment has not been
// released yet.
func (s *Store) ListPendingPayments(ctx context.Context) ([]models.ProjectPayment, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.ProjectsTableName),
		FilterExpression: aws.String("payment_status <> :released"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":released": &types.AttributeValueMemberS{Value: string(models.StatusReleased)},
		},
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects table: %w", err)
	}

	var projects []models.ProjectPayment
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &projects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project payments: %w", err)
	}

	return projects, nil
}
