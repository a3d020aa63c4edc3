package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chambagt/chamba-payments/pkg/models"
	"github.com/chambagt/chamba-payments/pkg/storage"
)

const staleEscrowGSI = "payment_status-updated_at-index"

// MarkProjectComplete atomically advances a fully escrowed project to
// ready_to_release. The conditional update doubles as an idempotency lock:
// if the completion event is delivered twice, the second attempt fails the
// condition and reports ErrProjectNotCompletable.
func (s *Store) MarkProjectComplete(ctx context.Context, projectID string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ProjectsTableName),
		Key: map[string]types.AttributeValue{
			"project_id": &types.AttributeValueMemberS{Value: projectID},
		},
		UpdateExpression:    aws.String("SET payment_status = :ready, action_required = :release, project_status = :completed, days_since_completion = :zero, version = version + :inc, updated_at = :now"),
		ConditionExpression: aws.String("payment_status = :escrowed"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ready":     &types.AttributeValueMemberS{Value: string(models.StatusReadyToRelease)},
			":release":   &types.AttributeValueMemberS{Value: string(models.ActionHintRelease)},
			":completed": &types.AttributeValueMemberS{Value: "completed"},
			":zero":      &types.AttributeValueMemberN{Value: "0"},
			":escrowed":  &types.AttributeValueMemberS{Value: string(models.StatusEscrowed)},
			":inc":       &types.AttributeValueMemberN{Value: "1"},
			":now":       nowAV,
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrProjectNotCompletable
		}
		return fmt.Errorf("failed to mark project complete: %w", err)
	}

	return nil
}

// GetStaleEscrowedProjects retrieves test-payment projects stuck in escrowed
// for longer than maxAge, meaning their scheduled completion event was lost.
func (s *Store) GetStaleEscrowedProjects(ctx context.Context, maxAge time.Duration) ([]models.ProjectPayment, error) {
	cutoffTime := time.Now().Add(-maxAge)
	cutoffTimeStr, err := cutoffTime.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ProjectsTableName),
		IndexName:              aws.String(staleEscrowGSI),
		KeyConditionExpression: aws.String("payment_status = :status AND updated_at < :cutoff"),
		FilterExpression:       aws.String("payment_method = :method"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.StatusEscrowed)},
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoffTimeStr)},
			":method": &types.AttributeValueMemberS{Value: string(models.MethodTestPayment)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for stale escrowed projects: %w", err)
	}

	var projects []models.ProjectPayment
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &projects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stale escrowed projects: %w", err)
	}

	return projects, nil
}
