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
	"github.com/google/uuid"
)

// Release atomically transfers the escrowed funds to the freelancer: the
// project record flips from ready_to_release to released and a release
// transaction is recorded. The status check is part of the write condition,
// so a stale read cannot release twice.
func (s *Store) Release(ctx context.Context, projectID string) (*models.ProjectPayment, *models.Transaction, error) {
	// 1. Get the current state of the project payment.
	project, err := s.GetProjectPayment(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	if project.PaymentStatus != models.StatusReadyToRelease {
		return nil, nil, storage.ErrNotReadyToRelease
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:              uuid.New().String(),
		ProjectID:       project.ProjectID,
		Title:           fmt.Sprintf("Pago liberado - %s", project.ProjectTitle),
		Type:            models.TransactionRelease,
		Amount:          project.DepositedAmount,
		Status:          "completed",
		Freelancer:      project.Freelancer,
		TransactionDate: now,
	}

	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}
	releasedAV, err := attributevalue.Marshal(project.DepositedAmount)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal released amount: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	// 2. Construct the TransactWriteItems input.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Flip the project payment to released.
				Update: &types.Update{
					TableName: aws.String(s.ProjectsTableName),
					Key: map[string]types.AttributeValue{
						"project_id": &types.AttributeValueMemberS{Value: project.ProjectID},
					},
					UpdateExpression:    aws.String("SET payment_status = :released, action_required = :none, released_amount = :released_amount, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("payment_status = :ready"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":released":        &types.AttributeValueMemberS{Value: string(models.StatusReleased)},
						":none":            &types.AttributeValueMemberS{Value: string(models.ActionHintNone)},
						":released_amount": releasedAV,
						":ready":           &types.AttributeValueMemberS{Value: string(models.StatusReadyToRelease)},
						":inc":             &types.AttributeValueMemberN{Value: "1"},
						":now":             nowAV,
					},
				},
			},
			{
				// Operation 2: Create the release transaction record.
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	// 3. Execute the transaction.
	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if len(tce.CancellationReasons) > 0 && tce.CancellationReasons[0].Code != nil && *tce.CancellationReasons[0].Code == "ConditionalCheckFailed" {
				return nil, nil, storage.ErrNotReadyToRelease
			}
		}
		return nil, nil, fmt.Errorf("failed to execute release: %w", err)
	}

	project.PaymentStatus = models.StatusReleased
	project.ActionRequired = models.ActionHintNone
	project.ReleasedAmount = project.DepositedAmount
	project.Version++
	project.UpdatedAt = now
	return project, tx, nil
}
