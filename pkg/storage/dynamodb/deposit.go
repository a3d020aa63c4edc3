package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chambagt/chamba-payments/pkg/models"
	"github.com/chambagt/chamba-payments/pkg/storage"
	"github.com/google/uuid"
)

// Deposit atomically adds funds to a project's escrow and records the deposit
// transaction. The project record carries an optimistic version; a concurrent
// update between the read and the write cancels the whole transaction.
func (s *Store) Deposit(ctx context.Context, req *models.DepositRequest) (*models.ProjectPayment, *models.Transaction, error) {
	// 1. Get the current state of the project payment.
	project, err := s.GetProjectPayment(ctx, req.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	if project.PaymentStatus == models.StatusReleased {
		return nil, nil, storage.ErrAlreadyReleased
	}
	if project.DepositedAmount > 0 && req.Amount > project.RemainingAmount() {
		return nil, nil, storage.ErrExceedsRemaining
	}

	// 2. Derive the post-deposit state.
	now := time.Now()
	newDeposited := project.DepositedAmount + req.Amount
	newStatus := models.StatusPartialDeposit
	newAction := models.ActionHintDepositRemaining
	if newDeposited >= project.Amount {
		newStatus = models.StatusEscrowed
		newAction = models.ActionHintWait
	}

	tx := &models.Transaction{
		ID:              uuid.New().String(),
		ProjectID:       project.ProjectID,
		Title:           fmt.Sprintf("Depósito a custodia - %s", project.ProjectTitle),
		Type:            models.TransactionDeposit,
		Amount:          req.Amount,
		Status:          "completed",
		Freelancer:      project.Freelancer,
		TransactionDate: now,
	}

	slog.Log(ctx, slog.LevelDebug, "creating deposit", "project_id", project.ProjectID, "amount", req.Amount)

	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}
	depositedAV, err := attributevalue.Marshal(newDeposited)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal deposited amount: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	// 3. Construct the TransactWriteItems input.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Update the project payment record.
				Update: &types.Update{
					TableName: aws.String(s.ProjectsTableName),
					Key: map[string]types.AttributeValue{
						"project_id": &types.AttributeValueMemberS{Value: project.ProjectID},
					},
					UpdateExpression:    aws.String("SET deposited_amount = :deposited, payment_status = :status, action_required = :action, payment_method = :method, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("version = :version AND payment_status <> :released"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":deposited": depositedAV,
						":status":    &types.AttributeValueMemberS{Value: string(newStatus)},
						":action":    &types.AttributeValueMemberS{Value: string(newAction)},
						":method":    &types.AttributeValueMemberS{Value: string(req.PaymentMethod)},
						":version":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", project.Version)},
						":inc":       &types.AttributeValueMemberN{Value: "1"},
						":now":       nowAV,
						":released":  &types.AttributeValueMemberS{Value: string(models.StatusReleased)},
					},
				},
			},
			{
				// Operation 2: Create the deposit transaction record.
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	// 4. Execute the transaction.
	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if len(tce.CancellationReasons) > 0 && tce.CancellationReasons[0].Code != nil && *tce.CancellationReasons[0].Code == "ConditionalCheckFailed" {
				return nil, nil, storage.ErrConcurrentUpdate
			}
		}
		return nil, nil, fmt.Errorf("failed to execute deposit: %w", err)
	}

	project.DepositedAmount = newDeposited
	project.PaymentStatus = newStatus
	project.ActionRequired = newAction
	project.PaymentMethod = req.PaymentMethod
	project.Version++
	project.UpdatedAt = now
	return project, tx, nil
}
