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

const freelancerHistoryGSI = "freelancer-transaction_date-index"

// ListFreelancerHistory retrieves a freelancer's release transactions, newest
// first, optionally filtered by status. DynamoDB has no native offset, so the
// offset is applied after the query.
func (s *Store) ListFreelancerHistory(ctx context.Context, filter storage.HistoryFilter) ([]models.Transaction, error) {
	filterExpr := "#type = :release"
	exprNames := map[string]string{"#type": "type"}
	exprValues := map[string]types.AttributeValue{
		":freelancer": &types.AttributeValueMemberS{Value: filter.Freelancer},
		":release":    &types.AttributeValueMemberS{Value: string(models.TransactionRelease)},
	}
	if filter.Status != "" {
		filterExpr += " AND #status = :status"
		exprNames["#status"] = "status"
		exprValues[":status"] = &types.AttributeValueMemberS{Value: filter.Status}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.TransactionsTableName),
		IndexName:                 aws.String(freelancerHistoryGSI),
		KeyConditionExpression:    aws.String("freelancer = :freelancer"),
		FilterExpression:          aws.String(filterExpr),
		ExpressionAttributeNames:  exprNames,
		ExpressionAttributeValues: exprValues,
		ScanIndexForward:          aws.Bool(false),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query freelancer history: %w", err)
	}

	var transactions []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal freelancer history: %w", err)
	}

	if filter.Offset > 0 {
		if int(filter.Offset) >= len(transactions) {
			return []models.Transaction{}, nil
		}
		transactions = transactions[filter.Offset:]
	}
	if filter.Limit > 0 && int(filter.Limit) < len(transactions) {
		transactions = transactions[:filter.Limit]
	}

	return transactions, nil
}
