package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chambagt/chamba-payments/pkg/models"
	"github.com/chambagt/chamba-payments/pkg/storage"
	"github.com/chambagt/chamba-payments/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func readyProject() *models.ProjectPayment {
	return &models.ProjectPayment{
		ProjectID:       "proj-3",
		ProjectTitle:    "App móvil",
		Amount:          500,
		DepositedAmount: 500,
		PaymentStatus:   models.StatusReadyToRelease,
		Freelancer:      "maria",
		Version:         3,
	}
}

func TestRelease(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ProjectsTableName: "projects", TransactionsTableName: "transactions"}

		projectAV, _ := attributevalue.MarshalMap(readyProject())
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: projectAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		project, tx, err := store.Release(context.Background(), "proj-3")

		assert.NoError(t, err)
		assert.Equal(t, models.StatusReleased, project.PaymentStatus)
		assert.Equal(t, 500.0, project.ReleasedAmount)
		assert.Equal(t, models.TransactionRelease, tx.Type)
		assert.Equal(t, 500.0, tx.Amount)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Ready To Release", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ProjectsTableName: "projects"}

		escrowed := readyProject()
		escrowed.PaymentStatus = models.StatusEscrowed
		projectAV, _ := attributevalue.MarshalMap(escrowed)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: projectAV}, nil)

		_, _, err := store.Release(context.Background(), "proj-3")
		assert.ErrorIs(t, err, storage.ErrNotReadyToRelease)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Condition Lost To Concurrent Release", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ProjectsTableName: "projects", TransactionsTableName: "transactions"}

		projectAV, _ := attributevalue.MarshalMap(readyProject())
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: projectAV}, nil)

		cancellationReasons := []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{CancellationReasons: cancellationReasons})

		_, _, err := store.Release(context.Background(), "proj-3")
		assert.ErrorIs(t, err, storage.ErrNotReadyToRelease)
	})

	t.Run("Project Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ProjectsTableName: "projects"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		_, _, err := store.Release(context.Background(), "missing")
		assert.ErrorIs(t, err, storage.ErrProjectNotFound)
	})
}
