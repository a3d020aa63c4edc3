package websockets

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"github.com/stretchr/testify/assert"
)

type fakeConnectionStore struct {
	connections []string
	removed     []string
}

func (f *fakeConnectionStore) GetAllConnections(ctx context.Context) ([]string, error) {
	return f.connections, nil
}

func (f *fakeConnectionStore) AddConnection(ctx context.Context, connectionID string) error {
	return nil
}

func (f *fakeConnectionStore) RemoveConnection(ctx context.Context, connectionID string) error {
	f.removed = append(f.removed, connectionID)
	return nil
}

type fakeManagementAPI struct {
	posted map[string][]byte
	gone   map[string]bool
}

func (f *fakeManagementAPI) PostToConnection(ctx context.Context, params *apigatewaymanagementapi.PostToConnectionInput, optFns ...func(*apigatewaymanagementapi.Options)) (*apigatewaymanagementapi.PostToConnectionOutput, error) {
	if f.gone[*params.ConnectionId] {
		return nil, &apigwtypes.GoneException{}
	}
	if f.posted == nil {
		f.posted = make(map[string][]byte)
	}
	f.posted[*params.ConnectionId] = params.Data
	return &apigatewaymanagementapi.PostToConnectionOutput{}, nil
}

func TestPublish(t *testing.T) {
	message := Message{
		Type: MessageTypePaymentUpdate,
		Payload: PaymentUpdatePayload{
			ProjectID:       "proj-1",
			PaymentStatus:   "escrowed",
			DepositedAmount: 1000,
			RemainingAmount: 0,
		},
	}

	t.Run("Delivers To All Connections", func(t *testing.T) {
		store := &fakeConnectionStore{connections: []string{"conn-1", "conn-2"}}
		api := &fakeManagementAPI{}
		publisher := &DefaultPublisher{store: store, connManager: store, apiGwClient: api}

		err := publisher.Publish(context.Background(), message)

		assert.NoError(t, err)
		assert.Len(t, api.posted, 2)

		var decoded Message
		assert.NoError(t, json.Unmarshal(api.posted["conn-1"], &decoded))
		assert.Equal(t, MessageTypePaymentUpdate, decoded.Type)
	})

	t.Run("Removes Stale Connections", func(t *testing.T) {
		store := &fakeConnectionStore{connections: []string{"conn-1", "conn-stale"}}
		api := &fakeManagementAPI{gone: map[string]bool{"conn-stale": true}}
		publisher := &DefaultPublisher{store: store, connManager: store, apiGwClient: api}

		err := publisher.Publish(context.Background(), message)

		assert.NoError(t, err)
		assert.Len(t, api.posted, 1)
		assert.Equal(t, []string{"conn-stale"}, store.removed)
	})
}
