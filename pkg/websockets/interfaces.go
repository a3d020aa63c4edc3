// Package websockets pushes payment state changes to connected dashboard
// clients through API Gateway websocket connections.
package websockets

import (
	"context"
)

// ConnectionManager defines the interface for managing WebSocket connections.
type ConnectionManager interface {
	AddConnection(ctx context.Context, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
}

// Publisher defines the interface for publishing payment updates to
// WebSocket clients.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}
