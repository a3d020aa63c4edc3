package websockets

import "context"

// NoOpPublisher discards every message. Used in tests and in local sandbox
// runs without a websocket API endpoint.
type NoOpPublisher struct{}

var _ Publisher = (*NoOpPublisher)(nil)

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, message Message) error {
	return nil
}
