package queue

import "context"

// Queue sends fire-and-forget JSON messages to a named queue. Delivery is
// at-least-once; no response is awaited.
type Queue interface {
	Send(ctx context.Context, queueName string, payload any) error
}
