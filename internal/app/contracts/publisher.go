package contracts

import "context"

// EventPublisher emits domain events. Publishing is best effort; callers log
// failures and never roll back on them.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
	Close() error
}
