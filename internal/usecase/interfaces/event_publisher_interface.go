package interfaces

import "context"

// IEventPublisher publishes domain events (shipment created, status changed).
// The key selects the partition so events of one record stay ordered.
type IEventPublisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
}
