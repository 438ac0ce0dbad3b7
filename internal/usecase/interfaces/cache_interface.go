package interfaces

import (
	"context"
	"time"
)

// ICache is a string key/value cache. Get returns "" on a miss.
type ICache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
