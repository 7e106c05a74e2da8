package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appOrder "github.com/farmbasket/backend/internal/application/order"
	"github.com/farmbasket/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// RedisDispatcher pushes notifications onto a Redis list. A separate notifier
// worker consumes the list and does the actual email/SMS delivery, so order
// processing never waits on a provider.
type RedisDispatcher struct {
	client   *redis.Client
	queueKey string
}

// NewRedisDispatcher creates a dispatcher using an existing Redis client
func NewRedisDispatcher(client *redis.Client, queueKey string) *RedisDispatcher {
	return &RedisDispatcher{
		client:   client,
		queueKey: queueKey,
	}
}

// NewRedisDispatcherFromConfig connects to Redis and creates a dispatcher
func NewRedisDispatcherFromConfig(redisCfg config.RedisConfig, queueKey string) (*RedisDispatcher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr(),
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisDispatcher(client, queueKey), nil
}

// Dispatch serializes the notification and pushes it onto the queue
func (d *RedisDispatcher) Dispatch(ctx context.Context, n appOrder.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to serialize notification: %w", err)
	}

	if err := d.client.LPush(ctx, d.queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}

	return nil
}

// Close closes the underlying Redis client
func (d *RedisDispatcher) Close() error {
	return d.client.Close()
}

// Ensure RedisDispatcher implements Dispatcher
var _ appOrder.Dispatcher = (*RedisDispatcher)(nil)
