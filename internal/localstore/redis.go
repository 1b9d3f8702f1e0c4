package localstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Pub/sub channel carrying keys changed by any context
const changeChannel = "ums:store:changed"

// RedisStore backs the shared store with Redis. Every console context
// pointed at the same Redis sees the same keys; Set publishes the key
// on a pub/sub channel so other contexts learn about the change
// without waiting for their next poll.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(host string, port int, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connect: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return err
	}
	// Notification is best-effort; pollers pick the change up anyway
	if err := s.client.Publish(ctx, changeChannel, key).Err(); err != nil {
		logrus.Warnf("[Store] publish change for %q failed: %v", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return err
	}
	if err := s.client.Publish(ctx, changeChannel, key).Err(); err != nil {
		logrus.Warnf("[Store] publish delete for %q failed: %v", key, err)
	}
	return nil
}

func (s *RedisStore) Notifications(ctx context.Context) (<-chan string, error) {
	sub := s.client.Subscribe(ctx, changeChannel)
	// Wait for the subscription to be active before returning
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, err
	}

	out := make(chan string, 16)
	go func() {
		defer close(out)
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				default:
					// Slow consumer; the poll loop reconciles anyway
				}
			}
		}
	}()
	return out, nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
