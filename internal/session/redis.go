package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smartmarket/storefront/internal/domain"
)

// RedisRepository stores the session record as a JSON document under
// SessionKey, so a session survives process restarts.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(redisURL string) (*RedisRepository, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("client.Ping: %w", err)
	}

	return &RedisRepository{client: client}, nil
}

func (r *RedisRepository) Save(ctx context.Context, user domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.client.Set(ctx, SessionKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

func (r *RedisRepository) Load(ctx context.Context) (domain.User, bool, error) {
	payload, err := r.client.Get(ctx, SessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, fmt.Errorf("client.Get: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return domain.User{}, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return user, true, nil
}

func (r *RedisRepository) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, SessionKey).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}

// Close releases the underlying client connection.
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
