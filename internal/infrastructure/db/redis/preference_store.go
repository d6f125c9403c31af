package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PreferenceStore keeps UI preferences as plain Redis strings without expiry.
type PreferenceStore struct {
	client *redis.Client
}

// NewPreferenceStore creates a PreferenceStore wrapping the given Redis client.
func NewPreferenceStore(client *redis.Client) *PreferenceStore {
	return &PreferenceStore{client: client}
}

// Get returns the stored value; ok is false when the key was never written.
func (s *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("preference get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("preference set %s: %w", key, err)
	}
	return nil
}
