// Package session persists console sessions in Redis. Each session is a
// token/profile key pair sharing one TTL, mirroring the two browser-storage
// keys the session always consisted of: neither half exists without the
// other.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mrdsaas/admin-console/internal/api/metrics"
	"github.com/mrdsaas/admin-console/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Store is a Redis-backed ports.SessionStore.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// Put writes both session keys in one transaction and returns the new
// session id.
func (s *Store) Put(ctx context.Context, token string, profile domain.Profile) (string, error) {
	id := uuid.NewString()

	raw, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, tokenKey(id), token, s.ttl)
		pipe.Set(ctx, profileKey(id), raw, s.ttl)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	metrics.SessionsActive.Inc()
	return id, nil
}

// Get resolves a session id. A missing token or profile key means the
// session does not exist; the pair is never half-present by construction.
func (s *Store) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}

	values, err := s.client.MGet(ctx, tokenKey(id), profileKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	token, ok := values[0].(string)
	if !ok || token == "" {
		return nil, domain.ErrSessionNotFound
	}
	rawProfile, ok := values[1].(string)
	if !ok || rawProfile == "" {
		return nil, domain.ErrSessionNotFound
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(rawProfile), &profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}

	return &domain.Session{ID: id, Token: token, Profile: profile}, nil
}

// Delete removes both session keys together.
func (s *Store) Delete(ctx context.Context, id string) error {
	deleted, err := s.client.Del(ctx, tokenKey(id), profileKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted > 0 {
		metrics.SessionsActive.Dec()
	}
	return nil
}

func tokenKey(id string) string   { return "session:" + id + ":token" }
func profileKey(id string) string { return "session:" + id + ":profile" }
