package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
)

// SessionRepository persists identity snapshots under user:<session_id>.
// The snapshot is written on login/signup, deleted on logout, and read on
// every gated request. A corrupt snapshot is treated as an absent session
// (logged at warn), never as a fatal error.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSessionRepository(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *SessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionRepository{client: client, ttl: ttl, logger: logger}
}

func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, r.key(session.ID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Find(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		r.logger.Warn().Err(err).Str("session_id", id).Msg("corrupt session snapshot, treating as logged out")
		_ = r.client.Del(ctx, r.key(id)).Err()
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) key(id string) string {
	return fmt.Sprintf("user:%s", id)
}
