// README: Session store backed by Redis, JSON values with a sliding TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

const defaultTTL = 24 * time.Hour

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{redis: client, ttl: ttl}
}

func key(conversationID uuid.UUID) string {
	return "session:" + conversationID.String()
}

func (s *Store) Get(ctx context.Context, conversationID uuid.UUID) (*State, error) {
	raw, err := s.redis.Get(ctx, key(conversationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &st, nil
}

// Put writes the state and refreshes the TTL, so active conversations
// never expire mid-chat.
func (s *Store) Put(ctx context.Context, conversationID uuid.UUID, st *State) error {
	st.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.redis.Set(ctx, key(conversationID), raw, s.ttl).Err()
}

func (s *Store) Delete(ctx context.Context, conversationID uuid.UUID) error {
	return s.redis.Del(ctx, key(conversationID)).Err()
}
