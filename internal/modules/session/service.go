// README: Session service: load-or-initialize semantics over the Redis store.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	store *Store
	log   *zap.Logger
}

func NewService(store *Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// Load returns the cached state for a conversation, or a fresh zero state
// when none exists or the cache is unreachable. A cold cache only costs
// the drift counters, so cache errors are logged and absorbed.
func (s *Service) Load(ctx context.Context, conversationID uuid.UUID) *State {
	st, err := s.store.Get(ctx, conversationID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("session cache read failed", zap.Error(err))
		}
		return &State{}
	}
	return st
}

// Save persists the state; failures are logged, not surfaced, for the same
// reason Load absorbs them.
func (s *Service) Save(ctx context.Context, conversationID uuid.UUID, st *State) {
	if err := s.store.Put(ctx, conversationID, st); err != nil {
		s.log.Warn("session cache write failed", zap.Error(err))
	}
}

func (s *Service) Forget(ctx context.Context, conversationID uuid.UUID) {
	if err := s.store.Delete(ctx, conversationID); err != nil {
		s.log.Warn("session cache delete failed", zap.Error(err))
	}
}
