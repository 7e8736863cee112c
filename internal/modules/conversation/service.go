// README: Conversation service: lifecycle and persistence of chat sessions.
package conversation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"atlas/internal/intel"
)

var ErrNotFound = errors.New("conversation not found")

type Service struct {
	store  *Store
	titler *Titler
}

func NewService(store *Store, titler *Titler) *Service {
	return &Service{store: store, titler: titler}
}

// Create opens a new conversation for userID, titled after the first
// message when one is given.
func (s *Service) Create(ctx context.Context, userID, firstMessage string) (*Conversation, error) {
	now := time.Now().UTC()
	title := "Vacation Planning"
	if firstMessage != "" {
		title = s.titler.Generate(ctx, firstMessage)
	}

	c := &Conversation{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Messages:  []intel.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID, userID string) (*Conversation, error) {
	return s.store.Get(ctx, id, userID)
}

func (s *Service) List(ctx context.Context, userID string) ([]Summary, error) {
	return s.store.List(ctx, userID)
}

// Append adds messages to the history and persists the latest preference
// snapshot in the same write.
func (s *Service) Append(ctx context.Context, c *Conversation, prefs *intel.TravelPreferences, messages ...intel.Message) error {
	c.Messages = append(c.Messages, messages...)
	if prefs != nil {
		c.Preferences = prefs
	}
	c.UpdatedAt = time.Now().UTC()
	return s.store.Update(ctx, c)
}

func (s *Service) Rename(ctx context.Context, id uuid.UUID, userID, title string) error {
	return s.store.Rename(ctx, id, userID, title)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	return s.store.SoftDelete(ctx, id, userID)
}
