// README: Conversation store backed by PostgreSQL. Messages and preferences
// live in JSONB columns; deletes are soft.
package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"atlas/internal/intel"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, c *Conversation) error {
	messages, err := json.Marshal(c.Messages)
	if err != nil {
		return fmt.Errorf("marshal messages: %w", err)
	}
	prefs, err := marshalPreferences(c.Preferences)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO conversations (
			id, user_id, title, messages, preferences, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.UserID, c.Title, messages, prefs, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

// Get loads a conversation scoped to its owner. Soft-deleted rows are
// invisible.
func (s *Store) Get(ctx context.Context, id uuid.UUID, userID string) (*Conversation, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, title, messages, preferences, created_at, updated_at
		FROM conversations
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`, id, userID,
	)

	var c Conversation
	var messages []byte
	var prefs []byte
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &messages, &prefs, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(messages, &c.Messages); err != nil {
		return nil, fmt.Errorf("unmarshal messages: %w", err)
	}
	if len(prefs) > 0 {
		var p intel.TravelPreferences
		if err := json.Unmarshal(prefs, &p); err != nil {
			return nil, fmt.Errorf("unmarshal preferences: %w", err)
		}
		c.Preferences = &p
	}
	return &c, nil
}

func (s *Store) List(ctx context.Context, userID string) ([]Summary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, jsonb_array_length(messages), updated_at
		FROM conversations
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY updated_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.MessageCount, &sum.UpdatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// Update persists the current message history and preferences.
func (s *Store) Update(ctx context.Context, c *Conversation) error {
	messages, err := json.Marshal(c.Messages)
	if err != nil {
		return fmt.Errorf("marshal messages: %w", err)
	}
	prefs, err := marshalPreferences(c.Preferences)
	if err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE conversations
		SET messages = $1, preferences = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5 AND deleted_at IS NULL`,
		messages, prefs, c.UpdatedAt, c.ID, c.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Rename(ctx context.Context, id uuid.UUID, userID, title string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE conversations
		SET title = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4 AND deleted_at IS NULL`,
		title, time.Now().UTC(), id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete marks the row deleted but keeps it for recovery.
func (s *Store) SoftDelete(ctx context.Context, id uuid.UUID, userID string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE conversations
		SET deleted_at = $1
		WHERE id = $2 AND user_id = $3 AND deleted_at IS NULL`,
		time.Now().UTC(), id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalPreferences(p *intel.TravelPreferences) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	out, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal preferences: %w", err)
	}
	return out, nil
}
