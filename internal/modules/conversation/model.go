// README: Conversation aggregate: message history plus accumulated
// preferences, owned by a single user.
package conversation

import (
	"time"

	"github.com/google/uuid"

	"atlas/internal/intel"
)

type Conversation struct {
	ID          uuid.UUID                `json:"id"`
	UserID      string                   `json:"user_id"`
	Title       string                   `json:"title"`
	Messages    []intel.Message          `json:"messages"`
	Preferences *intel.TravelPreferences `json:"preferences,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// Summary is the list-view projection: no message bodies.
type Summary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	MessageCount int       `json:"message_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LastUserMessage returns the most recent user message content, or "".
func (c *Conversation) LastUserMessage() string {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == intel.RoleUser {
			return c.Messages[i].Content
		}
	}
	return ""
}
