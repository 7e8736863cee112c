// README: Per-conversation session state cached between requests.
package session

import (
	"time"

	"atlas/internal/intel"
)

// State is the small mutable blob we keep per conversation: the topic
// drift counters and enough recency info to cheapen the next turn. The
// full history stays in Postgres; this is only the hot path.
type State struct {
	Drift        intel.DriftState `json:"drift"`
	MessageCount int              `json:"message_count"`
	LastMessage  string           `json:"last_message"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
