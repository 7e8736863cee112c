// README: Chat orchestrator. One Send call runs the full turn: focus guard,
// conversation analysis, preference merge, model reply (or fallback), and
// persistence of the new messages and session state.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"atlas/internal/ai"
	"atlas/internal/intel"
	"atlas/internal/modules/conversation"
	"atlas/internal/modules/session"
	"atlas/internal/places"
)

const (
	replyTemperature = 0.7
	replyMaxTokens   = 600
)

// Conversations is the slice of the conversation module the orchestrator
// needs.
type Conversations interface {
	Create(ctx context.Context, userID, firstMessage string) (*conversation.Conversation, error)
	Get(ctx context.Context, id uuid.UUID, userID string) (*conversation.Conversation, error)
	Append(ctx context.Context, c *conversation.Conversation, prefs *intel.TravelPreferences, messages ...intel.Message) error
}

// Sessions is the slice of the session module the orchestrator needs.
type Sessions interface {
	Load(ctx context.Context, conversationID uuid.UUID) *session.State
	Save(ctx context.Context, conversationID uuid.UUID, st *session.State)
}

// Highlighter supplies attraction names for a destination.
type Highlighter interface {
	Highlights(ctx context.Context, destination string, limit int) []places.Highlight
}

// Result is everything one chat turn produces for the client.
type Result struct {
	ConversationID  uuid.UUID                `json:"conversation_id"`
	Reply           string                   `json:"reply"`
	TopicDrift      bool                     `json:"topic_drift_detected"`
	Suggestions     []string                 `json:"suggestions,omitempty"`
	Recommendations []intel.Recommendation   `json:"recommendations,omitempty"`
	Insights        *intel.Insights          `json:"insights,omitempty"`
	Preferences     *intel.TravelPreferences `json:"preferences,omitempty"`
}

// Service drives a chat turn end to end.
type Service struct {
	conversations Conversations
	sessions      Sessions
	engine        *intel.Engine
	guard         *intel.FocusGuard
	completer     ai.Completer
	highlighter   Highlighter
	log           *zap.Logger
}

// NewService wires the orchestrator. completer may be nil, in which case
// every reply comes from the contextual fallback generator. highlighter may
// be nil to skip recommendation enrichment.
func NewService(conversations Conversations, sessions Sessions, engine *intel.Engine, guard *intel.FocusGuard, completer ai.Completer, highlighter Highlighter, log *zap.Logger) *Service {
	return &Service{
		conversations: conversations,
		sessions:      sessions,
		engine:        engine,
		guard:         guard,
		completer:     completer,
		highlighter:   highlighter,
		log:           log,
	}
}

// Send processes one user message. A nil conversationID starts a new
// conversation owned by userID.
func (s *Service) Send(ctx context.Context, userID string, conversationID *uuid.UUID, message string) (*Result, error) {
	conv, err := s.ensureConversation(ctx, userID, conversationID, message)
	if err != nil {
		return nil, err
	}

	state := s.sessions.Load(ctx, conv.ID)
	now := time.Now().UTC()
	userMsg := intel.Message{Role: intel.RoleUser, Content: message, Timestamp: now}

	if related := s.guard.Observe(ctx, &state.Drift, message); !related {
		reply := s.guard.Redirect()
		assistantMsg := intel.Message{Role: intel.RoleAssistant, Content: reply, Timestamp: now}
		if err := s.conversations.Append(ctx, conv, nil, userMsg, assistantMsg); err != nil {
			return nil, err
		}
		state.MessageCount = len(conv.Messages)
		state.LastMessage = message
		s.sessions.Save(ctx, conv.ID, state)
		s.log.Info("redirected off-topic message",
			zap.String("conversation_id", conv.ID.String()),
			zap.Int("drift_counter", state.Drift.Counter),
			zap.Bool("locked", state.Drift.Locked))
		return &Result{
			ConversationID: conv.ID,
			Reply:          reply,
			TopicDrift:     true,
		}, nil
	}

	history := append(append([]intel.Message{}, conv.Messages...), userMsg)
	insights := s.engine.Analyze(ctx, history, conv.Preferences)
	prefs := s.mergePreferences(conv.Preferences, insights, message)

	reply := s.reply(ctx, history, insights, prefs)
	assistantMsg := intel.Message{Role: intel.RoleAssistant, Content: reply, Timestamp: now}
	if err := s.conversations.Append(ctx, conv, prefs, userMsg, assistantMsg); err != nil {
		return nil, err
	}

	state.MessageCount = len(conv.Messages)
	state.LastMessage = message
	s.sessions.Save(ctx, conv.ID, state)

	recommendations := s.engine.Recommendations(prefs, insights, len(history))
	s.enrichDestinationFocus(ctx, recommendations, insights.Destinations)

	return &Result{
		ConversationID:  conv.ID,
		Reply:           reply,
		Suggestions:     s.engine.Suggestions(insights, message),
		Recommendations: recommendations,
		Insights:        insights,
		Preferences:     prefs,
	}, nil
}

// enrichDestinationFocus appends live attraction names to the
// destination-focus card when the places service has them.
func (s *Service) enrichDestinationFocus(ctx context.Context, recs []intel.Recommendation, destinations []string) {
	if s.highlighter == nil || len(destinations) == 0 {
		return
	}
	for i := range recs {
		if recs[i].Type != "destination_focus" {
			continue
		}
		highlights := s.highlighter.Highlights(ctx, destinations[0], 3)
		if len(highlights) == 0 {
			return
		}
		names := make([]string, 0, len(highlights))
		for _, h := range highlights {
			names = append(names, h.Name)
		}
		recs[i].Content += " Top highlights: " + strings.Join(names, ", ") + "."
		return
	}
}

func (s *Service) ensureConversation(ctx context.Context, userID string, id *uuid.UUID, firstMessage string) (*conversation.Conversation, error) {
	if id == nil {
		return s.conversations.Create(ctx, userID, firstMessage)
	}
	return s.conversations.Get(ctx, *id, userID)
}

func (s *Service) reply(ctx context.Context, history []intel.Message, insights *intel.Insights, prefs *intel.TravelPreferences) string {
	if s.completer == nil {
		return FallbackResponse(history, insights.Destinations)
	}
	out, err := s.completer.Complete(ctx, buildPrompt(history, insights, prefs), replyTemperature, replyMaxTokens)
	if err != nil {
		s.log.Warn("model reply failed, using fallback", zap.Error(err))
		return ErrorFallback(err, history, insights.Destinations)
	}
	if out == "" {
		return FallbackResponse(history, insights.Destinations)
	}
	return out
}

// mergePreferences folds this turn's insights into the stored record. New
// values overwrite old ones; absent signals leave the old values in place.
func (s *Service) mergePreferences(prev *intel.TravelPreferences, ins *intel.Insights, latest string) *intel.TravelPreferences {
	merged := intel.TravelPreferences{}
	if prev != nil {
		merged = *prev
	}

	if len(ins.Destinations) > 0 {
		merged.Destinations = ins.Destinations
	}
	if len(ins.BudgetIndicators) > 0 {
		merged.BudgetRange = ins.BudgetIndicators[0]
	}
	if ins.BudgetAmount != nil {
		merged.BudgetAmount = ins.BudgetAmount
		if merged.BudgetRange == "" {
			merged.BudgetRange = intel.CategorizeBudget(ins.BudgetAmount.Value)
		}
	}
	if len(ins.Interests) > 0 {
		merged.TravelStyles = ins.Interests
		merged.Interests = ins.Interests
	}
	if d := s.engine.Extractor().DurationDays(latest); d != nil {
		merged.DurationDays = d
	}
	if g := s.engine.Extractor().GroupSize(latest); g != nil {
		merged.GroupSize = g
	}
	merged.Stage = ins.Stage.Stage
	return &merged
}
