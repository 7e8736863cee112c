// README: Topic-focus guard: classifies each user message as travel-related
// or not and locks the conversation onto travel after repeated drift.
package intel

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"atlas/internal/ai"
)

// LockThreshold is the number of consecutive non-travel messages that
// locks the conversation. Not decayed by time.
const LockThreshold = 2

// RelevanceClassifier decides whether a message is about travel.
type RelevanceClassifier interface {
	TravelRelated(ctx context.Context, message string) (bool, error)
}

const relevancePrompt = `You are a strict travel planning assistant. Your ONLY job is to determine if the following user message is about travel or vacation planning.

Answer 'yes' if the message is about:
- Travel/vacation planning
- Travel logistics (flights, hotels, transportation)
- Travel experiences and destinations
- Travel safety and health concerns
- Travel logistics emergencies (lost passports, flight cancellations, visa issues)
- Any situation that occurs while traveling or affects travel plans
- Affirmative responses like "Yes", "Sure", "That sounds good" in the middle of a travel planning conversation

Answer 'no' if the message is about:
- General wellness, mental health, or personal finance advice not related to travel
- Relationship advice not related to travel companions
- Medical advice, emergency protocols, or legal procedures
- Any other general life advice unrelated to travel

User message: %s

Is this message about travel/vacation planning or travel-related situations? (yes/no):`

// LLMRelevance asks the completer for a yes/no verdict. One attempt under
// a bounded timeout; the guard treats every failure as travel-related.
type LLMRelevance struct {
	completer ai.Completer
	timeout   time.Duration
}

func NewLLMRelevance(completer ai.Completer, timeout time.Duration) *LLMRelevance {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &LLMRelevance{completer: completer, timeout: timeout}
}

func (l *LLMRelevance) TravelRelated(ctx context.Context, message string) (bool, error) {
	cctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	reply, err := l.completer.Complete(cctx, fmt.Sprintf(relevancePrompt, message), 0.1, 10)
	if err != nil {
		return false, fmt.Errorf("relevance classification: %w", err)
	}
	if reply == "" {
		// Empty verdicts count as travel-related rather than risking a
		// wrongful redirect.
		return true, nil
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(reply)), "yes"), nil
}

// KeywordRelevance is the deterministic fallback: affirmative responses and
// travel vocabulary count as travel-related.
type KeywordRelevance struct {
	lex *Lexicon
}

func NewKeywordRelevance(lex *Lexicon) *KeywordRelevance {
	return &KeywordRelevance{lex: lex}
}

func (k *KeywordRelevance) TravelRelated(_ context.Context, message string) (bool, error) {
	lower := strings.ToLower(message)
	if containsAny(lower, k.lex.AffirmativePhrases) {
		return true, nil
	}
	return containsAny(lower, k.lex.TravelKeywords), nil
}

// FocusGuard applies the relevance verdict to a session's drift state and
// produces redirect replies while locked. Every message is reclassified,
// locked or not, so a travel message always unlocks immediately.
type FocusGuard struct {
	classifier RelevanceClassifier
	rng        *rand.Rand
	log        *zap.Logger
}

// NewFocusGuard builds a guard backed by the model when a completer is
// available, else by the keyword fallback.
func NewFocusGuard(lex *Lexicon, completer ai.Completer, timeout time.Duration, log *zap.Logger) *FocusGuard {
	var classifier RelevanceClassifier
	if completer != nil {
		classifier = NewLLMRelevance(completer, timeout)
	} else {
		classifier = NewKeywordRelevance(lex)
	}
	return newFocusGuard(classifier, log)
}

func newFocusGuard(classifier RelevanceClassifier, log *zap.Logger) *FocusGuard {
	return &FocusGuard{
		classifier: classifier,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		log:        log,
	}
}

// Observe classifies message and updates state. Returns whether the message
// was travel-related. Classifier failures fail open: the message counts as
// travel-related and the state resets.
func (g *FocusGuard) Observe(ctx context.Context, state *DriftState, message string) bool {
	related, err := g.classifier.TravelRelated(ctx, message)
	if err != nil {
		g.log.Warn("relevance classifier failed, treating message as travel-related", zap.Error(err))
		related = true
	}

	if related {
		state.Counter = 0
		state.Locked = false
	} else {
		state.Counter++
		if state.Counter >= LockThreshold {
			state.Locked = true
			g.log.Info("conversation locked to travel topics",
				zap.Int("drift_counter", state.Counter))
		}
	}
	return related
}

// redirectPool holds the refocusing replies served while locked.
var redirectPool = []string{
	"I'd love to help you with that, but I'm specifically designed to assist with travel planning! Let's get back to planning your perfect vacation. What destination are you thinking about?",
	"That sounds interesting! However, I'm your travel planning assistant. Let me help you plan an amazing trip instead. Where would you like to go?",
	"I'm focused on helping you plan incredible vacations! Let's get back to travel planning. What kind of trip are you dreaming of?",
	"While that's a great topic, I'm here to help with your travel adventures! Let's plan your next vacation. What destination is calling your name?",
	"I'm your travel planning specialist! Let's focus on creating amazing travel experiences. What's your dream destination?",
}

// Redirect returns a pseudo-randomly chosen refocusing reply.
func (g *FocusGuard) Redirect() string {
	return redirectPool[g.rng.Intn(len(redirectPool))]
}
