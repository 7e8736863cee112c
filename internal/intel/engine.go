// README: Engine ties the analysis components together: one call turns a
// conversation history plus known preferences into the full insight set.
package intel

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"atlas/internal/ai"
)

// Engine runs the complete conversation analysis pipeline. All components
// are deterministic and in-memory except the optional model-assisted
// destination path inside the extractor.
type Engine struct {
	extractor  *Extractor
	classifier *Classifier
}

// NewEngine wires the pipeline over one lexicon. The completer is optional.
func NewEngine(lex *Lexicon, completer ai.Completer, timeout time.Duration, log *zap.Logger) *Engine {
	return &Engine{
		extractor:  NewExtractor(lex, completer, timeout, log),
		classifier: NewClassifier(lex),
	}
}

// Extractor exposes the preference extractor for callers that need the
// individual extraction paths on a single message.
func (e *Engine) Extractor() *Extractor {
	return e.extractor
}

// Analyze recomputes every insight from the full supplied history. It is
// cheap enough to run per message and caches nothing.
func (e *Engine) Analyze(ctx context.Context, messages []Message, prefs *TravelPreferences) *Insights {
	users := userMessages(messages)

	var full strings.Builder
	for i, m := range users {
		if i > 0 {
			full.WriteByte(' ')
		}
		full.WriteString(m.Content)
	}
	fullText := full.String()

	ins := &Insights{
		Stage:            e.classifier.Classify(users, prefs),
		Interests:        e.extractor.Interests(fullText),
		Destinations:     e.extractor.Destinations(ctx, fullText),
		BudgetAmount:     e.extractor.BudgetAmount(fullText),
		BudgetIndicators: e.extractor.BudgetIndicators(fullText),
		Timing:           e.extractor.Timing(fullText),
		TravelStyles:     e.extractor.TravelStyles(fullText),
		Group:            e.extractor.GroupComposition(fullText),
		Concerns:         e.extractor.Concerns(fullText),
		ExperienceLevel:  e.extractor.Experience(fullText),
	}
	ins.Readiness = ScoreReadiness(prefs, len(users), ins.Destinations)
	return ins
}

// Suggestions produces the quick replies for the current turn.
func (e *Engine) Suggestions(ins *Insights, lastMessage string) []string {
	return DynamicSuggestions(ins, lastMessage)
}

// Recommendations produces the content cards for the current turn.
func (e *Engine) Recommendations(prefs *TravelPreferences, ins *Insights, messageCount int) []Recommendation {
	return SmartRecommendations(prefs, ins, messageCount)
}
