package intel

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultLexicon(), nil, time.Second, zap.NewNop())
}

func TestAnalyzeFullConversation(t *testing.T) {
	e := newTestEngine()

	messages := []Message{
		{Role: RoleUser, Content: "We're thinking about a trip to Paris in July"},
		{Role: RoleAssistant, Content: "Paris in July is lovely. What's your budget?"},
		{Role: RoleUser, Content: "Around $3,000 for the two of us, we love food and museums"},
	}

	got := e.Analyze(context.Background(), messages, nil)

	if len(got.Destinations) == 0 || got.Destinations[0] != "Paris" {
		t.Errorf("destinations = %v, want Paris first", got.Destinations)
	}
	if got.BudgetAmount == nil || got.BudgetAmount.Value != 3000 {
		t.Errorf("budget amount = %+v, want 3000", got.BudgetAmount)
	}
	if got.Timing != "Months mentioned: july" {
		t.Errorf("timing = %q", got.Timing)
	}
	hasCultural := false
	for _, i := range got.Interests {
		if i == "cultural" {
			hasCultural = true
		}
	}
	if !hasCultural {
		t.Errorf("interests = %v, want cultural included", got.Interests)
	}
	if got.Readiness <= 0 {
		t.Errorf("readiness = %v, want positive with mentioned destination", got.Readiness)
	}
}

func TestAnalyzeIgnoresAssistantMessages(t *testing.T) {
	e := newTestEngine()

	// The assistant names places and months; none of it may leak into the
	// user's insights.
	messages := []Message{
		{Role: RoleAssistant, Content: "Consider Rome or Tokyo in July!"},
		{Role: RoleUser, Content: "hello"},
	}

	got := e.Analyze(context.Background(), messages, nil)

	if len(got.Destinations) != 0 {
		t.Errorf("destinations = %v, want none from assistant text", got.Destinations)
	}
	if got.Timing != "" {
		t.Errorf("timing = %q, want empty", got.Timing)
	}
}

func TestAnalyzeEmptyConversation(t *testing.T) {
	e := newTestEngine()

	got := e.Analyze(context.Background(), nil, nil)

	if got.Stage.Stage != StageExploring {
		t.Errorf("stage = %q, want exploring", got.Stage.Stage)
	}
	if got.ExperienceLevel != ExperienceUnknown {
		t.Errorf("experience = %q, want unknown", got.ExperienceLevel)
	}
	if len(got.Destinations) != 0 || len(got.Interests) != 0 || len(got.Concerns) != 0 {
		t.Errorf("expected empty collections, got %+v", got)
	}
	if got.Readiness != 0.1 {
		t.Errorf("readiness = %v, want the 0.1 baseline for absent preferences", got.Readiness)
	}
}
