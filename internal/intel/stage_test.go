package intel

import (
	"math"
	"testing"
)

func msgs(contents ...string) []Message {
	out := make([]Message, len(contents))
	for i, c := range contents {
		out[i] = Message{Role: RoleUser, Content: c}
	}
	return out
}

func TestClassifyNoSignal(t *testing.T) {
	c := NewClassifier(DefaultLexicon())

	got := c.Classify(msgs("hi there"), nil)

	if got.Stage != StageExploring {
		t.Errorf("stage = %q, want exploring on tie", got.Stage)
	}
	if math.Abs(got.Confidence-0.25) > 1e-9 {
		t.Errorf("confidence = %v, want 0.25", got.Confidence)
	}
	for _, s := range stageOrder {
		if math.Abs(got.Scores[s]-0.25) > 1e-9 {
			t.Errorf("score[%s] = %v, want uniform 0.25", s, got.Scores[s])
		}
	}
	if len(got.Progression) != 4 {
		t.Errorf("progression = %v, want all four stages", got.Progression)
	}
}

func TestClassifyEmptyHistory(t *testing.T) {
	c := NewClassifier(DefaultLexicon())
	got := c.Classify(nil, nil)
	if got.Stage != StageExploring || math.Abs(got.Confidence-0.25) > 1e-9 {
		t.Errorf("empty history = %+v, want exploring/0.25", got)
	}
}

func TestClassifyPlanningKeywords(t *testing.T) {
	c := NewClassifier(DefaultLexicon())

	got := c.Classify(msgs("I need an itinerary and where to stay"), nil)

	if got.Stage != StagePlanning {
		t.Errorf("stage = %q, want planning", got.Stage)
	}
	if got.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0 (only stage with signal)", got.Confidence)
	}
}

func TestClassifyComparisonOverride(t *testing.T) {
	c := NewClassifier(DefaultLexicon())

	// Two reference cities plus a comparison word force comparing with
	// full confidence, regardless of keyword scores.
	got := c.Classify(msgs("Paris or London?"), nil)

	if got.Stage != StageComparing {
		t.Errorf("stage = %q, want comparing", got.Stage)
	}
	if got.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0 for override", got.Confidence)
	}
}

func TestClassifyBudgetWithoutPlanningOverride(t *testing.T) {
	c := NewClassifier(DefaultLexicon())

	got := c.Classify(msgs("I want something cheap, budget is key"), nil)
	if got.Stage != StageExploring || got.Confidence != 1.0 {
		t.Errorf("got %q/%v, want exploring/1.0", got.Stage, got.Confidence)
	}

	// A month name in the latest message blocks the budget override.
	got = c.Classify(msgs("My budget for July"), nil)
	if got.Stage != StagePlanning {
		t.Errorf("stage = %q, want planning when month present", got.Stage)
	}
	if got.Confidence == 1.0 {
		t.Error("confidence = 1.0, override should not have fired")
	}
}

func TestClassifyTightBudgetOverride(t *testing.T) {
	c := NewClassifier(DefaultLexicon())

	// The tight-budget phrase may appear in any earlier message as long as
	// the latest one expresses a preference.
	got := c.Classify(msgs("We have a tight budget", "what do we want to explore"), nil)
	if got.Stage != StageExploring || got.Confidence != 1.0 {
		t.Errorf("got %q/%v, want exploring/1.0", got.Stage, got.Confidence)
	}
}

func TestClassifyPreferenceMultipliers(t *testing.T) {
	c := NewClassifier(DefaultLexicon())
	conversation := msgs("ideas and suggestions for my plan")

	// Without known preferences the exploring keywords dominate.
	got := c.Classify(conversation, nil)
	if got.Stage != StageExploring {
		t.Fatalf("stage = %q, want exploring without prefs", got.Stage)
	}

	// A known destination halves exploring and boosts planning enough to
	// flip the outcome.
	prefs := &TravelPreferences{Destinations: []string{"Rome"}}
	got = c.Classify(conversation, prefs)
	if got.Stage != StagePlanning {
		t.Errorf("stage = %q, want planning with destination known", got.Stage)
	}
}

func TestClassifyRecencyWeighting(t *testing.T) {
	c := NewClassifier(DefaultLexicon())

	// Two finalizing keywords in an old message (weight 0.3 each) lose to
	// one planning keyword in a recent message (weight 0.7).
	got := c.Classify(msgs(
		"I want to book tickets",
		"hi",
		"hello",
		"itinerary please",
	), nil)

	if got.Stage != StagePlanning {
		t.Errorf("stage = %q, want planning", got.Stage)
	}
	hasFinalizing := false
	for _, s := range got.Progression {
		if s == StageFinalizing {
			hasFinalizing = true
		}
	}
	if !hasFinalizing {
		t.Errorf("progression = %v, want finalizing included", got.Progression)
	}
}

func TestClassifyScoresSumToOne(t *testing.T) {
	c := NewClassifier(DefaultLexicon())

	got := c.Classify(msgs("thinking about an itinerary, when should I book?"), nil)

	var sum float64
	for _, v := range got.Scores {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("normalized scores sum to %v, want 1.0", sum)
	}
	if got.Confidence < 0 || got.Confidence > 1 {
		t.Errorf("confidence %v out of [0,1]", got.Confidence)
	}
}
