package intel

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"
)

// stubCompleter returns a fixed reply or error for every prompt.
type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(_ context.Context, _ string, _ float32, _ int) (string, error) {
	return s.reply, s.err
}

func newTestExtractor(c *stubCompleter) *Extractor {
	if c == nil {
		return NewExtractor(DefaultLexicon(), nil, time.Second, zap.NewNop())
	}
	return NewExtractor(DefaultLexicon(), c, time.Second, zap.NewNop())
}

func TestDestinationsGazetteer(t *testing.T) {
	e := newTestExtractor(nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"two cities case preserved", "I want to visit Paris and Tokyo", []string{"Paris", "Tokyo"}},
		{"lowercase mention", "thinking about bali or thailand", []string{"bali", "thailand"}},
		{"text order not gazetteer order", "Tokyo first, then Paris", []string{"Tokyo", "Paris"}},
		{"no places", "somewhere warm would be great", nil},
		{"duplicate mention", "Paris! I love Paris", []string{"Paris"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Destinations(context.Background(), tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Destinations(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDestinationsRegexFallback(t *testing.T) {
	e := newTestExtractor(nil)

	// None of these are in the gazetteer, so the regex path must carry.
	got := e.Destinations(context.Background(), "We are comparing Springfield, Riverdale and Gotham")
	want := []string{"Springfield", "Riverdale", "Gotham"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("comma list = %v, want %v", got, want)
	}

	got = e.Destinations(context.Background(), "planning a trip to Narnia.")
	if len(got) == 0 || got[0] != "Narnia" {
		t.Errorf("verb pattern = %v, want Narnia first", got)
	}

	// Stoplisted pronouns never count as places.
	got = e.Destinations(context.Background(), "I think We should go. The weather matters.")
	for _, d := range got {
		if d == "I" || d == "We" || d == "The" {
			t.Errorf("stoplisted word leaked: %v", got)
		}
	}
}

func TestDestinationsLLMPath(t *testing.T) {
	tests := []struct {
		name  string
		stub  *stubCompleter
		text  string
		want  []string
	}{
		{
			"model answer wins",
			&stubCompleter{reply: `["Paris", "France"]`},
			"somewhere romantic in europe",
			[]string{"Paris", "France"},
		},
		{
			"travel verbs filtered out",
			&stubCompleter{reply: `["visit", "Rome", "plan"]`},
			"ideas please",
			[]string{"Rome"},
		},
		{
			"fenced json accepted",
			&stubCompleter{reply: "```json\n[\"Tokyo\"]\n```"},
			"ideas please",
			[]string{"Tokyo"},
		},
		{
			"malformed reply falls back to gazetteer",
			&stubCompleter{reply: "Sure! Paris sounds lovely."},
			"what about Paris",
			[]string{"Paris"},
		},
		{
			"transport error falls back",
			&stubCompleter{err: errors.New("timeout")},
			"what about Paris",
			[]string{"Paris"},
		},
		{
			"empty list means no opinion",
			&stubCompleter{reply: `[]`},
			"I loved Rome",
			[]string{"Rome"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExtractor(tt.stub)
			got := e.Destinations(context.Background(), tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Destinations = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBudgetAmount(t *testing.T) {
	e := newTestExtractor(nil)

	tests := []struct {
		text      string
		value     int
		symbol    string
		formatted string
	}{
		{"my budget is $2000", 2000, "$", "$2,000"},
		{"around $1,500 total", 1500, "$", "$1,500"},
		{"we have €3000 to spend", 3000, "€", "€3,000"},
		{"up to £800", 800, "£", "£800"},
		{"roughly 2500 usd", 2500, "$", "$2,500"},
		{"maybe 1200 euros", 1200, "€", "€1,200"},
		{"about 500 bucks", 500, "$", "$500"},
		{"50000 inr for the trip", 50000, "₹", "₹50,000"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := e.BudgetAmount(tt.text)
			if got == nil {
				t.Fatalf("BudgetAmount(%q) = nil", tt.text)
			}
			if got.Value != tt.value || got.Symbol != tt.symbol || got.Formatted != tt.formatted {
				t.Errorf("got %+v, want {%d %s %s}", got, tt.value, tt.symbol, tt.formatted)
			}
		})
	}

	if got := e.BudgetAmount("no money talk here"); got != nil {
		t.Errorf("expected nil for amount-free text, got %+v", got)
	}
}

func TestCategorizeBudget(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{1500, "budget"},
		{1501, "moderate"},
		{5000, "moderate"},
		{5001, "luxury"},
	}
	for _, tt := range tests {
		if got := CategorizeBudget(tt.amount); got != tt.want {
			t.Errorf("CategorizeBudget(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestBudgetIndicators(t *testing.T) {
	e := newTestExtractor(nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single keyword", "looking for cheap flights", []string{"budget"}},
		{"phrase match", "we are on a budget this year", []string{"budget"}},
		{"ultra budget alone", "hostel living, totally broke", []string{"ultra_budget"}},
		{"ultra suppressed by other level", "hostels are fine but some nice meals too", []string{"moderate"}},
		{"luxury phrase", "money no object, book it", []string{"luxury"}},
		{"nothing", "tell me about the weather", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.BudgetIndicators(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BudgetIndicators(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTiming(t *testing.T) {
	e := newTestExtractor(nil)

	tests := []struct {
		text string
		want string
	}{
		{"we want to go in July", "Months mentioned: july"},
		{"sometime in summer", "Seasons mentioned: summer"},
		{"when is the best time", "Timing preferences: when, time, best time"},
		{"paris sounds nice", ""},
	}

	for _, tt := range tests {
		if got := e.Timing(tt.text); got != tt.want {
			t.Errorf("Timing(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestInterests(t *testing.T) {
	e := newTestExtractor(nil)

	// Two adventure keywords push adventure above the 1.0 bar.
	got := e.Interests("we love hiking and outdoor trips")
	if !reflect.DeepEqual(got, []string{"adventure"}) {
		t.Errorf("Interests = %v, want [adventure]", got)
	}

	// Money words prepend the budget tag.
	got = e.Interests("cheap food and local culture and a museum")
	if len(got) == 0 || got[0] != "budget" {
		t.Fatalf("budget tag not first: %v", got)
	}
	found := false
	for _, g := range got {
		if g == "cultural" {
			found = true
		}
	}
	if !found {
		t.Errorf("cultural missing from %v", got)
	}

	// A single photography keyword scores 0.7 and stays below the bar.
	got = e.Interests("I brought my instagram")
	if len(got) != 0 {
		t.Errorf("sub-threshold interest leaked: %v", got)
	}
}

func TestConcernsPriorityOrder(t *testing.T) {
	e := newTestExtractor(nil)

	got := e.Concerns("is it safe and expensive there? worried about the weather")
	want := []string{"safety", "weather", "cost"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Concerns = %v, want %v", got, want)
	}
}

func TestExperience(t *testing.T) {
	e := newTestExtractor(nil)

	tests := []struct {
		text string
		want ExperienceLevel
	}{
		{"this is my first time abroad", ExperienceBeginner},
		{"I've traveled before, a few times", ExperienceIntermediate},
		{"seasoned traveler here", ExperienceExperienced},
		{"hello", ExperienceUnknown},
	}
	for _, tt := range tests {
		if got := e.Experience(tt.text); got != tt.want {
			t.Errorf("Experience(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestGroupAndStyles(t *testing.T) {
	e := newTestExtractor(nil)

	if got := e.GroupComposition("honeymoon in the maldives"); got != "couple" {
		t.Errorf("GroupComposition = %q, want couple", got)
	}
	if got := e.GroupComposition("just some plans"); got != "" {
		t.Errorf("GroupComposition = %q, want empty", got)
	}

	styles := e.TravelStyles("a beach holiday with great food, foodie heaven")
	wantStyle := map[string]bool{"foodie": true, "beach": true}
	for _, s := range styles {
		delete(wantStyle, s)
	}
	if len(wantStyle) != 0 {
		t.Errorf("TravelStyles missing %v (got %v)", wantStyle, styles)
	}
}

func TestDurationAndGroupSize(t *testing.T) {
	e := newTestExtractor(nil)

	if got := e.DurationDays("about 10 days in italy"); got == nil || *got != 10 {
		t.Errorf("DurationDays = %v, want 10", got)
	}
	if got := e.DurationDays("2 weeks off work"); got == nil || *got != 14 {
		t.Errorf("DurationDays weeks = %v, want 14", got)
	}
	if got := e.DurationDays("no dates yet"); got != nil {
		t.Errorf("DurationDays = %v, want nil", got)
	}

	if got := e.GroupSize("there will be 4 of us"); got == nil || *got != 4 {
		t.Errorf("GroupSize = %v, want 4", got)
	}
	if got := e.GroupSize("family trip"); got != nil {
		t.Errorf("GroupSize = %v, want nil", got)
	}
}

func TestExtractionTotalOverWeirdInput(t *testing.T) {
	e := newTestExtractor(nil)
	inputs := []string{"", "🏖️🏖️🏖️", "日本に行きたい", "$$$$", "     "}
	for _, in := range inputs {
		e.Destinations(context.Background(), in)
		e.BudgetAmount(in)
		e.BudgetIndicators(in)
		e.Timing(in)
		e.Interests(in)
		e.Concerns(in)
		e.Experience(in)
	}
}
