// README: Core data model for the conversation intelligence engine.
package intel

import "time"

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is one entry of a conversation snapshot. The engine never mutates
// messages; every analysis call receives the full history fresh.
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// Stage is the user's position in the travel-decision funnel.
type Stage string

const (
	StageExploring  Stage = "exploring"
	StageComparing  Stage = "comparing"
	StagePlanning   Stage = "planning"
	StageFinalizing Stage = "finalizing"
)

// stageOrder fixes the iteration and tie-breaking order for the four stages.
var stageOrder = []Stage{StageExploring, StageComparing, StagePlanning, StageFinalizing}

// ExperienceLevel is the detected travel experience of the user.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExperienced  ExperienceLevel = "experienced"
	ExperienceUnknown      ExperienceLevel = "unknown"
)

// BudgetAmount is a normalized monetary amount extracted from free text.
type BudgetAmount struct {
	Value     int    `json:"value"`
	Symbol    string `json:"symbol"`
	Formatted string `json:"formatted"`
}

// StageInsight is the classifier's verdict for one analysis pass.
type StageInsight struct {
	Stage       Stage             `json:"stage"`
	Confidence  float64           `json:"confidence"`
	Progression []Stage           `json:"progression"`
	Scores      map[Stage]float64 `json:"scores"`
}

// Insights is the combined output of one pipeline run over a conversation.
type Insights struct {
	Stage            StageInsight    `json:"stage"`
	Interests        []string        `json:"detected_interests"`
	Destinations     []string        `json:"mentioned_destinations"`
	BudgetAmount     *BudgetAmount   `json:"budget_amount,omitempty"`
	BudgetIndicators []string        `json:"budget_indicators"`
	Timing           string          `json:"timing,omitempty"`
	TravelStyles     []string        `json:"travel_styles"`
	Group            string          `json:"group_composition,omitempty"`
	Concerns         []string        `json:"concerns"`
	ExperienceLevel  ExperienceLevel `json:"travel_experience_level"`
	Readiness        float64         `json:"decision_readiness"`
}

// DateRange is a travel date window.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TravelPreferences is the structured preference record persisted between
// turns. Presence is explicit: a nil pointer, empty slice or empty string
// means "unset", and the Has* helpers are the only presence checks the
// engine uses, so a falsy value is never mistaken for a set one.
type TravelPreferences struct {
	Destinations []string      `json:"destinations,omitempty"`
	TravelDates  *DateRange    `json:"travel_dates,omitempty"`
	BudgetRange  string        `json:"budget_range,omitempty"`
	BudgetAmount *BudgetAmount `json:"budget_amount,omitempty"`
	DurationDays *int          `json:"trip_duration_days,omitempty"`
	GroupSize    *int          `json:"group_size,omitempty"`
	TravelStyles []string      `json:"travel_style,omitempty"`
	Interests    []string      `json:"interests,omitempty"`
	Stage        Stage         `json:"decision_stage,omitempty"`
}

func (p *TravelPreferences) HasDestinations() bool {
	return p != nil && len(p.Destinations) > 0
}

func (p *TravelPreferences) HasTravelDates() bool {
	return p != nil && p.TravelDates != nil && p.TravelDates.Start != ""
}

func (p *TravelPreferences) HasBudgetRange() bool {
	return p != nil && p.BudgetRange != ""
}

func (p *TravelPreferences) HasDuration() bool {
	return p != nil && p.DurationDays != nil && *p.DurationDays > 0
}

func (p *TravelPreferences) HasGroupSize() bool {
	return p != nil && p.GroupSize != nil && *p.GroupSize > 0
}

func (p *TravelPreferences) HasTravelStyles() bool {
	return p != nil && len(p.TravelStyles) > 0
}

// DriftState is the per-session topic-focus counter. It is owned by the
// enclosing session handle and mutated only through FocusGuard.Observe; the
// caller must serialize inference per conversation.
type DriftState struct {
	Counter int  `json:"counter"`
	Locked  bool `json:"locked"`
}

// Recommendation is one structured recommendation block.
type Recommendation struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// userMessages filters a snapshot down to user-authored entries.
func userMessages(messages []Message) []Message {
	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleUser {
			out = append(out, m)
		}
	}
	return out
}
