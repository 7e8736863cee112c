// README: Decision-stage classification: weighted keyword scoring plus
// override rules, normalized into a confidence distribution.
package intel

import "strings"

const (
	recentWeight  = 0.7
	olderWeight   = 0.3
	questionBoost = 1.5
	// Stages with more than this share of the normalized score count as
	// part of the user's progression.
	progressionFloor = 0.1
)

// Classifier assigns a decision stage to a conversation.
type Classifier struct {
	lex *Lexicon
}

func NewClassifier(lex *Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Classify scores the user's messages against per-stage keyword tables,
// adjusts for known preferences, applies the override rules, and returns
// the winning stage with a normalized confidence.
func (c *Classifier) Classify(userMsgs []Message, prefs *TravelPreferences) StageInsight {
	scores := c.rawScores(userMsgs, prefs)

	override, ok := c.override(userMsgs)

	// Normalize into a distribution. With no signal at all every stage is
	// equally likely, so each gets an even share.
	var total float64
	for _, s := range stageOrder {
		total += scores[s]
	}
	normalized := make(map[Stage]float64, len(stageOrder))
	if total == 0 {
		for _, s := range stageOrder {
			normalized[s] = 1.0 / float64(len(stageOrder))
		}
	} else {
		for _, s := range stageOrder {
			normalized[s] = scores[s] / total
		}
	}

	var primary Stage
	var confidence float64
	if ok {
		primary = override
		confidence = 1.0
	} else {
		// Highest normalized score wins; stage order breaks ties.
		primary = stageOrder[0]
		confidence = normalized[primary]
		for _, s := range stageOrder[1:] {
			if normalized[s] > confidence {
				primary = s
				confidence = normalized[s]
			}
		}
	}

	var progression []Stage
	for _, s := range stageOrder {
		if normalized[s] > progressionFloor {
			progression = append(progression, s)
		}
	}

	return StageInsight{
		Stage:       primary,
		Confidence:  confidence,
		Progression: progression,
		Scores:      normalized,
	}
}

// rawScores runs the recency-weighted keyword pass and the preference
// multipliers.
func (c *Classifier) rawScores(userMsgs []Message, prefs *TravelPreferences) map[Stage]float64 {
	scores := make(map[Stage]float64, len(stageOrder))
	for _, s := range stageOrder {
		scores[s] = 0
	}

	recent := userMsgs
	var older []Message
	if len(userMsgs) > 3 {
		recent = userMsgs[len(userMsgs)-3:]
		older = userMsgs[:len(userMsgs)-3]
	}

	for _, msg := range recent {
		text := strings.ToLower(msg.Content)
		for _, s := range stageOrder {
			kw := c.lex.stageKeywords(s)
			var score float64
			for _, k := range kw.Positive {
				if strings.Contains(text, k) {
					score++
				}
			}
			for _, q := range kw.Questions {
				if strings.Contains(text, q) {
					score += questionBoost
				}
			}
			scores[s] += score * recentWeight
		}
	}

	// Older messages contribute positive keywords only, at reduced weight.
	for _, msg := range older {
		text := strings.ToLower(msg.Content)
		for _, s := range stageOrder {
			var score float64
			for _, k := range c.lex.stageKeywords(s).Positive {
				if strings.Contains(text, k) {
					score++
				}
			}
			scores[s] += score * olderWeight
		}
	}

	// What we already know about the user shifts the odds.
	if prefs != nil {
		if prefs.HasDestinations() {
			scores[StageExploring] *= 0.5
			scores[StageComparing] *= 1.2
			scores[StagePlanning] *= 1.3
		}
		if prefs.HasTravelDates() && prefs.HasBudgetRange() {
			scores[StagePlanning] *= 1.5
			scores[StageFinalizing] *= 1.2
		}
	}

	return scores
}

// override checks the explicit stage rules, in priority order:
//  1. Multiple reference cities anywhere plus a comparison word forces
//     comparing.
//  2. Budget talk in the latest message without month/duration signals,
//     alongside a preference-expression word, forces exploring.
//  3. A tight-budget phrase anywhere plus a preference word in the latest
//     message forces exploring.
func (c *Classifier) override(userMsgs []Message) (Stage, bool) {
	if len(userMsgs) == 0 {
		return "", false
	}

	latest := strings.ToLower(userMsgs[len(userMsgs)-1].Content)

	var b strings.Builder
	for i, msg := range userMsgs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.ToLower(msg.Content))
	}
	allText := b.String()

	hasMonth := containsAny(latest, c.lex.Months)
	hasDuration := containsAny(latest, c.lex.DurationWords)
	hasBudget := containsAny(latest, c.lex.BudgetWords)
	hasComparisonWord := containsAny(allText, c.lex.ComparisonWords)
	latestHasPreference := containsAny(latest, c.lex.PreferenceWords)

	cityCount := 0
	for _, city := range c.lex.CityReferenceSet {
		if strings.Contains(allText, city) {
			cityCount++
		}
	}

	switch {
	case cityCount >= 2 && hasComparisonWord:
		return StageComparing, true
	case hasBudget && !(hasMonth || hasDuration):
		if latestHasPreference {
			return StageExploring, true
		}
	case containsAny(allText, c.lex.TightBudgetPhrases) && latestHasPreference:
		return StageExploring, true
	}
	return "", false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
