// README: Decision-readiness scoring: additive weighted presence check over
// known preferences.
package intel

// readinessFactor pairs a presence check with its contribution.
type readinessFactor struct {
	present bool
	weight  float64
}

// ScoreReadiness measures how close the user is to actually deciding on a
// trip. Presence checks treat falsy values (empty, zero, nil) as absent.
// With no preferences at all we still report a small baseline rather than
// zero, since the user showed up to talk about travel.
func ScoreReadiness(prefs *TravelPreferences, messageCount int, mentionedDestinations []string) float64 {
	if prefs == nil {
		return 0.1
	}

	factors := []readinessFactor{
		{prefs.HasDestinations() || len(mentionedDestinations) > 0, 0.25},
		{prefs.HasTravelDates(), 0.20},
		{prefs.HasBudgetRange(), 0.15},
		{prefs.HasDuration(), 0.10},
		{prefs.HasGroupSize(), 0.10},
		{prefs.HasTravelStyles(), 0.10},
		{messageCount >= 4, 0.10},
	}

	var score float64
	for _, f := range factors {
		if f.present {
			score += f.weight
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
