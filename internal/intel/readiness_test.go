package intel

import (
	"math"
	"testing"
)

func TestScoreReadiness(t *testing.T) {
	days := 10
	size := 2

	tests := []struct {
		name      string
		prefs     *TravelPreferences
		count     int
		mentioned []string
		want      float64
	}{
		{"nil preferences baseline", nil, 10, []string{"Paris"}, 0.1},
		{"empty preferences", &TravelPreferences{}, 0, nil, 0.0},
		{"destination only", &TravelPreferences{Destinations: []string{"Rome"}}, 1, nil, 0.25},
		{"mentioned destination counts", &TravelPreferences{}, 1, []string{"Rome"}, 0.25},
		{"message count alone", &TravelPreferences{}, 4, nil, 0.10},
		{"three messages not enough", &TravelPreferences{}, 3, nil, 0.0},
		{
			"everything present caps at one",
			&TravelPreferences{
				Destinations: []string{"Rome"},
				TravelDates:  &DateRange{Start: "2026-09-01", End: "2026-09-10"},
				BudgetRange:  "moderate",
				DurationDays: &days,
				GroupSize:    &size,
				TravelStyles: []string{"foodie"},
			},
			8, []string{"Rome"}, 1.0,
		},
		{
			"partial accumulation",
			&TravelPreferences{
				Destinations: []string{"Rome"},
				BudgetRange:  "budget",
			},
			4, nil, 0.50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreReadiness(tt.prefs, tt.count, tt.mentioned)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ScoreReadiness = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreReadinessFalsyMeansAbsent(t *testing.T) {
	zero := 0
	prefs := &TravelPreferences{
		Destinations: []string{},
		BudgetRange:  "",
		DurationDays: &zero,
		GroupSize:    &zero,
		TravelStyles: nil,
	}
	if got := ScoreReadiness(prefs, 0, nil); got != 0.0 {
		t.Errorf("ScoreReadiness = %v, want 0 for all-falsy prefs", got)
	}
}
