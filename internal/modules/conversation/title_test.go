package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeCompleter struct {
	reply string
	err   error
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, _ float32, _ int) (string, error) {
	return f.reply, f.err
}

func TestSimpleTitle(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"I want to go to Paris", "Paris Trip Planning"},
		{"planning japan next year", "Japan Trip Planning"},
		{"take me to new zealand", "New Zealand Trip Planning"},
		{"Plan a trip to the Milky Way", "Earth Travel Planning"},
		{"Visit Mars", "Earth Travel Planning"},
		{"space vacation please", "Earth Travel Planning"},
		{"I need a spacious hotel room", "Vacation Planning"},
		{"I need space to think about my trip", "Vacation Planning"},
		{"we're on a budget", "Budget Travel Planning"},
		{"luxury resorts only", "Luxury Vacation Planning"},
		{"adventure time", "Adventure Trip Planning"},
		{"beach ideas", "Beach Vacation Planning"},
		{"tell me about the culture", "Cultural Trip Planning"},
		{"help me plan something", "Vacation Planning"},
		{"", "Vacation Planning"},
	}

	for _, tt := range tests {
		if got := SimpleTitle(tt.message); got != tt.want {
			t.Errorf("SimpleTitle(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestTitlerGenerate(t *testing.T) {
	tests := []struct {
		name      string
		completer *fakeCompleter
		message   string
		want      string
	}{
		{
			"model title accepted",
			&fakeCompleter{reply: `"Paris Trip Planning"`},
			"I want to go to Paris",
			"Paris Trip Planning",
		},
		{
			"space-themed model title replaced",
			&fakeCompleter{reply: "Cosmic Getaway Planning"},
			"surprise me",
			"Earth Travel Planning",
		},
		{
			"over-long title falls back",
			&fakeCompleter{reply: "An Extremely Long And Entirely Unsuitable Conversation Title Indeed"},
			"beach ideas",
			"Beach Vacation Planning",
		},
		{
			"model error falls back",
			&fakeCompleter{err: errors.New("unavailable")},
			"luxury resorts only",
			"Luxury Vacation Planning",
		},
		{
			"empty reply falls back",
			&fakeCompleter{reply: ""},
			"anything",
			"Vacation Planning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			titler := NewTitler(tt.completer, time.Second, zap.NewNop())
			if got := titler.Generate(context.Background(), tt.message); got != tt.want {
				t.Errorf("Generate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitlerWithoutCompleter(t *testing.T) {
	titler := NewTitler(nil, time.Second, zap.NewNop())
	if got := titler.Generate(context.Background(), "visit bali"); got != "Bali Trip Planning" {
		t.Errorf("Generate = %q, want Bali Trip Planning", got)
	}
}
