package places

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestHighlightsStaticFallback(t *testing.T) {
	svc, err := NewService("", zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	got := svc.Highlights(context.Background(), "Paris", 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 highlights, got %d", len(got))
	}
	if got[0].Name != "Eiffel Tower" {
		t.Errorf("expected Eiffel Tower first, got %q", got[0].Name)
	}
}

func TestHighlightsCaseInsensitiveDestination(t *testing.T) {
	svc, _ := NewService("", zap.NewNop())
	if got := svc.Highlights(context.Background(), "  MONGOLIA ", 0); len(got) != 5 {
		t.Fatalf("expected default limit of 5 highlights, got %d", len(got))
	}
}

func TestHighlightsUnknownDestination(t *testing.T) {
	svc, _ := NewService("", zap.NewNop())
	if got := svc.Highlights(context.Background(), "Atlantis", 5); got != nil {
		t.Fatalf("expected no highlights, got %v", got)
	}
}
