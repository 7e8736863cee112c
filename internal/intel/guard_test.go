package intel

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

// scriptedClassifier replays a fixed sequence of verdicts.
type scriptedClassifier struct {
	verdicts []bool
	errs     []error
	calls    int
}

func (s *scriptedClassifier) TravelRelated(_ context.Context, _ string) (bool, error) {
	i := s.calls
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	verdict := true
	if i < len(s.verdicts) {
		verdict = s.verdicts[i]
	}
	return verdict, err
}

func TestFocusGuardLockAfterThreshold(t *testing.T) {
	cls := &scriptedClassifier{verdicts: []bool{false, false}}
	g := newFocusGuard(cls, zap.NewNop())
	state := &DriftState{}

	if g.Observe(context.Background(), state, "tell me a joke") {
		t.Fatal("first message should be off-topic")
	}
	if state.Locked || state.Counter != 1 {
		t.Fatalf("after one drift: %+v, want counter=1 unlocked", state)
	}

	g.Observe(context.Background(), state, "another joke please")
	if !state.Locked || state.Counter != 2 {
		t.Fatalf("after two drifts: %+v, want locked", state)
	}
}

func TestFocusGuardUnlocksImmediately(t *testing.T) {
	cls := &scriptedClassifier{verdicts: []bool{false, false, true}}
	g := newFocusGuard(cls, zap.NewNop())
	state := &DriftState{}

	g.Observe(context.Background(), state, "joke")
	g.Observe(context.Background(), state, "joke")
	if !state.Locked {
		t.Fatal("expected locked state")
	}

	// A travel message is reclassified even while locked and resets
	// everything at once.
	if !g.Observe(context.Background(), state, "plan a trip to Rome") {
		t.Fatal("travel message should unlock")
	}
	if state.Locked || state.Counter != 0 {
		t.Errorf("after travel message: %+v, want reset", state)
	}
}

func TestFocusGuardFailsOpen(t *testing.T) {
	cls := &scriptedClassifier{verdicts: []bool{false}, errs: []error{errors.New("timeout")}}
	g := newFocusGuard(cls, zap.NewNop())
	state := &DriftState{Counter: 1}

	if !g.Observe(context.Background(), state, "anything") {
		t.Error("classifier failure must count as travel-related")
	}
	if state.Counter != 0 || state.Locked {
		t.Errorf("failure must reset state, got %+v", state)
	}
}

func TestFocusGuardRedirectFromPool(t *testing.T) {
	g := newFocusGuard(&scriptedClassifier{}, zap.NewNop())

	for i := 0; i < 20; i++ {
		r := g.Redirect()
		found := false
		for _, p := range redirectPool {
			if r == p {
				found = true
			}
		}
		if !found {
			t.Fatalf("redirect %q not from pool", r)
		}
	}
}

func TestKeywordRelevance(t *testing.T) {
	k := NewKeywordRelevance(DefaultLexicon())

	tests := []struct {
		message string
		want    bool
	}{
		{"I want to book a flight", true},
		{"where should my vacation be", true},
		{"yes", true},
		{"that sounds good", true},
		{"recommendations please", true},
		{"how do I fix my car engine", false},
		{"write me a poem about cats", false},
	}
	for _, tt := range tests {
		got, err := k.TravelRelated(context.Background(), tt.message)
		if err != nil {
			t.Fatalf("TravelRelated(%q): %v", tt.message, err)
		}
		if got != tt.want {
			t.Errorf("TravelRelated(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestLLMRelevanceParsing(t *testing.T) {
	tests := []struct {
		name string
		stub *stubCompleter
		want bool
	}{
		{"yes", &stubCompleter{reply: "yes"}, true},
		{"yes with trailing text", &stubCompleter{reply: "Yes, clearly travel."}, true},
		{"no", &stubCompleter{reply: "no"}, false},
		{"empty verdict counts as travel", &stubCompleter{reply: ""}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLLMRelevance(tt.stub, 0)
			got, err := l.TravelRelated(context.Background(), "msg")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	l := NewLLMRelevance(&stubCompleter{err: errors.New("boom")}, 0)
	if _, err := l.TravelRelated(context.Background(), "msg"); err == nil {
		t.Error("expected error to surface for the guard to fail open on")
	}
}
