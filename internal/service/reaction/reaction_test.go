package reaction

import (
	"context"
	"errors"
	"testing"

	"funny_arcade/internal/middleware"
	"funny_arcade/internal/model"

	"github.com/rs/zerolog"
)

type memScores struct {
	scores map[int]model.ReactionScores
}

func (m *memScores) GetScores(_ context.Context, userID int) (model.ReactionScores, error) {
	return m.scores[userID], nil
}

func (m *memScores) UpdateScores(_ context.Context, userID int, update func(model.ReactionScores) model.ReactionScores) (model.ReactionScores, error) {
	m.scores[userID] = update(m.scores[userID])
	return m.scores[userID], nil
}

func (m *memScores) DeleteScores(_ context.Context, userID int) error {
	delete(m.scores, userID)
	return nil
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		ms   int
		text string
	}{
		{1, "Superhuman!"},
		{49, "Superhuman!"},
		{50, "Lightning!"},
		{149, "Incredible!"},
		{150, "Quick fingers!"},
		{300, "Pretty good!"},
		{449, "Not bad!"},
		{500, "Meh..."},
		{699, "Getting old?"},
		{700, "Slowpoke!"},
		{899, "Slowpoke!"},
		{900, "Grandpa mode."},
		{5000, "Grandpa mode."},
	}

	for _, tt := range tests {
		if got := Verdict(tt.ms); got.Text != tt.text {
			t.Errorf("%d ms: expected %q, got %q", tt.ms, tt.text, got.Text)
		}
	}
}

func TestRecord(t *testing.T) {
	repo := &memScores{scores: map[int]model.ReactionScores{}}
	s := NewReactionService(repo, zerolog.Nop())
	ctx := middleware.WithUserID(context.Background(), 3)

	steps := []struct {
		ms      int
		best    int
		worst   int
		newBest bool
	}{
		{320, 320, 320, true},
		{410, 320, 410, false},
		{180, 180, 410, true},
		{250, 180, 410, false},
	}

	for _, st := range steps {
		res, err := s.Record(ctx, model.ReactionRecord{Ms: st.ms})
		if err != nil {
			t.Fatalf("%d ms: unexpected error: %v", st.ms, err)
		}
		if res.Scores.Best != st.best || res.Scores.Worst != st.worst {
			t.Errorf("%d ms: expected best/worst %d/%d, got %d/%d", st.ms, st.best, st.worst, res.Scores.Best, res.Scores.Worst)
		}
		if res.NewBest != st.newBest {
			t.Errorf("%d ms: expected new best %v, got %v", st.ms, st.newBest, res.NewBest)
		}
	}

	if _, err := s.Record(ctx, model.ReactionRecord{Ms: 0}); !errors.Is(err, model.ErrInvalidReactionTime) {
		t.Errorf("expected ErrInvalidReactionTime, got %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scores, err := s.Scores(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores.Best != 0 || scores.Worst != 0 {
		t.Errorf("expected empty scores after reset, got %+v", scores)
	}

	if _, err := s.Scores(context.Background()); !errors.Is(err, model.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}
