package spinner

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"funny_arcade/internal/model"
	servModel "funny_arcade/internal/service/spinner/model"
	"funny_arcade/pkg/rng"

	"github.com/rs/zerolog"
)

// fixedSource Возвращает заданные значения
type fixedSource struct {
	index int
	frac  float64
}

func (f fixedSource) IntN(n int) int   { return f.index % n }
func (f fixedSource) Float64() float64 { return f.frac }

func TestSpinLandsOnWinner(t *testing.T) {
	s := NewSpinnerService(fixedSource{index: 2, frac: 0.37}, zerolog.Nop())

	res, err := s.Spin(context.Background(), model.SpinnerSpin{
		Question: "Lunch?",
		Items:    []string{"Pizza", "Sushi", "Burger", "Salad"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.WinnerIndex != 2 || res.Winner.Text != "Burger" {
		t.Fatalf("expected winner 2 (Burger), got %d (%s)", res.WinnerIndex, res.Winner.Text)
	}
	if res.SectionAngle != 90 {
		t.Errorf("expected section angle 90, got %v", res.SectionAngle)
	}
	if got := math.Mod(res.Rotation, 360); math.Abs(got-225) > 1e-9 {
		t.Errorf("expected rotation mod 360 = 225, got %v", got)
	}
	if res.Rotation < 360*10 {
		t.Errorf("expected at least 10 full turns, got rotation %v", res.Rotation)
	}
	if WedgeAt(res.Rotation, len(res.Wedges)) != 2 {
		t.Errorf("expected WedgeAt to return 2, got %d", WedgeAt(res.Rotation, len(res.Wedges)))
	}
}

func TestRotationProperties(t *testing.T) {
	src := rng.Seeded(42)
	for n := servModel.MinItems; n <= servModel.MaxItems; n++ {
		section := 360 / float64(n)
		for i := 0; i < 200; i++ {
			index, duration := Pick(src, n)
			if index < 0 || index >= n {
				t.Fatalf("n=%d: index %d out of range", n, index)
			}
			if duration < servModel.MinDuration || duration >= servModel.MaxDuration {
				t.Fatalf("n=%d: duration %v out of range", n, duration)
			}

			rot := Rotation(index, n, duration)
			center := float64(index)*section + section/2
			if got := math.Mod(rot, 360); math.Abs(got-center) > 1e-6 {
				t.Errorf("n=%d index=%d: expected mod 360 = %v, got %v", n, index, center, got)
			}
			if WedgeAt(rot, n) != index {
				t.Errorf("n=%d: expected WedgeAt %d, got %d", n, index, WedgeAt(rot, n))
			}
		}
	}
}

func TestRotationTurns(t *testing.T) {
	tests := []struct {
		duration time.Duration
		turns    float64
	}{
		{5 * time.Second, 10},
		{7400 * time.Millisecond, 14},
		{9999 * time.Millisecond, 19},
	}

	for _, tt := range tests {
		got := math.Floor(Rotation(0, 2, tt.duration) / 360)
		if got != tt.turns {
			t.Errorf("duration %v: expected %v turns, got %v", tt.duration, tt.turns, got)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		question string
		items    []string
		valid    bool
	}{
		{"ok", "Yes or No?", []string{"Yes", "No"}, true},
		{"blank question", "   ", []string{"Yes", "No"}, false},
		{"one item", "Q", []string{"Yes"}, false},
		{"too many", "Q", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}, false},
		{"ten items", "Q", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, true},
		{"blank item", "Q", []string{"Yes", " "}, false},
		{"duplicate case", "Q", []string{"Pizza", " pizza "}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.question, tt.items)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, model.ErrInvalidSpinnerInput) {
				t.Errorf("expected ErrInvalidSpinnerInput, got %v", err)
			}
		})
	}
}

func TestColors(t *testing.T) {
	if got := Colors(3); len(got) != 3 || got[0] != "#FF6B6B" || got[2] != "#45B7D1" {
		t.Errorf("expected first 3 palette colors, got %v", got)
	}

	got := Colors(12)
	if len(got) != 12 {
		t.Fatalf("expected 12 colors, got %d", len(got))
	}
	if got[9] != "#85C1E9" {
		t.Errorf("expected last palette color, got %s", got[9])
	}
	// 10 * 137.508 = 1375.08 -> 295.08
	if !strings.HasPrefix(got[10], "hsl(295.0") || !strings.HasSuffix(got[10], ", 70%, 60%)") {
		t.Errorf("unexpected generated color %s", got[10])
	}
}

func TestPresetsCopy(t *testing.T) {
	s := NewSpinnerService(rng.Global(), zerolog.Nop())

	presets := s.Presets()
	if len(presets) != 3 || presets[0].ID != "yes-or-no" {
		t.Fatalf("unexpected presets %v", presets)
	}
	presets[0].Answers[0] = "changed"

	if s.Presets()[0].Answers[0] != "Yes" {
		t.Error("expected presets to be unaffected by caller changes")
	}
	for _, p := range s.Presets() {
		if err := Validate(p.Question, p.Answers); err != nil {
			t.Errorf("preset %s is invalid: %v", p.ID, err)
		}
	}
}
