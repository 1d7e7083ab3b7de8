package env

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestSlotsConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
slots:
  initial_coins: 500
  spin_cost: 25
terminal:
  history_limit: 20
`)

	cfg, err := NewSlotsConfigFromYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InitialCoins() != 500 || cfg.SpinCost() != 25 {
		t.Errorf("expected 500/25, got %d/%d", cfg.InitialCoins(), cfg.SpinCost())
	}
	// Незаданные поля берутся по умолчанию
	if cfg.HistoryLimit() != 50 || cfg.FreeCoinsMin() != 30 || cfg.FreeCoinsMax() != 139 {
		t.Errorf("expected defaults 50/30/139, got %d/%d/%d", cfg.HistoryLimit(), cfg.FreeCoinsMin(), cfg.FreeCoinsMax())
	}

	term, err := NewTerminalConfigFromYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if term.HistoryLimit() != 20 {
		t.Errorf("expected terminal history 20, got %d", term.HistoryLimit())
	}
}

func TestSlotsConfigMissingFile(t *testing.T) {
	cfg, err := NewSlotsConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InitialCoins() != 200 || cfg.SpinCost() != 10 {
		t.Errorf("expected defaults 200/10, got %d/%d", cfg.InitialCoins(), cfg.SpinCost())
	}
}

func TestSlotsConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative coins", "slots:\n  initial_coins: -1\n"},
		{"inverted range", "slots:\n  free_coins_min: 100\n  free_coins_max: 50\n"},
		{"broken yaml", "slots: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSlotsConfigFromYAML(writeConfig(t, tt.body)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
