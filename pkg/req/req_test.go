package req

import (
	"strings"
	"testing"
)

type payload struct {
	Mode string `json:"mode"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "valid", body: `{"mode":"classic"}`, want: "classic"},
		{name: "empty", body: ``, wantErr: true},
		{name: "unknown field", body: `{"mode":"retro","bet":10}`, wantErr: true},
		{name: "broken json", body: `{"mode":`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode[payload](strings.NewReader(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Mode != tt.want {
				t.Errorf("expected mode %q, got %q", tt.want, got.Mode)
			}
		})
	}
}
