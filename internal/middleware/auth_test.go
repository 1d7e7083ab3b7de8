package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"funny_arcade/internal/model"
	"funny_arcade/pkg/token"
)

func TestAuth(t *testing.T) {
	secret := []byte("secret")
	valid, err := token.GenerateAccessToken(&model.User{ID: 42, Name: "Ann"}, secret, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	foreign, err := token.GenerateAccessToken(&model.User{ID: 42}, []byte("other"), time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + valid, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"no bearer prefix", valid, http.StatusUnauthorized},
		{"wrong key", "Bearer " + foreign, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int
			h := Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, _ = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if tt.status == http.StatusOK && gotID != 42 {
				t.Errorf("expected user id 42, got %d", gotID)
			}
		})
	}
}
