package pass

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("cherry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "cherry" {
		t.Fatal("expected hashed password, got plain text")
	}
	if !VerifyPassword(hash, "cherry") {
		t.Error("expected password to verify")
	}
	if VerifyPassword(hash, "lemon") {
		t.Error("expected wrong password to fail")
	}
}
