package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("demo123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "demo123" {
		t.Error("Hash must not equal the plaintext password")
	}

	if !VerifyPassword(hash, "demo123") {
		t.Error("Expected the correct password to verify")
	}
	if VerifyPassword(hash, "demo124") {
		t.Error("Expected a wrong password to fail verification")
	}
	if VerifyPassword("not-a-hash", "demo123") {
		t.Error("Expected garbage hash input to fail verification")
	}
}

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	if a == "" || b == "" {
		t.Fatal("Expected non-empty ids")
	}
	if a == b {
		t.Error("Expected distinct ids")
	}
	if len(a) != 36 {
		t.Errorf("Expected a 36-char uuid, got %d chars", len(a))
	}
}
