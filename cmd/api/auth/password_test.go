package auth

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}

	if !CheckPassword("secret123", hash) {
		t.Fatalf("expected correct password to verify")
	}
	if CheckPassword("wrong-password", hash) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	first, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	second, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct salts for identical passwords")
	}
}
