package utils

import (
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hashed, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hashed == "password123" {
		t.Fatalf("hash equals plaintext")
	}

	if !CheckPassword("password123", hashed) {
		t.Fatalf("expected match for correct password")
	}
	if CheckPassword("wrong", hashed) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestHashPassword_FreshSalt(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("p")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("p")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected different salts to produce different hashes")
	}
}
