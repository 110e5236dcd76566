package utils

import (
	"testing"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	ts := NewTokenService("super-secret")

	tok, err := ts.Issue("user-123", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := ts.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "user-123")
	}
	if claims.Role != "user" {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, "user")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService("right-secret").Issue("u1", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenService("wrong-secret").Verify(tok)
	if err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("k").Verify("not.a.jwt")
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestVerify_EmptyString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("k").Verify("")
	if err == nil {
		t.Fatalf("expected error for empty token, got nil")
	}
}
