package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestIssuer(t *testing.T, secret string, ttl time.Duration) *Issuer {
	t.Helper()
	iss, err := NewIssuer([]byte(secret), ttl)
	if err != nil {
		t.Fatalf("NewIssuer error: %v", err)
	}
	return iss
}

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer(t, "super-secret", time.Hour)

	tok, err := iss.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := iss.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got != 42 {
		t.Fatalf("account id mismatch: got %d want 42", got)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	iss := &Issuer{secret: []byte("secret"), ttl: -1 * time.Second}
	tok, err := iss.Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = iss.Parse(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	right := newTestIssuer(t, "right-secret", time.Hour)
	wrong := newTestIssuer(t, "wrong-secret", time.Hour)

	tok, err := right.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = wrong.Parse(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer(t, "k", time.Hour)
	if _, err := iss.Parse("not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for malformed token, got %v", err)
	}
}

func TestNewIssuer_EmptySecret(t *testing.T) {
	t.Parallel()

	if _, err := NewIssuer(nil, time.Hour); err == nil {
		t.Fatalf("expected error for empty secret, got nil")
	}
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer(t, "k", 0)
	if iss.TTL() != 10*time.Hour {
		t.Fatalf("expected default TTL of 10h, got %v", iss.TTL())
	}
}
