package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("session-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	id, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if id != "session-1" {
		t.Errorf("Parse = %q, want session-1", id)
	}
}

func TestParseRejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	token, _ := issuer.Issue("session-1")

	other := NewTokenIssuer("other-secret", time.Hour)
	if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: err = %v, want ErrInvalidToken", err)
	}

	if _, err := issuer.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage: err = %v, want ErrInvalidToken", err)
	}

	expired := NewTokenIssuer("secret", time.Minute)
	old, _ := expired.Issue("session-2")
	expired.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, err := expired.Parse(old); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired: err = %v, want ErrInvalidToken", err)
	}
}

func TestNoExpiry(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)
	token, _ := issuer.Issue("session-3")
	issuer.now = func() time.Time { return time.Now().Add(365 * 24 * time.Hour) }
	if _, err := issuer.Parse(token); err != nil {
		t.Errorf("token without ttl rejected: %v", err)
	}
}
