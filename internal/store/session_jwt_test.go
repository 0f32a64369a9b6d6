package store

import (
	"testing"
	"time"
)

func TestJWTSessionRoundTrip(t *testing.T) {
	s := NewJWTSessionStore("test-secret", time.Hour)

	token, err := s.NewSession("user-42")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	userID, ok, err := s.GetUserIDByToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("token should verify")
	}
	if userID != "user-42" {
		t.Fatalf("userID = %s, want user-42", userID)
	}
}

func TestJWTSessionExpired(t *testing.T) {
	s := NewJWTSessionStore("test-secret", time.Hour)
	token, err := s.NewSession("user-42")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	// Move the verifier's clock past expiry.
	s.now = func() time.Time { return time.Now().UTC().Add(2 * time.Hour) }
	if _, ok, _ := s.GetUserIDByToken(token); ok {
		t.Fatalf("expired token must not verify")
	}
}

func TestJWTSessionWrongSecret(t *testing.T) {
	issuer := NewJWTSessionStore("secret-a", time.Hour)
	verifier := NewJWTSessionStore("secret-b", time.Hour)

	token, err := issuer.NewSession("user-42")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, ok, _ := verifier.GetUserIDByToken(token); ok {
		t.Fatalf("token signed with another secret must not verify")
	}
}

func TestJWTSessionGarbage(t *testing.T) {
	s := NewJWTSessionStore("test-secret", time.Hour)
	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, ok, _ := s.GetUserIDByToken(token); ok {
			t.Fatalf("garbage token %q must not verify", token)
		}
	}
}

func TestJWTSessionEmptyUser(t *testing.T) {
	s := NewJWTSessionStore("test-secret", time.Hour)
	if _, err := s.NewSession("  "); err == nil {
		t.Fatalf("blank user id must be rejected")
	}
}
