package auth

import (
	"strings"
	"testing"
	"time"
)

func newTestJWTer() *JWTer {
	return &JWTer{
		Secret: []byte("test-secret-key-at-least-32-chars-long"),
		Issuer: "blog-api-test",
		TTL:    15 * time.Minute,
	}
}

func TestIssueParseRoundTrip(t *testing.T) {
	j := newTestJWTer()

	tok, err := j.Issue("alice-pid")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if tok == "" {
		t.Fatal("Issue() returned empty token")
	}
	if strings.Count(tok, ".") != 2 {
		t.Errorf("token is not compact JWS: %q", tok)
	}

	claims, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.PID != "alice-pid" {
		t.Errorf("claims.PID = %q, want %q", claims.PID, "alice-pid")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue("alice-pid")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	other := newTestJWTer()
	other.Secret = []byte("another-secret-that-is-also-32-chars!!")
	if _, err := other.Parse(tok); err == nil {
		t.Error("Parse() with wrong secret should fail")
	}
}

func TestParse_Expired(t *testing.T) {
	j := newTestJWTer()
	// 过期超出 60s leeway
	j.TTL = -2 * time.Minute
	tok, err := j.Issue("alice-pid")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := j.Parse(tok); err == nil {
		t.Error("Parse() of expired token should fail")
	}
}

func TestParse_WrongIssuer(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue("alice-pid")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	other := newTestJWTer()
	other.Issuer = "someone-else"
	if _, err := other.Parse(tok); err == nil {
		t.Error("Parse() with wrong issuer should fail")
	}
}

func TestParse_Garbage(t *testing.T) {
	j := newTestJWTer()
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := j.Parse(tok); err == nil {
			t.Errorf("Parse(%q) should fail", tok)
		}
	}
}
