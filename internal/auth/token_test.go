package auth

import (
	"testing"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)

	token, expiresAt, err := tm.GenerateToken("acc-1", domain.RoleAgent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if expiresAt.IsZero() {
		t.Fatal("zero expiry")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.AccountID != "acc-1" {
		t.Fatalf("AccountID = %q, want acc-1", claims.AccountID)
	}
	if claims.Role != domain.RoleAgent {
		t.Fatalf("Role = %q, want %q", claims.Role, domain.RoleAgent)
	}
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 15).GenerateToken("acc-1", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := NewTokenManager("secret-b", 15).ParseToken(token); err == nil {
		t.Fatal("ParseToken accepted token signed with a different secret")
	}
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	if _, err := NewTokenManager("secret", 15).ParseToken("not-a-jwt"); err == nil {
		t.Fatal("ParseToken accepted garbage input")
	}
}
