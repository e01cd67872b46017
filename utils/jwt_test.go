package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("cust-1", RoleCustomer, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	subject, role, err := ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("ExtractClaimsFromToken returned error: %v", err)
	}
	if subject != "cust-1" {
		t.Fatalf("expected subject cust-1, got %s", subject)
	}
	if role != RoleCustomer {
		t.Fatalf("expected role %s, got %s", RoleCustomer, role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("tech-1", RoleTechnician, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if _, _, err := ExtractClaimsFromToken(token); err == nil {
		t.Fatal("expired token should be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, _, err := ExtractClaimsFromToken("not-a-token"); err == nil {
		t.Fatal("malformed token should be rejected")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("token-value")
	b := HashToken("token-value")
	if a != b {
		t.Fatal("hashing the same token twice must match")
	}
	if a == HashToken("other-token") {
		t.Fatal("different tokens must not collide in tests")
	}
	if len(a) != 64 {
		t.Fatalf("expected hex sha-256 length 64, got %d", len(a))
	}
}
