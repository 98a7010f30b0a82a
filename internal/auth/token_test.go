package auth

import (
	"testing"
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

func TestTokenManager_ShopperRoundtrip(t *testing.T) {
	tm := NewTokenManager("secret", 2*time.Hour)

	token, exp, err := tm.GenerateShopperToken(42, "a@x.com")
	if err != nil {
		t.Fatalf("GenerateShopperToken error: %v", err)
	}
	if remaining := time.Until(exp); remaining < 119*time.Minute || remaining > 121*time.Minute {
		t.Fatalf("unexpected expiry horizon: %v", remaining)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.SubjectID != 42 {
		t.Fatalf("subject id mismatch: got %d", claims.SubjectID)
	}
	if claims.Subject != domain.SubjectTypeShopper {
		t.Fatalf("subject type mismatch: got %s", claims.Subject)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
}

func TestTokenManager_AdminRoundtrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, _, err := tm.GenerateAdminToken(1)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.Subject != domain.SubjectTypeAdmin {
		t.Fatalf("expected admin subject, got %s", claims.Subject)
	}
	if claims.Email != "" {
		t.Fatalf("admin token must not carry an email claim")
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm := &TokenManager{secret: []byte("secret"), ttl: -time.Minute}

	token, _, err := tm.generate(7, domain.SubjectTypeShopper, "b@x.com")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if _, err := tm.ParseToken(token); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("right-secret", time.Hour)
	verifier := NewTokenManager("wrong-secret", time.Hour)

	token, _, err := issuer.GenerateShopperToken(7, "b@x.com")
	if err != nil {
		t.Fatalf("GenerateShopperToken error: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatalf("expected error for token signed with another secret")
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	if _, err := tm.ParseToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	tm := NewTokenManager("secret", 0)
	if tm.ttl != 2*time.Hour {
		t.Fatalf("expected 2h default ttl, got %v", tm.ttl)
	}
}
