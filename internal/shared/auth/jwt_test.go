package auth

import (
	"testing"
	"time"
)

func TestSignAndVerify(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)

	token, err := signer.Sign(Claims{Sub: "user-1", Name: "jane", Role: "applicant"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Sub != "user-1" || claims.Name != "jane" || claims.Role != "applicant" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewSigner("secret-a", time.Hour)
	token, err := signer.Sign(Claims{Sub: "user-1"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	other := NewSigner("secret-b", time.Hour)
	if _, err := other.Verify(token); err == nil {
		t.Fatalf("expected verification failure with wrong secret")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	signer := NewSigner("test-secret", time.Minute)
	token, err := signer.Sign(Claims{Sub: "user-1"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	signer.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, err := signer.Verify(token); err == nil {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestSignRequiresSub(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)
	if _, err := signer.Sign(Claims{}); err == nil {
		t.Fatalf("expected error for empty sub")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)
	if _, err := signer.Verify("not.a.token"); err == nil {
		t.Fatalf("expected garbage token to fail")
	}
}
