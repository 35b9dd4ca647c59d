package utils

import (
	"testing"
	"time"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)

	token, err := GenerateAccessToken("42", "reception1", "Receptionist")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "42" {
		t.Errorf("expected user id 42, got %q", claims.UserID)
	}
	if claims.Username != "reception1" {
		t.Errorf("expected username reception1, got %q", claims.Username)
	}
	if claims.Role != "Receptionist" {
		t.Errorf("expected role Receptionist, got %q", claims.Role)
	}
	if remaining := time.Until(claims.Expiry); remaining <= 0 || remaining > AccessTokenExpiry {
		t.Errorf("unexpected expiry: %v", claims.Expiry)
	}
}

func TestValidateTokenRoleCheck(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)

	token, err := GenerateAccessToken("7", "acct", "Accountant")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := ValidateToken(token, "Accountant", "Administrator"); err != nil {
		t.Errorf("expected Accountant to pass, got %v", err)
	}
	if _, err := ValidateToken(token, "Administrator"); err == nil {
		t.Error("expected role mismatch to fail")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected malformed token to fail")
	}
}
