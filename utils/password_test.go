package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Abcdef1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Abcdef1" {
		t.Fatal("hash must not equal the plain password")
	}
	if !CheckPassword(hash, "Abcdef1") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "abcdef1") {
		t.Error("expected wrong password to fail")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("Abcdef1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("Abcdef1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Error("expected different salts to produce different hashes")
	}
}
