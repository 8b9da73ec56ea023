package services

import (
	"os"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct-horse-battery" {
		t.Fatal("hash should not equal the plaintext password")
	}

	ok, err := VerifyPassword(hash, "correct-horse-battery")
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if !ok {
		t.Error("correct password should verify")
	}

	ok, err = VerifyPassword(hash, "wrong-password")
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if ok {
		t.Error("wrong password should not verify")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("not-a-valid-hash", "anything"); err == nil {
		t.Error("expected error for malformed stored hash")
	}
}

func TestCheckAdminPassword(t *testing.T) {
	oldHash := os.Getenv("ADMIN_PASSWORD_HASH")
	oldPlain := os.Getenv("ADMIN_PASSWORD")
	t.Cleanup(func() {
		os.Setenv("ADMIN_PASSWORD_HASH", oldHash)
		os.Setenv("ADMIN_PASSWORD", oldPlain)
	})

	// Hash takes precedence when both are set
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	os.Setenv("ADMIN_PASSWORD_HASH", hash)
	os.Setenv("ADMIN_PASSWORD", "something-else")

	ok, err := CheckAdminPassword("hunter2")
	if err != nil {
		t.Fatalf("CheckAdminPassword failed: %v", err)
	}
	if !ok {
		t.Error("password matching the hash should be accepted")
	}

	ok, err = CheckAdminPassword("something-else")
	if err != nil {
		t.Fatalf("CheckAdminPassword failed: %v", err)
	}
	if ok {
		t.Error("plain password should not be checked when a hash is set")
	}

	// Plain comparison when only ADMIN_PASSWORD is set
	os.Unsetenv("ADMIN_PASSWORD_HASH")
	ok, err = CheckAdminPassword("something-else")
	if err != nil {
		t.Fatalf("CheckAdminPassword failed: %v", err)
	}
	if !ok {
		t.Error("plain password comparison should succeed")
	}

	// Neither configured
	os.Unsetenv("ADMIN_PASSWORD")
	if _, err := CheckAdminPassword("anything"); err == nil {
		t.Error("expected error when no admin password is configured")
	}
}
