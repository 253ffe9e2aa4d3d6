package auth

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "secret123" {
		t.Fatal("hash equals plaintext")
	}
	if !IsHashed(hashed) {
		t.Errorf("IsHashed(%q) = false, want true", hashed)
	}
	if !CheckPassword(hashed, "secret123") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hashed, "wrong") {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestCheckPasswordLegacyPlaintext(t *testing.T) {
	// Values migrated from the legacy store are plain text until the
	// first successful login rehashes them.
	if !CheckPassword("admin123", "admin123") {
		t.Error("plaintext store value should match the same password")
	}
	if CheckPassword("admin123", "admin124") {
		t.Error("plaintext store value matched a different password")
	}
}

func TestIsHashed(t *testing.T) {
	tests := []struct {
		stored string
		want   bool
	}{
		{"$2a$12$abcdefghijklmnopqrstuv", true},
		{"$2b$10$abcdefghijklmnopqrstuv", true},
		{"$2y$10$abcdefghijklmnopqrstuv", true},
		{"admin123", false},
		{"", false},
		{"$1$legacy", false},
	}

	for _, tt := range tests {
		if got := IsHashed(tt.stored); got != tt.want {
			t.Errorf("IsHashed(%q) = %v, want %v", tt.stored, got, tt.want)
		}
	}
}
