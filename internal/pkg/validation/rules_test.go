package validation

import (
	"strings"
	"testing"
)

func TestCheckName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "Computer Science", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too short", "A", true},
		{"too long", strings.Repeat("a", NameMaxLength+1), true},
		{"at max", strings.Repeat("a", NameMaxLength), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckName(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckName(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestCheckUsername(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "jdoe", false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"contains space", "j doe", true},
		{"contains tab", "j\tdoe", true},
		{"too long", strings.Repeat("a", UsernameMaxLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckUsername(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckUsername(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestCheckPassword(t *testing.T) {
	if err := CheckPassword("secret1"); err != nil {
		t.Errorf("CheckPassword(valid) = %v", err)
	}
	if err := CheckPassword(""); err == nil {
		t.Error("empty password accepted")
	}
	if err := CheckPassword("short"); err == nil {
		t.Error("short password accepted")
	}
}
