package helpers

import (
	"testing"
	"time"
)

func TestGetNullString(t *testing.T) {
	if v := GetNullString(""); v.Valid {
		t.Error("empty string should produce an invalid NullString")
	}
	v := GetNullString("Room 101")
	if !v.Valid || v.String != "Room 101" {
		t.Errorf("GetNullString = %+v, want valid %q", v, "Room 101")
	}
}

func TestGetNullInt64(t *testing.T) {
	if v := GetNullInt64(nil); v.Valid {
		t.Error("nil pointer should produce an invalid NullInt64")
	}
	id := int64(7)
	v := GetNullInt64(&id)
	if !v.Valid || v.Int64 != 7 {
		t.Errorf("GetNullInt64 = %+v, want valid 7", v)
	}
}

func TestParseSearchTerm(t *testing.T) {
	tests := []struct {
		name        string
		term        string
		wantNumeric bool
		wantID      int64
		wantPattern string
	}{
		{"numeric term", "42", true, 42, "%42%"},
		{"name term", "Ada", false, 0, "%Ada%"},
		{"mixed term", "42nd Street", false, 0, "%42nd Street%"},
		{"trimmed", "  17  ", true, 17, "%17%"},
		{"empty", "", false, 0, "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSearchTerm(tt.term)
			if got.Numeric != tt.wantNumeric {
				t.Errorf("Numeric = %v, want %v", got.Numeric, tt.wantNumeric)
			}
			if got.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", got.ID, tt.wantID)
			}
			if got.Pattern != tt.wantPattern {
				t.Errorf("Pattern = %q, want %q", got.Pattern, tt.wantPattern)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("2h", time.Minute); got != 2*time.Hour {
		t.Errorf("ParseDuration(2h) = %v, want 2h", got)
	}
	if got := ParseDuration("not-a-duration", time.Minute); got != time.Minute {
		t.Errorf("ParseDuration fallback = %v, want 1m", got)
	}
}
