package helpers

import (
	"database/sql"
	"strconv"
	"strings"
)

// GetNullString converts a string value to sql.NullString.
// An empty string becomes an empty NullString.
func GetNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// GetNullInt64 converts an *int64 to sql.NullInt64.
// A nil pointer becomes an empty NullInt64.
func GetNullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

// SearchTerm is a parsed search input: an optional exact id plus an
// ILIKE pattern for substring matching on a display field.
type SearchTerm struct {
	ID      int64
	Numeric bool
	Pattern string
}

// ParseSearchTerm interprets a raw search input. An all-digit term
// matches either the row id or the display field; anything else matches
// the display field only, case-insensitively.
func ParseSearchTerm(term string) SearchTerm {
	term = strings.TrimSpace(term)
	parsed := SearchTerm{Pattern: "%" + term + "%"}
	if id, err := strconv.ParseInt(term, 10, 64); err == nil {
		parsed.ID = id
		parsed.Numeric = true
	}
	return parsed
}
