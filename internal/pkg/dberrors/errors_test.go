package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "students_username_key"}
	if !IsUniqueViolation(unique) {
		t.Error("unique violation not detected")
	}
	if !IsUniqueViolation(fmt.Errorf("insert failed: %w", unique)) {
		t.Error("wrapped unique violation not detected")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation reported as unique violation")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Error("plain error reported as unique violation")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil reported as unique violation")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "enrollments_student_section_key"}
	if !IsDuplicateConstraintError(err, "enrollments_student_section_key") {
		t.Error("matching constraint not detected")
	}
	if IsDuplicateConstraintError(err, "students_username_key") {
		t.Error("mismatched constraint detected")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}
	if !IsForeignKeyViolation(fk) {
		t.Error("foreign key violation not detected")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation reported as foreign key violation")
	}
}
