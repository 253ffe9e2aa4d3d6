package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/pkg/apperrors"
	"github.com/umutk/registrar/internal/pkg/dberrors"
	"github.com/umutk/registrar/internal/pkg/helpers"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email, date_of_birth, username, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		helpers.GetNullString(student.Email),
		helpers.GetNullString(student.DateOfBirth),
		student.Username,
		student.Password,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(date_of_birth, ''), username, password
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.DateOfBirth,
		&student.Username,
		&student.Password,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByUsername retrieves a student by exact username match
func (r *StudentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(date_of_birth, ''), username, password
		FROM students
		WHERE username = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, username).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.DateOfBirth,
		&student.Username,
		&student.Password,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by username: %w", err)
	}

	return &student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(date_of_birth, ''), username
		FROM students
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Search retrieves students matching an exact id (numeric terms) or a
// case-insensitive name substring
func (r *StudentRepository) Search(ctx context.Context, term string) ([]*models.Student, error) {
	parsed := helpers.ParseSearchTerm(term)

	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(date_of_birth, ''), username
		FROM students
		WHERE name ILIKE $1
	`
	args := []interface{}{parsed.Pattern}

	if parsed.Numeric {
		query = `
			SELECT id, name, COALESCE(email, ''), COALESCE(date_of_birth, ''), username
			FROM students
			WHERE id = $1 OR name ILIKE $2
		`
		args = []interface{}{parsed.ID, parsed.Pattern}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Update updates an existing student. An empty password leaves the
// stored password unchanged.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2, date_of_birth = $3, username = $4
		WHERE id = $5
	`
	args := []interface{}{
		student.Name,
		helpers.GetNullString(student.Email),
		helpers.GetNullString(student.DateOfBirth),
		student.Username,
		student.ID,
	}

	if student.Password != "" {
		query = `
			UPDATE students
			SET name = $1, email = $2, date_of_birth = $3, username = $4, password = $5
			WHERE id = $6
		`
		args = []interface{}{
			student.Name,
			helpers.GetNullString(student.Email),
			helpers.GetNullString(student.DateOfBirth),
			student.Username,
			student.Password,
			student.ID,
		}
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdatePassword replaces a student's stored password value
func (r *StudentRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE students SET password = $1 WHERE id = $2`, password, id)
	if err != nil {
		return fmt.Errorf("error updating student password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete deletes a student by ID. The student's enrollments go with it.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

func scanStudents(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.DateOfBirth,
			&student.Username,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
