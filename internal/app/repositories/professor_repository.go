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

// ProfessorRepository handles database operations for professors
type ProfessorRepository struct {
	db *pgxpool.Pool
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(db *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{
		db: db,
	}
}

// Create creates a new professor
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	query := `
		INSERT INTO professors (name, email, department_id, username, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		professor.Name,
		helpers.GetNullString(professor.Email),
		helpers.GetNullInt64(professor.DepartmentID),
		professor.Username,
		professor.Password,
	).Scan(&professor.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating professor: %w", err)
	}

	return nil
}

// GetByID retrieves a professor by ID
func (r *ProfessorRepository) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), department_id, username, password
		FROM professors
		WHERE id = $1
	`

	var professor models.Professor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&professor.ID,
		&professor.Name,
		&professor.Email,
		&professor.DepartmentID,
		&professor.Username,
		&professor.Password,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}

	return &professor, nil
}

// GetByUsername retrieves a professor by exact username match
func (r *ProfessorRepository) GetByUsername(ctx context.Context, username string) (*models.Professor, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), department_id, username, password
		FROM professors
		WHERE username = $1
	`

	var professor models.Professor
	err := r.db.QueryRow(ctx, query, username).Scan(
		&professor.ID,
		&professor.Name,
		&professor.Email,
		&professor.DepartmentID,
		&professor.Username,
		&professor.Password,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error retrieving professor by username: %w", err)
	}

	return &professor, nil
}

// GetAll retrieves all professors with their department resolved
func (r *ProfessorRepository) GetAll(ctx context.Context) ([]*models.Professor, error) {
	query := `
		SELECT p.id, p.name, COALESCE(p.email, ''), p.department_id, p.username,
		       d.id, d.name, COALESCE(d.location, '')
		FROM professors p
		LEFT JOIN departments d ON p.department_id = d.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProfessorsWithDepartment(rows)
}

// Search retrieves professors matching an exact id (numeric terms) or a
// case-insensitive name substring
func (r *ProfessorRepository) Search(ctx context.Context, term string) ([]*models.Professor, error) {
	parsed := helpers.ParseSearchTerm(term)

	query := `
		SELECT p.id, p.name, COALESCE(p.email, ''), p.department_id, p.username,
		       d.id, d.name, COALESCE(d.location, '')
		FROM professors p
		LEFT JOIN departments d ON p.department_id = d.id
		WHERE p.name ILIKE $1
	`
	args := []interface{}{parsed.Pattern}

	if parsed.Numeric {
		query = `
			SELECT p.id, p.name, COALESCE(p.email, ''), p.department_id, p.username,
			       d.id, d.name, COALESCE(d.location, '')
			FROM professors p
			LEFT JOIN departments d ON p.department_id = d.id
			WHERE p.id = $1 OR p.name ILIKE $2
		`
		args = []interface{}{parsed.ID, parsed.Pattern}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProfessorsWithDepartment(rows)
}

// Update updates an existing professor. An empty password leaves the
// stored password unchanged.
func (r *ProfessorRepository) Update(ctx context.Context, professor *models.Professor) error {
	query := `
		UPDATE professors
		SET name = $1, email = $2, department_id = $3, username = $4
		WHERE id = $5
	`
	args := []interface{}{
		professor.Name,
		helpers.GetNullString(professor.Email),
		helpers.GetNullInt64(professor.DepartmentID),
		professor.Username,
		professor.ID,
	}

	if professor.Password != "" {
		query = `
			UPDATE professors
			SET name = $1, email = $2, department_id = $3, username = $4, password = $5
			WHERE id = $6
		`
		args = []interface{}{
			professor.Name,
			helpers.GetNullString(professor.Email),
			helpers.GetNullInt64(professor.DepartmentID),
			professor.Username,
			professor.Password,
			professor.ID,
		}
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating professor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfessorNotFound
	}

	return nil
}

// UpdatePassword replaces a professor's stored password value
func (r *ProfessorRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE professors SET password = $1 WHERE id = $2`, password, id)
	if err != nil {
		return fmt.Errorf("error updating professor password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfessorNotFound
	}
	return nil
}

// Delete deletes a professor by ID. Courses taught by the professor are
// detached, not deleted (ON DELETE SET NULL).
func (r *ProfessorRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM professors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting professor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfessorNotFound
	}

	return nil
}

func scanProfessorsWithDepartment(rows pgx.Rows) ([]*models.Professor, error) {
	var professors []*models.Professor
	for rows.Next() {
		var professor models.Professor
		var deptID *int64
		var deptName, deptLocation *string
		if err := rows.Scan(
			&professor.ID,
			&professor.Name,
			&professor.Email,
			&professor.DepartmentID,
			&professor.Username,
			&deptID,
			&deptName,
			&deptLocation,
		); err != nil {
			return nil, err
		}
		if deptID != nil {
			professor.Department = &models.Department{
				ID:   *deptID,
				Name: *deptName,
			}
			if deptLocation != nil {
				professor.Department.Location = *deptLocation
			}
		}
		professors = append(professors, &professor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return professors, nil
}
