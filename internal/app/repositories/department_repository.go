package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/pkg/apperrors"
	"github.com/umutk/registrar/internal/pkg/helpers"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name, location)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, department.Name, helpers.GetNullString(department.Location)).Scan(&department.ID)
	if err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, name, COALESCE(location, '')
		FROM departments
		WHERE id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.Name,
		&department.Location,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, name, COALESCE(location, '')
		FROM departments
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDepartments(rows)
}

// Search retrieves departments matching an exact id (numeric terms) or a
// case-insensitive name substring
func (r *DepartmentRepository) Search(ctx context.Context, term string) ([]*models.Department, error) {
	parsed := helpers.ParseSearchTerm(term)

	query := `
		SELECT id, name, COALESCE(location, '')
		FROM departments
		WHERE name ILIKE $1
	`
	args := []interface{}{parsed.Pattern}

	if parsed.Numeric {
		query = `
			SELECT id, name, COALESCE(location, '')
			FROM departments
			WHERE id = $1 OR name ILIKE $2
		`
		args = []interface{}{parsed.ID, parsed.Pattern}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDepartments(rows)
}

// Update updates an existing department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET name = $1, location = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query,
		department.Name, helpers.GetNullString(department.Location), department.ID)
	if err != nil {
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete deletes a department by ID. Referencing professors and courses
// are detached, not deleted (ON DELETE SET NULL).
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM departments WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

func scanDepartments(rows pgx.Rows) ([]*models.Department, error) {
	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.Location,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}
