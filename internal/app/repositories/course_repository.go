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

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseListQuery = `
	SELECT c.id, c.name, c.credits, COALESCE(c.semester, ''), c.department_id, c.professor_id,
	       COALESCE(d.name, ''), COALESCE(p.name, '')
	FROM courses c
	LEFT JOIN departments d ON c.department_id = d.id
	LEFT JOIN professors p ON c.professor_id = p.id
`

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, credits, semester, department_id, professor_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Name,
		course.Credits,
		helpers.GetNullString(course.Semester),
		helpers.GetNullInt64(course.DepartmentID),
		helpers.GetNullInt64(course.ProfessorID),
	).Scan(&course.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("department or professor not found")
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID with its display names resolved
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := courseListQuery + ` WHERE c.id = $1`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Credits,
		&course.Semester,
		&course.DepartmentID,
		&course.ProfessorID,
		&course.DepartmentName,
		&course.ProfessorName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves all courses with department and professor names
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, courseListQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetByProfessorID retrieves the courses assigned to a professor
func (r *CourseRepository) GetByProfessorID(ctx context.Context, professorID int64) ([]*models.Course, error) {
	query := courseListQuery + ` WHERE c.professor_id = $1`

	rows, err := r.db.Query(ctx, query, professorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// Search retrieves courses matching an exact id (numeric terms) or a
// case-insensitive course name substring
func (r *CourseRepository) Search(ctx context.Context, term string) ([]*models.Course, error) {
	parsed := helpers.ParseSearchTerm(term)

	query := courseListQuery + ` WHERE c.name ILIKE $1`
	args := []interface{}{parsed.Pattern}

	if parsed.Numeric {
		query = courseListQuery + ` WHERE c.id = $1 OR c.name ILIKE $2`
		args = []interface{}{parsed.ID, parsed.Pattern}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, credits = $2, semester = $3, department_id = $4, professor_id = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Name,
		course.Credits,
		helpers.GetNullString(course.Semester),
		helpers.GetNullInt64(course.DepartmentID),
		helpers.GetNullInt64(course.ProfessorID),
		course.ID,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("department or professor not found")
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// AssignProfessor sets a course's professor
func (r *CourseRepository) AssignProfessor(ctx context.Context, courseID, professorID int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE courses SET professor_id = $1 WHERE id = $2`, professorID, courseID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProfessorNotFound
		}
		return fmt.Errorf("error assigning professor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID along with its sections and their
// enrollments (ON DELETE CASCADE).
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

func scanCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Credits,
			&course.Semester,
			&course.DepartmentID,
			&course.ProfessorID,
			&course.DepartmentName,
			&course.ProfessorName,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
