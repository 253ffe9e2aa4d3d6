package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/db"
	"github.com/umutk/registrar/internal/pkg/apperrors"
	"github.com/umutk/registrar/internal/pkg/dberrors"
	"github.com/umutk/registrar/internal/pkg/helpers"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

const enrollmentListQuery = `
	SELECT e.id, e.student_id, e.section_id, e.grade, st.name,
	       c.name || ' - ' || COALESCE(s.room, '') || ' (' || COALESCE(s.time_slot, '') || ')'
	FROM enrollments e
	JOIN students st ON e.student_id = st.id
	JOIN sections s ON e.section_id = s.id
	JOIN courses c ON s.course_id = c.id
`

// Create creates a new enrollment for an explicit student/section pair
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.Grade == "" {
		enrollment.Grade = models.DefaultGrade
	}

	query := `
		INSERT INTO enrollments (student_id, section_id, grade)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID,
		enrollment.SectionID,
		enrollment.Grade,
	).Scan(&enrollment.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("student or section not found")
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment by ID with its display fields resolved
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := enrollmentListQuery + ` WHERE e.id = $1`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.SectionID,
		&enrollment.Grade,
		&enrollment.StudentName,
		&enrollment.SectionLabel,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// GetAll retrieves all enrollments with student and section labels
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, enrollmentListQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEnrollments(rows)
}

// Search retrieves enrollments matching an exact id (numeric terms) or a
// case-insensitive student name substring
func (r *EnrollmentRepository) Search(ctx context.Context, term string) ([]*models.Enrollment, error) {
	parsed := helpers.ParseSearchTerm(term)

	query := enrollmentListQuery + ` WHERE st.name ILIKE $1`
	args := []interface{}{parsed.Pattern}

	if parsed.Numeric {
		query = enrollmentListQuery + ` WHERE e.id = $1 OR st.name ILIKE $2`
		args = []interface{}{parsed.ID, parsed.Pattern}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEnrollments(rows)
}

// Update updates an existing enrollment
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.Grade == "" {
		enrollment.Grade = models.DefaultGrade
	}

	query := `
		UPDATE enrollments
		SET student_id = $1, section_id = $2, grade = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		enrollment.StudentID,
		enrollment.SectionID,
		enrollment.Grade,
		enrollment.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("student or section not found")
		}
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// Delete deletes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// EnrollInCourse enrolls a student in a course's first section, creating
// a placeholder section when the course has none yet. The whole sequence
// runs in one transaction so a failed insert cannot leave an orphan
// section behind.
func (r *EnrollmentRepository) EnrollInCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{
		StudentID: studentID,
		Grade:     models.DefaultGrade,
	}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var sectionID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM sections WHERE course_id = $1 ORDER BY id LIMIT 1`,
			courseID,
		).Scan(&sectionID)
		if errors.Is(err, pgx.ErrNoRows) {
			err = tx.QueryRow(ctx,
				`INSERT INTO sections (course_id, room, time_slot) VALUES ($1, $2, $2) RETURNING id`,
				courseID, models.PlaceholderSectionValue,
			).Scan(&sectionID)
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrCourseNotFound
			}
		}
		if err != nil {
			return fmt.Errorf("error resolving section: %w", err)
		}

		enrollment.SectionID = sectionID

		err = tx.QueryRow(ctx,
			`INSERT INTO enrollments (student_id, section_id, grade) VALUES ($1, $2, $3) RETURNING id`,
			enrollment.StudentID, enrollment.SectionID, enrollment.Grade,
		).Scan(&enrollment.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrAlreadyEnrolled
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

// GetCoursesByStudentID retrieves a student's enrolled courses with
// resolved professor and department names
func (r *EnrollmentRepository) GetCoursesByStudentID(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	query := `
		SELECT c.id, c.name, c.credits, COALESCE(p.name, ''), COALESCE(d.name, ''), e.grade
		FROM enrollments e
		JOIN sections s ON e.section_id = s.id
		JOIN courses c ON s.course_id = c.id
		LEFT JOIN professors p ON c.professor_id = p.id
		LEFT JOIN departments d ON c.department_id = d.id
		WHERE e.student_id = $1
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.EnrolledCourse
	for rows.Next() {
		var course models.EnrolledCourse
		if err := rows.Scan(
			&course.CourseID,
			&course.CourseName,
			&course.Credits,
			&course.ProfessorName,
			&course.DepartmentName,
			&course.Grade,
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

// GetStudentsByProfessorID retrieves the students enrolled in any section
// of the professor's courses
func (r *EnrollmentRepository) GetStudentsByProfessorID(ctx context.Context, professorID int64) ([]*models.CourseStudent, error) {
	query := `
		SELECT st.id, st.name, COALESCE(st.email, ''), c.name, e.grade
		FROM enrollments e
		JOIN sections s ON e.section_id = s.id
		JOIN courses c ON s.course_id = c.id
		JOIN students st ON e.student_id = st.id
		WHERE c.professor_id = $1
	`

	rows, err := r.db.Query(ctx, query, professorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.CourseStudent
	for rows.Next() {
		var student models.CourseStudent
		if err := rows.Scan(
			&student.StudentID,
			&student.Name,
			&student.Email,
			&student.CourseName,
			&student.Grade,
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

func scanEnrollments(rows pgx.Rows) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.SectionID,
			&enrollment.Grade,
			&enrollment.StudentName,
			&enrollment.SectionLabel,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}
