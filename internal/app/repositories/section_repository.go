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

// SectionRepository handles database operations for course sections
type SectionRepository struct {
	db *pgxpool.Pool
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{
		db: db,
	}
}

const sectionListQuery = `
	SELECT s.id, s.course_id, COALESCE(s.room, ''), COALESCE(s.time_slot, ''), c.name
	FROM sections s
	JOIN courses c ON s.course_id = c.id
`

// Create creates a new section
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO sections (course_id, room, time_slot)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		section.CourseID,
		helpers.GetNullString(section.Room),
		helpers.GetNullString(section.TimeSlot),
	).Scan(&section.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating section: %w", err)
	}

	return nil
}

// GetByID retrieves a section by ID with its course name resolved
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	query := sectionListQuery + ` WHERE s.id = $1`

	var section models.Section
	err := r.db.QueryRow(ctx, query, id).Scan(
		&section.ID,
		&section.CourseID,
		&section.Room,
		&section.TimeSlot,
		&section.CourseName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}

	return &section, nil
}

// GetAll retrieves all sections with their course names
func (r *SectionRepository) GetAll(ctx context.Context) ([]*models.Section, error) {
	rows, err := r.db.Query(ctx, sectionListQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSections(rows)
}

// Search retrieves sections matching an exact id (numeric terms) or a
// case-insensitive course name substring
func (r *SectionRepository) Search(ctx context.Context, term string) ([]*models.Section, error) {
	parsed := helpers.ParseSearchTerm(term)

	query := sectionListQuery + ` WHERE c.name ILIKE $1`
	args := []interface{}{parsed.Pattern}

	if parsed.Numeric {
		query = sectionListQuery + ` WHERE s.id = $1 OR c.name ILIKE $2`
		args = []interface{}{parsed.ID, parsed.Pattern}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSections(rows)
}

// Update updates an existing section
func (r *SectionRepository) Update(ctx context.Context, section *models.Section) error {
	query := `
		UPDATE sections
		SET course_id = $1, room = $2, time_slot = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		section.CourseID,
		helpers.GetNullString(section.Room),
		helpers.GetNullString(section.TimeSlot),
		section.ID,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

// Delete deletes a section by ID along with its enrollments
func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

func scanSections(rows pgx.Rows) ([]*models.Section, error) {
	var sections []*models.Section
	for rows.Next() {
		var section models.Section
		if err := rows.Scan(
			&section.ID,
			&section.CourseID,
			&section.Room,
			&section.TimeSlot,
			&section.CourseName,
		); err != nil {
			return nil, err
		}
		sections = append(sections, &section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}
