package services

import (
	"context"
	"strings"

	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/app/models/dto"
	"github.com/umutk/registrar/internal/pkg/apperrors"
	"github.com/umutk/registrar/internal/pkg/validation"
)

// courseStore is the persistence surface the course service needs
type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByProfessorID(ctx context.Context, professorID int64) ([]*models.Course, error)
	Search(ctx context.Context, term string) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	AssignProfessor(ctx context.Context, courseID, professorID int64) error
	Delete(ctx context.Context, id int64) error
}

// CourseService handles course-related operations
type CourseService struct {
	courseRepo courseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseStore) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

// CreateCourse validates and stores a new course
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := validation.CheckName(req.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if req.Credits < 0 {
		return nil, apperrors.NewValidationError("credits must not be negative")
	}

	course := &models.Course{
		Name:         strings.TrimSpace(req.Name),
		Credits:      req.Credits,
		Semester:     strings.TrimSpace(req.Semester),
		DepartmentID: req.DepartmentID,
		ProfessorID:  req.ProfessorID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return s.courseRepo.GetByID(ctx, course.ID)
}

// GetCourse retrieves a course by ID
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListCourses retrieves all courses, or those matching a search term
// when one is given
func (s *CourseService) ListCourses(ctx context.Context, term string) ([]*models.Course, error) {
	if strings.TrimSpace(term) != "" {
		return s.courseRepo.Search(ctx, strings.TrimSpace(term))
	}
	return s.courseRepo.GetAll(ctx)
}

// ListCoursesByProfessor retrieves the courses assigned to a professor
func (s *CourseService) ListCoursesByProfessor(ctx context.Context, professorID int64) ([]*models.Course, error) {
	return s.courseRepo.GetByProfessorID(ctx, professorID)
}

// UpdateCourse validates and updates an existing course
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if err := validation.CheckName(req.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if req.Credits < 0 {
		return nil, apperrors.NewValidationError("credits must not be negative")
	}

	course := &models.Course{
		ID:           id,
		Name:         strings.TrimSpace(req.Name),
		Credits:      req.Credits,
		Semester:     strings.TrimSpace(req.Semester),
		DepartmentID: req.DepartmentID,
		ProfessorID:  req.ProfessorID,
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return s.courseRepo.GetByID(ctx, id)
}

// AssignProfessor assigns a professor to a course
func (s *CourseService) AssignProfessor(ctx context.Context, courseID int64, req *dto.AssignProfessorRequest) (*models.Course, error) {
	if err := s.courseRepo.AssignProfessor(ctx, courseID, req.ProfessorID); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, courseID)
}

// DeleteCourse deletes a course along with its sections and their
// enrollments
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}
