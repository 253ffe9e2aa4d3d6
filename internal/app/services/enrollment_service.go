package services

import (
	"context"
	"strings"

	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/app/models/dto"
)

// enrollmentStore is the persistence surface the enrollment service needs
type enrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	Search(ctx context.Context, term string) ([]*models.Enrollment, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
	EnrollInCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	GetCoursesByStudentID(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error)
	GetStudentsByProfessorID(ctx context.Context, professorID int64) ([]*models.CourseStudent, error)
}

// EnrollmentService handles enrollment-related operations
type EnrollmentService struct {
	enrollmentRepo enrollmentStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo enrollmentStore) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
	}
}

// CreateEnrollment stores an admin-created enrollment for an explicit
// student/section pair
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{
		StudentID: req.StudentID,
		SectionID: req.SectionID,
		Grade:     strings.TrimSpace(req.Grade),
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	return s.enrollmentRepo.GetByID(ctx, enrollment.ID)
}

// GetEnrollment retrieves an enrollment by ID
func (s *EnrollmentService) GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error) {
	return s.enrollmentRepo.GetByID(ctx, id)
}

// ListEnrollments retrieves all enrollments, or those matching a search
// term when one is given
func (s *EnrollmentService) ListEnrollments(ctx context.Context, term string) ([]*models.Enrollment, error) {
	if strings.TrimSpace(term) != "" {
		return s.enrollmentRepo.Search(ctx, strings.TrimSpace(term))
	}
	return s.enrollmentRepo.GetAll(ctx)
}

// UpdateEnrollment updates an existing enrollment, typically its grade
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, id int64, req *dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{
		ID:        id,
		StudentID: req.StudentID,
		SectionID: req.SectionID,
		Grade:     strings.TrimSpace(req.Grade),
	}

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	return s.enrollmentRepo.GetByID(ctx, id)
}

// DeleteEnrollment deletes an enrollment by ID
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	return s.enrollmentRepo.Delete(ctx, id)
}

// EnrollInCourse enrolls the authenticated student in a course. The
// student never picks a section; the first one is used and a placeholder
// section is created for courses that have none.
func (s *EnrollmentService) EnrollInCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	return s.enrollmentRepo.EnrollInCourse(ctx, studentID, courseID)
}

// ListStudentCourses retrieves the courses a student is enrolled in,
// with grades
func (s *EnrollmentService) ListStudentCourses(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	return s.enrollmentRepo.GetCoursesByStudentID(ctx, studentID)
}

// ListProfessorStudents retrieves the students enrolled in the
// professor's courses
func (s *EnrollmentService) ListProfessorStudents(ctx context.Context, professorID int64) ([]*models.CourseStudent, error) {
	return s.enrollmentRepo.GetStudentsByProfessorID(ctx, professorID)
}
