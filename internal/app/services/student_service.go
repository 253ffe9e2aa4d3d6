package services

import (
	"context"
	"strings"

	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/app/models/dto"
	"github.com/umutk/registrar/internal/pkg/apperrors"
	"github.com/umutk/registrar/internal/pkg/auth"
	"github.com/umutk/registrar/internal/pkg/validation"
)

// studentStore is the persistence surface the student service needs
type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Search(ctx context.Context, term string) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// StudentService handles student-related operations
type StudentService struct {
	studentRepo studentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo studentStore) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// CreateStudent validates and stores a new student. The password is
// hashed before it reaches the repository.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := validation.CheckName(req.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := validation.CheckUsername(req.Username); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := validation.CheckPassword(req.Password); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		DateOfBirth: strings.TrimSpace(req.DateOfBirth),
		Username:    strings.TrimSpace(req.Username),
		Password:    hashed,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	student.Password = ""
	return student, nil
}

// GetStudent retrieves a student by ID. The stored password never leaves
// the service.
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	student.Password = ""
	return student, nil
}

// ListStudents retrieves all students, or those matching a search term
// when one is given
func (s *StudentService) ListStudents(ctx context.Context, term string) ([]*models.Student, error) {
	if strings.TrimSpace(term) != "" {
		return s.studentRepo.Search(ctx, strings.TrimSpace(term))
	}
	return s.studentRepo.GetAll(ctx)
}

// UpdateStudent validates and updates an existing student. A blank
// password keeps the stored one; a new password is hashed first.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if err := validation.CheckName(req.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := validation.CheckUsername(req.Username); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	student := &models.Student{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		DateOfBirth: strings.TrimSpace(req.DateOfBirth),
		Username:    strings.TrimSpace(req.Username),
	}

	if req.Password != "" {
		if err := validation.CheckPassword(req.Password); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		student.Password = hashed
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	student.Password = ""
	return student, nil
}

// DeleteStudent deletes a student along with their enrollments
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
