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

// professorStore is the persistence surface the professor service needs
type professorStore interface {
	Create(ctx context.Context, professor *models.Professor) error
	GetByID(ctx context.Context, id int64) (*models.Professor, error)
	GetAll(ctx context.Context) ([]*models.Professor, error)
	Search(ctx context.Context, term string) ([]*models.Professor, error)
	Update(ctx context.Context, professor *models.Professor) error
	Delete(ctx context.Context, id int64) error
}

// ProfessorService handles professor-related operations
type ProfessorService struct {
	professorRepo professorStore
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(professorRepo professorStore) *ProfessorService {
	return &ProfessorService{
		professorRepo: professorRepo,
	}
}

// CreateProfessor validates and stores a new professor. The password is
// hashed before it reaches the repository.
func (s *ProfessorService) CreateProfessor(ctx context.Context, req *dto.CreateProfessorRequest) (*models.Professor, error) {
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

	professor := &models.Professor{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		DepartmentID: req.DepartmentID,
		Username:     strings.TrimSpace(req.Username),
		Password:     hashed,
	}

	if err := s.professorRepo.Create(ctx, professor); err != nil {
		return nil, err
	}

	professor.Password = ""
	return professor, nil
}

// GetProfessor retrieves a professor by ID. The stored password never
// leaves the service.
func (s *ProfessorService) GetProfessor(ctx context.Context, id int64) (*models.Professor, error) {
	professor, err := s.professorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	professor.Password = ""
	return professor, nil
}

// ListProfessors retrieves all professors, or those matching a search
// term when one is given
func (s *ProfessorService) ListProfessors(ctx context.Context, term string) ([]*models.Professor, error) {
	if strings.TrimSpace(term) != "" {
		return s.professorRepo.Search(ctx, strings.TrimSpace(term))
	}
	return s.professorRepo.GetAll(ctx)
}

// UpdateProfessor validates and updates an existing professor. A blank
// password keeps the stored one; a new password is hashed first.
func (s *ProfessorService) UpdateProfessor(ctx context.Context, id int64, req *dto.UpdateProfessorRequest) (*models.Professor, error) {
	if err := validation.CheckName(req.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := validation.CheckUsername(req.Username); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	professor := &models.Professor{
		ID:           id,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		DepartmentID: req.DepartmentID,
		Username:     strings.TrimSpace(req.Username),
	}

	if req.Password != "" {
		if err := validation.CheckPassword(req.Password); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		professor.Password = hashed
	}

	if err := s.professorRepo.Update(ctx, professor); err != nil {
		return nil, err
	}

	professor.Password = ""
	return professor, nil
}

// DeleteProfessor deletes a professor. Their courses are detached, not
// deleted.
func (s *ProfessorService) DeleteProfessor(ctx context.Context, id int64) error {
	return s.professorRepo.Delete(ctx, id)
}
