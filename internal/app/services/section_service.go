package services

import (
	"context"
	"strings"

	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/app/models/dto"
	"github.com/umutk/registrar/internal/pkg/apperrors"
)

// sectionStore is the persistence surface the section service needs
type sectionStore interface {
	Create(ctx context.Context, section *models.Section) error
	GetByID(ctx context.Context, id int64) (*models.Section, error)
	GetAll(ctx context.Context) ([]*models.Section, error)
	Search(ctx context.Context, term string) ([]*models.Section, error)
	Update(ctx context.Context, section *models.Section) error
	Delete(ctx context.Context, id int64) error
}

// SectionService handles section-related operations
type SectionService struct {
	sectionRepo sectionStore
}

// NewSectionService creates a new section service instance
func NewSectionService(sectionRepo sectionStore) *SectionService {
	return &SectionService{
		sectionRepo: sectionRepo,
	}
}

// CreateSection validates and stores a new section
func (s *SectionService) CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*models.Section, error) {
	if req.CourseID <= 0 {
		return nil, apperrors.NewValidationError("course id must be positive")
	}

	section := &models.Section{
		CourseID: req.CourseID,
		Room:     strings.TrimSpace(req.Room),
		TimeSlot: strings.TrimSpace(req.TimeSlot),
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, err
	}

	return s.sectionRepo.GetByID(ctx, section.ID)
}

// GetSection retrieves a section by ID
func (s *SectionService) GetSection(ctx context.Context, id int64) (*models.Section, error) {
	return s.sectionRepo.GetByID(ctx, id)
}

// ListSections retrieves all sections, or those matching a search term
// when one is given
func (s *SectionService) ListSections(ctx context.Context, term string) ([]*models.Section, error) {
	if strings.TrimSpace(term) != "" {
		return s.sectionRepo.Search(ctx, strings.TrimSpace(term))
	}
	return s.sectionRepo.GetAll(ctx)
}

// UpdateSection validates and updates an existing section
func (s *SectionService) UpdateSection(ctx context.Context, id int64, req *dto.UpdateSectionRequest) (*models.Section, error) {
	if req.CourseID <= 0 {
		return nil, apperrors.NewValidationError("course id must be positive")
	}

	section := &models.Section{
		ID:       id,
		CourseID: req.CourseID,
		Room:     strings.TrimSpace(req.Room),
		TimeSlot: strings.TrimSpace(req.TimeSlot),
	}

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, err
	}

	return s.sectionRepo.GetByID(ctx, id)
}

// DeleteSection deletes a section along with its enrollments
func (s *SectionService) DeleteSection(ctx context.Context, id int64) error {
	return s.sectionRepo.Delete(ctx, id)
}
