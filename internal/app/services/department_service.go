package services

import (
	"context"
	"strings"

	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/app/models/dto"
	"github.com/umutk/registrar/internal/pkg/apperrors"
	"github.com/umutk/registrar/internal/pkg/validation"
)

// departmentStore is the persistence surface the department service needs
type departmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Search(ctx context.Context, term string) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo departmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo departmentStore) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

// CreateDepartment validates and stores a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	if err := validation.CheckName(req.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	department := &models.Department{
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// GetDepartment retrieves a department by ID
func (s *DepartmentService) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// ListDepartments retrieves all departments, or those matching a search
// term when one is given
func (s *DepartmentService) ListDepartments(ctx context.Context, term string) ([]*models.Department, error) {
	if strings.TrimSpace(term) != "" {
		return s.departmentRepo.Search(ctx, strings.TrimSpace(term))
	}
	return s.departmentRepo.GetAll(ctx)
}

// UpdateDepartment validates and updates an existing department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	if err := validation.CheckName(req.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	department := &models.Department{
		ID:       id,
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// DeleteDepartment deletes a department. Professors and courses that
// referenced it are detached rather than removed.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	return s.departmentRepo.Delete(ctx, id)
}
