package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/talentnavigator/talentnavigator/internal/models"
	pgrepo "github.com/talentnavigator/talentnavigator/internal/repositories/postgres"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

type IlbamService interface {
	List(ctx context.Context) ([]models.IlbamMatrix, error)
	GetByEmployee(ctx context.Context, employeeID string) (*models.IlbamMatrix, error)
	Upload(ctx context.Context, m *models.IlbamMatrix, updatedBy string) (*models.IlbamMatrix, error)
	Delete(ctx context.Context, id string) error
}

type ilbamService struct {
	matrices  pgrepo.IlbamRepository
	employees pgrepo.EmployeeRepository
}

func NewIlbamService(matrices pgrepo.IlbamRepository, employees pgrepo.EmployeeRepository) IlbamService {
	return &ilbamService{matrices: matrices, employees: employees}
}

func (s *ilbamService) List(ctx context.Context) ([]models.IlbamMatrix, error) {
	const op = "IlbamService.List"

	out, err := s.matrices.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list matrices", err)
	}
	return out, nil
}

func (s *ilbamService) GetByEmployee(ctx context.Context, employeeID string) (*models.IlbamMatrix, error) {
	const op = "IlbamService.GetByEmployee"

	if employeeID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "employee_id is required", nil)
	}
	m, err := s.matrices.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "matrix not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get matrix", err)
	}
	return m, nil
}

// Upload upserts the matrix for an employee. One matrix per employee.
func (s *ilbamService) Upload(ctx context.Context, m *models.IlbamMatrix, updatedBy string) (*models.IlbamMatrix, error) {
	const op = "IlbamService.Upload"

	if m == nil || m.EmployeeID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "employee_id is required", nil)
	}
	for _, rating := range m.Ratings() {
		if rating < 1 || rating > 5 {
			return nil, utils.E(utils.CodeInvalidArgument, op, "ratings must be between 1 and 5", nil)
		}
	}

	if _, err := s.employees.GetByID(ctx, m.EmployeeID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "employee not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to check employee", err)
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.UpdatedBy = updatedBy
	m.LastUpdated = time.Now().UTC()

	if err := s.matrices.Upsert(ctx, m); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save matrix", err)
	}
	return m, nil
}

func (s *ilbamService) Delete(ctx context.Context, id string) error {
	const op = "IlbamService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.matrices.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "matrix not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete matrix", err)
	}
	return nil
}
