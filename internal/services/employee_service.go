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

type EmployeeService interface {
	Get(ctx context.Context, id string) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	ListByMentor(ctx context.Context, mentorID string) ([]models.Employee, error)
	ListByManager(ctx context.Context, managerID string) ([]models.Employee, error)
	Create(ctx context.Context, e *models.Employee) (*models.Employee, error)
	Update(ctx context.Context, e *models.Employee) error
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	employees pgrepo.EmployeeRepository
}

func NewEmployeeService(employees pgrepo.EmployeeRepository) EmployeeService {
	return &employeeService{employees: employees}
}

func (s *employeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	const op = "EmployeeService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "employee not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get employee", err)
	}
	return e, nil
}

func (s *employeeService) List(ctx context.Context) ([]models.Employee, error) {
	const op = "EmployeeService.List"

	out, err := s.employees.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list employees", err)
	}
	return out, nil
}

func (s *employeeService) ListByMentor(ctx context.Context, mentorID string) ([]models.Employee, error) {
	const op = "EmployeeService.ListByMentor"

	if mentorID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "mentor_id is required", nil)
	}
	out, err := s.employees.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list mentees", err)
	}
	return out, nil
}

func (s *employeeService) ListByManager(ctx context.Context, managerID string) ([]models.Employee, error) {
	const op = "EmployeeService.ListByManager"

	if managerID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "manager_id is required", nil)
	}
	out, err := s.employees.ListByManager(ctx, managerID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list reports", err)
	}
	return out, nil
}

func (s *employeeService) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	const op = "EmployeeService.Create"

	if e == nil || e.EmployeeID == "" || e.Email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "employee_id and email are required", nil)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = models.EmployeeActive
	}
	e.UpdatedAt = time.Now().UTC()

	if err := s.employees.Create(ctx, e); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create employee", err)
	}
	return e, nil
}

func (s *employeeService) Update(ctx context.Context, e *models.Employee) error {
	const op = "EmployeeService.Update"

	if e == nil || e.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "employee.id is required", nil)
	}
	e.UpdatedAt = time.Now().UTC()
	if err := s.employees.Update(ctx, e); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update employee", err)
	}
	return nil
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	const op = "EmployeeService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "employee not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete employee", err)
	}
	return nil
}
