package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/talentnavigator/talentnavigator/internal/models"
	pgrepo "github.com/talentnavigator/talentnavigator/internal/repositories/postgres"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

type AssignmentService interface {
	ListByProject(ctx context.Context, projectID string) ([]models.ProjectAssignment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]models.ProjectAssignment, error)
	Create(ctx context.Context, a *models.ProjectAssignment) (*models.ProjectAssignment, error)
	Update(ctx context.Context, a *models.ProjectAssignment) error
	Delete(ctx context.Context, id string) error
}

type assignmentService struct {
	assignments pgrepo.AssignmentRepository
	projects    pgrepo.ProjectRepository
	employees   pgrepo.EmployeeRepository
}

func NewAssignmentService(assignments pgrepo.AssignmentRepository, projects pgrepo.ProjectRepository, employees pgrepo.EmployeeRepository) AssignmentService {
	return &assignmentService{assignments: assignments, projects: projects, employees: employees}
}

func (s *assignmentService) ListByProject(ctx context.Context, projectID string) ([]models.ProjectAssignment, error) {
	const op = "AssignmentService.ListByProject"

	if projectID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "project_id is required", nil)
	}
	out, err := s.assignments.ListByProject(ctx, projectID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list assignments", err)
	}
	return out, nil
}

func (s *assignmentService) ListByEmployee(ctx context.Context, employeeID string) ([]models.ProjectAssignment, error) {
	const op = "AssignmentService.ListByEmployee"

	if employeeID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "employee_id is required", nil)
	}
	out, err := s.assignments.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list assignments", err)
	}
	return out, nil
}

func (s *assignmentService) validate(ctx context.Context, a *models.ProjectAssignment) error {
	const op = "AssignmentService.validate"

	if a == nil || a.ProjectID == "" || a.EmployeeID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "project_id and employee_id are required", nil)
	}
	if a.UtilizationPercentage < 0 || a.UtilizationPercentage > 100 {
		return utils.E(utils.CodeInvalidArgument, op, "utilization must be between 0 and 100", nil)
	}
	if _, err := s.projects.GetByID(ctx, a.ProjectID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to check project", err)
	}
	if _, err := s.employees.GetByID(ctx, a.EmployeeID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "employee not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to check employee", err)
	}
	return nil
}

func (s *assignmentService) Create(ctx context.Context, a *models.ProjectAssignment) (*models.ProjectAssignment, error) {
	const op = "AssignmentService.Create"

	if err := s.validate(ctx, a); err != nil {
		return nil, err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if err := s.assignments.Create(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create assignment", err)
	}
	return a, nil
}

func (s *assignmentService) Update(ctx context.Context, a *models.ProjectAssignment) error {
	const op = "AssignmentService.Update"

	if a == nil || a.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "assignment.id is required", nil)
	}
	if err := s.validate(ctx, a); err != nil {
		return err
	}
	if err := s.assignments.Update(ctx, a); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update assignment", err)
	}
	return nil
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	const op = "AssignmentService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.assignments.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "assignment not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete assignment", err)
	}
	return nil
}
