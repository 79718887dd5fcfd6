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

type ProjectService interface {
	Get(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	projects    pgrepo.ProjectRepository
	assignments pgrepo.AssignmentRepository
	employees   pgrepo.EmployeeRepository
}

func NewProjectService(projects pgrepo.ProjectRepository, assignments pgrepo.AssignmentRepository, employees pgrepo.EmployeeRepository) ProjectService {
	return &projectService{projects: projects, assignments: assignments, employees: employees}
}

// Get resolves the project's team members through its assignments.
func (s *projectService) Get(ctx context.Context, id string) (*models.Project, error) {
	const op = "ProjectService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get project", err)
	}

	asgs, err := s.assignments.ListByProject(ctx, id)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list assignments", err)
	}
	ids := make([]string, 0, len(asgs))
	for _, a := range asgs {
		ids = append(ids, a.EmployeeID)
	}
	members, err := s.employees.ListByIDs(ctx, ids)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load team members", err)
	}
	p.TeamMembers = members
	return p, nil
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	const op = "ProjectService.List"

	out, err := s.projects.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list projects", err)
	}
	return out, nil
}

func (s *projectService) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	const op = "ProjectService.Create"

	if p == nil || p.Name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = models.ProjectPlanning
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create project", err)
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, p *models.Project) error {
	const op = "ProjectService.Update"

	if p == nil || p.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "project.id is required", nil)
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update project", err)
	}
	return nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	const op = "ProjectService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete project", err)
	}
	return nil
}
