package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/providers/llm"
	pgrepo "github.com/talentnavigator/talentnavigator/internal/repositories/postgres"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

type RecommendationService interface {
	List(ctx context.Context) ([]models.TeamRecommendation, error)
	ListByProject(ctx context.Context, projectID string) ([]models.TeamRecommendation, error)
	Create(ctx context.Context, rec *models.TeamRecommendation) (*models.TeamRecommendation, error)
	Generate(ctx context.Context, projectID string) (*models.TeamRecommendation, error)
	Delete(ctx context.Context, id string) error
}

type recommendationService struct {
	recs      pgrepo.RecommendationRepository
	projects  pgrepo.ProjectRepository
	employees pgrepo.EmployeeRepository
	model     llm.Provider // optional
	log       *logrus.Logger
}

func NewRecommendationService(recs pgrepo.RecommendationRepository, projects pgrepo.ProjectRepository, employees pgrepo.EmployeeRepository, model llm.Provider, log *logrus.Logger) RecommendationService {
	return &recommendationService{recs: recs, projects: projects, employees: employees, model: model, log: log}
}

func (s *recommendationService) List(ctx context.Context) ([]models.TeamRecommendation, error) {
	const op = "RecommendationService.List"

	out, err := s.recs.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list recommendations", err)
	}
	return out, nil
}

func (s *recommendationService) ListByProject(ctx context.Context, projectID string) ([]models.TeamRecommendation, error) {
	const op = "RecommendationService.ListByProject"

	if projectID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "project_id is required", nil)
	}
	out, err := s.recs.ListByProject(ctx, projectID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list recommendations", err)
	}
	return out, nil
}

func (s *recommendationService) Create(ctx context.Context, rec *models.TeamRecommendation) (*models.TeamRecommendation, error) {
	const op = "RecommendationService.Create"

	if rec == nil || rec.ProjectID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "project_id is required", nil)
	}
	if len(rec.RecommendedEmployeeIDs) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "at least one recommended employee is required", nil)
	}
	if rec.ConfidenceScore < 0 || rec.ConfidenceScore > 100 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "confidence must be between 0 and 100", nil)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = time.Now().UTC()

	if err := s.recs.Create(ctx, rec); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save recommendation", err)
	}
	return rec, nil
}

func (s *recommendationService) Delete(ctx context.Context, id string) error {
	const op = "RecommendationService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.recs.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "recommendation not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete recommendation", err)
	}
	return nil
}

// Generate proposes a team for the project: active employees ranked by how
// many of the project's required skills they cover. The top half becomes the
// recommendation, the rest with any overlap become alternatives. When an LLM
// provider is configured it writes the per-employee reasonings; otherwise a
// plain skill summary is used.
func (s *recommendationService) Generate(ctx context.Context, projectID string) (*models.TeamRecommendation, error) {
	const op = "RecommendationService.Generate"

	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get project", err)
	}
	if len(p.RequiredSkills) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "project has no required skills", nil)
	}

	pool, err := s.employees.ListByStatus(ctx, models.EmployeeActive)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list employees", err)
	}

	type scored struct {
		emp     models.Employee
		matched []string
	}
	var candidates []scored
	for _, e := range pool {
		matched := matchSkills(e.Skills, p.RequiredSkills)
		if len(matched) > 0 {
			candidates = append(candidates, scored{emp: e, matched: matched})
		}
	}
	if len(candidates) == 0 {
		return nil, utils.E(utils.CodeNotFound, op, "no employees match the required skills", nil)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].matched) > len(candidates[j].matched)
	})

	cut := (len(candidates) + 1) / 2
	rec := &models.TeamRecommendation{
		ID:        uuid.NewString(),
		ProjectID: p.ID,
		CreatedAt: time.Now().UTC(),
	}

	reasonings := make(map[string]string, cut)
	totalCoverage := 0
	for i, c := range candidates {
		if i < cut {
			rec.RecommendedEmployeeIDs = append(rec.RecommendedEmployeeIDs, c.emp.ID)
			reasonings[c.emp.ID] = s.reason(ctx, p, c.emp, c.matched)
			totalCoverage += len(c.matched)
		} else {
			rec.AlternativeEmployeeIDs = append(rec.AlternativeEmployeeIDs, c.emp.ID)
		}
	}
	rec.ConfidenceScore = 100 * totalCoverage / (cut * len(p.RequiredSkills))
	if rec.ConfidenceScore > 100 {
		rec.ConfidenceScore = 100
	}

	raw, err := json.Marshal(reasonings)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode reasonings", err)
	}
	rec.Reasonings = datatypes.JSON(raw)

	if err := s.recs.Create(ctx, rec); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save recommendation", err)
	}
	return rec, nil
}

func (s *recommendationService) reason(ctx context.Context, p *models.Project, e models.Employee, matched []string) string {
	fallback := fmt.Sprintf("Covers %d of %d required skills: %s",
		len(matched), len(p.RequiredSkills), strings.Join(matched, ", "))

	if s.model == nil {
		return fallback
	}

	prompt := fmt.Sprintf(
		"In two sentences, explain why %s %s (%s, skills: %s) fits the project %q which needs: %s.",
		e.FirstName, e.LastName, e.Position, strings.Join(e.Skills, ", "),
		p.Name, strings.Join(p.RequiredSkills, ", "))

	text, err := s.model.Complete(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			s.log.WithError(err).WithField("employee_id", e.ID).Warn("reasoning generation failed, using skill summary")
		}
		return fallback
	}
	return strings.TrimSpace(text)
}

func matchSkills(have, want []string) []string {
	set := make(map[string]struct{}, len(have))
	for _, s := range have {
		set[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	var out []string
	for _, w := range want {
		if _, ok := set[strings.ToLower(strings.TrimSpace(w))]; ok {
			out = append(out, w)
		}
	}
	return out
}
