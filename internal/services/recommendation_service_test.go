package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

func TestRecommendationGenerate(t *testing.T) {
	projects := newFakeProjectRepo(&models.Project{
		ID:             "p-1",
		Name:           "Billing revamp",
		RequiredSkills: pq.StringArray{"Go", "PostgreSQL", "Kubernetes"},
	})
	employees := newFakeEmployeeRepo(
		&models.Employee{ID: "e-1", FirstName: "Ana", Status: models.EmployeeActive,
			Skills: pq.StringArray{"Go", "PostgreSQL", "Kubernetes"}},
		&models.Employee{ID: "e-2", FirstName: "Bo", Status: models.EmployeeActive,
			Skills: pq.StringArray{"go", "postgresql"}},
		&models.Employee{ID: "e-3", FirstName: "Cy", Status: models.EmployeeActive,
			Skills: pq.StringArray{"Kubernetes"}},
		&models.Employee{ID: "e-4", FirstName: "Di", Status: models.EmployeeActive,
			Skills: pq.StringArray{"Java"}},
		&models.Employee{ID: "e-5", FirstName: "Ed", Status: models.EmployeeInactive,
			Skills: pq.StringArray{"Go", "PostgreSQL", "Kubernetes"}},
	)
	recs := &fakeRecommendationRepo{}
	svc := NewRecommendationService(recs, projects, employees, nil, quietLogger())

	rec, err := svc.Generate(context.Background(), "p-1")
	require.NoError(t, err)

	// e-4 has no overlap, e-5 is not active; of the three candidates the top
	// half (two) is recommended, the remainder becomes the alternative
	assert.ElementsMatch(t, []string{"e-1", "e-2"}, []string(rec.RecommendedEmployeeIDs))
	assert.ElementsMatch(t, []string{"e-3"}, []string(rec.AlternativeEmployeeIDs))
	assert.NotContains(t, rec.RecommendedEmployeeIDs, "e-5")

	var reasonings map[string]string
	require.NoError(t, json.Unmarshal(rec.Reasonings, &reasonings))
	assert.Len(t, reasonings, 2)
	assert.Contains(t, reasonings["e-1"], "3 of 3")

	// coverage 5 of 6 possible slots
	assert.Equal(t, 83, rec.ConfidenceScore)
	require.Len(t, recs.created, 1)
}

func TestRecommendationGenerateNoMatches(t *testing.T) {
	projects := newFakeProjectRepo(&models.Project{
		ID: "p-1", RequiredSkills: pq.StringArray{"Rust"},
	})
	employees := newFakeEmployeeRepo(
		&models.Employee{ID: "e-1", Status: models.EmployeeActive, Skills: pq.StringArray{"Go"}},
	)
	svc := NewRecommendationService(&fakeRecommendationRepo{}, projects, employees, nil, quietLogger())

	_, err := svc.Generate(context.Background(), "p-1")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestRecommendationGenerateRequiresSkills(t *testing.T) {
	projects := newFakeProjectRepo(&models.Project{ID: "p-1"})
	svc := NewRecommendationService(&fakeRecommendationRepo{}, projects, newFakeEmployeeRepo(), nil, quietLogger())

	_, err := svc.Generate(context.Background(), "p-1")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestRecommendationGenerateUnknownProject(t *testing.T) {
	svc := NewRecommendationService(&fakeRecommendationRepo{}, newFakeProjectRepo(), newFakeEmployeeRepo(), nil, quietLogger())

	_, err := svc.Generate(context.Background(), "ghost")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestRecommendationCreateValidation(t *testing.T) {
	svc := NewRecommendationService(&fakeRecommendationRepo{}, newFakeProjectRepo(), newFakeEmployeeRepo(), nil, quietLogger())

	_, err := svc.Create(context.Background(), &models.TeamRecommendation{ProjectID: "p-1"})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.Create(context.Background(), &models.TeamRecommendation{
		ProjectID:              "p-1",
		RecommendedEmployeeIDs: pq.StringArray{"e-1"},
		ConfidenceScore:        120,
	})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestMatchSkillsIsCaseInsensitive(t *testing.T) {
	got := matchSkills(
		[]string{" go ", "PostgreSQL"},
		[]string{"Go", "postgresql", "Kubernetes"},
	)
	assert.Equal(t, []string{"Go", "postgresql"}, got)
}
