package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

func validMatrix(employeeID string) *models.IlbamMatrix {
	return &models.IlbamMatrix{
		EmployeeID:            employeeID,
		BusinessUnderstanding: 4,
		Leadership:            3,
		InnovationCapability:  5,
		Teamwork:              4,
		Adaptability:          3,
		Motivation:            5,
	}
}

func TestIlbamUpload(t *testing.T) {
	employees := newFakeEmployeeRepo(&models.Employee{ID: "e-1", Status: models.EmployeeActive})
	matrices := newFakeIlbamRepo()
	svc := NewIlbamService(matrices, employees)

	m, err := svc.Upload(context.Background(), validMatrix("e-1"), "admin@corp.test")
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "admin@corp.test", m.UpdatedBy)
	assert.False(t, m.LastUpdated.IsZero())

	got, err := svc.GetByEmployee(context.Background(), "e-1")
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
}

func TestIlbamUploadReplacesExistingMatrix(t *testing.T) {
	employees := newFakeEmployeeRepo(&models.Employee{ID: "e-1"})
	matrices := newFakeIlbamRepo()
	svc := NewIlbamService(matrices, employees)

	first, err := svc.Upload(context.Background(), validMatrix("e-1"), "a")
	require.NoError(t, err)

	second := validMatrix("e-1")
	second.ID = first.ID
	second.Leadership = 5
	_, err = svc.Upload(context.Background(), second, "b")
	require.NoError(t, err)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1, "one matrix per employee")
	assert.Equal(t, 5, all[0].Leadership)
	assert.Equal(t, "b", all[0].UpdatedBy)
}

func TestIlbamUploadRejectsOutOfRangeRating(t *testing.T) {
	employees := newFakeEmployeeRepo(&models.Employee{ID: "e-1"})
	svc := NewIlbamService(newFakeIlbamRepo(), employees)

	for _, bad := range []int{0, 6, -1} {
		m := validMatrix("e-1")
		m.Motivation = bad
		_, err := svc.Upload(context.Background(), m, "a")
		assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument), "rating %d must be rejected", bad)
	}
}

func TestIlbamUploadUnknownEmployee(t *testing.T) {
	svc := NewIlbamService(newFakeIlbamRepo(), newFakeEmployeeRepo())

	_, err := svc.Upload(context.Background(), validMatrix("ghost"), "a")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestIlbamGetByEmployeeNotFound(t *testing.T) {
	svc := NewIlbamService(newFakeIlbamRepo(), newFakeEmployeeRepo())

	_, err := svc.GetByEmployee(context.Background(), "e-1")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
