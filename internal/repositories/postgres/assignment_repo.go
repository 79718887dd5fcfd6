package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

type AssignmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.ProjectAssignment, error)
	ListByProject(ctx context.Context, projectID string) ([]models.ProjectAssignment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]models.ProjectAssignment, error)
	Create(ctx context.Context, a *models.ProjectAssignment) error
	Update(ctx context.Context, a *models.ProjectAssignment) error
	Delete(ctx context.Context, id string) error
}

type assignmentRepo struct {
	db *gorm.DB
}

func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) GetByID(ctx context.Context, id string) (*models.ProjectAssignment, error) {
	var a models.ProjectAssignment
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *assignmentRepo) ListByProject(ctx context.Context, projectID string) ([]models.ProjectAssignment, error) {
	var out []models.ProjectAssignment
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Find(&out).Error
	return out, err
}

func (r *assignmentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]models.ProjectAssignment, error) {
	var out []models.ProjectAssignment
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Find(&out).Error
	return out, err
}

func (r *assignmentRepo) Create(ctx context.Context, a *models.ProjectAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assignmentRepo) Update(ctx context.Context, a *models.ProjectAssignment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *assignmentRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ProjectAssignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
