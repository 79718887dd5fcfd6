package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

type RecommendationRepository interface {
	GetByID(ctx context.Context, id string) (*models.TeamRecommendation, error)
	List(ctx context.Context) ([]models.TeamRecommendation, error)
	ListByProject(ctx context.Context, projectID string) ([]models.TeamRecommendation, error)
	Create(ctx context.Context, rec *models.TeamRecommendation) error
	Delete(ctx context.Context, id string) error
}

type recommendationRepo struct {
	db *gorm.DB
}

func NewRecommendationRepo(db *gorm.DB) RecommendationRepository {
	return &recommendationRepo{db: db}
}

func (r *recommendationRepo) GetByID(ctx context.Context, id string) (*models.TeamRecommendation, error) {
	var rec models.TeamRecommendation
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &rec, err
}

func (r *recommendationRepo) List(ctx context.Context) ([]models.TeamRecommendation, error) {
	var out []models.TeamRecommendation
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *recommendationRepo) ListByProject(ctx context.Context, projectID string) ([]models.TeamRecommendation, error) {
	var out []models.TeamRecommendation
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *recommendationRepo) Create(ctx context.Context, rec *models.TeamRecommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recommendationRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.TeamRecommendation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
