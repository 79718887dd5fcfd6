package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

type IlbamRepository interface {
	GetByID(ctx context.Context, id string) (*models.IlbamMatrix, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.IlbamMatrix, error)
	List(ctx context.Context) ([]models.IlbamMatrix, error)
	Upsert(ctx context.Context, m *models.IlbamMatrix) error
	Delete(ctx context.Context, id string) error
}

type ilbamRepo struct {
	db *gorm.DB
}

func NewIlbamRepo(db *gorm.DB) IlbamRepository {
	return &ilbamRepo{db: db}
}

func (r *ilbamRepo) GetByID(ctx context.Context, id string) (*models.IlbamMatrix, error) {
	var m models.IlbamMatrix
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &m, err
}

func (r *ilbamRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*models.IlbamMatrix, error) {
	var m models.IlbamMatrix
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &m, err
}

func (r *ilbamRepo) List(ctx context.Context) ([]models.IlbamMatrix, error) {
	var out []models.IlbamMatrix
	err := r.db.WithContext(ctx).
		Order("last_updated DESC").
		Find(&out).Error
	return out, err
}

func (r *ilbamRepo) Upsert(ctx context.Context, m *models.IlbamMatrix) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"business_understanding", "leadership", "innovation_capability",
				"teamwork", "adaptability", "motivation", "last_updated", "updated_by",
			}),
		}).
		Create(m).Error
}

func (r *ilbamRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.IlbamMatrix{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
