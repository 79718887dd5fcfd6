package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	ListByIDs(ctx context.Context, ids []string) ([]models.Employee, error)
	ListByManager(ctx context.Context, managerID string) ([]models.Employee, error)
	ListByMentor(ctx context.Context, mentorID string) ([]models.Employee, error)
	ListByStatus(ctx context.Context, status models.EmployeeStatus) ([]models.Employee, error)
	Create(ctx context.Context, e *models.Employee) error
	Update(ctx context.Context, e *models.Employee) error
	Delete(ctx context.Context, id string) error
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	var e models.Employee
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *employeeRepo) List(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	err := r.db.WithContext(ctx).
		Order("last_name, first_name").
		Find(&out).Error
	return out, err
}

func (r *employeeRepo) ListByIDs(ctx context.Context, ids []string) ([]models.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []models.Employee
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&out).Error
	return out, err
}

func (r *employeeRepo) ListByManager(ctx context.Context, managerID string) ([]models.Employee, error) {
	var out []models.Employee
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("last_name, first_name").
		Find(&out).Error
	return out, err
}

func (r *employeeRepo) ListByMentor(ctx context.Context, mentorID string) ([]models.Employee, error) {
	var out []models.Employee
	err := r.db.WithContext(ctx).
		Where("mentor_id = ?", mentorID).
		Order("last_name, first_name").
		Find(&out).Error
	return out, err
}

func (r *employeeRepo) ListByStatus(ctx context.Context, status models.EmployeeStatus) ([]models.Employee, error) {
	var out []models.Employee
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("last_name, first_name").
		Find(&out).Error
	return out, err
}

func (r *employeeRepo) Create(ctx context.Context, e *models.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepo) Update(ctx context.Context, e *models.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *employeeRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
