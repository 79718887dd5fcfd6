package services

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User

	createErr error
	updateErr error
	updated   []*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{
		byID:    map[string]*models.User{},
		byEmail: map[string]*models.User{},
	}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByStatus(ctx context.Context, status models.UserStatus) ([]models.User, error) {
	var out []models.User
	for _, u := range r.byID {
		if u.Status == status {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *models.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	r.updated = append(r.updated, &cp)
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return utils.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}

type fakeDenylist struct {
	revoked   map[string]time.Duration
	revokeErr error
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{revoked: map[string]time.Duration{}}
}

func (d *fakeDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if d.revokeErr != nil {
		return d.revokeErr
	}
	d.revoked[jti] = ttl
	return nil
}

func (d *fakeDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, ok := d.revoked[jti]
	return ok, nil
}

type fakeEmployeeRepo struct {
	byID map[string]*models.Employee
}

func newFakeEmployeeRepo(emps ...*models.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{byID: map[string]*models.Employee{}}
	for _, e := range emps {
		r.byID[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	for _, e := range r.byID {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) ListByIDs(ctx context.Context, ids []string) ([]models.Employee, error) {
	var out []models.Employee
	for _, id := range ids {
		if e, ok := r.byID[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) ListByManager(ctx context.Context, managerID string) ([]models.Employee, error) {
	var out []models.Employee
	for _, e := range r.byID {
		if e.ManagerID == managerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) ListByMentor(ctx context.Context, mentorID string) ([]models.Employee, error) {
	var out []models.Employee
	for _, e := range r.byID {
		if e.MentorID == mentorID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) ListByStatus(ctx context.Context, status models.EmployeeStatus) ([]models.Employee, error) {
	var out []models.Employee
	for _, e := range r.byID {
		if e.Status == status {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e *models.Employee) error {
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, e *models.Employee) error {
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeProjectRepo struct {
	byID map[string]*models.Project
}

func newFakeProjectRepo(projects ...*models.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{byID: map[string]*models.Project{}}
	for _, p := range projects {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) List(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	for _, p := range r.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProjectRepo) ListByStatus(ctx context.Context, status models.ProjectStatus) ([]models.Project, error) {
	var out []models.Project
	for _, p := range r.byID {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Create(ctx context.Context, p *models.Project) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, p *models.Project) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeRecommendationRepo struct {
	created []*models.TeamRecommendation
}

func (r *fakeRecommendationRepo) GetByID(ctx context.Context, id string) (*models.TeamRecommendation, error) {
	for _, rec := range r.created {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeRecommendationRepo) List(ctx context.Context) ([]models.TeamRecommendation, error) {
	var out []models.TeamRecommendation
	for _, rec := range r.created {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *fakeRecommendationRepo) ListByProject(ctx context.Context, projectID string) ([]models.TeamRecommendation, error) {
	var out []models.TeamRecommendation
	for _, rec := range r.created {
		if rec.ProjectID == projectID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *fakeRecommendationRepo) Create(ctx context.Context, rec *models.TeamRecommendation) error {
	cp := *rec
	r.created = append(r.created, &cp)
	return nil
}

func (r *fakeRecommendationRepo) Delete(ctx context.Context, id string) error {
	for i, rec := range r.created {
		if rec.ID == id {
			r.created = append(r.created[:i], r.created[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

type fakeIlbamRepo struct {
	byEmployee map[string]*models.IlbamMatrix
}

func newFakeIlbamRepo() *fakeIlbamRepo {
	return &fakeIlbamRepo{byEmployee: map[string]*models.IlbamMatrix{}}
}

func (r *fakeIlbamRepo) GetByID(ctx context.Context, id string) (*models.IlbamMatrix, error) {
	for _, m := range r.byEmployee {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeIlbamRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*models.IlbamMatrix, error) {
	m, ok := r.byEmployee[employeeID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeIlbamRepo) List(ctx context.Context) ([]models.IlbamMatrix, error) {
	var out []models.IlbamMatrix
	for _, m := range r.byEmployee {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeIlbamRepo) Upsert(ctx context.Context, m *models.IlbamMatrix) error {
	cp := *m
	r.byEmployee[m.EmployeeID] = &cp
	return nil
}

func (r *fakeIlbamRepo) Delete(ctx context.Context, id string) error {
	for key, m := range r.byEmployee {
		if m.ID == id {
			delete(r.byEmployee, key)
			return nil
		}
	}
	return utils.ErrNotFound
}
