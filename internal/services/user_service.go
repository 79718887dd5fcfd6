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

type UserService interface {
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	ListPending(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, u *models.User, password string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string, role models.UserRole) error
	AssignMentorRole(ctx context.Context, id string) error
}

type userService struct {
	users pgrepo.UserRepository
}

func NewUserService(users pgrepo.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	const op = "UserService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	const op = "UserService.List"

	out, err := s.users.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list users", err)
	}
	return out, nil
}

func (s *userService) ListPending(ctx context.Context) ([]models.User, error) {
	const op = "UserService.ListPending"

	out, err := s.users.ListByStatus(ctx, models.UserInvited)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list pending users", err)
	}
	return out, nil
}

func (s *userService) Create(ctx context.Context, u *models.User, password string) (*models.User, error) {
	const op = "UserService.Create"

	if u == nil || u.Email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email is required", nil)
	}
	if password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "password is required", nil)
	}
	if u.Role == "" {
		u.Role = models.RoleManager
	}
	if !u.Role.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown role", nil)
	}

	if existing, err := s.users.GetByEmail(ctx, u.Email); err == nil && existing != nil {
		return nil, utils.E(utils.CodeConflict, op, "email already registered", nil)
	} else if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing user", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	now := time.Now().UTC()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Status == "" {
		u.Status = models.UserInvited
	}
	u.PasswordHash = hash
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := s.users.Create(ctx, u); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, u *models.User) error {
	const op = "UserService.Update"

	if u == nil || u.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user.id is required", nil)
	}
	if u.Role != "" && !u.Role.Valid() {
		return utils.E(utils.CodeInvalidArgument, op, "unknown role", nil)
	}
	u.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, u); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update user", err)
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	const op = "UserService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete user", err)
	}
	return nil
}

// Approve promotes an invited account to active with the given role.
func (s *userService) Approve(ctx context.Context, id string, role models.UserRole) error {
	const op = "UserService.Approve"

	if !role.Valid() {
		return utils.E(utils.CodeInvalidArgument, op, "unknown role", nil)
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	u.Role = role
	u.Status = models.UserActive
	return s.Update(ctx, u)
}

func (s *userService) AssignMentorRole(ctx context.Context, id string) error {
	const op = "UserService.AssignMentorRole"

	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	u.Role = models.RoleMentor
	if err := s.Update(ctx, u); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to assign mentor role", err)
	}
	return nil
}
