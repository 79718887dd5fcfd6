package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/talentnavigator/talentnavigator/internal/models"
	pgrepo "github.com/talentnavigator/talentnavigator/internal/repositories/postgres"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

type LoginResult struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         *models.User `json:"user"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Me(ctx context.Context, userID string) (*models.User, error)
	Logout(ctx context.Context, claims *AccessClaims) error
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
}

type authService struct {
	users    pgrepo.UserRepository
	tokens   TokenService
	denylist TokenDenylist
	log      *logrus.Logger
}

func NewAuthService(users pgrepo.UserRepository, tokens TokenService, denylist TokenDenylist, log *logrus.Logger) AuthService {
	return &authService{users: users, tokens: tokens, denylist: denylist, log: log}
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	const op = "AuthService.Login"

	if email == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "invalid email or password", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	if err := utils.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid email or password", err)
	}

	if u.Status != models.UserActive {
		return nil, utils.E(utils.CodeForbidden, op, "account is not active", nil)
	}

	token, _, err := s.tokens.MintAccess(u)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.tokens.MintRefresh(u)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u.LastLoginAt = &now
	if err := s.users.Update(ctx, u); err != nil {
		// the login itself succeeded; do not fail it over a timestamp
		s.log.WithError(err).WithField("user_id", u.ID).Warn("failed to update last login")
	}

	return &LoginResult{Token: token, RefreshToken: refresh, User: u}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*models.User, error) {
	const op = "AuthService.Me"

	if userID == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "unauthorized", nil)
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "user no longer exists", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	return u, nil
}

// Logout revokes the presented token until it would have expired anyway.
// Revocation failures are logged, not returned: a client that called logout
// is treated as signed out either way.
func (s *authService) Logout(ctx context.Context, claims *AccessClaims) error {
	const op = "AuthService.Logout"

	if claims == nil || claims.ID == "" {
		return nil
	}

	ttl := time.Minute
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > ttl {
			ttl = remaining
		}
	}

	if err := s.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		s.log.WithError(err).WithField("jti", claims.ID).Warn("failed to revoke token")
	}
	return nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	const op = "AuthService.Refresh"

	claims, err := s.tokens.Parse(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Kind != "refresh" {
		return nil, utils.E(utils.CodeUnauthorized, op, "not a refresh token", nil)
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check token state", err)
	}
	if revoked {
		return nil, utils.E(utils.CodeUnauthorized, op, "token revoked", nil)
	}

	u, err := s.Me(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	token, _, err := s.tokens.MintAccess(u)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.tokens.MintRefresh(u)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, RefreshToken: refresh, User: u}, nil
}
