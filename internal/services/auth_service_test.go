package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

func testTokens() TokenService {
	return NewTokenService(TokenConfig{
		Secret:    "test-secret",
		Issuer:    "talentnavigator-test",
		AccessTTL: time.Hour,
	})
}

func activeUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		ID:           "u-1",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleManager,
		Status:       models.UserActive,
	}
}

func TestAuthLogin(t *testing.T) {
	u := activeUser(t, "kim@corp.test", "s3cret")
	repo := newFakeUserRepo(u)
	tokens := testTokens()
	svc := NewAuthService(repo, tokens, newFakeDenylist(), quietLogger())

	res, err := svc.Login(context.Background(), "kim@corp.test", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, res.User)
	assert.Equal(t, "u-1", res.User.ID)
	assert.NotEmpty(t, res.Token)
	assert.NotEmpty(t, res.RefreshToken)

	claims, err := tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.Kind)
	assert.Equal(t, models.RoleManager, claims.Role)

	// login stamps last_login_at
	require.NotEmpty(t, repo.updated)
	assert.NotNil(t, repo.updated[len(repo.updated)-1].LastLoginAt)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo(activeUser(t, "kim@corp.test", "s3cret"))
	svc := NewAuthService(repo, testTokens(), newFakeDenylist(), quietLogger())

	_, err := svc.Login(context.Background(), "kim@corp.test", "nope")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestAuthLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testTokens(), newFakeDenylist(), quietLogger())

	_, err := svc.Login(context.Background(), "ghost@corp.test", "pw")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized),
		"unknown email must be indistinguishable from a wrong password")
}

func TestAuthLoginInactiveAccount(t *testing.T) {
	u := activeUser(t, "kim@corp.test", "s3cret")
	u.Status = models.UserInvited
	svc := NewAuthService(newFakeUserRepo(u), testTokens(), newFakeDenylist(), quietLogger())

	_, err := svc.Login(context.Background(), "kim@corp.test", "s3cret")
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))
}

func TestAuthLoginSurvivesLastLoginWriteFailure(t *testing.T) {
	repo := newFakeUserRepo(activeUser(t, "kim@corp.test", "s3cret"))
	repo.updateErr = assert.AnError
	svc := NewAuthService(repo, testTokens(), newFakeDenylist(), quietLogger())

	res, err := svc.Login(context.Background(), "kim@corp.test", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}

func TestAuthLogoutRevokesToken(t *testing.T) {
	denylist := newFakeDenylist()
	svc := NewAuthService(newFakeUserRepo(), testTokens(), denylist, quietLogger())

	exp := time.Now().Add(30 * time.Minute)
	err := svc.Logout(context.Background(), &AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	require.NoError(t, err)

	revoked, err := denylist.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Greater(t, denylist.revoked["jti-1"], 25*time.Minute)
}

func TestAuthLogoutWithoutClaimsIsNoop(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testTokens(), newFakeDenylist(), quietLogger())
	assert.NoError(t, svc.Logout(context.Background(), nil))
}

func TestAuthLogoutSwallowsRevocationFailure(t *testing.T) {
	denylist := newFakeDenylist()
	denylist.revokeErr = assert.AnError
	svc := NewAuthService(newFakeUserRepo(), testTokens(), denylist, quietLogger())

	err := svc.Logout(context.Background(), &AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1"},
	})
	assert.NoError(t, err, "a client that called logout is signed out either way")
}

func TestAuthRefresh(t *testing.T) {
	u := activeUser(t, "kim@corp.test", "s3cret")
	tokens := testTokens()
	svc := NewAuthService(newFakeUserRepo(u), tokens, newFakeDenylist(), quietLogger())

	refresh, _, err := tokens.MintRefresh(u)
	require.NoError(t, err)

	res, err := svc.Refresh(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "u-1", res.User.ID)
}

func TestAuthRefreshRejectsAccessToken(t *testing.T) {
	u := activeUser(t, "kim@corp.test", "s3cret")
	tokens := testTokens()
	svc := NewAuthService(newFakeUserRepo(u), tokens, newFakeDenylist(), quietLogger())

	access, _, err := tokens.MintAccess(u)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), access)
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestAuthRefreshRejectsRevokedToken(t *testing.T) {
	u := activeUser(t, "kim@corp.test", "s3cret")
	tokens := testTokens()
	denylist := newFakeDenylist()
	svc := NewAuthService(newFakeUserRepo(u), tokens, denylist, quietLogger())

	refresh, claims, err := tokens.MintRefresh(u)
	require.NoError(t, err)
	require.NoError(t, denylist.Revoke(context.Background(), claims.ID, time.Hour))

	_, err = svc.Refresh(context.Background(), refresh)
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}
