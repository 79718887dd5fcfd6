package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/services"
)

type stubDenylist struct {
	revoked map[string]bool
}

func (d *stubDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if d.revoked == nil {
		d.revoked = map[string]bool{}
	}
	d.revoked[jti] = true
	return nil
}

func (d *stubDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return d.revoked[jti], nil
}

func testRouter(tokens services.TokenService, denylist services.TokenDenylist, roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", JWTAuth(tokens, denylist))
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserID),
			"role":    c.GetString(CtxRole),
		})
	})
	return r
}

func probe(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mintFor(t *testing.T, tokens services.TokenService, role models.UserRole) string {
	t.Helper()
	raw, _, err := tokens.MintAccess(&models.User{ID: "u-1", Email: "a@b.c", Role: role})
	require.NoError(t, err)
	return raw
}

func newTokens() services.TokenService {
	return services.NewTokenService(services.TokenConfig{Secret: "test-secret"})
}

func TestJWTAuthAcceptsAccessToken(t *testing.T) {
	tokens := newTokens()
	r := testRouter(tokens, &stubDenylist{})

	w := probe(r, mintFor(t, tokens, models.RoleManager))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u-1"`)
	assert.Contains(t, w.Body.String(), `"role":"manager"`)
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	r := testRouter(newTokens(), &stubDenylist{})
	assert.Equal(t, http.StatusUnauthorized, probe(r, "").Code)
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	r := testRouter(newTokens(), &stubDenylist{})
	assert.Equal(t, http.StatusUnauthorized, probe(r, "not-a-jwt").Code)
}

func TestJWTAuthRejectsTokenFromOtherSecret(t *testing.T) {
	other := services.NewTokenService(services.TokenConfig{Secret: "other-secret"})
	r := testRouter(newTokens(), &stubDenylist{})

	assert.Equal(t, http.StatusUnauthorized, probe(r, mintFor(t, other, models.RoleAdmin)).Code)
}

func TestJWTAuthRejectsRefreshToken(t *testing.T) {
	tokens := newTokens()
	raw, _, err := tokens.MintRefresh(&models.User{ID: "u-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	r := testRouter(tokens, &stubDenylist{})
	assert.Equal(t, http.StatusUnauthorized, probe(r, raw).Code)
}

func TestJWTAuthRejectsRevokedToken(t *testing.T) {
	tokens := newTokens()
	raw, claims, err := tokens.MintAccess(&models.User{ID: "u-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	denylist := &stubDenylist{}
	require.NoError(t, denylist.Revoke(context.Background(), claims.ID, time.Hour))

	r := testRouter(tokens, denylist)
	assert.Equal(t, http.StatusUnauthorized, probe(r, raw).Code)
}

func TestRequireRole(t *testing.T) {
	tokens := newTokens()

	tests := []struct {
		name    string
		role    models.UserRole
		allowed []models.UserRole
		want    int
	}{
		{"admin on admin route", models.RoleAdmin, []models.UserRole{models.RoleAdmin}, http.StatusOK},
		{"manager on admin route", models.RoleManager, []models.UserRole{models.RoleAdmin}, http.StatusForbidden},
		{"mentor on mentor route", models.RoleMentor, []models.UserRole{models.RoleAdmin, models.RoleMentor}, http.StatusOK},
		{"manager on mentor route", models.RoleManager, []models.UserRole{models.RoleAdmin, models.RoleMentor}, http.StatusForbidden},
		{"unknown role", models.UserRole("intern"), []models.UserRole{models.RoleAdmin}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRouter(tokens, &stubDenylist{}, tt.allowed...)
			w := probe(r, mintFor(t, tokens, tt.role))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireAnyRoleRejectsMissingRoleClaim(t *testing.T) {
	tokens := newTokens()
	r := testRouter(tokens, &stubDenylist{},
		models.RoleAdmin, models.RoleManager, models.RoleMentor)

	w := probe(r, mintFor(t, tokens, ""))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
