package authstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talentnavigator/talentnavigator/internal/models"
)

func TestEvaluate(t *testing.T) {
	signedIn := func(role models.UserRole) Session {
		return Session{
			UserID:          "u-1",
			IsAuthenticated: true,
			Profile:         UserProfile{ID: "u-1", Role: role, Present: true},
		}
	}

	tests := []struct {
		name     string
		snap     Session
		required []models.UserRole
		want     Decision
	}{
		{
			name: "loading wins over everything",
			snap: Session{IsLoading: true, IsAuthenticated: true},
			want: ShowLoading,
		},
		{
			name: "anonymous goes to login",
			snap: Session{},
			want: RedirectLogin,
		},
		{
			name: "session check error still goes to login",
			snap: Session{Error: "Failed to check authentication status"},
			want: RedirectLogin,
		},
		{
			name:     "wrong role is unauthorized",
			snap:     signedIn(models.RoleMentor),
			required: []models.UserRole{models.RoleAdmin, models.RoleManager},
			want:     RedirectUnauthorized,
		},
		{
			name:     "matching role renders",
			snap:     signedIn(models.RoleManager),
			required: []models.UserRole{models.RoleAdmin, models.RoleManager},
			want:     Render,
		},
		{
			name: "no role set means any signed-in role",
			snap: signedIn(models.RoleMentor),
			want: Render,
		},
		{
			name: "authenticated without profile is unauthorized",
			snap: Session{UserID: "u-1", IsAuthenticated: true},
			want: RedirectUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.snap, tt.required...))
		})
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "loading", ShowLoading.String())
	assert.Equal(t, "redirect:login", RedirectLogin.String())
	assert.Equal(t, "redirect:unauthorized", RedirectUnauthorized.String())
	assert.Equal(t, "render", Render.String())
}

func TestSessionAuthorized(t *testing.T) {
	snap := Session{
		IsAuthenticated: true,
		Profile:         UserProfile{Role: models.RoleAdmin, Present: true},
	}
	assert.True(t, snap.Authorized(models.RoleAdmin))
	assert.False(t, snap.Authorized(models.RoleManager, models.RoleMentor))
	assert.False(t, snap.Authorized())

	snap.IsAuthenticated = false
	assert.False(t, snap.Authorized(models.RoleAdmin))
}
