// Package authstate holds the client-side auth core: the session store that
// tracks "who is signed in right now", the gateway that changes it, and the
// route guard that gates views on it.
package authstate

import (
	"strings"

	"github.com/talentnavigator/talentnavigator/internal/models"
)

// UserProfile is the role/name metadata merged into a session once the
// profile row is fetched. Present is false until then.
type UserProfile struct {
	ID        string
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      models.UserRole
	AvatarURL string
	Present   bool
}

// Session is an immutable snapshot of authentication state. Callers must
// treat it as eventually consistent: a fresh snapshot may lag an in-flight
// provider event.
type Session struct {
	UserID          string
	AccessToken     string
	IsAuthenticated bool
	IsLoading       bool
	Error           string
	Profile         UserProfile
}

// Authorized reports whether the session's role is in the required set.
// It is false for any unauthenticated or profile-less session, whatever the
// set contains.
func (s Session) Authorized(required ...models.UserRole) bool {
	if !s.IsAuthenticated || !s.Profile.Present {
		return false
	}
	for _, r := range required {
		if r == s.Profile.Role {
			return true
		}
	}
	return false
}

func usernameFromEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return email
	}
	return email[:at]
}
