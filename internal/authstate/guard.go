package authstate

import "github.com/talentnavigator/talentnavigator/internal/models"

// Decision is the route guard's verdict for a protected view.
type Decision int

const (
	ShowLoading Decision = iota
	RedirectLogin
	RedirectUnauthorized
	Render
)

func (d Decision) String() string {
	switch d {
	case ShowLoading:
		return "loading"
	case RedirectLogin:
		return "redirect:login"
	case RedirectUnauthorized:
		return "redirect:unauthorized"
	case Render:
		return "render"
	default:
		return "unknown"
	}
}

// DefaultRequiredRoles is the role set for views open to every signed-in user.
var DefaultRequiredRoles = []models.UserRole{
	models.RoleAdmin,
	models.RoleManager,
	models.RoleMentor,
}

// Evaluate gates a view on the given snapshot. The checks are strictly
// ordered: a loading session never leaks a redirect, and an unauthenticated
// session is sent to login before any role check runs.
func Evaluate(snap Session, required ...models.UserRole) Decision {
	if len(required) == 0 {
		required = DefaultRequiredRoles
	}
	if snap.IsLoading {
		return ShowLoading
	}
	if !snap.IsAuthenticated {
		return RedirectLogin
	}
	if !snap.Authorized(required...) {
		return RedirectUnauthorized
	}
	return Render
}
