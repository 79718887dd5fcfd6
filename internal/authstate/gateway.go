package authstate

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/talentnavigator/talentnavigator/internal/identity"
	"github.com/talentnavigator/talentnavigator/internal/models"
)

// LoginResult reports the outcome of a credential exchange. A successful
// result does not mean the snapshot is hydrated yet; the store applies the
// signed-in event asynchronously.
type LoginResult struct {
	Success bool
	UserID  string
	Email   string
	Err     error
}

// Gateway is the write side of the auth core. It talks to the provider and
// leaves snapshot mutation to the store's event loop.
type Gateway struct {
	provider identity.Provider
	store    *Store
	log      *logrus.Logger
}

func NewGateway(provider identity.Provider, store *Store, log *logrus.Logger) *Gateway {
	return &Gateway{provider: provider, store: store, log: log}
}

// Login exchanges credentials with the provider. It never touches the
// snapshot directly: the provider's signed_in event carries the new session
// to the store.
func (g *Gateway) Login(ctx context.Context, email, password string) LoginResult {
	sess, err := g.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		g.log.WithError(err).WithField("email", email).Warn("login failed")
		return LoginResult{Err: err}
	}
	return LoginResult{Success: true, UserID: sess.UserID, Email: sess.Email}
}

// Logout signs out with the provider. When the provider cannot be reached the
// local state is cleared anyway so the caller always ends up signed out.
func (g *Gateway) Logout(ctx context.Context) {
	if err := g.provider.SignOut(ctx); err != nil {
		g.log.WithError(err).Warn("provider sign-out failed, clearing local session")
		g.store.ResetAnonymous()
	}
}

// IsAuthorized reports whether the current snapshot satisfies the role set.
func (g *Gateway) IsAuthorized(required ...models.UserRole) bool {
	return g.store.Snapshot().Authorized(required...)
}
