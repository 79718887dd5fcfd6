// Package identity defines the contract the auth core consumes from the
// hosted identity provider, and the REST adapter that fulfils it against the
// TalentNavigator API.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type EventType string

const (
	EventSignedIn       EventType = "signed_in"
	EventTokenRefreshed EventType = "token_refreshed"
	EventSignedOut      EventType = "signed_out"
)

// ProviderSession is the provider's view of an authenticated identity.
type ProviderSession struct {
	UserID      string
	Email       string
	AccessToken string
	ExpiresAt   time.Time
}

// ProfileRow mirrors the provider-side profile record keyed by user id.
type ProfileRow struct {
	ID        string
	FirstName string
	LastName  string
	AvatarURL string
	Role      string
}

// AuthEvent is pushed by the provider whenever auth state changes.
// Session is nil for signed_out events.
type AuthEvent struct {
	Type    EventType
	Session *ProviderSession
}

var (
	ErrNotConfigured      = errors.New("identity provider is not configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("profile not found")
)

// NetworkError marks transient transport failures. Callers may retry.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("identity provider unreachable: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// Provider is the external identity boundary. Events are delivered in the
// order the provider emits them; consumers must not assume coalescing.
type Provider interface {
	// CurrentSession returns the active session, or (nil, nil) when signed out.
	CurrentSession(ctx context.Context) (*ProviderSession, error)
	SignInWithPassword(ctx context.Context, email, password string) (*ProviderSession, error)
	SignOut(ctx context.Context) error
	// FetchProfileByID returns ErrProfileNotFound when no row exists.
	FetchProfileByID(ctx context.Context, id string) (*ProfileRow, error)
	Events() <-chan AuthEvent
	Close() error
}
