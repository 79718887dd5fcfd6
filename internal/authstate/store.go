package authstate

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/talentnavigator/talentnavigator/internal/identity"
	"github.com/talentnavigator/talentnavigator/internal/models"
)

const checkFailedMessage = "Failed to check authentication status"

// Store owns the session snapshot. It is the only writer: Init applies the
// boot-time session check, Run applies provider events in receipt order.
// Everything else reads through Snapshot.
type Store struct {
	provider identity.Provider
	fallback models.RoleFallback
	log      *logrus.Logger

	mu   sync.Mutex
	snap Session
	gen  uint64 // bumped per applied update; stale profile fetches are discarded

	wg sync.WaitGroup
}

func NewStore(provider identity.Provider, fallback models.RoleFallback, log *logrus.Logger) *Store {
	if fallback == nil {
		fallback = models.RoleFromEmail
	}
	return &Store{
		provider: provider,
		fallback: fallback,
		log:      log,
		snap:     Session{IsLoading: true},
	}
}

// Snapshot returns the current session. It never blocks.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Init performs the one-time startup session check. Provider failures become
// a terminal anonymous snapshot with a human-readable error; they are never
// propagated to the caller.
func (s *Store) Init(ctx context.Context) {
	sess, err := s.provider.CurrentSession(ctx)
	if err != nil {
		s.log.WithError(err).Error("session check failed")
		s.apply(s.nextGen(), Session{Error: checkFailedMessage})
		return
	}
	if sess == nil {
		s.apply(s.nextGen(), Session{})
		return
	}
	s.applySignedIn(ctx, s.nextGen(), sess)
}

// Run consumes provider events until the stream closes or ctx is cancelled.
// Events are applied sequentially in receipt order, never coalesced.
func (s *Store) Run(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-s.provider.Events():
				if !ok {
					return
				}
				s.handle(ctx, ev)
			}
		}
	}()
}

// Wait blocks until the event loop has stopped.
func (s *Store) Wait() { s.wg.Wait() }

func (s *Store) handle(ctx context.Context, ev identity.AuthEvent) {
	gen := s.nextGen()
	if ev.Session == nil {
		s.apply(gen, Session{})
		return
	}
	s.applySignedIn(ctx, gen, ev.Session)
}

// ResetAnonymous forces the snapshot back to signed-out. Used by the gateway
// when the provider cannot be reached for a proper sign-out.
func (s *Store) ResetAnonymous() {
	s.apply(s.nextGen(), Session{})
}

func (s *Store) nextGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// apply installs the snapshot unless a newer update has claimed the state
// since gen was taken.
func (s *Store) apply(gen uint64, snap Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.snap = snap
	return true
}

// applySignedIn re-derives the whole session from the event payload plus the
// freshly fetched profile row. A missing row is not an error: the role is
// inferred from the email and the session stays authenticated.
func (s *Store) applySignedIn(ctx context.Context, gen uint64, sess *identity.ProviderSession) {
	profile := UserProfile{
		ID:       sess.UserID,
		Username: usernameFromEmail(sess.Email),
		Email:    sess.Email,
		Role:     s.fallback(sess.Email),
		Present:  true,
	}

	row, err := s.provider.FetchProfileByID(ctx, sess.UserID)
	switch {
	case err == nil && row != nil:
		profile.FirstName = row.FirstName
		profile.LastName = row.LastName
		profile.AvatarURL = row.AvatarURL
		if role, ok := models.ParseRole(row.Role); ok {
			profile.Role = role
		}
	case errors.Is(err, identity.ErrProfileNotFound):
		s.log.WithField("user_id", sess.UserID).Warn("no profile row, inferring role from email")
	case err != nil:
		s.log.WithError(err).WithField("user_id", sess.UserID).Warn("profile fetch failed, inferring role from email")
	}
	if profile.FirstName == "" {
		profile.FirstName = profile.Username
	}

	applied := s.apply(gen, Session{
		UserID:          sess.UserID,
		AccessToken:     sess.AccessToken,
		IsAuthenticated: true,
		Profile:         profile,
	})
	if !applied {
		s.log.WithField("user_id", sess.UserID).Debug("discarding superseded session update")
	}
}
