package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// RESTProvider implements Provider against the TalentNavigator API. It plays
// the part the hosted auth backend played for the SPA: password exchange,
// session introspection, profile rows, and an ordered auth-event stream.
type RESTProvider struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore

	mu      sync.Mutex
	current *ProviderSession

	events chan AuthEvent
	closed sync.Once
}

type restLoginResponse struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	User         restUser `json:"user"`
}

type restUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl"`
}

func NewRESTProvider(baseURL string, tokens TokenStore) *RESTProvider {
	if tokens == nil {
		tokens = NewMemTokenStore()
	}
	return &RESTProvider{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
		events:  make(chan AuthEvent, 16),
	}
}

func (p *RESTProvider) Events() <-chan AuthEvent { return p.events }

func (p *RESTProvider) Close() error {
	p.closed.Do(func() { close(p.events) })
	return nil
}

func (p *RESTProvider) emit(ev AuthEvent) {
	// best effort: a saturated consumer drops the oldest semantics are not
	// needed here, the store drains promptly
	p.events <- ev
}

func (p *RESTProvider) do(ctx context.Context, method, path, token string, body, out any) (int, error) {
	if p.baseURL == "" {
		return 0, ErrNotConfigured
	}

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, rd)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return 0, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func (p *RESTProvider) CurrentSession(ctx context.Context) (*ProviderSession, error) {
	p.mu.Lock()
	if p.current != nil {
		sess := *p.current
		p.mu.Unlock()
		return &sess, nil
	}
	p.mu.Unlock()

	token, err := p.tokens.Load()
	if err != nil || token == "" {
		return nil, nil
	}

	var u restUser
	status, err := p.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &u)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		_ = p.tokens.Clear()
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from session check", status)
	}

	sess := &ProviderSession{UserID: u.ID, Email: u.Email, AccessToken: token}
	p.mu.Lock()
	p.current = sess
	p.mu.Unlock()
	return sess, nil
}

func (p *RESTProvider) SignInWithPassword(ctx context.Context, email, password string) (*ProviderSession, error) {
	var out restLoginResponse
	status, err := p.do(ctx, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, ErrInvalidCredentials
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from login", status)
	}

	sess := &ProviderSession{
		UserID:      out.User.ID,
		Email:       out.User.Email,
		AccessToken: out.Token,
	}

	p.mu.Lock()
	p.current = sess
	p.mu.Unlock()
	_ = p.tokens.Save(out.Token)

	p.emit(AuthEvent{Type: EventSignedIn, Session: sess})
	return sess, nil
}

func (p *RESTProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	var token string
	if p.current != nil {
		token = p.current.AccessToken
	}
	p.current = nil
	p.mu.Unlock()

	if token == "" {
		if t, err := p.tokens.Load(); err == nil {
			token = t
		}
	}
	_ = p.tokens.Clear()

	var signOutErr error
	if token != "" {
		if _, err := p.do(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil); err != nil {
			signOutErr = err
		}
	}

	p.emit(AuthEvent{Type: EventSignedOut, Session: nil})
	return signOutErr
}

func (p *RESTProvider) FetchProfileByID(ctx context.Context, id string) (*ProfileRow, error) {
	p.mu.Lock()
	var token string
	if p.current != nil {
		token = p.current.AccessToken
	}
	p.mu.Unlock()
	if token == "" {
		if t, err := p.tokens.Load(); err == nil {
			token = t
		}
	}

	var u restUser
	status, err := p.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &u)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound || status == http.StatusUnauthorized {
		return nil, ErrProfileNotFound
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from profile fetch", status)
	}
	if u.ID != id {
		return nil, ErrProfileNotFound
	}

	return &ProfileRow{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
	}, nil
}
