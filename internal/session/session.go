// Package session is the client side of dashboard authentication. A Session
// owns the bearer token; Login and Logout are its only mutators.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"heatwatch/internal/domain"
)

var (
	// ErrNotLoggedIn is returned by calls that need a token when none is held.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrRejected wraps an error envelope returned by the API.
	ErrRejected = errors.New("request rejected")
)

// APIError is the error body of a failed API call.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return ErrRejected }

// RegisterInput is the body sent to /register/.
type RegisterInput struct {
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	LastName    string          `json:"last_name"`
	FirstName   string          `json:"first_name,omitempty"`
	PhoneNumber string          `json:"phone_number"`
	Role        domain.UserRole `json:"role,omitempty"`
}

type loginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Option configures a Session.
type Option func(*Session)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Session) { s.client = c }
}

// WithStore persists the token in store and restores it on creation.
func WithStore(store TokenStore) Option {
	return func(s *Session) { s.store = store }
}

// Session holds the current token and user. It is safe for concurrent use;
// concurrent logins are serialised and the last one to finish wins.
type Session struct {
	baseURL string
	client  *http.Client
	store   TokenStore

	loginMu sync.Mutex

	mu    sync.RWMutex
	token string
	role  domain.UserRole
	user  *domain.User
}

// New creates a Session against the API at baseURL. When a store is given,
// a previously saved token is restored.
func New(baseURL string, opts ...Option) (*Session, error) {
	s := &Session{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store != nil {
		token, err := s.store.Load()
		if err != nil {
			return nil, fmt.Errorf("session.New: %w", err)
		}
		if token != "" {
			s.setToken(token, nil)
		}
	}
	return s, nil
}

// Token returns the current bearer token, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentRole returns the role claimed by the current token, or
// domain.RoleAnonymous when logged out or the claim is unreadable.
func (s *Session) CurrentRole() domain.UserRole {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// User returns the user returned by the last login or Me call.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Login authenticates and replaces the held token. Only one login is in
// flight at a time; later callers wait for earlier ones.
func (s *Session) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.loginMu.Lock()
	defer s.loginMu.Unlock()

	var res loginResult
	body := map[string]string{"email": email, "password": password}
	if err := s.do(ctx, http.MethodPost, "/login/", "", body, &res); err != nil {
		return nil, fmt.Errorf("session.Login: %w", err)
	}
	if res.Token == "" {
		return nil, fmt.Errorf("session.Login: empty token in response")
	}
	if s.store != nil {
		if err := s.store.Save(res.Token); err != nil {
			return nil, fmt.Errorf("session.Login: %w", err)
		}
	}
	s.setToken(res.Token, res.User)
	return res.User, nil
}

// Logout drops the token locally. It never calls the API. A login in flight
// finishes first, so the logout always has the last word.
func (s *Session) Logout() error {
	s.loginMu.Lock()
	defer s.loginMu.Unlock()

	s.mu.Lock()
	s.token, s.role, s.user = "", domain.RoleAnonymous, nil
	s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Clear(); err != nil {
			return fmt.Errorf("session.Logout: %w", err)
		}
	}
	return nil
}

// Register creates an account. The session is not logged in afterwards.
func (s *Session) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	var u domain.User
	if err := s.do(ctx, http.MethodPost, "/register/", "", in, &u); err != nil {
		return nil, fmt.Errorf("session.Register: %w", err)
	}
	return &u, nil
}

// Me fetches the profile of the logged-in user.
func (s *Session) Me(ctx context.Context) (*domain.User, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}
	var u domain.User
	if err := s.do(ctx, http.MethodGet, "/me/", token, nil, &u); err != nil {
		return nil, fmt.Errorf("session.Me: %w", err)
	}
	s.mu.Lock()
	if s.token == token {
		s.user = &u
	}
	s.mu.Unlock()
	return &u, nil
}

func (s *Session) setToken(token string, user *domain.User) {
	role := RoleFromToken(token)
	s.mu.Lock()
	s.token, s.role, s.user = token, role, user
	s.mu.Unlock()
}

// RoleFromToken reads the role claim without verifying the signature; the
// server verifies on every call. Unknown or missing roles yield
// domain.RoleAnonymous.
func RoleFromToken(token string) domain.UserRole {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return domain.RoleAnonymous
	}
	raw, _ := claims["role"].(string)
	role := domain.UserRole(strings.ToLower(raw))
	if !role.IsValid() {
		return domain.RoleAnonymous
	}
	return role
}

func (s *Session) do(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &APIError{Status: resp.StatusCode, Code: "BAD_RESPONSE", Message: http.StatusText(resp.StatusCode)}
	}
	if resp.StatusCode >= 300 || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Code: "UNKNOWN", Message: http.StatusText(resp.StatusCode)}
		if env.Error != nil {
			apiErr.Code, apiErr.Message = env.Error.Code, env.Error.Message
		}
		return apiErr
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
