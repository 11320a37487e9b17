package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatwatch/internal/domain"
	"heatwatch/internal/session"
)

func mintToken(t *testing.T, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type fakeAPI struct {
	t        *testing.T
	inFlight int32
	maxSeen  int32
	logins   int32
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/", func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&f.inFlight, 1)
		defer atomic.AddInt32(&f.inFlight, -1)
		for {
			m := atomic.LoadInt32(&f.maxSeen)
			if n <= m || atomic.CompareAndSwapInt32(&f.maxSeen, m, n) {
				break
			}
		}
		atomic.AddInt32(&f.logins, 1)
		time.Sleep(5 * time.Millisecond)

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "password123" {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"success": false,
				"error":   map[string]string{"code": "INVALID_CREDENTIALS", "message": "invalid credentials"},
			})
			return
		}
		role := "client"
		if body["email"] == "admin@heatwatch.sn" {
			role = "admin"
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"token": mintToken(f.t, role),
				"user":  map[string]interface{}{"email": body["email"], "role": role},
			},
		})
	})
	mux.HandleFunc("/me/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"email": "me@heatwatch.sn", "last_name": "Diop", "role": "client"},
		})
	})
	mux.HandleFunc("/register/", func(w http.ResponseWriter, r *http.Request) {
		var in session.RegisterInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Email == "taken@heatwatch.sn" {
			writeJSON(w, http.StatusConflict, map[string]interface{}{
				"success": false,
				"error":   map[string]string{"code": "DUPLICATE_EMAIL", "message": "email already exists"},
			})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"email": in.Email, "last_name": in.LastName, "role": "client"},
		})
	})
	return mux
}

func newSession(t *testing.T, opts ...session.Option) (*session.Session, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{t: t}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	s, err := session.New(srv.URL, opts...)
	require.NoError(t, err)
	return s, api
}

func TestSession_LoginSetsTokenAndRole(t *testing.T) {
	s, _ := newSession(t)
	assert.Equal(t, domain.RoleAnonymous, s.CurrentRole())

	u, err := s.Login(context.Background(), "admin@heatwatch.sn", "password123")

	require.NoError(t, err)
	assert.Equal(t, "admin@heatwatch.sn", u.Email)
	assert.NotEmpty(t, s.Token())
	assert.Equal(t, domain.RoleAdmin, s.CurrentRole())
}

func TestSession_LoginRejected(t *testing.T) {
	s, _ := newSession(t)

	_, err := s.Login(context.Background(), "user@heatwatch.sn", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrRejected)
	var apiErr *session.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Empty(t, s.Token())
}

func TestSession_LogoutClears(t *testing.T) {
	s, _ := newSession(t)
	_, err := s.Login(context.Background(), "user@heatwatch.sn", "password123")
	require.NoError(t, err)

	require.NoError(t, s.Logout())

	assert.Empty(t, s.Token())
	assert.Equal(t, domain.RoleAnonymous, s.CurrentRole())
	assert.Nil(t, s.User())
}

func TestSession_ConcurrentLoginsAreSerialised(t *testing.T) {
	s, api := newSession(t)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Login(context.Background(), "user@heatwatch.sn", "password123")
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), atomic.LoadInt32(&api.logins))
	assert.Equal(t, int32(1), atomic.LoadInt32(&api.maxSeen))
	assert.Equal(t, domain.RoleClient, s.CurrentRole())
}

// gateStore blocks Save until release is closed.
type gateStore struct {
	mu      sync.Mutex
	token   string
	saving  chan struct{}
	release chan struct{}
}

func (g *gateStore) Load() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.token, nil
}

func (g *gateStore) Save(token string) error {
	close(g.saving)
	<-g.release
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = token
	return nil
}

func (g *gateStore) Clear() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = ""
	return nil
}

func TestSession_LogoutDuringLoginWins(t *testing.T) {
	store := &gateStore{saving: make(chan struct{}), release: make(chan struct{})}
	s, _ := newSession(t, session.WithStore(store))

	loginDone := make(chan error, 1)
	go func() {
		_, err := s.Login(context.Background(), "admin@heatwatch.sn", "password123")
		loginDone <- err
	}()
	<-store.saving

	logoutDone := make(chan error, 1)
	go func() { logoutDone <- s.Logout() }()

	select {
	case <-logoutDone:
		t.Fatal("logout returned while a login was still persisting its token")
	case <-time.After(20 * time.Millisecond):
	}

	close(store.release)
	require.NoError(t, <-loginDone)
	require.NoError(t, <-logoutDone)

	assert.Empty(t, s.Token())
	assert.Equal(t, domain.RoleAnonymous, s.CurrentRole())
	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestSession_MeRequiresLogin(t *testing.T) {
	s, _ := newSession(t)

	_, err := s.Me(context.Background())
	assert.ErrorIs(t, err, session.ErrNotLoggedIn)

	_, err = s.Login(context.Background(), "me@heatwatch.sn", "password123")
	require.NoError(t, err)
	u, err := s.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Diop", u.LastName)
	assert.Equal(t, "Diop", s.User().LastName)
}

func TestSession_Register(t *testing.T) {
	s, _ := newSession(t)

	u, err := s.Register(context.Background(), session.RegisterInput{
		Email: "new@heatwatch.sn", Password: "password123", LastName: "Ndiaye", PhoneNumber: "+221770000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@heatwatch.sn", u.Email)
	assert.Empty(t, s.Token())

	_, err = s.Register(context.Background(), session.RegisterInput{Email: "taken@heatwatch.sn"})
	var apiErr *session.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "DUPLICATE_EMAIL", apiErr.Code)
}

func TestSession_FileStoreRoundTrip(t *testing.T) {
	store := session.FileStore{Path: filepath.Join(t.TempDir(), "nested", "token")}
	s, _ := newSession(t, session.WithStore(store))

	_, err := s.Login(context.Background(), "admin@heatwatch.sn", "password123")
	require.NoError(t, err)

	restored, err := session.New("http://unused", session.WithStore(store))
	require.NoError(t, err)
	assert.Equal(t, s.Token(), restored.Token())
	assert.Equal(t, domain.RoleAdmin, restored.CurrentRole())

	require.NoError(t, restored.Logout())
	tok, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestRoleFromToken(t *testing.T) {
	assert.Equal(t, domain.RoleExpert, session.RoleFromToken(mintToken(t, "EXPERT")))
	assert.Equal(t, domain.RoleAnonymous, session.RoleFromToken(mintToken(t, "superuser")))
	assert.Equal(t, domain.RoleAnonymous, session.RoleFromToken("not-a-jwt"))
	assert.Equal(t, domain.RoleAnonymous, session.RoleFromToken(""))
}
