package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/mrdsaas/admin-console/internal/core/domain"
	"github.com/mrdsaas/admin-console/internal/core/ports"
)

type stubAuthAPI struct {
	result *ports.LoginResult
	err    error
	calls  int
}

func (a *stubAuthAPI) Login(_ context.Context, _, _ string) (*ports.LoginResult, error) {
	a.calls++
	return a.result, a.err
}

func (a *stubAuthAPI) CALogin(_ context.Context, _, _ string) (*ports.LoginResult, error) {
	return a.result, a.err
}

type stubSessionStore struct {
	sessions map[string]*domain.Session
	putErr   error
	nextID   string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session), nextID: "sess-1"}
}

func (s *stubSessionStore) Put(_ context.Context, token string, profile domain.Profile) (string, error) {
	if s.putErr != nil {
		return "", s.putErr
	}
	id := s.nextID
	s.sessions[id] = &domain.Session{ID: id, Token: token, Profile: profile}
	return id, nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"role": "SUPERADMIN", "exp": exp.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSessionService_Login_Success(t *testing.T) {
	auth := &stubAuthAPI{result: &ports.LoginResult{
		Token:   "abc",
		Profile: domain.Profile{ID: "u1", Name: "Admin", Email: "admin@mrd.com", Role: domain.RoleSuperAdmin},
	}}
	store := newStubSessionStore()
	svc := NewSessionService(auth, store, zerolog.Nop())

	id, landing, err := svc.Login(context.Background(), "admin@mrd.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if landing != "/dashboard" {
		t.Fatalf("expected /dashboard landing, got %s", landing)
	}

	sess, err := store.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
	if sess.Token != "abc" || sess.Profile.Role != domain.RoleSuperAdmin {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestSessionService_Login_CAAdminLanding(t *testing.T) {
	auth := &stubAuthAPI{result: &ports.LoginResult{
		Token:   "abc",
		Profile: domain.Profile{Role: domain.RoleCAAdmin},
	}}
	svc := NewSessionService(auth, newStubSessionStore(), zerolog.Nop())

	_, landing, err := svc.Login(context.Background(), "ca@mrd.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if landing != "/dashboard/home" {
		t.Fatalf("expected /dashboard/home landing, got %s", landing)
	}
}

func TestSessionService_Login_EmptyCredentials(t *testing.T) {
	auth := &stubAuthAPI{}
	svc := NewSessionService(auth, newStubSessionStore(), zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if auth.calls != 0 {
		t.Fatalf("backend must not be called with empty credentials")
	}
}

func TestSessionService_Login_BackendRejected(t *testing.T) {
	backendErr := errors.New("status 401")
	auth := &stubAuthAPI{err: backendErr}
	store := newStubSessionStore()
	svc := NewSessionService(auth, store, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "admin@mrd.com", "wrong"); !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("no session may be stored on failed login")
	}
}

func TestSessionService_Logout_RemovesSession(t *testing.T) {
	store := newStubSessionStore()
	store.sessions["sess-1"] = &domain.Session{ID: "sess-1", Token: "abc"}
	svc := NewSessionService(&stubAuthAPI{}, store, zerolog.Nop())

	svc.Logout(context.Background(), "sess-1")
	if _, err := store.Get(context.Background(), "sess-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session removed, got %v", err)
	}
}

func TestSessionService_Resolve_OpaqueTokenLive(t *testing.T) {
	store := newStubSessionStore()
	store.sessions["sess-1"] = &domain.Session{ID: "sess-1", Token: "not-a-jwt"}
	svc := NewSessionService(&stubAuthAPI{}, store, zerolog.Nop())

	sess, err := svc.Resolve(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("opaque tokens must resolve: %v", err)
	}
	if sess.Token != "not-a-jwt" {
		t.Fatalf("unexpected token: %s", sess.Token)
	}
}

func TestSessionService_Resolve_ExpiredTokenRejected(t *testing.T) {
	store := newStubSessionStore()
	store.sessions["sess-1"] = &domain.Session{
		ID:    "sess-1",
		Token: signedToken(t, time.Now().Add(-time.Hour)),
	}
	svc := NewSessionService(&stubAuthAPI{}, store, zerolog.Nop())

	if _, err := svc.Resolve(context.Background(), "sess-1"); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if _, err := store.Get(context.Background(), "sess-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expired session must be cleared from the store")
	}
}

func TestSessionService_Resolve_LiveTokenAccepted(t *testing.T) {
	store := newStubSessionStore()
	store.sessions["sess-1"] = &domain.Session{
		ID:    "sess-1",
		Token: signedToken(t, time.Now().Add(time.Hour)),
	}
	svc := NewSessionService(&stubAuthAPI{}, store, zerolog.Nop())

	if _, err := svc.Resolve(context.Background(), "sess-1"); err != nil {
		t.Fatalf("live token must resolve: %v", err)
	}
}

func TestSessionService_Resolve_UnknownSession(t *testing.T) {
	svc := NewSessionService(&stubAuthAPI{}, newStubSessionStore(), zerolog.Nop())

	if _, err := svc.Resolve(context.Background(), "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
