package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/mrdsaas/admin-console/internal/core/domain"
	"github.com/mrdsaas/admin-console/internal/core/ports"
)

// SessionService exchanges credentials for a console session and resolves
// sessions on guarded requests.
type SessionService struct {
	auth   ports.AuthAPI
	store  ports.SessionStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewSessionService(auth ports.AuthAPI, store ports.SessionStore, logger zerolog.Logger) *SessionService {
	return &SessionService{auth: auth, store: store, logger: logger, now: time.Now}
}

// Login authenticates against the backend and persists the resulting
// token+profile pair. CA admins land on their own screen; everyone else gets
// the generic dashboard.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, string, error) {
	if email == "" || password == "" {
		return "", "", domain.ErrInvalidCredentials
	}

	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("login rejected")
		return "", "", err
	}

	id, err := s.store.Put(ctx, result.Token, result.Profile)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session")
		return "", "", err
	}

	landing := "/dashboard"
	if result.Profile.Role == domain.RoleCAAdmin {
		landing = "/dashboard/home"
	}

	s.logger.Info().Str("role", result.Profile.Role).Str("landing", landing).Msg("operator logged in")
	return id, landing, nil
}

// Logout clears the persisted session unconditionally. A store failure is
// logged only; the operator is logged out either way.
func (s *SessionService) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear session")
	}
}

// Resolve loads the session and rejects it when the bearer token carries a
// past expiry. The token is parsed without verification: the backend holds
// the signing key and remains the authority, the console only reads exp to
// avoid proxying calls that are guaranteed to fail.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if expired(sess.Token, s.now()) {
		s.Logout(ctx, sessionID)
		return nil, domain.ErrSessionExpired
	}

	return sess, nil
}

// expired reports whether token is a JWT with an exp claim in the past.
// Opaque tokens and tokens without exp are treated as live.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
