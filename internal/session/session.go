// Package session issues and resolves login sessions. The browser carries a
// signed HS256 token wrapping the session ID; the session itself lives in
// the database so logout revokes it server-side.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/avolkov/passvault/internal/errs"
	"github.com/avolkov/passvault/internal/model"
	"github.com/avolkov/passvault/internal/repository"
)

// Manager creates, resolves and revokes sessions.
type Manager struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
	signKey  []byte
	ttl      time.Duration
}

// NewManager constructs a session manager.
func NewManager(sessions repository.SessionRepository, users repository.UserRepository, signKey []byte, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{sessions: sessions, users: users, signKey: signKey, ttl: ttl}
}

// TTL reports the configured session lifetime (used for cookie expiry).
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue creates a session for the user and returns the signed cookie token.
func (m *Manager) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	sid, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	s := &model.Session{
		ID:        sid,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.sessions.Create(ctx, s); err != nil {
		return "", err
	}

	claims := jwt.RegisteredClaims{
		Subject:   sid.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.signKey)
}

// Resolve verifies the token, loads the session and returns the logged-in
// user. Any failure — bad signature, unknown or expired session, missing
// user — comes back as ErrUnauthenticated.
func (m *Manager) Resolve(ctx context.Context, token string) (model.User, error) {
	sid, err := m.sessionID(token)
	if err != nil {
		return model.User{}, errs.ErrUnauthenticated
	}
	s, err := m.sessions.GetByID(ctx, sid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, errs.ErrUnauthenticated
		}
		return model.User{}, err
	}
	if time.Now().After(s.ExpiresAt) {
		return model.User{}, errs.ErrUnauthenticated
	}
	u, err := m.users.GetByID(ctx, s.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, errs.ErrUnauthenticated
		}
		return model.User{}, err
	}
	return *u, nil
}

// Revoke deletes the session referenced by the token. Invalid tokens are
// ignored: logout must succeed regardless.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	sid, err := m.sessionID(token)
	if err != nil {
		return nil
	}
	return m.sessions.Delete(ctx, sid)
}

// sessionID verifies the HS256 signature and extracts the session ID.
func (m *Manager) sessionID(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, errors.New("invalid token")
	}
	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.New("bad subject")
	}
	return id, nil
}
