package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avolkov/passvault/internal/model"
)

// SessionRepository stores server-side login sessions.
type SessionRepository interface {
	// Create inserts a new session.
	Create(ctx context.Context, s *model.Session) error
	// GetByID loads a session by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Session, error)
	// Delete removes a session (logout).
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes all sessions that expired before now and
	// reports how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
