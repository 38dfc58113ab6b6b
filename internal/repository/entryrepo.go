package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avolkov/passvault/internal/model"
)

// EntryRepository provides CRUD access to vault entries. All reads and
// mutations except Create are scoped to the owning user.
type EntryRepository interface {
	// Create inserts a new entry.
	Create(ctx context.Context, e *model.PasswordEntry) error
	// GetByID loads a single entry owned by ownerID.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.PasswordEntry, error)
	// ListByOwner returns all entries of a user ordered by creation time.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.PasswordEntry, error)
	// SearchByName returns the owner's entries whose name equals name exactly.
	SearchByName(ctx context.Context, ownerID uuid.UUID, name string) ([]model.PasswordEntry, error)
	// Update replaces the mutable fields of an entry owned by ownerID.
	Update(ctx context.Context, ownerID, id uuid.UUID, f model.EntryFields) error
	// Delete removes an entry owned by ownerID permanently.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
