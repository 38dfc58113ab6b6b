package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/avolkov/passvault/internal/errs"
	"github.com/avolkov/passvault/internal/model"
	"github.com/avolkov/passvault/internal/repository"
)

// VaultService defines ownership-scoped CRUD and search over vault entries.
// Every operation takes the authenticated owner explicitly; an entry is
// never visible or mutable outside its owner.
type VaultService interface {
	// Create validates fields and persists a new entry owned by ownerID.
	Create(ctx context.Context, ownerID uuid.UUID, f model.EntryFields) (model.PasswordEntry, error)
	// Get returns a single entry of the owner.
	Get(ctx context.Context, ownerID, id uuid.UUID) (*model.PasswordEntry, error)
	// List returns all entries of the owner, oldest first.
	List(ctx context.Context, ownerID uuid.UUID) ([]model.PasswordEntry, error)
	// Search returns the owner's entries whose name equals term exactly
	// (case-sensitive, no substring matching).
	Search(ctx context.Context, ownerID uuid.UUID, term string) ([]model.PasswordEntry, error)
	// Update replaces the mutable fields wholesale; ID, OwnerID and
	// CreatedAt are immutable.
	Update(ctx context.Context, ownerID, id uuid.UUID, f model.EntryFields) error
	// Delete removes an entry permanently.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type VaultServiceImpl struct {
	entries repository.EntryRepository
}

// NewVaultService constructs VaultService.
func NewVaultService(entries repository.EntryRepository) *VaultServiceImpl {
	return &VaultServiceImpl{entries: entries}
}

// validateFields enforces the required fields at the service boundary.
// Name labels the entry (and is the search key); the secret is the point
// of storing one. Username, description and URL stay optional.
func validateFields(f model.EntryFields) error {
	if f.Name == "" {
		return fmt.Errorf("%w: empty name", errs.ErrValidation)
	}
	if f.EntrySecret == "" {
		return fmt.Errorf("%w: empty secret", errs.ErrValidation)
	}
	return nil
}

// Create persists a new entry with server-assigned ID and creation time.
// The secret is stored exactly as submitted.
func (s *VaultServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, f model.EntryFields) (model.PasswordEntry, error) {
	if ownerID == uuid.Nil {
		return model.PasswordEntry{}, fmt.Errorf("%w: empty ownerID", errs.ErrValidation)
	}
	if err := validateFields(f); err != nil {
		return model.PasswordEntry{}, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return model.PasswordEntry{}, err
	}
	e := model.PasswordEntry{
		ID:            id,
		OwnerID:       ownerID,
		Name:          f.Name,
		EntryUsername: f.EntryUsername,
		EntrySecret:   f.EntrySecret,
		Description:   f.Description,
		URL:           f.URL,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.entries.Create(ctx, &e); err != nil {
		return model.PasswordEntry{}, err
	}
	return e, nil
}

// Get fetches a single entry scoped to the owner.
func (s *VaultServiceImpl) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.PasswordEntry, error) {
	if ownerID == uuid.Nil || id == uuid.Nil {
		return nil, fmt.Errorf("%w: empty ownerID/id", errs.ErrValidation)
	}
	return s.entries.GetByID(ctx, ownerID, id)
}

// List returns the owner's entries only.
func (s *VaultServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]model.PasswordEntry, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty ownerID", errs.ErrValidation)
	}
	return s.entries.ListByOwner(ctx, ownerID)
}

// Search matches names exactly; an empty term matches nothing.
func (s *VaultServiceImpl) Search(ctx context.Context, ownerID uuid.UUID, term string) ([]model.PasswordEntry, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty ownerID", errs.ErrValidation)
	}
	if term == "" {
		return []model.PasswordEntry{}, nil
	}
	return s.entries.SearchByName(ctx, ownerID, term)
}

// Update replaces all mutable fields; there is no partial update.
// Concurrent updates are last-write-wins.
func (s *VaultServiceImpl) Update(ctx context.Context, ownerID, id uuid.UUID, f model.EntryFields) error {
	if ownerID == uuid.Nil || id == uuid.Nil {
		return fmt.Errorf("%w: empty ownerID/id", errs.ErrValidation)
	}
	if err := validateFields(f); err != nil {
		return err
	}
	return s.entries.Update(ctx, ownerID, id, f)
}

// Delete removes the entry; no tombstone, no undo.
func (s *VaultServiceImpl) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if ownerID == uuid.Nil || id == uuid.Nil {
		return fmt.Errorf("%w: empty ownerID/id", errs.ErrValidation)
	}
	return s.entries.Delete(ctx, ownerID, id)
}
