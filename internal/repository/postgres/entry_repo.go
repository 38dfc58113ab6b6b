package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/avolkov/passvault/internal/errs"
	"github.com/avolkov/passvault/internal/model"
)

// EntryRepo implements EntryRepository using PostgreSQL.
type EntryRepo struct{ db *DB }

// NewEntryRepo constructs an entry repository.
func NewEntryRepo(db *DB) *EntryRepo { return &EntryRepo{db: db} }

const entryColumns = `id, owner_id, name, entry_username, entry_secret, description, url, created_at`

// Create inserts a new entry row.
func (r *EntryRepo) Create(ctx context.Context, e *model.PasswordEntry) error {
	const q = `
INSERT INTO entries (id, owner_id, name, entry_username, entry_secret, description, url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Pool.Exec(ctx, q,
		e.ID, e.OwnerID, e.Name, e.EntryUsername, e.EntrySecret, e.Description, e.URL, e.CreatedAt)
	return err
}

// GetByID selects a single entry scoped to its owner.
func (r *EntryRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.PasswordEntry, error) {
	const q = `
SELECT ` + entryColumns + `
FROM entries WHERE owner_id=$1 AND id=$2`
	row := r.db.Pool.QueryRow(ctx, q, ownerID, id)
	var e model.PasswordEntry
	if err := scanEntry(row, &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// ListByOwner returns all entries of a user, oldest first.
func (r *EntryRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.PasswordEntry, error) {
	const q = `
SELECT ` + entryColumns + `
FROM entries
WHERE owner_id=$1
ORDER BY created_at ASC`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

// SearchByName returns the owner's entries with an exact name match.
// Matching is case-sensitive; substrings do not match.
func (r *EntryRepo) SearchByName(ctx context.Context, ownerID uuid.UUID, name string) ([]model.PasswordEntry, error) {
	const q = `
SELECT ` + entryColumns + `
FROM entries
WHERE owner_id=$1 AND name=$2
ORDER BY created_at ASC`
	rows, err := r.db.Pool.Query(ctx, q, ownerID, name)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

// Update replaces the mutable fields wholesale. owner_id and created_at
// are never touched.
func (r *EntryRepo) Update(ctx context.Context, ownerID, id uuid.UUID, f model.EntryFields) error {
	const q = `
UPDATE entries
SET name=$3, entry_username=$4, entry_secret=$5, description=$6, url=$7
WHERE owner_id=$1 AND id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, ownerID, id, f.Name, f.EntryUsername, f.EntrySecret, f.Description, f.URL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes an entry permanently; no tombstone.
func (r *EntryRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const q = `DELETE FROM entries WHERE owner_id=$1 AND id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func scanEntry(row pgx.Row, e *model.PasswordEntry) error {
	return row.Scan(&e.ID, &e.OwnerID, &e.Name, &e.EntryUsername, &e.EntrySecret,
		&e.Description, &e.URL, &e.CreatedAt)
}

func collectEntries(rows pgx.Rows) ([]model.PasswordEntry, error) {
	defer rows.Close()
	var out []model.PasswordEntry
	for rows.Next() {
		var e model.PasswordEntry
		if err := scanEntry(rows, &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
