package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/passvault/internal/errs"
	"github.com/avolkov/passvault/internal/model"
)

var entryCols = []string{"id", "owner_id", "name", "entry_username", "entry_secret", "description", "url", "created_at"}

func sampleEntry(owner uuid.UUID) model.PasswordEntry {
	return model.PasswordEntry{
		ID:            uuid.Must(uuid.NewV4()),
		OwnerID:       owner,
		Name:          "bank",
		EntryUsername: "alice@example.com",
		EntrySecret:   "hunter2",
		Description:   "main account",
		URL:           "https://bank.example.com",
		CreatedAt:     time.Now(),
	}
}

func entryRow(e model.PasswordEntry) *pgxmock.Rows {
	return pgxmock.NewRows(entryCols).
		AddRow(e.ID, e.OwnerID, e.Name, e.EntryUsername, e.EntrySecret, e.Description, e.URL, e.CreatedAt)
}

func TestEntryRepo_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEntryRepo(db)
	ctx := context.Background()
	e := sampleEntry(uuid.Must(uuid.NewV4()))

	mock.ExpectExec(`INSERT INTO entries \(id, owner_id, name, entry_username, entry_secret, description, url, created_at\)`).
		WithArgs(e.ID, e.OwnerID, e.Name, e.EntryUsername, e.EntrySecret, e.Description, e.URL, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, &e))
}

func TestEntryRepo_GetByID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEntryRepo(db)
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	e := sampleEntry(owner)

	mock.ExpectQuery(`SELECT id, owner_id, name, entry_username, entry_secret, description, url, created_at FROM entries WHERE owner_id=\$1 AND id=\$2`).
		WithArgs(owner, e.ID).
		WillReturnRows(entryRow(e))
	got, err := r.GetByID(ctx, owner, e.ID)
	require.NoError(t, err)
	require.Equal(t, e.Name, got.Name)
	require.Equal(t, owner, got.OwnerID)

	// Entry of another owner is invisible: scoped query returns no rows.
	mock.ExpectQuery(`SELECT id, owner_id, name, entry_username, entry_secret, description, url, created_at FROM entries WHERE owner_id=\$1 AND id=\$2`).
		WithArgs(owner, e.ID).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByID(ctx, owner, e.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestEntryRepo_ListByOwner(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEntryRepo(db)
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	a, b := sampleEntry(owner), sampleEntry(owner)

	mock.ExpectQuery(`SELECT id, owner_id, name, entry_username, entry_secret, description, url, created_at FROM entries WHERE owner_id=\$1 ORDER BY created_at ASC`).
		WithArgs(owner).
		WillReturnRows(entryRow(a).AddRow(b.ID, b.OwnerID, b.Name, b.EntryUsername, b.EntrySecret, b.Description, b.URL, b.CreatedAt))
	got, err := r.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, a.ID, got[0].ID)

	// No entries is an empty list, not an error.
	mock.ExpectQuery(`SELECT id, owner_id, name, entry_username, entry_secret, description, url, created_at FROM entries WHERE owner_id=\$1 ORDER BY created_at ASC`).
		WithArgs(owner).
		WillReturnRows(pgxmock.NewRows(entryCols))
	got, err = r.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestEntryRepo_SearchByName(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEntryRepo(db)
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	e := sampleEntry(owner)

	mock.ExpectQuery(`SELECT id, owner_id, name, entry_username, entry_secret, description, url, created_at FROM entries WHERE owner_id=\$1 AND name=\$2 ORDER BY created_at ASC`).
		WithArgs(owner, "bank").
		WillReturnRows(entryRow(e))
	got, err := r.SearchByName(ctx, owner, "bank")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "bank", got[0].Name)
}

func TestEntryRepo_Update(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEntryRepo(db)
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	f := model.EntryFields{Name: "bank2", EntryUsername: "u", EntrySecret: "p", Description: "d", URL: "https://x"}

	mock.ExpectExec(`UPDATE entries SET name=\$3, entry_username=\$4, entry_secret=\$5, description=\$6, url=\$7 WHERE owner_id=\$1 AND id=\$2`).
		WithArgs(owner, id, f.Name, f.EntryUsername, f.EntrySecret, f.Description, f.URL).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.Update(ctx, owner, id, f))

	mock.ExpectExec(`UPDATE entries SET name=\$3, entry_username=\$4, entry_secret=\$5, description=\$6, url=\$7 WHERE owner_id=\$1 AND id=\$2`).
		WithArgs(owner, id, f.Name, f.EntryUsername, f.EntrySecret, f.Description, f.URL).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	require.ErrorIs(t, r.Update(ctx, owner, id, f), errs.ErrNotFound)
}

func TestEntryRepo_Delete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEntryRepo(db)
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mock.ExpectExec(`DELETE FROM entries WHERE owner_id=\$1 AND id=\$2`).
		WithArgs(owner, id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(ctx, owner, id))

	mock.ExpectExec(`DELETE FROM entries WHERE owner_id=\$1 AND id=\$2`).
		WithArgs(owner, id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, r.Delete(ctx, owner, id), errs.ErrNotFound)
}
