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

func TestSessionRepo_Create_Get(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSessionRepo(db)
	ctx := context.Background()
	s := &model.Session{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    uuid.Must(uuid.NewV4()),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mock.ExpectExec(`INSERT INTO sessions \(id, user_id, created_at, expires_at\) VALUES \(\$1, \$2, \$3, \$4\)`).
		WithArgs(s.ID, s.UserID, s.CreatedAt, s.ExpiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, s))

	mock.ExpectQuery(`SELECT id, user_id, created_at, expires_at FROM sessions WHERE id=\$1`).
		WithArgs(s.ID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "created_at", "expires_at"}).
			AddRow(s.ID, s.UserID, s.CreatedAt, s.ExpiresAt))
	got, err := r.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, s.UserID, got.UserID)

	mock.ExpectQuery(`SELECT id, user_id, created_at, expires_at FROM sessions WHERE id=\$1`).
		WithArgs(s.ID).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByID(ctx, s.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSessionRepo_Delete_AbsentIsNoError(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSessionRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	mock.ExpectExec(`DELETE FROM sessions WHERE id=\$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.NoError(t, r.Delete(ctx, id))
}

func TestSessionRepo_DeleteExpired(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSessionRepo(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM sessions WHERE expires_at < now\(\)`).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	n, err := r.DeleteExpired(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
}
