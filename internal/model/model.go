// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a registered account. The password is stored only as an
// Argon2id hash with a per-user salt, never in plaintext.
type User struct {
	ID        uuid.UUID // PK
	Username  string    // unique, case-sensitive
	PwdHash   []byte    // Argon2id(password, SaltAuth)
	SaltAuth  []byte    // per-user auth salt
	CreatedAt time.Time
}

// PasswordEntry is a single stored credential record. The secret itself is
// kept exactly as the user submitted it (no transformation at rest).
type PasswordEntry struct {
	ID            uuid.UUID // PK, server-assigned
	OwnerID       uuid.UUID // FK -> users.id, set at creation, never reassigned
	Name          string    // label; also the exact-match search key
	EntryUsername string
	EntrySecret   string
	Description   string
	URL           string
	CreatedAt     time.Time // set once at creation, immutable across updates
}

// EntryFields carries the caller-supplied mutable fields of an entry.
// Create and Update both take the full set; there is no partial update.
type EntryFields struct {
	Name          string
	EntryUsername string
	EntrySecret   string
	Description   string
	URL           string
}

// Session is a server-side login session resolved from the cookie token.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}
