// Package service contains application services for authentication and the vault.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/avolkov/passvault/internal/crypto"
	"github.com/avolkov/passvault/internal/errs"
	"github.com/avolkov/passvault/internal/model"
	"github.com/avolkov/passvault/internal/repository"
)

// AuthService defines registration and credential verification.
type AuthService interface {
	// Register creates a new user with secure password hashing.
	Register(ctx context.Context, username, password string) (model.User, error)
	// Login verifies credentials and returns the account on success.
	Login(ctx context.Context, username, password string) (model.User, error)
}

type AuthServiceImpl struct {
	users repository.UserRepository
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository) *AuthServiceImpl {
	return &AuthServiceImpl{users: users}
}

// Register creates a new user record with a per-user salt.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (model.User, error) {
	if username == "" || password == "" {
		return model.User{}, fmt.Errorf("%w: empty username/password", errs.ErrValidation)
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return model.User{}, err
	}
	salt, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return model.User{}, err
	}

	u := &model.User{
		ID:        uid,
		Username:  username,
		PwdHash:   pkgcrypto.HashPassword([]byte(password), salt),
		SaltAuth:  salt,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return model.User{}, err
	}
	return *u, nil
}

// Login verifies the password in constant time. Lookup failure and wrong
// password are both reported as ErrUnauthenticated so account existence
// is not leaked.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (model.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, errs.ErrUnauthenticated
		}
		return model.User{}, err
	}
	if !pkgcrypto.VerifyPassword([]byte(password), u.SaltAuth, u.PwdHash) {
		return model.User{}, errs.ErrUnauthenticated
	}
	return *u, nil
}
