package service

import (
	"context"

	"github.com/avolkov/passvault/internal/model"
	"github.com/avolkov/passvault/internal/repository"
)

// DirectoryService looks up public user profiles. No authentication is
// required for this read; credential material is stripped from the result.
type DirectoryService interface {
	// FindByUsername returns the profile of a user or errs.ErrNotFound.
	FindByUsername(ctx context.Context, username string) (model.User, error)
}

type DirectoryServiceImpl struct {
	users repository.UserRepository
}

// NewDirectoryService constructs DirectoryService.
func NewDirectoryService(users repository.UserRepository) *DirectoryServiceImpl {
	return &DirectoryServiceImpl{users: users}
}

// FindByUsername loads a user and clears the credential fields before
// returning; profile pages are public.
func (s *DirectoryServiceImpl) FindByUsername(ctx context.Context, username string) (model.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return model.User{}, err
	}
	out := *u
	out.PwdHash = nil
	out.SaltAuth = nil
	return out, nil
}
