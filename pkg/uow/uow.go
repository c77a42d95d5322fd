// Package uow is a unit-of-work over the in-memory store. Do runs its closure
// under the store's write lock, so a multi-repository mutation is observed as
// a single atomic step by every other caller.
package uow

import (
	"context"

	"github.com/fds-bd/fds-server/internal/repository/memstore"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(memstore.Accessor) Repository

type UnitOfWork struct {
	db           *memstore.DB
	repositories map[RepositoryName]RepositoryFactory
}

func NewUnitOfWork(db *memstore.DB) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		repositories: make(map[RepositoryName]RepositoryFactory),
	}
}

// Register adds a repository factory. Registering the same name twice returns
// ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := u.repositories[name]; ok {
		return ErrRepositoryAlreadyRegistered
	}
	u.repositories[name] = factory
	return nil
}

// Do executes fn while holding the store's write lock. Repositories obtained
// from the TX reuse that lock; there is no rollback, so fn must validate
// before it mutates.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) error {
	return u.db.Exclusive(ctx, func(a memstore.Accessor) error {
		return fn(ctx, NewTransaction(a, u.repositories))
	})
}

// GetRepository returns a repository that locks per call, or
// ErrRepositoryNotRegistered.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	if repoFactory, ok := u.repositories[name]; ok {
		return repoFactory(u.db), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetRepositoryAs returns the repository named name cast to T. Returns
// ErrRepositoryNotRegistered or ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)

	if !ok {
		return res, ErrInvalidRepositoryType
	}

	return r, nil
}
