package uow

import (
	"github.com/fds-bd/fds-server/internal/repository/memstore"
)

// Transaction hands out repositories bound to the accessor of an exclusive
// store section, i.e. the lock Do already holds.
type Transaction struct {
	repositories map[RepositoryName]RepositoryFactory
	a            memstore.Accessor
}

func NewTransaction(a memstore.Accessor, repositories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		repositories: repositories,
		a:            a,
	}
}

// Get returns a repository or ErrRepositoryNotRegistered.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if repo, ok := t.repositories[name]; ok {
		return repo(t.a), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetAs returns the registered repository named name cast to T, or the errors
// ErrRepositoryNotRegistered and ErrInvalidRepositoryType.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	repo, err := t.Get(name)
	var res T
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	res, ok := repo.(T)
	if !ok {
		return res, ErrInvalidRepositoryType
	}
	return res, nil
}
