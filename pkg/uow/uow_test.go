package uow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/repository/memstore"
	"github.com/fds-bd/fds-server/pkg/uow"
)

const usersRepoName = uow.RepositoryName("users")

// usersRepo is a minimal repository for exercising the unit of work.
type usersRepo struct {
	a memstore.Accessor
}

func newUsersRepo(a memstore.Accessor) *usersRepo {
	return &usersRepo{a: a}
}

func (r *usersRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.a.View(ctx, func(data *memstore.Data) error {
		count = len(data.Users)
		return nil
	})
	return count, err
}

func (r *usersRepo) Add(ctx context.Context, user domain.User) error {
	return r.a.Update(ctx, func(data *memstore.Data) error {
		data.Users = append(data.Users, user)
		return nil
	})
}

func newRegistered(t *testing.T) *uow.UnitOfWork {
	t.Helper()

	u := uow.NewUnitOfWork(memstore.New())
	require.NoError(t, u.Register(usersRepoName, func(a memstore.Accessor) uow.Repository {
		return newUsersRepo(a)
	}))
	return u
}

func TestRegisterDuplicate(t *testing.T) {
	u := newRegistered(t)

	err := u.Register(usersRepoName, func(a memstore.Accessor) uow.Repository {
		return newUsersRepo(a)
	})
	assert.ErrorIs(t, err, uow.ErrRepositoryAlreadyRegistered)
}

func TestGetRepository(t *testing.T) {
	u := newRegistered(t)

	repo, err := u.GetRepository(usersRepoName)
	require.NoError(t, err)
	assert.IsType(t, &usersRepo{}, repo)

	_, missingErr := u.GetRepository("nope")
	assert.ErrorIs(t, missingErr, uow.ErrRepositoryNotRegistered)
}

func TestGetRepositoryAs(t *testing.T) {
	u := newRegistered(t)

	repo, err := uow.GetRepositoryAs[*usersRepo](u, usersRepoName)
	require.NoError(t, err)
	require.NotNil(t, repo)

	_, typeErr := uow.GetRepositoryAs[*struct{ unrelated int }](u, usersRepoName)
	assert.ErrorIs(t, typeErr, uow.ErrInvalidRepositoryType)

	_, missingErr := uow.GetRepositoryAs[*usersRepo](u, "nope")
	assert.ErrorIs(t, missingErr, uow.ErrRepositoryNotRegistered)
}

func TestDo(t *testing.T) {
	u := newRegistered(t)

	err := u.Do(t.Context(), func(ctx context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[*usersRepo](tx, usersRepoName)
		if repoErr != nil {
			return repoErr
		}
		if addErr := repo.Add(ctx, domain.User{ID: "1"}); addErr != nil {
			return addErr
		}
		return repo.Add(ctx, domain.User{ID: "2"})
	})
	require.NoError(t, err)

	repo, repoErr := uow.GetRepositoryAs[*usersRepo](u, usersRepoName)
	require.NoError(t, repoErr)

	count, countErr := repo.Count(t.Context())
	require.NoError(t, countErr)
	assert.Equal(t, 2, count)
}

func TestDoPropagatesError(t *testing.T) {
	u := newRegistered(t)
	wantErr := errors.New("boom")

	err := u.Do(t.Context(), func(ctx context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[*usersRepo](tx, usersRepoName)
		if repoErr != nil {
			return repoErr
		}
		if addErr := repo.Add(ctx, domain.User{ID: "1"}); addErr != nil {
			return addErr
		}
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestDoUnregisteredGet(t *testing.T) {
	u := uow.NewUnitOfWork(memstore.New())

	err := u.Do(t.Context(), func(ctx context.Context, tx uow.TX) error {
		_, getErr := uow.GetAs[*usersRepo](tx, usersRepoName)
		return getErr
	})
	assert.ErrorIs(t, err, uow.ErrRepositoryNotRegistered)
}
