package memrepo

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/repository/memstore"
	"github.com/fds-bd/fds-server/internal/repository/repoargs"
)

type UserRepository struct {
	a memstore.Accessor
}

func NewUserRepository(a memstore.Accessor) *UserRepository {
	return &UserRepository{a: a}
}

// Create appends a new user. The email must be unique across all roles,
// otherwise FindByEmailRole loses its single-match guarantee.
func (r *UserRepository) Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	var created domain.User
	err := r.a.Update(ctx, func(d *memstore.Data) error {
		for i := range d.Users {
			if strings.EqualFold(d.Users[i].Email, args.Email) {
				return duplicateErr("user email %s", args.Email)
			}
		}
		created = domain.User{
			ID:       uuid.NewString(),
			Email:    args.Email,
			Password: args.Password,
			Name:     args.Name,
			Role:     args.Role,
		}
		d.Users = append(d.Users, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByEmailRole matches the email exactly and the role as stored.
func (r *UserRepository) FindByEmailRole(
	ctx context.Context,
	email string,
	role domain.RoleType,
) (*domain.User, error) {
	var found domain.User
	err := r.a.View(ctx, func(d *memstore.Data) error {
		for i := range d.Users {
			if d.Users[i].Email == email && d.Users[i].Role == role {
				found = d.Users[i]
				return nil
			}
		}
		return notFoundErr("user %s/%s", email, role)
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var found domain.User
	err := r.a.View(ctx, func(d *memstore.Data) error {
		for i := range d.Users {
			if d.Users[i].ID == id {
				found = d.Users[i]
				return nil
			}
		}
		return notFoundErr("user id %s", id)
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}
