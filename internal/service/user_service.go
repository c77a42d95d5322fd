package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/repository/repoargs"
	"github.com/fds-bd/fds-server/internal/transport/api/tokens"
	"github.com/fds-bd/fds-server/pkg/uow"
)

// SessionTokenExpire matches the lifetime of the session cookie.
const SessionTokenExpire = 7 * 24 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		psswd:          hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
	Role     domain.RoleType
}

// Login resolves the user by email and role, checks the password against the
// stored hash and issues a signed session token. Returns the user, the token
// and an error; domain.ErrRecordNotFound and domain.ErrPasswordMissMatch both
// mean "invalid credentials" to the caller.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindByEmailRole(ctx, args.Email, args.Role)
	if findErr != nil {
		return nil, "", fmt.Errorf("logging in user: %w", findErr)
	}

	if !s.psswd.ComparePassword(args.Password, user.Password) {
		return nil, "", fmt.Errorf("logging in user %s: %w", args.Email, domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.Role, SessionTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in user: %s", tokenErr.Error())
	}
	return user, token, nil
}

// FindUser matches email exactly; the role string is matched
// case-insensitively. An unknown role reads as "no such user".
func (s *UserService) FindUser(ctx context.Context, email, role string) (*domain.User, error) {
	roleType, ok := domain.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("finding user %s: %w", email, domain.ErrRecordNotFound)
	}
	user, err := s.userRepo.FindByEmailRole(ctx, email, roleType)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}
