package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/repository/repoargs"
	"github.com/fds-bd/fds-server/pkg/uow"
)

// DefaultMonthlyFee applies when registration does not name a fee.
const DefaultMonthlyFee int64 = 1000

type MemberService struct {
	uow        uow.UOW
	memberRepo MemberRepository
	psswd      PasswordHasher
}

func NewMemberService(u uow.UOW, hasher PasswordHasher) (*MemberService, error) {
	memberRepo, memberRepoErr := uow.GetRepositoryAs[MemberRepository](u, uow.RepositoryName(repoargs.MemberRepoName))
	if memberRepoErr != nil {
		return nil, memberRepoErr
	}
	return &MemberService{
		uow:        u,
		memberRepo: memberRepo,
		psswd:      hasher,
	}, nil
}

type RegisterMemberArgs struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	Address    string
	MonthlyFee int64
}

func (a *RegisterMemberArgs) validate() error {
	switch {
	case a.Name == "":
		return domain.NewValidationError("name", "required")
	case a.Email == "":
		return domain.NewValidationError("email", "required")
	case a.Password == "":
		return domain.NewValidationError("password", "required")
	case a.Phone == "":
		return domain.NewValidationError("phone", "required")
	case a.MonthlyFee < 0:
		return domain.NewValidationError("monthlyFee", "must not be negative")
	}
	return nil
}

// Register creates the MEMBER user and the linked member record in one
// transaction, so a duplicate email leaves no half-registered state behind.
// A taken email fails with domain.ErrDuplicateKey.
func (s *MemberService) Register(ctx context.Context, args RegisterMemberArgs) (*domain.MemberDetail, error) {
	if valErr := args.validate(); valErr != nil {
		return nil, valErr
	}

	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, errors.WithMessage(hashErr, "registering member")
	}

	monthlyFee := args.MonthlyFee
	if monthlyFee == 0 {
		monthlyFee = DefaultMonthlyFee
	}

	var detail domain.MemberDetail
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		memberRepo, memberRepoErr := uow.GetAs[MemberRepository](tx, uow.RepositoryName(repoargs.MemberRepoName))
		if memberRepoErr != nil {
			return memberRepoErr //nolint:wrapcheck
		}

		user, userErr := userRepo.Create(c, repoargs.CreateUser{
			Email:    args.Email,
			Password: password,
			Name:     args.Name,
			Role:     domain.RoleMember,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		member, memberErr := memberRepo.Create(c, repoargs.CreateMember{
			UserID:     user.ID,
			Phone:      args.Phone,
			Address:    args.Address,
			MonthlyFee: monthlyFee,
		})
		if memberErr != nil {
			return memberErr //nolint:wrapcheck
		}

		detail = domain.MemberDetail{Member: *member, User: *user}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("registering member: %w", txErr)
	}
	return &detail, nil
}

// List returns all members joined with their users.
func (s *MemberService) List(ctx context.Context) ([]domain.MemberDetail, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return members, nil
}

// GetByUserID resolves the member record behind a logged-in user.
func (s *MemberService) GetByUserID(ctx context.Context, userID string) (*domain.MemberDetail, error) {
	member, err := s.memberRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return member, nil
}
