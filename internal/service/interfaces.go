package service

import (
	"context"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/repository/repoargs"
)

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByEmailRole(ctx context.Context, email string, role domain.RoleType) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type MemberRepository interface {
	Create(ctx context.Context, args repoargs.CreateMember) (*domain.Member, error)
	List(ctx context.Context) ([]domain.MemberDetail, error)
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByUserID(ctx context.Context, userID string) (*domain.MemberDetail, error)
	CountActive(ctx context.Context) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.PaymentDetail, error)
	ListByStatus(ctx context.Context, status domain.PaymentStatusType) ([]domain.PaymentDetail, error)
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	Update(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
}

type FundRepository interface {
	Get(ctx context.Context) (*domain.Fund, error)
	UpdateTotals(ctx context.Context, totals repoargs.FundTotals) (*domain.Fund, error)
}
