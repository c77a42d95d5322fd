package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/service"
)

type UserServicer interface {
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type MemberServicer interface {
	Register(ctx context.Context, args service.RegisterMemberArgs) (*domain.MemberDetail, error)
	List(ctx context.Context) ([]domain.MemberDetail, error)
	GetByUserID(ctx context.Context, userID string) (*domain.MemberDetail, error)
}

type PaymentServicer interface {
	Create(ctx context.Context, args service.CreatePaymentArgs) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.PaymentDetail, error)
	ListPending(ctx context.Context) ([]domain.PaymentDetail, error)
	SetStatus(
		ctx context.Context,
		paymentID string,
		status domain.PaymentStatusType,
		approverID string,
	) (*domain.Payment, error)
}

type FundServicer interface {
	Snapshot(ctx context.Context) (*domain.Fund, error)
}
