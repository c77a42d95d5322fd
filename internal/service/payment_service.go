package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/repository/repoargs"
	"github.com/fds-bd/fds-server/pkg/uow"
)

type PaymentService struct {
	uow         uow.UOW
	paymentRepo PaymentRepository
}

func NewPaymentService(u uow.UOW) (*PaymentService, error) {
	paymentRepo, paymentRepoErr := uow.GetRepositoryAs[PaymentRepository](
		u, uow.RepositoryName(repoargs.PaymentRepoName))
	if paymentRepoErr != nil {
		return nil, paymentRepoErr
	}
	return &PaymentService{
		uow:         u,
		paymentRepo: paymentRepo,
	}, nil
}

type CreatePaymentArgs struct {
	MemberID      string
	UserID        string
	Amount        int64
	PaymentMethod domain.PaymentMethodType
	TransactionID string
	CashNote      string
}

func (a *CreatePaymentArgs) validate() error {
	switch {
	case a.MemberID == "":
		return domain.NewValidationError("memberId", "required")
	case a.UserID == "":
		return domain.NewValidationError("userId", "required")
	case a.Amount <= 0:
		return domain.NewValidationError("amount", "must be positive")
	case !a.PaymentMethod.Valid():
		return domain.NewValidationError("paymentMethod", "must be BKASH, NAGAD or CASH")
	case a.PaymentMethod.RequiresTransactionID() && a.TransactionID == "":
		return domain.NewValidationError("transactionId", "required for mobile wallet payments")
	case a.PaymentMethod == domain.PaymentMethodCash && a.CashNote == "":
		return domain.NewValidationError("cashNote", "required for cash payments")
	}
	return nil
}

// Create validates the submission and appends a PENDING payment. The note
// field that does not belong to the method is dropped, whatever the caller
// sent: a payment carries either a wallet transaction id or a cash note,
// never both. Nothing is appended when validation fails.
func (s *PaymentService) Create(ctx context.Context, args CreatePaymentArgs) (*domain.Payment, error) {
	if valErr := args.validate(); valErr != nil {
		return nil, valErr
	}

	transactionID := args.TransactionID
	cashNote := args.CashNote
	if args.PaymentMethod == domain.PaymentMethodCash {
		transactionID = ""
	} else {
		cashNote = ""
	}

	var created *domain.Payment
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		memberRepo, memberRepoErr := uow.GetAs[MemberRepository](tx, uow.RepositoryName(repoargs.MemberRepoName))
		if memberRepoErr != nil {
			return memberRepoErr //nolint:wrapcheck
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		paymentRepo, paymentRepoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if paymentRepoErr != nil {
			return paymentRepoErr //nolint:wrapcheck
		}

		// Referential checks happen inside the transaction; the member
		// cannot disappear between check and append.
		if _, memberErr := memberRepo.GetByID(c, args.MemberID); memberErr != nil {
			return memberErr //nolint:wrapcheck
		}
		if _, userErr := userRepo.GetByID(c, args.UserID); userErr != nil {
			return userErr //nolint:wrapcheck
		}

		var createErr error
		created, createErr = paymentRepo.Create(c, domain.Payment{
			MemberID:      args.MemberID,
			UserID:        args.UserID,
			Amount:        args.Amount,
			PaymentMethod: args.PaymentMethod,
			TransactionID: transactionID,
			CashNote:      cashNote,
			PaymentDate:   time.Now(),
			Status:        domain.PaymentStatusPending,
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating payment: %w", txErr)
	}
	return created, nil
}

// SetStatus performs the single lifecycle transition PENDING -> APPROVED or
// PENDING -> REJECTED. Only an ACCOUNTANT may decide, and a decision is
// final: re-invoking on a terminal payment fails with
// domain.ErrPaymentFinalized instead of overwriting the earlier decision.
func (s *PaymentService) SetStatus(
	ctx context.Context,
	paymentID string,
	status domain.PaymentStatusType,
	approverID string,
) (*domain.Payment, error) {
	if !status.Terminal() {
		return nil, domain.NewValidationError("status", "must be APPROVED or REJECTED")
	}

	var updated *domain.Payment
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		paymentRepo, paymentRepoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if paymentRepoErr != nil {
			return paymentRepoErr //nolint:wrapcheck
		}

		approver, approverErr := userRepo.GetByID(c, approverID)
		if approverErr != nil {
			return approverErr //nolint:wrapcheck
		}
		if approver.Role != domain.RoleAccountant {
			return fmt.Errorf("approver %s: %w", approverID, domain.ErrAccountantOnly)
		}

		payment, paymentErr := paymentRepo.GetByID(c, paymentID)
		if paymentErr != nil {
			return paymentErr //nolint:wrapcheck
		}
		if payment.Finalized() {
			return fmt.Errorf("payment %s: %w", paymentID, domain.ErrPaymentFinalized)
		}

		now := time.Now()
		payment.Status = status
		payment.Approved = status == domain.PaymentStatusApproved
		payment.ApprovedBy = approver.ID
		payment.ApprovedAt = &now

		var updateErr error
		updated, updateErr = paymentRepo.Update(c, *payment)
		return updateErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("setting payment status: %w", txErr)
	}
	return updated, nil
}

// List returns every payment joined with its member and user.
func (s *PaymentService) List(ctx context.Context) ([]domain.PaymentDetail, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payments, nil
}

// ListPending returns only payments still awaiting a decision.
func (s *PaymentService) ListPending(ctx context.Context) ([]domain.PaymentDetail, error) {
	return s.listByStatus(ctx, domain.PaymentStatusPending)
}

func (s *PaymentService) listByStatus(
	ctx context.Context,
	status domain.PaymentStatusType,
) ([]domain.PaymentDetail, error) {
	payments, err := s.paymentRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payments, nil
}
