package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/repository/repoargs"
	"github.com/fds-bd/fds-server/pkg/uow"
)

type FundService struct {
	uow      uow.UOW
	fundRepo FundRepository
}

func NewFundService(u uow.UOW) (*FundService, error) {
	fundRepo, fundRepoErr := uow.GetRepositoryAs[FundRepository](u, uow.RepositoryName(repoargs.FundRepoName))
	if fundRepoErr != nil {
		return nil, fundRepoErr
	}
	return &FundService{
		uow:      u,
		fundRepo: fundRepo,
	}, nil
}

// Snapshot returns the current fund aggregate. Read-only: dashboards render
// it, nobody mutates it through this path.
func (s *FundService) Snapshot(ctx context.Context) (*domain.Fund, error) {
	fund, err := s.fundRepo.Get(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return fund, nil
}

// Recalculate rebuilds the aggregate from the ledger: total amount is the sum
// of member balances, monthly collected is the sum of payments approved in
// the current calendar month, total members counts active members. Runs as
// one transaction so the snapshot never mixes two ledger states.
func (s *FundService) Recalculate(ctx context.Context) (*domain.Fund, error) {
	var fund *domain.Fund
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		memberRepo, memberRepoErr := uow.GetAs[MemberRepository](tx, uow.RepositoryName(repoargs.MemberRepoName))
		if memberRepoErr != nil {
			return memberRepoErr //nolint:wrapcheck
		}
		paymentRepo, paymentRepoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if paymentRepoErr != nil {
			return paymentRepoErr //nolint:wrapcheck
		}
		fundRepo, fundRepoErr := uow.GetAs[FundRepository](tx, uow.RepositoryName(repoargs.FundRepoName))
		if fundRepoErr != nil {
			return fundRepoErr //nolint:wrapcheck
		}

		members, membersErr := memberRepo.List(c)
		if membersErr != nil {
			return membersErr //nolint:wrapcheck
		}
		approved, approvedErr := paymentRepo.ListByStatus(c, domain.PaymentStatusApproved)
		if approvedErr != nil {
			return approvedErr //nolint:wrapcheck
		}

		activeMembers, activeErr := memberRepo.CountActive(c)
		if activeErr != nil {
			return activeErr //nolint:wrapcheck
		}

		totals := repoargs.FundTotals{TotalMembers: activeMembers}
		for _, member := range members {
			totals.TotalAmount += member.TotalBalance
		}

		now := time.Now()
		for _, payment := range approved {
			if payment.ApprovedAt != nil && sameMonth(*payment.ApprovedAt, now) {
				totals.MonthlyCollected += payment.Amount
			}
		}

		var updateErr error
		fund, updateErr = fundRepo.UpdateTotals(c, totals)
		return updateErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("recalculating fund: %w", txErr)
	}
	return fund, nil
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
