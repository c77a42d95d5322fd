package memrepo

import (
	"context"
	"time"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/repository/memstore"
	"github.com/fds-bd/fds-server/internal/repository/repoargs"
)

type FundRepository struct {
	a memstore.Accessor
}

func NewFundRepository(a memstore.Accessor) *FundRepository {
	return &FundRepository{a: a}
}

func (r *FundRepository) Get(ctx context.Context) (*domain.Fund, error) {
	var fund domain.Fund
	err := r.a.View(ctx, func(d *memstore.Data) error {
		fund = d.Fund
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &fund, nil
}

// UpdateTotals replaces the aggregate figures and stamps LastUpdated.
func (r *FundRepository) UpdateTotals(ctx context.Context, totals repoargs.FundTotals) (*domain.Fund, error) {
	var fund domain.Fund
	err := r.a.Update(ctx, func(d *memstore.Data) error {
		d.Fund.TotalAmount = totals.TotalAmount
		d.Fund.TotalMembers = totals.TotalMembers
		d.Fund.MonthlyCollected = totals.MonthlyCollected
		d.Fund.LastUpdated = time.Now()
		fund = d.Fund
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &fund, nil
}
