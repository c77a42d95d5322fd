// Package fundsync keeps the fund aggregate in step with the payment ledger
// by recomputing it in the background.
package fundsync

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fds-bd/fds-server/internal/domain"
)

const defaultInterval = time.Minute

// Servicer is the slice of the fund service the refresher needs.
type Servicer interface {
	Recalculate(ctx context.Context) (*domain.Fund, error)
}

// Refresher recomputes the fund snapshot on a fixed interval until its
// context is cancelled.
type Refresher struct {
	svs      Servicer
	l        *logrus.Entry
	interval time.Duration
}

func New(svs Servicer, l *logrus.Logger) *Refresher {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "fundsync",
	})

	return &Refresher{
		svs:      svs,
		l:        loggerEntry,
		interval: defaultInterval,
	}
}

// SetInterval overrides the refresh interval. Non-positive values keep the
// default.
func (r *Refresher) SetInterval(interval time.Duration) *Refresher {
	if interval > 0 {
		r.interval = interval
	}
	return r
}

// Run recomputes once immediately, then on every tick, and returns when ctx
// is cancelled. Errors are logged and the loop carries on; a failed
// recompute only leaves a stale snapshot behind.
func (r *Refresher) Run(ctx context.Context) {
	r.l.WithField("interval", r.interval.String()).Info("starting")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.refresh(ctx)

		select {
		case <-ctx.Done():
			r.l.Info("stopping")
			return
		case <-ticker.C:
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	fund, err := r.svs.Recalculate(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.l.WithError(err).Error("fund recalculation failed")
		}
		return
	}
	r.l.WithFields(logrus.Fields{
		"totalAmount":      fund.TotalAmount,
		"totalMembers":     fund.TotalMembers,
		"monthlyCollected": fund.MonthlyCollected,
	}).Debug("fund snapshot refreshed")
}
