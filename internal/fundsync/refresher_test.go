package fundsync

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fds-bd/fds-server/internal/domain"
)

type stubServicer struct {
	calls atomic.Int64
	err   error
}

func (s *stubServicer) Recalculate(_ context.Context) (*domain.Fund, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Fund{TotalAmount: 20000, TotalMembers: 2}, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRunRefreshesImmediatelyAndOnTicks(t *testing.T) {
	svs := &stubServicer{}
	refresher := New(svs, quietLogger()).SetInterval(5 * time.Millisecond)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		refresher.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return svs.calls.Load() >= 3
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after cancel")
	}
}

func TestRunSurvivesRecalculateErrors(t *testing.T) {
	svs := &stubServicer{err: errors.New("boom")}
	refresher := New(svs, quietLogger()).SetInterval(5 * time.Millisecond)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		refresher.Run(ctx)
		close(done)
	}()

	// the loop keeps calling despite the errors
	require.Eventually(t, func() bool {
		return svs.calls.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after cancel")
	}
}

func TestSetInterval(t *testing.T) {
	refresher := New(&stubServicer{}, quietLogger())

	assert.Equal(t, defaultInterval, refresher.interval)

	refresher.SetInterval(0)
	assert.Equal(t, defaultInterval, refresher.interval)

	refresher.SetInterval(-time.Second)
	assert.Equal(t, defaultInterval, refresher.interval)

	refresher.SetInterval(10 * time.Second)
	assert.Equal(t, 10*time.Second, refresher.interval)
}
