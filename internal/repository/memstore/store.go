// Package memstore holds the process-wide record set behind a single RWMutex.
// Repositories never touch the data directly; they go through an Accessor so
// that a unit-of-work transaction can hold the write lock across several
// repository calls.
package memstore

import (
	"context"
	"sync"

	"github.com/fds-bd/fds-server/internal/domain"
)

// Data is the full record set. Slices keep insertion order; that order is the
// only ordering guarantee the repositories give.
type Data struct {
	Users    []domain.User
	Members  []domain.Member
	Payments []domain.Payment
	Fund     domain.Fund
}

// Accessor is the boundary repositories work through. View runs fn with shared
// access, Update with exclusive access. Implementations decide whether a lock
// is taken per call (DB) or already held by the caller (transaction).
type Accessor interface {
	View(ctx context.Context, fn func(*Data) error) error
	Update(ctx context.Context, fn func(*Data) error) error
}

type DB struct {
	mu   sync.RWMutex
	data Data
}

func New() *DB {
	return &DB{}
}

func (d *DB) View(ctx context.Context, fn func(*Data) error) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return fn(&d.data)
}

func (d *DB) Update(ctx context.Context, fn func(*Data) error) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(&d.data)
}

// Exclusive takes the write lock for the whole duration of fn and hands fn an
// accessor that reuses the held lock. This is what serializes multi-step
// mutations: no other caller observes intermediate state.
func (d *DB) Exclusive(ctx context.Context, fn func(Accessor) error) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(&lockedAccessor{data: &d.data})
}

// lockedAccessor assumes the caller already holds the DB write lock.
type lockedAccessor struct {
	data *Data
}

func (a *lockedAccessor) View(ctx context.Context, fn func(*Data) error) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	return fn(a.data)
}

func (a *lockedAccessor) Update(ctx context.Context, fn func(*Data) error) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	return fn(a.data)
}
