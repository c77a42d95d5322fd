package memrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/repository/memstore"
)

type PaymentRepository struct {
	a memstore.Accessor
}

func NewPaymentRepository(a memstore.Accessor) *PaymentRepository {
	return &PaymentRepository{a: a}
}

// Create appends the payment and assigns its id. Field-level validation and
// the referential checks happen in the service layer before this call; the
// ledger itself only guarantees the id and insertion order.
func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	var created domain.Payment
	err := r.a.Update(ctx, func(d *memstore.Data) error {
		payment.ID = uuid.NewString()
		d.Payments = append(d.Payments, payment)
		created = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns every payment joined with its member and user, in insertion
// order.
func (r *PaymentRepository) List(ctx context.Context) ([]domain.PaymentDetail, error) {
	return r.listWhere(ctx, func(*domain.Payment) bool { return true })
}

// ListByStatus is List filtered on status.
func (r *PaymentRepository) ListByStatus(
	ctx context.Context,
	status domain.PaymentStatusType,
) ([]domain.PaymentDetail, error) {
	return r.listWhere(ctx, func(p *domain.Payment) bool { return p.Status == status })
}

func (r *PaymentRepository) listWhere(
	ctx context.Context,
	keep func(*domain.Payment) bool,
) ([]domain.PaymentDetail, error) {
	var details []domain.PaymentDetail
	err := r.a.View(ctx, func(d *memstore.Data) error {
		details = make([]domain.PaymentDetail, 0, len(d.Payments))
		for i := range d.Payments {
			if keep(&d.Payments[i]) {
				details = append(details, joinPayment(d, d.Payments[i]))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	var found domain.Payment
	err := r.a.View(ctx, func(d *memstore.Data) error {
		for i := range d.Payments {
			if d.Payments[i].ID == id {
				found = d.Payments[i]
				return nil
			}
		}
		return notFoundErr("payment id %s", id)
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// Update replaces the stored payment with the same id.
func (r *PaymentRepository) Update(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	err := r.a.Update(ctx, func(d *memstore.Data) error {
		for i := range d.Payments {
			if d.Payments[i].ID == payment.ID {
				d.Payments[i] = payment
				return nil
			}
		}
		return notFoundErr("payment id %s", payment.ID)
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func joinPayment(d *memstore.Data, p domain.Payment) domain.PaymentDetail {
	detail := domain.PaymentDetail{Payment: p}
	for i := range d.Members {
		if d.Members[i].ID == p.MemberID {
			detail.Member = joinMember(d, d.Members[i])
			break
		}
	}
	if user, ok := lookupUser(d, p.UserID); ok {
		detail.User = user
	}
	return detail
}
