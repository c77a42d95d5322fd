package memrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/repository/memstore"
	"github.com/fds-bd/fds-server/internal/repository/repoargs"
)

type MemberRepository struct {
	a memstore.Accessor
}

func NewMemberRepository(a memstore.Accessor) *MemberRepository {
	return &MemberRepository{a: a}
}

// Create appends a member linked to an existing MEMBER user. The user link is
// the invariant enforced here; everything else is caller data.
func (r *MemberRepository) Create(ctx context.Context, args repoargs.CreateMember) (*domain.Member, error) {
	var created domain.Member
	err := r.a.Update(ctx, func(d *memstore.Data) error {
		user, ok := lookupUser(d, args.UserID)
		if !ok {
			return notFoundErr("member user id %s", args.UserID)
		}
		if user.Role != domain.RoleMember {
			return domain.NewValidationError("userId", "must reference a MEMBER user")
		}
		for i := range d.Members {
			if d.Members[i].UserID == args.UserID {
				return duplicateErr("member for user id %s", args.UserID)
			}
		}
		created = domain.Member{
			ID:           uuid.NewString(),
			UserID:       args.UserID,
			Phone:        args.Phone,
			Address:      args.Address,
			MonthlyFee:   args.MonthlyFee,
			TotalBalance: 0,
			DueAmount:    0,
			IsActive:     true,
		}
		d.Members = append(d.Members, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns all members joined with their users, in insertion order.
func (r *MemberRepository) List(ctx context.Context) ([]domain.MemberDetail, error) {
	var details []domain.MemberDetail
	err := r.a.View(ctx, func(d *memstore.Data) error {
		details = make([]domain.MemberDetail, len(d.Members))
		for i := range d.Members {
			details[i] = joinMember(d, d.Members[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	var found domain.Member
	err := r.a.View(ctx, func(d *memstore.Data) error {
		for i := range d.Members {
			if d.Members[i].ID == id {
				found = d.Members[i]
				return nil
			}
		}
		return notFoundErr("member id %s", id)
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *MemberRepository) GetByUserID(ctx context.Context, userID string) (*domain.MemberDetail, error) {
	var found domain.MemberDetail
	err := r.a.View(ctx, func(d *memstore.Data) error {
		for i := range d.Members {
			if d.Members[i].UserID == userID {
				found = joinMember(d, d.Members[i])
				return nil
			}
		}
		return notFoundErr("member for user id %s", userID)
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *MemberRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.a.View(ctx, func(d *memstore.Data) error {
		for i := range d.Members {
			if d.Members[i].IsActive {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func lookupUser(d *memstore.Data, id string) (domain.User, bool) {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return d.Users[i], true
		}
	}
	return domain.User{}, false
}

// joinMember attaches the linked user. A dangling link yields a zero user
// rather than an error; display data must not break a listing.
func joinMember(d *memstore.Data, m domain.Member) domain.MemberDetail {
	detail := domain.MemberDetail{Member: m}
	if user, ok := lookupUser(d, m.UserID); ok {
		detail.User = user
	}
	return detail
}
