package memstore

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fds-bd/fds-server/internal/domain"
)

// Seed record IDs, fixed so that the demo accounts and test scenarios can
// reference them directly.
const (
	SeedAccountantID  = "1"
	SeedMember1UserID = "2"
	SeedMember2UserID = "3"

	SeedMember1ID = "1"
	SeedMember2ID = "2"

	SeedPendingCashPaymentID = "3"
)

// NewSeeded builds a store pre-populated with the demo fund: one accountant,
// two members with their dues history and the current fund snapshot. Seed
// passwords are hashed on the way in; plaintext is never stored.
func NewSeeded() (*DB, error) {
	accountantPass, accErr := hashSeedPassword("accountant123")
	if accErr != nil {
		return nil, accErr
	}
	memberPass, memErr := hashSeedPassword("member123")
	if memErr != nil {
		return nil, memErr
	}

	december := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)

	db := New()
	db.data = Data{
		Users: []domain.User{
			{
				ID:       SeedAccountantID,
				Email:    "accountant@fds.com",
				Password: accountantPass,
				Name:     "হিসাবরক্ষক",
				Role:     domain.RoleAccountant,
			},
			{
				ID:       SeedMember1UserID,
				Email:    "member1@fds.com",
				Password: memberPass,
				Name:     "সদস্য ১",
				Role:     domain.RoleMember,
			},
			{
				ID:       SeedMember2UserID,
				Email:    "member2@fds.com",
				Password: memberPass,
				Name:     "সদস্য ২",
				Role:     domain.RoleMember,
			},
		},
		Members: []domain.Member{
			{
				ID:           SeedMember1ID,
				UserID:       SeedMember1UserID,
				Phone:        "01712345678",
				Address:      "ঢাকা, বাংলাদেশ",
				MonthlyFee:   1000,
				TotalBalance: 12000,
				DueAmount:    1000,
				IsActive:     true,
			},
			{
				ID:           SeedMember2ID,
				UserID:       SeedMember2UserID,
				Phone:        "01812345678",
				Address:      "চট্টগ্রাম, বাংলাদেশ",
				MonthlyFee:   1000,
				TotalBalance: 8000,
				DueAmount:    0,
				IsActive:     true,
			},
		},
		Payments: []domain.Payment{
			{
				ID:            "1",
				MemberID:      SeedMember1ID,
				UserID:        SeedMember1UserID,
				Amount:        1000,
				PaymentMethod: domain.PaymentMethodBkash,
				TransactionID: "TX123456",
				PaymentDate:   december,
				Status:        domain.PaymentStatusApproved,
				Approved:      true,
				ApprovedBy:    SeedAccountantID,
				ApprovedAt:    &december,
			},
			{
				ID:            "2",
				MemberID:      SeedMember2ID,
				UserID:        SeedMember2UserID,
				Amount:        1000,
				PaymentMethod: domain.PaymentMethodNagad,
				TransactionID: "TX789012",
				PaymentDate:   december,
				Status:        domain.PaymentStatusApproved,
				Approved:      true,
				ApprovedBy:    SeedAccountantID,
				ApprovedAt:    &december,
			},
			{
				ID:            SeedPendingCashPaymentID,
				MemberID:      SeedMember1ID,
				UserID:        SeedMember1UserID,
				Amount:        1000,
				PaymentMethod: domain.PaymentMethodCash,
				CashNote:      "ডিসেম্বর মাসের চাঁদা",
				PaymentDate:   time.Now(),
				Status:        domain.PaymentStatusPending,
			},
		},
		Fund: domain.Fund{
			ID:               "1",
			Name:             "FDS",
			TotalAmount:      24000,
			TotalMembers:     24,
			MonthlyCollected: 2000,
			LastUpdated:      time.Now(),
		},
	}
	return db, nil
}

func hashSeedPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing seed password: %s", err.Error())
	}
	return string(bytes), nil
}
