package domain

import "time"

type User struct {
	ID       string
	Email    string
	Password string
	Name     string
	Role     RoleType
}

type Member struct {
	ID           string
	UserID       string
	Phone        string
	Address      string
	MonthlyFee   int64
	TotalBalance int64
	DueAmount    int64
	IsActive     bool
}

type Payment struct {
	ID            string
	MemberID      string
	UserID        string
	Amount        int64
	PaymentMethod PaymentMethodType
	TransactionID string
	CashNote      string
	PaymentDate   time.Time
	Status        PaymentStatusType
	Approved      bool
	ApprovedBy    string
	ApprovedAt    *time.Time
}

// Finalized reports whether the payment reached a terminal status.
func (p *Payment) Finalized() bool {
	return p.Status == PaymentStatusApproved || p.Status == PaymentStatusRejected
}

type Fund struct {
	ID               string
	Name             string
	TotalAmount      int64
	TotalMembers     int64
	MonthlyCollected int64
	LastUpdated      time.Time
}

// MemberDetail is a Member joined with its User for display.
type MemberDetail struct {
	Member
	User User
}

// PaymentDetail is a Payment joined with the paying Member and User.
type PaymentDetail struct {
	Payment
	Member MemberDetail
	User   User
}
