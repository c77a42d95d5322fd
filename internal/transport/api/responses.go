package api

import (
	"time"

	"github.com/fds-bd/fds-server/internal/domain"
)

// Response shapes mirror what the dashboards consume. The password hash never
// leaves the service: UserResponse simply has no field for it.

type UserResponse struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  domain.RoleType `json:"role"`
}

func newUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

type MemberResponse struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	MonthlyFee   int64        `json:"monthlyFee"`
	TotalBalance int64        `json:"totalBalance"`
	DueAmount    int64        `json:"dueAmount"`
	IsActive     bool         `json:"isActive"`
	User         UserResponse `json:"user"`
}

func newMemberResponse(detail domain.MemberDetail) MemberResponse {
	return MemberResponse{
		ID:           detail.ID,
		UserID:       detail.UserID,
		Phone:        detail.Phone,
		Address:      detail.Address,
		MonthlyFee:   detail.MonthlyFee,
		TotalBalance: detail.TotalBalance,
		DueAmount:    detail.DueAmount,
		IsActive:     detail.IsActive,
		User:         newUserResponse(detail.User),
	}
}

type PaymentResponse struct {
	ID            string                   `json:"id"`
	MemberID      string                   `json:"memberId"`
	UserID        string                   `json:"userId"`
	Amount        int64                    `json:"amount"`
	PaymentMethod domain.PaymentMethodType `json:"paymentMethod"`
	TransactionID string                   `json:"transactionId,omitempty"`
	CashNote      string                   `json:"cashNote,omitempty"`
	PaymentDate   time.Time                `json:"paymentDate"`
	Status        domain.PaymentStatusType `json:"status"`
	Approved      bool                     `json:"approved"`
	ApprovedBy    string                   `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time               `json:"approvedAt,omitempty"`
}

func newPaymentResponse(payment domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		MemberID:      payment.MemberID,
		UserID:        payment.UserID,
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		TransactionID: payment.TransactionID,
		CashNote:      payment.CashNote,
		PaymentDate:   payment.PaymentDate,
		Status:        payment.Status,
		Approved:      payment.Approved,
		ApprovedBy:    payment.ApprovedBy,
		ApprovedAt:    payment.ApprovedAt,
	}
}

type PaymentDetailResponse struct {
	PaymentResponse
	Member MemberResponse `json:"member"`
	User   UserResponse   `json:"user"`
}

func newPaymentDetailResponse(detail domain.PaymentDetail) PaymentDetailResponse {
	return PaymentDetailResponse{
		PaymentResponse: newPaymentResponse(detail.Payment),
		Member:          newMemberResponse(detail.Member),
		User:            newUserResponse(detail.User),
	}
}

type FundResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	TotalAmount      int64     `json:"totalAmount"`
	TotalMembers     int64     `json:"totalMembers"`
	MonthlyCollected int64     `json:"monthlyCollected"`
	LastUpdated      time.Time `json:"lastUpdated"`
}
