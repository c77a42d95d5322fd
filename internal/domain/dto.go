package domain

import "strings"

type RoleType string

const (
	RoleAccountant RoleType = "ACCOUNTANT"
	RoleMember     RoleType = "MEMBER"
)

// ParseRole normalizes a caller-supplied role string. Role matching is
// case-insensitive on the wire.
func ParseRole(s string) (RoleType, bool) {
	switch RoleType(strings.ToUpper(s)) {
	case RoleAccountant:
		return RoleAccountant, true
	case RoleMember:
		return RoleMember, true
	}
	return "", false
}

type PaymentMethodType string

const (
	PaymentMethodBkash PaymentMethodType = "BKASH"
	PaymentMethodNagad PaymentMethodType = "NAGAD"
	PaymentMethodCash  PaymentMethodType = "CASH"
)

// RequiresTransactionID reports whether the method is a mobile wallet
// transfer, which must carry the wallet transaction id.
func (m PaymentMethodType) RequiresTransactionID() bool {
	return m == PaymentMethodBkash || m == PaymentMethodNagad
}

func (m PaymentMethodType) Valid() bool {
	return m == PaymentMethodBkash || m == PaymentMethodNagad || m == PaymentMethodCash
}

type PaymentStatusType string

const (
	PaymentStatusPending  PaymentStatusType = "PENDING"
	PaymentStatusApproved PaymentStatusType = "APPROVED"
	PaymentStatusRejected PaymentStatusType = "REJECTED"
)

// Terminal reports whether the status ends the payment lifecycle.
func (s PaymentStatusType) Terminal() bool {
	return s == PaymentStatusApproved || s == PaymentStatusRejected
}
