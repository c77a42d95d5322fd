package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/repository/memstore"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	services *AppServices
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	services, err := newSeededServices([]byte("super secret key"))
	s.Require().NoError(err)
	s.services = services
}

func (s *PaymentServiceTestSuite) ledgerSize() int {
	payments, err := s.services.PaymentService.List(s.T().Context())
	s.Require().NoError(err)
	return len(payments)
}

func (s *PaymentServiceTestSuite) TestCreateWallet() {
	created, err := s.services.PaymentService.Create(s.T().Context(), CreatePaymentArgs{
		MemberID:      memstore.SeedMember1ID,
		UserID:        memstore.SeedMember1UserID,
		Amount:        1000,
		PaymentMethod: domain.PaymentMethodBkash,
		TransactionID: "TX555001",
		// a sneaky cash note must not survive on a wallet payment
		CashNote: "should be dropped",
	})
	s.Require().NoError(err)

	s.NotEmpty(created.ID)
	s.Equal(domain.PaymentStatusPending, created.Status)
	s.False(created.Approved)
	s.Empty(created.ApprovedBy)
	s.Nil(created.ApprovedAt)
	s.False(created.PaymentDate.IsZero())

	s.Equal("TX555001", created.TransactionID)
	s.Empty(created.CashNote)
}

func (s *PaymentServiceTestSuite) TestCreateCash() {
	created, err := s.services.PaymentService.Create(s.T().Context(), CreatePaymentArgs{
		MemberID:      memstore.SeedMember2ID,
		UserID:        memstore.SeedMember2UserID,
		Amount:        1000,
		PaymentMethod: domain.PaymentMethodCash,
		CashNote:      "জানুয়ারি মাসের চাঁদা",
		// a transaction id makes no sense on cash; it must be dropped
		TransactionID: "TX000000",
	})
	s.Require().NoError(err)

	s.Equal("জানুয়ারি মাসের চাঁদা", created.CashNote)
	s.Empty(created.TransactionID)
	s.Equal(domain.PaymentStatusPending, created.Status)
}

func (s *PaymentServiceTestSuite) TestCreateValidation() {
	cases := []struct {
		name    string
		args    CreatePaymentArgs
		wantErr error
	}{
		{
			name: "bkash without transaction id",
			args: CreatePaymentArgs{
				MemberID:      memstore.SeedMember1ID,
				UserID:        memstore.SeedMember1UserID,
				Amount:        1000,
				PaymentMethod: domain.PaymentMethodBkash,
			},
		}, {
			name: "nagad without transaction id",
			args: CreatePaymentArgs{
				MemberID:      memstore.SeedMember1ID,
				UserID:        memstore.SeedMember1UserID,
				Amount:        1000,
				PaymentMethod: domain.PaymentMethodNagad,
			},
		}, {
			name: "cash without note",
			args: CreatePaymentArgs{
				MemberID:      memstore.SeedMember1ID,
				UserID:        memstore.SeedMember1UserID,
				Amount:        1000,
				PaymentMethod: domain.PaymentMethodCash,
			},
		}, {
			name: "zero amount",
			args: CreatePaymentArgs{
				MemberID:      memstore.SeedMember1ID,
				UserID:        memstore.SeedMember1UserID,
				Amount:        0,
				PaymentMethod: domain.PaymentMethodCash,
				CashNote:      "চাঁদা",
			},
		}, {
			name: "unknown method",
			args: CreatePaymentArgs{
				MemberID:      memstore.SeedMember1ID,
				UserID:        memstore.SeedMember1UserID,
				Amount:        1000,
				PaymentMethod: "ROCKET",
			},
		}, {
			name: "unknown member",
			args: CreatePaymentArgs{
				MemberID:      "no-such-member",
				UserID:        memstore.SeedMember1UserID,
				Amount:        1000,
				PaymentMethod: domain.PaymentMethodCash,
				CashNote:      "চাঁদা",
			},
			wantErr: domain.ErrRecordNotFound,
		}, {
			name: "unknown user",
			args: CreatePaymentArgs{
				MemberID:      memstore.SeedMember1ID,
				UserID:        "no-such-user",
				Amount:        1000,
				PaymentMethod: domain.PaymentMethodCash,
				CashNote:      "চাঁদা",
			},
			wantErr: domain.ErrRecordNotFound,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			sizeBefore := s.ledgerSize()

			_, err := s.services.PaymentService.Create(s.T().Context(), t.args)

			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
			} else {
				var valErr *domain.ValidationError
				s.Require().ErrorAs(err, &valErr)
			}

			// a failed create must leave the ledger untouched
			s.Equal(sizeBefore, s.ledgerSize())
		})
	}
}

func (s *PaymentServiceTestSuite) TestSetStatusApprove() {
	updated, err := s.services.PaymentService.SetStatus(
		s.T().Context(),
		memstore.SeedPendingCashPaymentID,
		domain.PaymentStatusApproved,
		memstore.SeedAccountantID,
	)
	s.Require().NoError(err)

	s.Equal(domain.PaymentStatusApproved, updated.Status)
	s.True(updated.Approved)
	s.Equal(memstore.SeedAccountantID, updated.ApprovedBy)
	s.Require().NotNil(updated.ApprovedAt)
	s.Equal("ডিসেম্বর মাসের চাঁদা", updated.CashNote)

	// the ledger shows exactly one payment with that id, now approved
	payments, listErr := s.services.PaymentService.List(s.T().Context())
	s.Require().NoError(listErr)

	var matches int
	for _, payment := range payments {
		if payment.ID == memstore.SeedPendingCashPaymentID {
			matches++
			s.Equal(domain.PaymentStatusApproved, payment.Status)
			s.Equal(memstore.SeedAccountantID, payment.ApprovedBy)
			s.NotNil(payment.ApprovedAt)
		}
	}
	s.Equal(1, matches)
}

func (s *PaymentServiceTestSuite) TestSetStatusReject() {
	updated, err := s.services.PaymentService.SetStatus(
		s.T().Context(),
		memstore.SeedPendingCashPaymentID,
		domain.PaymentStatusRejected,
		memstore.SeedAccountantID,
	)
	s.Require().NoError(err)

	s.Equal(domain.PaymentStatusRejected, updated.Status)
	s.False(updated.Approved)
	s.Equal(memstore.SeedAccountantID, updated.ApprovedBy)
	s.NotNil(updated.ApprovedAt)
}

func (s *PaymentServiceTestSuite) TestSetStatusRequiresAccountant() {
	_, err := s.services.PaymentService.SetStatus(
		s.T().Context(),
		memstore.SeedPendingCashPaymentID,
		domain.PaymentStatusApproved,
		memstore.SeedMember1UserID,
	)
	s.Require().ErrorIs(err, domain.ErrAccountantOnly)

	// the payment is untouched
	pending, listErr := s.services.PaymentService.ListPending(s.T().Context())
	s.Require().NoError(listErr)
	s.Require().Len(pending, 1)
	s.Equal(memstore.SeedPendingCashPaymentID, pending[0].ID)
	s.Empty(pending[0].ApprovedBy)
}

func (s *PaymentServiceTestSuite) TestSetStatusValidation() {
	_, invalidStatusErr := s.services.PaymentService.SetStatus(
		s.T().Context(),
		memstore.SeedPendingCashPaymentID,
		domain.PaymentStatusPending,
		memstore.SeedAccountantID,
	)
	var valErr *domain.ValidationError
	s.Require().ErrorAs(invalidStatusErr, &valErr)

	_, unknownErr := s.services.PaymentService.SetStatus(
		s.T().Context(),
		"no-such-payment",
		domain.PaymentStatusApproved,
		memstore.SeedAccountantID,
	)
	s.Require().ErrorIs(unknownErr, domain.ErrRecordNotFound)

	_, unknownApproverErr := s.services.PaymentService.SetStatus(
		s.T().Context(),
		memstore.SeedPendingCashPaymentID,
		domain.PaymentStatusApproved,
		"no-such-user",
	)
	s.Require().ErrorIs(unknownApproverErr, domain.ErrRecordNotFound)
}

func (s *PaymentServiceTestSuite) TestSetStatusIsFinal() {
	// seed payment 1 was approved back in December; the decision stands
	_, err := s.services.PaymentService.SetStatus(
		s.T().Context(),
		"1",
		domain.PaymentStatusRejected,
		memstore.SeedAccountantID,
	)
	s.Require().ErrorIs(err, domain.ErrPaymentFinalized)

	// deciding the pending payment twice fails the second time
	_, firstErr := s.services.PaymentService.SetStatus(
		s.T().Context(), memstore.SeedPendingCashPaymentID,
		domain.PaymentStatusApproved, memstore.SeedAccountantID)
	s.Require().NoError(firstErr)

	_, secondErr := s.services.PaymentService.SetStatus(
		s.T().Context(), memstore.SeedPendingCashPaymentID,
		domain.PaymentStatusRejected, memstore.SeedAccountantID)
	s.Require().ErrorIs(secondErr, domain.ErrPaymentFinalized)

	// the first decision survives
	payments, listErr := s.services.PaymentService.List(s.T().Context())
	s.Require().NoError(listErr)
	for _, payment := range payments {
		if payment.ID == memstore.SeedPendingCashPaymentID {
			s.Equal(domain.PaymentStatusApproved, payment.Status)
		}
	}
}

func (s *PaymentServiceTestSuite) TestListPending() {
	pending, err := s.services.PaymentService.ListPending(s.T().Context())
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(memstore.SeedPendingCashPaymentID, pending[0].ID)
	for _, payment := range pending {
		s.Equal(domain.PaymentStatusPending, payment.Status)
	}

	// joined display data is present
	s.Equal("সদস্য ১", pending[0].User.Name)
	s.Equal(memstore.SeedMember1ID, pending[0].Member.ID)

	_, approveErr := s.services.PaymentService.SetStatus(
		s.T().Context(), memstore.SeedPendingCashPaymentID,
		domain.PaymentStatusApproved, memstore.SeedAccountantID)
	s.Require().NoError(approveErr)

	pendingAfter, afterErr := s.services.PaymentService.ListPending(s.T().Context())
	s.Require().NoError(afterErr)
	s.Empty(pendingAfter)
}

func (s *PaymentServiceTestSuite) TestList() {
	payments, err := s.services.PaymentService.List(s.T().Context())
	s.Require().NoError(err)
	s.Require().Len(payments, 3)

	// insertion order is preserved
	s.Equal("1", payments[0].ID)
	s.Equal("2", payments[1].ID)
	s.Equal("3", payments[2].ID)

	// every stored payment carries exactly one of the two note fields
	for _, payment := range payments {
		if payment.PaymentMethod == domain.PaymentMethodCash {
			s.NotEmpty(payment.CashNote)
			s.Empty(payment.TransactionID)
		} else {
			s.NotEmpty(payment.TransactionID)
			s.Empty(payment.CashNote)
		}
	}
}
