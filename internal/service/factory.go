package service

import (
	"fmt"

	"github.com/fds-bd/fds-server/pkg/uow"
)

type AppServices struct {
	UserService    *UserService
	MemberService  *MemberService
	PaymentService *PaymentService
	FundService    *FundService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, hasher PasswordHasher) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, hasher)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	memberService, memberServiceErr := NewMemberService(unitOfWork, hasher)
	if memberServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", memberServiceErr.Error())
	}

	paymentService, paymentServiceErr := NewPaymentService(unitOfWork)
	if paymentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentServiceErr.Error())
	}

	fundService, fundServiceErr := NewFundService(unitOfWork)
	if fundServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", fundServiceErr.Error())
	}

	return &AppServices{
		UserService:    userService,
		MemberService:  memberService,
		PaymentService: paymentService,
		FundService:    fundService,
	}, nil
}
