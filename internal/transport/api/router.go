package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup          = "/api"
	LoginRoute          = "/auth/login"
	LogoutRoute         = "/auth/logout"
	MeRoute             = "/auth/me"
	MembersRoute        = "/members"
	MemberMeRoute       = "/members/me"
	PaymentsRoute       = "/payments"
	PaymentApproveRoute = "/payments/:id/approve"
	FundRoute           = "/fund"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	UserService    UserServicer
	MemberService  MemberServicer
	PaymentService PaymentServicer
	FundService    FundServicer
	JWTSecretKey   []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	membersHandler := NewMembersHandler(args.MemberService)
	paymentsHandler := NewPaymentsHandler(args.PaymentService)
	fundHandler := NewFundHandler(args.FundService)

	api := r.Group(RouteGroup)

	api.POST(LoginRoute, authHandler.Login)
	api.POST(LogoutRoute, authHandler.Logout)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// every route below requires a valid session.
	api.GET(MeRoute, authHandler.Me)

	api.GET(MembersRoute, membersHandler.Index)
	api.GET(MemberMeRoute, membersHandler.Mine)
	api.POST(MembersRoute, middlewares.RoleRequired(domain.RoleAccountant), membersHandler.Create)

	api.GET(PaymentsRoute, paymentsHandler.Index)
	api.POST(PaymentsRoute, paymentsHandler.Create)
	api.POST(PaymentApproveRoute, middlewares.RoleRequired(domain.RoleAccountant), paymentsHandler.Approve)

	api.GET(FundRoute, fundHandler.Show)
	return r
}
