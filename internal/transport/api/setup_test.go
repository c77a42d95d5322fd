package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/transport/api"
	"github.com/fds-bd/fds-server/internal/transport/api/middlewares"
	"github.com/fds-bd/fds-server/internal/transport/api/mocks"
	"github.com/fds-bd/fds-server/internal/transport/api/tokens"
)

var testJWTSecret = []byte("super secret key")

type routerMocks struct {
	userService    *mocks.MockUserServicer
	memberService  *mocks.MockMemberServicer
	paymentService *mocks.MockPaymentServicer
	fundService    *mocks.MockFundServicer
}

func newTestRouter(t *testing.T) (*gin.Engine, *routerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &routerMocks{
		userService:    mocks.NewMockUserServicer(ctrl),
		memberService:  mocks.NewMockMemberServicer(ctrl),
		paymentService: mocks.NewMockPaymentServicer(ctrl),
		fundService:    mocks.NewMockFundServicer(ctrl),
	}

	router := api.New(api.RouterArgs{
		UserService:    m.userService,
		MemberService:  m.memberService,
		PaymentService: m.paymentService,
		FundService:    m.fundService,
		JWTSecretKey:   testJWTSecret,
	})
	return router, m
}

// sessionCookies builds the cookie slice of a logged-in session for the given
// identity, signed with the router's test secret.
func sessionCookies(t *testing.T, userID string, role domain.RoleType) []*http.Cookie {
	t.Helper()

	token, err := tokens.GenerateUserJWT(userID, role, time.Hour, testJWTSecret)
	require.NoError(t, err)

	return []*http.Cookie{{
		Name:  middlewares.SessionCookieName,
		Value: token,
	}}
}
