package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/transport/api"
	"github.com/fds-bd/fds-server/internal/transport/api/testutils"
)

type FundHandlerTestSuite struct {
	suite.Suite
}

func TestFundHandlerSuite(t *testing.T) {
	suite.Run(t, new(FundHandlerTestSuite))
}

func (s *FundHandlerTestSuite) TestShow() {
	router, m := newTestRouter(s.T())
	m.fundService.EXPECT().
		Snapshot(gomock.Any()).
		Return(&domain.Fund{
			ID:               "1",
			Name:             "FDS",
			TotalAmount:      24000,
			TotalMembers:     24,
			MonthlyCollected: 2000,
			LastUpdated:      time.Now(),
		}, nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: router,
		Method: http.MethodGet,
		URL:    api.RouteGroup + api.FundRoute,
	}, testutils.WithCookies(sessionCookies(s.T(), "2", domain.RoleMember)))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Fund api.FundResponse `json:"fund"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("FDS", body.Fund.Name)
	s.Equal(int64(24000), body.Fund.TotalAmount)
	s.Equal(int64(24), body.Fund.TotalMembers)
	s.Equal(int64(2000), body.Fund.MonthlyCollected)
}

func (s *FundHandlerTestSuite) TestShowUnauthorized() {
	router, _ := newTestRouter(s.T())

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: router,
		Method: http.MethodGet,
		URL:    api.RouteGroup + api.FundRoute,
	})
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}
