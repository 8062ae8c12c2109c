package v1_test

import (
	"net/http"

	v1 "github.com/finance-assistant/backend/internal/controllers/v1"
	"github.com/finance-assistant/backend/internal/identity"
	"github.com/finance-assistant/backend/internal/routing"
	"github.com/finance-assistant/backend/test"
)

func (suite *TestSuiteStandard) TestMeOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/me", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMeUnauthenticated() {
	routing.RegisterIdentity(identity.NewSession())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/me", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().False(response.Data.Authenticated)
	suite.Assert().Empty(response.Data.Profile.Name)
}

func (suite *TestSuiteStandard) TestMeAuthenticated() {
	session := identity.NewSession()
	session.Init(identity.Profile{Name: "Jane Doe", Email: "jane@example.com"})
	routing.RegisterIdentity(session)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/me", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.Authenticated)
	suite.Assert().Equal("Jane Doe", response.Data.Profile.Name)
	suite.Assert().Equal("jane@example.com", response.Data.Profile.Email)
}
