package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/finance-assistant/backend/internal/controllers/v1"
	"github.com/finance-assistant/backend/internal/models"
	"github.com/finance-assistant/backend/internal/types"
	"github.com/finance-assistant/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGoalsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGoalsCreate() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{
		{
			Name:     "Emergency Fund",
			Target:   decimal.NewFromInt(10000),
			Current:  decimal.NewFromInt(5000),
			Deadline: types.NewDate(2024, 12, 31),
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.GoalCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Emergency Fund", response.Data[0].Data.Name)
	suite.Assert().True(response.Data[0].Data.Progress.Equal(decimal.NewFromInt(50)))
	suite.Assert().Contains(response.Data[0].Data.Links.Contribute, "/contribute")
}

// An invalid goal leaves the collection unchanged.
func (suite *TestSuiteStandard) TestGoalsCreateInvalid() {
	tests := []struct {
		name     string
		editable v1.GoalEditable
	}{
		{"no name", v1.GoalEditable{Target: decimal.NewFromInt(100), Deadline: types.NewDate(2030, 1, 1)}},
		{"no target", v1.GoalEditable{Name: "No Target", Deadline: types.NewDate(2030, 1, 1)}},
		{"negative target", v1.GoalEditable{Name: "Negative", Target: decimal.NewFromInt(-100), Deadline: types.NewDate(2030, 1, 1)}},
		{"no deadline", v1.GoalEditable{Name: "No Deadline", Target: decimal.NewFromInt(100)}},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{tt.editable})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Goal{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestGoalsGet() {
	suite.createTestGoal(models.Goal{Name: "Vacation Fund"})
	suite.createTestGoal(models.Goal{Name: "New Car"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	suite.createTestGoal(models.Goal{Name: "Vacation Fund"})
	suite.createTestGoal(models.Goal{Name: "New Car"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals?search=vacation", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Vacation Fund", response.Data[0].Name)
}

// Contributions raise the saved money, but never above the target.
func (suite *TestSuiteStandard) TestGoalsContribute() {
	goal := suite.createTestGoal(models.Goal{
		Name:    "Emergency Fund",
		Target:  decimal.NewFromInt(1000),
		Current: decimal.NewFromInt(900),
	})

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/goals/%s/contribute", goal.ID), map[string]any{
		"amount": "250",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.Current.Equal(decimal.NewFromInt(1000)), "current is %s", response.Data.Current)
	suite.Assert().True(response.Data.Progress.Equal(decimal.NewFromInt(100)))

	// The clamped value is persisted
	var reloaded models.Goal
	suite.Require().Nil(models.DB.First(&reloaded, goal.ID).Error)
	suite.Assert().True(reloaded.Current.Equal(decimal.NewFromInt(1000)))
}

func (suite *TestSuiteStandard) TestGoalsContributeInvalid() {
	goal := suite.createTestGoal(models.Goal{Current: decimal.NewFromInt(100)})

	for _, amount := range []string{"0", "-5"} {
		r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/goals/%s/contribute", goal.ID), map[string]any{
			"amount": amount,
		})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	var reloaded models.Goal
	suite.Require().Nil(models.DB.First(&reloaded, goal.ID).Error)
	suite.Assert().True(reloaded.Current.Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestGoalsContributeNotFound() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals/bd9ff3c0-0b19-4479-b0aa-9d2f2eca6949/contribute", map[string]any{
		"amount": "10",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := suite.createTestGoal(models.Goal{Name: "Emergency Fund", Target: decimal.NewFromInt(10000)})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/goals/%s", goal.ID), map[string]any{
		"name": "Rainy Day Fund",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Rainy Day Fund", response.Data.Name)
	suite.Assert().True(response.Data.Target.Equal(decimal.NewFromInt(10000)))
}

// Goals are never deleted.
func (suite *TestSuiteStandard) TestGoalsNoDelete() {
	goal := suite.createTestGoal(models.Goal{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/goals/%s", goal.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}
