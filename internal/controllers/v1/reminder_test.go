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

func (suite *TestSuiteStandard) TestRemindersOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/reminders", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestRemindersOptionsDetail() {
	reminder := suite.createTestReminder(models.Reminder{})

	r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/reminders/%s", reminder.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestRemindersCreate() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/reminders", []v1.ReminderEditable{
		{
			Title:    "Electricity Bill",
			Amount:   decimal.NewFromFloat(85.5),
			DueDate:  types.NewDate(2024, 4, 5),
			Category: models.CategoryUtilities,
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ReminderCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Electricity Bill", response.Data[0].Data.Title)
	suite.Assert().Equal(models.FrequencyMonthly, response.Data[0].Data.Frequency, "frequency defaults to Monthly")
	suite.Assert().False(response.Data[0].Data.Paid)
}

// An invalid reminder leaves the collection unchanged.
func (suite *TestSuiteStandard) TestRemindersCreateInvalid() {
	tests := []struct {
		name     string
		editable v1.ReminderEditable
	}{
		{"no title", v1.ReminderEditable{Amount: decimal.NewFromInt(10), DueDate: types.NewDate(2030, 1, 1), Category: models.CategoryRent}},
		{"no amount", v1.ReminderEditable{Title: "No Amount", DueDate: types.NewDate(2030, 1, 1), Category: models.CategoryRent}},
		{"no due date", v1.ReminderEditable{Title: "No Due Date", Amount: decimal.NewFromInt(10), Category: models.CategoryRent}},
		{"bad category", v1.ReminderEditable{Title: "Bad Category", Amount: decimal.NewFromInt(10), DueDate: types.NewDate(2030, 1, 1), Category: "Subscriptions"}},
		{"bad frequency", v1.ReminderEditable{Title: "Bad Frequency", Amount: decimal.NewFromInt(10), DueDate: types.NewDate(2030, 1, 1), Category: models.CategoryRent, Frequency: "Weekly"}},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/reminders", []v1.ReminderEditable{tt.editable})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Reminder{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestRemindersGetFilter() {
	suite.createTestReminder(models.Reminder{Title: "Electricity Bill", Category: models.CategoryUtilities})
	suite.createTestReminder(models.Reminder{Title: "Netflix Subscription", Category: models.CategoryEntertainment})
	suite.createTestReminder(models.Reminder{Title: "Car Insurance", Category: models.CategoryInsurance, Frequency: models.FrequencyYearly})

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"?category=Utilities", 1},
		{"?frequency=Yearly", 1},
		{"?frequency=Monthly", 2},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reminders"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.ReminderListResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().Len(response.Data, tt.count, "query %q", tt.query)
	}
}

// Toggling the paid state twice restores the original state.
func (suite *TestSuiteStandard) TestRemindersToggle() {
	reminder := suite.createTestReminder(models.Reminder{})
	suite.Require().False(reminder.Paid)

	url := fmt.Sprintf("http://example.com/v1/reminders/%s/toggle", reminder.ID)

	r := test.Request(suite.T(), http.MethodPost, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReminderResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Paid)

	r = test.Request(suite.T(), http.MethodPost, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Data.Paid)
}

func (suite *TestSuiteStandard) TestRemindersToggleNotFound() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/reminders/5b8b165e-be35-4a4b-94ab-0b5bfaa325f9/toggle", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRemindersUpdate() {
	reminder := suite.createTestReminder(models.Reminder{Title: "Electricity Bill"})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/reminders/%s", reminder.ID), map[string]any{
		"amount": "92.5",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReminderResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Electricity Bill", response.Data.Title)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromFloat(92.5)))
}

// Deleting is idempotent, a second delete for the same ID also returns 204.
func (suite *TestSuiteStandard) TestRemindersDelete() {
	reminder := suite.createTestReminder(models.Reminder{})

	url := fmt.Sprintf("http://example.com/v1/reminders/%s", reminder.ID)

	r := test.Request(suite.T(), http.MethodDelete, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Reminder{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)

	r = test.Request(suite.T(), http.MethodDelete, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestRemindersDeleteInvalidUUID() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/reminders/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
