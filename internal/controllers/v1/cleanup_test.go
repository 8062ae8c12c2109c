package v1_test

import (
	"net/http"

	"github.com/finance-assistant/backend/internal/models"
	"github.com/finance-assistant/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCleanup() {
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(-10)})
	suite.createTestGoal(models.Goal{})
	suite.createTestReminder(models.Reminder{})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, model := range []any{&models.Transaction{}, &models.Goal{}, &models.Reminder{}} {
		var count int64
		suite.Require().Nil(models.DB.Model(model).Count(&count).Error)
		suite.Assert().Equal(int64(0), count, "%T is not empty", model)
	}
}

func (suite *TestSuiteStandard) TestCleanupWrongConfirmation() {
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(-10)})

	for _, query := range []string{"", "?confirm=yes", "?confirm=YES-PLEASE-DELETE-EVERYTHING"} {
		r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1"+query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}
