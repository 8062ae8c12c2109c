package models_test

import (
	"github.com/finance-assistant/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetSummaryCreatesRow() {
	summary, err := models.GetSummary()
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), summary.TotalBalance.IsZero())

	// A second read returns the same row.
	again, err := models.GetSummary()
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), summary.ID, again.ID)
}

func (suite *TestSuiteStandard) TestSummaryFieldsIndependent() {
	summary, err := models.GetSummary()
	assert.Nil(suite.T(), err)

	// Expenses may exceed income without error, the summary is a
	// manual-entry dashboard.
	err = models.DB.Model(&summary).Select("monthly_income", "monthly_expenses").Updates(models.Summary{
		MonthlyIncome:   decimal.NewFromInt(1000),
		MonthlyExpenses: decimal.NewFromInt(2800),
	}).Error
	assert.Nil(suite.T(), err)

	summary, err = models.GetSummary()
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), summary.MonthlyExpenses.GreaterThan(summary.MonthlyIncome))
	assert.True(suite.T(), summary.TotalBalance.IsZero())
}

func (suite *TestSuiteStandard) TestSeed() {
	assert.Nil(suite.T(), models.Seed())

	var transactions, goals, reminders int64
	assert.Nil(suite.T(), models.DB.Model(&models.Transaction{}).Count(&transactions).Error)
	assert.Nil(suite.T(), models.DB.Model(&models.Goal{}).Count(&goals).Error)
	assert.Nil(suite.T(), models.DB.Model(&models.Reminder{}).Count(&reminders).Error)

	assert.Equal(suite.T(), int64(10), transactions)
	assert.Equal(suite.T(), int64(3), goals)
	assert.Equal(suite.T(), int64(3), reminders)

	summary, err := models.GetSummary()
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), summary.MonthlyIncome.Equal(decimal.NewFromInt(3500)))

	// Seeding again must not duplicate anything.
	assert.Nil(suite.T(), models.Seed())
	assert.Nil(suite.T(), models.DB.Model(&models.Transaction{}).Count(&transactions).Error)
	assert.Equal(suite.T(), int64(10), transactions)
}
