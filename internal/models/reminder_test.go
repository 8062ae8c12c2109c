package models_test

import (
	"github.com/finance-assistant/backend/internal/models"
	"github.com/finance-assistant/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestReminderAfterSave() {
	dueDate := types.NewDate(2024, 4, 5)

	tests := []struct {
		title     string
		amount    decimal.Decimal
		dueDate   types.Date
		category  models.ReminderCategory
		frequency models.Frequency
		err       error
	}{
		{"", decimal.NewFromFloat(85.50), dueDate, models.CategoryUtilities, models.FrequencyMonthly, models.ErrReminderTitleRequired},
		{"Electricity Bill", decimal.Zero, dueDate, models.CategoryUtilities, models.FrequencyMonthly, models.ErrReminderAmountNotPositive},
		{"Electricity Bill", decimal.NewFromFloat(85.50), types.Date{}, models.CategoryUtilities, models.FrequencyMonthly, models.ErrReminderDueDateRequired},
		{"Electricity Bill", decimal.NewFromFloat(85.50), dueDate, "Groceries", models.FrequencyMonthly, models.ErrReminderCategoryInvalid},
		{"Electricity Bill", decimal.NewFromFloat(85.50), dueDate, models.CategoryUtilities, "Weekly", models.ErrReminderFrequencyInvalid},
		{"Electricity Bill", decimal.NewFromFloat(85.50), dueDate, models.CategoryUtilities, models.FrequencyMonthly, nil},
	}

	for _, tt := range tests {
		r := models.Reminder{
			Title:     tt.title,
			Amount:    tt.amount,
			DueDate:   tt.dueDate,
			Category:  tt.category,
			Frequency: tt.frequency,
		}

		err := r.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestReminderCreateInvalidNotSaved() {
	reminder := models.Reminder{
		Amount:   decimal.NewFromFloat(85.50),
		DueDate:  types.NewDate(2024, 4, 5),
		Category: models.CategoryUtilities,
	}

	err := models.DB.Create(&reminder).Error
	assert.ErrorIs(suite.T(), err, models.ErrReminderTitleRequired)

	var count int64
	assert.Nil(suite.T(), models.DB.Model(&models.Reminder{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestReminderFrequencyDefaults() {
	reminder := suite.createTestReminder(models.Reminder{
		Title:    "Car Insurance",
		Amount:   decimal.NewFromFloat(120.00),
		DueDate:  types.NewDate(2024, 4, 15),
		Category: models.CategoryInsurance,
	})

	assert.Equal(suite.T(), models.FrequencyMonthly, reminder.Frequency)
	assert.False(suite.T(), reminder.Paid)
}

func (suite *TestSuiteStandard) TestReminderTogglePaidInvolution() {
	reminder := suite.createTestReminder(models.Reminder{
		Title:    "Netflix Subscription",
		Amount:   decimal.NewFromFloat(15.99),
		DueDate:  types.NewDate(2024, 4, 10),
		Category: models.CategoryEntertainment,
	})

	original := reminder.Paid

	for i := 0; i < 2; i++ {
		assert.Nil(suite.T(), models.DB.Model(&reminder).Select("paid").Updates(map[string]any{"paid": !reminder.Paid}).Error)
		assert.Nil(suite.T(), models.DB.First(&reminder, reminder.ID).Error)
	}

	assert.Equal(suite.T(), original, reminder.Paid)
}

func (suite *TestSuiteStandard) TestReminderDeleteIdempotent() {
	reminder := suite.createTestReminder(models.Reminder{
		Title:    "Electricity Bill",
		Amount:   decimal.NewFromFloat(85.50),
		DueDate:  types.NewDate(2024, 4, 5),
		Category: models.CategoryUtilities,
	})

	var count int64
	assert.Nil(suite.T(), models.DB.Model(&models.Reminder{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)

	// Deleting twice is safe, the second call simply affects no rows.
	assert.Nil(suite.T(), models.DB.Delete(&models.Reminder{}, reminder.ID).Error)
	assert.Nil(suite.T(), models.DB.Delete(&models.Reminder{}, reminder.ID).Error)

	assert.Nil(suite.T(), models.DB.Model(&models.Reminder{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}
