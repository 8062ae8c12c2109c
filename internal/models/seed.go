package models

import (
	"github.com/finance-assistant/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Seed loads the demo dataset into an empty database. It is a no-op when
// any transactions already exist, so restarts with a persistent DSN do not
// duplicate data.
func Seed() error {
	var count int64
	err := DB.Model(&Transaction{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		log.Debug().Msg("database is not empty, skipping seed")
		return nil
	}

	transactions := []Transaction{
		{Description: "Grocery Shopping", Amount: decimal.NewFromFloat(-120.50), Date: types.NewDate(2024, 3, 27), Category: "Food"},
		{Description: "Salary Deposit", Amount: decimal.NewFromFloat(3500.00), Date: types.NewDate(2024, 3, 26), Category: "Income"},
		{Description: "Netflix Subscription", Amount: decimal.NewFromFloat(-15.99), Date: types.NewDate(2024, 3, 25), Category: "Entertainment"},
		{Description: "Gas", Amount: decimal.NewFromFloat(-45.00), Date: types.NewDate(2024, 3, 24), Category: "Transportation"},
		{Description: "Electricity Bill", Amount: decimal.NewFromFloat(-85.00), Date: types.NewDate(2024, 3, 23), Category: "Utilities"},
		{Description: "Restaurant", Amount: decimal.NewFromFloat(-65.00), Date: types.NewDate(2024, 3, 22), Category: "Food"},
		{Description: "Internet Bill", Amount: decimal.NewFromFloat(-45.00), Date: types.NewDate(2024, 3, 21), Category: "Utilities"},
		{Description: "Movie Tickets", Amount: decimal.NewFromFloat(-25.00), Date: types.NewDate(2024, 3, 20), Category: "Entertainment"},
		{Description: "Bus Pass", Amount: decimal.NewFromFloat(-30.00), Date: types.NewDate(2024, 3, 19), Category: "Transportation"},
		{Description: "Shopping", Amount: decimal.NewFromFloat(-150.00), Date: types.NewDate(2024, 3, 18), Category: "Shopping"},
	}

	goals := []Goal{
		{Name: "Emergency Fund", Target: decimal.NewFromInt(10000), Current: decimal.NewFromInt(5000), Deadline: types.NewDate(2024, 12, 31)},
		{Name: "Vacation Fund", Target: decimal.NewFromInt(5000), Current: decimal.NewFromInt(2000), Deadline: types.NewDate(2024, 8, 15)},
		{Name: "New Car", Target: decimal.NewFromInt(25000), Current: decimal.NewFromInt(5000), Deadline: types.NewDate(2025, 6, 30)},
	}

	reminders := []Reminder{
		{Title: "Electricity Bill", Amount: decimal.NewFromFloat(85.50), DueDate: types.NewDate(2024, 4, 5), Category: CategoryUtilities, Frequency: FrequencyMonthly},
		{Title: "Netflix Subscription", Amount: decimal.NewFromFloat(15.99), DueDate: types.NewDate(2024, 4, 10), Category: CategoryEntertainment, Frequency: FrequencyMonthly},
		{Title: "Car Insurance", Amount: decimal.NewFromFloat(120.00), DueDate: types.NewDate(2024, 4, 15), Category: CategoryInsurance, Frequency: FrequencyMonthly},
	}

	summary := Summary{
		ID:              1,
		TotalBalance:    decimal.NewFromFloat(2500.00),
		MonthlyIncome:   decimal.NewFromFloat(3500.00),
		MonthlyExpenses: decimal.NewFromFloat(2800.00),
		SavingsRate:     decimal.NewFromInt(20),
	}

	for _, transaction := range transactions {
		if err := DB.Create(&transaction).Error; err != nil {
			return err
		}
	}

	for _, goal := range goals {
		if err := DB.Create(&goal).Error; err != nil {
			return err
		}
	}

	for _, reminder := range reminders {
		if err := DB.Create(&reminder).Error; err != nil {
			return err
		}
	}

	if err := DB.Create(&summary).Error; err != nil {
		return err
	}

	log.Info().
		Int("transactions", len(transactions)).
		Int("goals", len(goals)).
		Int("reminders", len(reminders)).
		Msg("seeded demo data")

	return nil
}
