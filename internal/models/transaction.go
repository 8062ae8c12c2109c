package models

import (
	"encoding/json"
	"strings"

	"github.com/finance-assistant/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single ledger entry. Negative amounts are
// expenses, positive amounts are income.
type Transaction struct {
	DefaultModel
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        types.Date
	Category    string
}

// BeforeSave trims whitespace and defaults the date to today.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)

	if t.Date.IsZero() {
		t.Date = types.Today()
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if t.Description == "" {
		return ErrTransactionDescriptionRequired
	}

	return nil
}

// CategoryTotal is the sum of all expenses in one category.
type CategoryTotal struct {
	Category string          `json:"category" example:"Utilities"`
	Total    decimal.Decimal `json:"total" example:"130"`
}

// ExpenseTotalsByCategory sums the absolute amounts of all expense
// transactions per category. Categories without expenses do not appear in
// the result. The totals are recomputed from the current ledger on every
// call.
func ExpenseTotalsByCategory() ([]CategoryTotal, error) {
	var totals []CategoryTotal

	err := DB.Model(&Transaction{}).
		Select("category, SUM(ABS(amount)) AS total").
		Where("amount < 0").
		Group("category").
		Order("category ASC").
		Find(&totals).Error
	if err != nil {
		return nil, err
	}

	return totals, nil
}

// Returns all transactions on this instance for export
func (Transaction) Export() (json.RawMessage, error) {
	var transactions []Transaction
	err := DB.Unscoped().Where(&Transaction{}).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&transactions)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
