package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Summary is the manually maintained financial summary shown on the
// dashboard. Every field is independently editable; none of them are
// derived from the ledger. The summary and the transaction aggregates are
// intentionally not reconciled.
//
// There is exactly one summary row per instance.
type Summary struct {
	Timestamps
	ID              uint            `json:"-" gorm:"primarykey"`
	TotalBalance    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	MonthlyIncome   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	MonthlyExpenses decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SavingsRate     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// GetSummary returns the summary row, creating it with zero values when it
// does not exist yet.
func GetSummary() (Summary, error) {
	summary := Summary{ID: 1}

	err := DB.FirstOrCreate(&summary).Error
	if err != nil {
		return Summary{}, err
	}

	return summary, nil
}

// Returns the summary on this instance for export
func (Summary) Export() (json.RawMessage, error) {
	summary, err := GetSummary()
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&summary)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
