package models

import (
	"encoding/json"
	"strings"

	"github.com/finance-assistant/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target with tracked progress toward a deadline.
type Goal struct {
	DefaultModel
	Name     string
	Target   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The amount to save
	Current  decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The amount saved so far
	Deadline types.Date
}

var progressScale = decimal.NewFromInt(100)

// Progress returns the percentage of the target that has been saved,
// rounded to two decimal places. A goal without a positive target has a
// progress of zero. The value is always derived from Current and Target,
// so every mutation path shares the same rule.
func (g Goal) Progress() decimal.Decimal {
	if !g.Target.IsPositive() {
		return decimal.Zero
	}

	return g.Current.Div(g.Target).Mul(progressScale).Round(2)
}

// Contribute adds amount to the saved total, clamped to the target.
// Repeated contributions can therefore never push Current past Target and
// never decrease it.
func (g *Goal) Contribute(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrContributionNegative
	}

	next := g.Current.Add(amount)
	if next.GreaterThan(g.Target) {
		next = g.Target
	}

	g.Current = next
	return nil
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if g.Name == "" {
		return ErrGoalNameRequired
	}

	if !g.Target.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.Current.IsNegative() {
		return ErrGoalCurrentNegative
	}

	if g.Deadline.IsZero() {
		return ErrGoalDeadlineRequired
	}

	return nil
}

// Returns all goals on this instance for export
func (Goal) Export() (json.RawMessage, error) {
	var goals []Goal
	err := DB.Unscoped().Where(&Goal{}).Find(&goals).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&goals)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
