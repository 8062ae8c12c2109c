package models

import (
	"encoding/json"
	"strings"

	"github.com/finance-assistant/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ReminderCategory classifies a bill reminder.
type ReminderCategory string

const (
	CategoryUtilities     ReminderCategory = "Utilities"
	CategoryEntertainment ReminderCategory = "Entertainment"
	CategoryInsurance     ReminderCategory = "Insurance"
	CategoryRent          ReminderCategory = "Rent"
	CategoryOther         ReminderCategory = "Other"
)

// Frequency is how often a bill recurs.
type Frequency string

const (
	FrequencyMonthly   Frequency = "Monthly"
	FrequencyQuarterly Frequency = "Quarterly"
	FrequencyYearly    Frequency = "Yearly"
	FrequencyOneTime   Frequency = "One-time"
)

var (
	reminderCategories = []ReminderCategory{CategoryUtilities, CategoryEntertainment, CategoryInsurance, CategoryRent, CategoryOther}
	frequencies        = []Frequency{FrequencyMonthly, FrequencyQuarterly, FrequencyYearly, FrequencyOneTime}
)

// Reminder is a recurring or one-time bill obligation.
type Reminder struct {
	DefaultModel
	Title     string
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDate   types.Date
	Category  ReminderCategory
	Frequency Frequency
	Paid      bool
}

// BeforeSave trims whitespace and defaults the frequency to monthly.
func (r *Reminder) BeforeSave(_ *gorm.DB) error {
	r.Title = strings.TrimSpace(r.Title)

	if r.Frequency == "" {
		r.Frequency = FrequencyMonthly
	}

	return nil
}

func (r *Reminder) AfterSave(_ *gorm.DB) error {
	if r.Title == "" {
		return ErrReminderTitleRequired
	}

	if !r.Amount.IsPositive() {
		return ErrReminderAmountNotPositive
	}

	if r.DueDate.IsZero() {
		return ErrReminderDueDateRequired
	}

	if !slices.Contains(reminderCategories, r.Category) {
		return ErrReminderCategoryInvalid
	}

	if !slices.Contains(frequencies, r.Frequency) {
		return ErrReminderFrequencyInvalid
	}

	return nil
}

// Returns all reminders on this instance for export
func (Reminder) Export() (json.RawMessage, error) {
	var reminders []Reminder
	err := DB.Unscoped().Where(&Reminder{}).Find(&reminders).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&reminders)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
