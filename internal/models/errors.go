package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Transaction errors
var (
	ErrTransactionDescriptionRequired = errors.New("transactions must have a description")
)

// Goal errors
var (
	ErrGoalNameRequired      = errors.New("goals must have a name")
	ErrGoalTargetNotPositive = errors.New("goal targets must be larger than zero")
	ErrGoalDeadlineRequired  = errors.New("goals must have a deadline")
	ErrGoalCurrentNegative   = errors.New("the amount saved for a goal cannot be negative")
	ErrContributionNegative  = errors.New("contributions must be larger than zero")
)

// Reminder errors
var (
	ErrReminderTitleRequired     = errors.New("reminders must have a title")
	ErrReminderAmountNotPositive = errors.New("reminder amounts must be larger than zero")
	ErrReminderDueDateRequired   = errors.New("reminders must have a due date")
	ErrReminderCategoryInvalid   = errors.New("the reminder category is not valid")
	ErrReminderFrequencyInvalid  = errors.New("the reminder frequency is not valid")
)
