package v1

import (
	"fmt"

	"github.com/finance-assistant/backend/internal/models"
	"github.com/finance-assistant/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ReminderEditable struct {
	Title     string                  `json:"title" example:"Electricity Bill" default:""`                                                        // Title of the bill
	Amount    decimal.Decimal         `json:"amount" example:"85.5" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount due
	DueDate   types.Date              `json:"dueDate" example:"2024-04-05"`                                                                       // Date the bill is due
	Category  models.ReminderCategory `json:"category" example:"Utilities"`                                                                       // Category of the bill
	Frequency models.Frequency        `json:"frequency" example:"Monthly" default:"Monthly"`                                                      // How often the bill recurs
	Paid      bool                    `json:"isPaid" example:"false" default:"false"`                                                             // Whether the bill has been paid
}

// model returns the database resource for the API representation of the editable fields
func (editable ReminderEditable) model() models.Reminder {
	return models.Reminder{
		Title:     editable.Title,
		Amount:    editable.Amount,
		DueDate:   editable.DueDate,
		Category:  editable.Category,
		Frequency: editable.Frequency,
		Paid:      editable.Paid,
	}
}

type ReminderLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/reminders/c506cbb8-ad2a-479d-bc26-aa4b284a3a84"`        // The reminder itself
	Toggle string `json:"toggle" example:"https://example.com/api/v1/reminders/c506cbb8-ad2a-479d-bc26-aa4b284a3a84/toggle"` // Endpoint to toggle the paid state
}

type Reminder struct {
	models.DefaultModel
	ReminderEditable
	Links ReminderLinks `json:"links"`
}

// newReminder returns the API v1 representation of the resource
func newReminder(c *gin.Context, model models.Reminder) Reminder {
	url := c.GetString(string(models.DBContextURL))

	return Reminder{
		DefaultModel: model.DefaultModel,
		ReminderEditable: ReminderEditable{
			Title:     model.Title,
			Amount:    model.Amount,
			DueDate:   model.DueDate,
			Category:  model.Category,
			Frequency: model.Frequency,
			Paid:      model.Paid,
		},
		Links: ReminderLinks{
			Self:   fmt.Sprintf("%s/v1/reminders/%s", url, model.ID),
			Toggle: fmt.Sprintf("%s/v1/reminders/%s/toggle", url, model.ID),
		},
	}
}

type ReminderListResponse struct {
	Data       []Reminder  `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ReminderCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ReminderResponse `json:"data"`                                                          // List of created resources
}

func (t *ReminderCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ReminderResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ReminderResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Reminder `json:"data"`                                                          // The resource
}

type ReminderQueryFilter struct {
	Category  string `json:"category" form:"category"`                 // By exact category
	Frequency string `json:"frequency" form:"frequency"`               // By exact frequency
	Paid      bool   `json:"isPaid" form:"isPaid"`                     // By paid state
	Offset    uint   `json:"offset" form:"offset" filterField:"false"` // The offset of the first reminder returned. Defaults to 0.
	Limit     int    `json:"limit" form:"limit" filterField:"false"`   // Maximum number of reminders to return. Defaults to 50.
}

func (f ReminderQueryFilter) model() models.Reminder {
	return ReminderEditable{
		Category:  models.ReminderCategory(f.Category),
		Frequency: models.Frequency(f.Frequency),
		Paid:      f.Paid,
	}.model()
}
