package v1

import (
	"fmt"

	"github.com/finance-assistant/backend/internal/models"
	"github.com/finance-assistant/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name     string          `json:"name" example:"Emergency Fund" default:""`                                                                  // Name of the goal
	Target   decimal.Decimal `json:"target" example:"10000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`       // How much money should be saved for this goal?
	Current  decimal.Decimal `json:"current" example:"5000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`    // How much money is already saved
	Deadline types.Date      `json:"deadline" example:"2024-12-31"`                                                                             // The date the goal should be reached
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:     editable.Name,
		Target:   editable.Target,
		Current:  editable.Current,
		Deadline: editable.Deadline,
	}
}

type GoalLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`            // The goal itself
	Contribute string `json:"contribute" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/contribute"` // Endpoint to contribute money to the goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Progress decimal.Decimal `json:"progress" example:"50"` // Percentage of the target that is currently saved
	Links    GoalLinks       `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:     model.Name,
			Target:   model.Target,
			Current:  model.Current,
			Deadline: model.Deadline,
		},
		Progress: model.Progress(),
		Links: GoalLinks{
			Self:       fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Contribute: fmt.Sprintf("%s/v1/goals/%s/contribute", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created resources
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

type GoalContribution struct {
	Amount decimal.Decimal `json:"amount" example:"250" minimum:"0.00000001" multipleOf:"0.00000001"` // Amount to add to the saved money. The saved money never exceeds the target.
}

type GoalQueryFilter struct {
	Name   string `json:"name" form:"name" filterField:"false"`     // By name
	Search string `json:"search" form:"search" filterField:"false"` // By string in the name
	Offset uint   `json:"offset" form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit  int    `json:"limit" form:"limit" filterField:"false"`   // Maximum number of goals to return. Defaults to 50.
}
