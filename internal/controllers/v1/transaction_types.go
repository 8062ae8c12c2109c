package v1

import (
	"fmt"
	"time"

	"github.com/finance-assistant/backend/internal/models"
	"github.com/finance-assistant/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Description string          `json:"description" example:"Grocery Shopping" default:""`                                                              // What the transaction was for
	Amount      decimal.Decimal `json:"amount" example:"-120.5" minimum:"-999999999999.99999999" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount of the transaction, negative for expenses
	Date        types.Date      `json:"date" example:"2024-03-27"`                                                                                      // Date of the transaction. Defaults to the current day.
	Category    string          `json:"category" example:"Food" default:"Other"`                                                                        // Category the transaction belongs to
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Description: editable.Description,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Category:    editable.Category,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Description: model.Description,
			Amount:      model.Amount,
			Date:        model.Date,
			Category:    model.Category,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of resources
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created resources
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The resource
}

type TransactionQueryFilter struct {
	Description string    `json:"description" form:"description" filterField:"false"` // By description
	Category    string    `json:"category" form:"category"`                           // By exact category
	Search      string    `json:"search" form:"search" filterField:"false"`           // By string in description or category
	Match       string    `json:"match" form:"match" filterField:"false"`             // Glob pattern matched against the description
	Sign        string    `json:"sign" form:"sign" filterField:"false"`               // "income" or "expense"
	FromDate    time.Time `json:"fromDate" form:"fromDate" filterField:"false"`       // From this date. Time is ignored.
	UntilDate   time.Time `json:"untilDate" form:"untilDate" filterField:"false"`     // Until and including this date. Time is ignored.
	Offset      uint      `json:"offset" form:"offset" filterField:"false"`           // The offset of the first transaction returned. Defaults to 0.
	Limit       int       `json:"limit" form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// This does not set the string filter fields since they are
	// handled in the controller function
	return TransactionEditable{
		Category: f.Category,
	}.model()
}
