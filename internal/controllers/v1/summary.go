package v1

import (
	"net/http"

	"github.com/finance-assistant/backend/internal/httputil"
	"github.com/finance-assistant/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
	r.PATCH("", UpdateSummary)
}

type SummaryEditable struct {
	TotalBalance    decimal.Decimal `json:"totalBalance" example:"2500"`    // Total balance over all accounts
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome" example:"3500"`   // Income per month
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses" example:"2800"` // Expenses per month
	SavingsRate     decimal.Decimal `json:"savingsRate" example:"20"`       // Percentage of the income that is saved
}

// model returns the database resource for the API representation of the editable fields
func (editable SummaryEditable) model() models.Summary {
	return models.Summary{
		TotalBalance:    editable.TotalBalance,
		MonthlyIncome:   editable.MonthlyIncome,
		MonthlyExpenses: editable.MonthlyExpenses,
		SavingsRate:     editable.SavingsRate,
	}
}

// SummaryDisplay holds the localized display strings for the summary values.
type SummaryDisplay struct {
	TotalBalance    string `json:"totalBalance" example:"$2,500.00"`    // Formatted total balance
	MonthlyIncome   string `json:"monthlyIncome" example:"$3,500.00"`   // Formatted income per month
	MonthlyExpenses string `json:"monthlyExpenses" example:"$2,800.00"` // Formatted expenses per month
	SavingsRate     string `json:"savingsRate" example:"20.0%"`         // Formatted savings rate
}

type Summary struct {
	SummaryEditable
	Display SummaryDisplay `json:"display"`
}

var displayPrinter = message.NewPrinter(language.English)

// newSummary returns the API v1 representation of the resource
func newSummary(model models.Summary) Summary {
	return Summary{
		SummaryEditable: SummaryEditable{
			TotalBalance:    model.TotalBalance,
			MonthlyIncome:   model.MonthlyIncome,
			MonthlyExpenses: model.MonthlyExpenses,
			SavingsRate:     model.SavingsRate,
		},
		Display: SummaryDisplay{
			TotalBalance:    formatCurrency(model.TotalBalance),
			MonthlyIncome:   formatCurrency(model.MonthlyIncome),
			MonthlyExpenses: formatCurrency(model.MonthlyExpenses),
			SavingsRate:     formatPercent(model.SavingsRate),
		},
	}
}

// formatCurrency formats an amount with the locale specific digit grouping.
func formatCurrency(amount decimal.Decimal) string {
	value, _ := amount.Float64()
	return displayPrinter.Sprintf("$%.2f", value)
}

func formatPercent(rate decimal.Decimal) string {
	value, _ := rate.Float64()
	return displayPrinter.Sprintf("%.1f%%", value)
}

type SummaryResponse struct {
	Error *string  `json:"error" example:"the database is unavailable"` // The error, if any occurred
	Data  *Summary `json:"data"`                                        // The resource
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get summary
// @Description	Returns the financial summary
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	summary, err := models.GetSummary()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSummary(summary)
	c.JSON(http.StatusOK, SummaryResponse{Data: &apiResource})
}

// @Summary		Update summary
// @Description	Updates the financial summary. Only values to be updated need to be specified.
// @Tags			Summary
// @Accept			json
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			summary	body		SummaryEditable	true	"Summary"
// @Router			/v1/summary [patch]
func UpdateSummary(c *gin.Context) {
	summary, err := models.GetSummary()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, SummaryEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data SummaryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&summary).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSummary(summary)
	c.JSON(http.StatusOK, SummaryResponse{Data: &apiResource})
}
