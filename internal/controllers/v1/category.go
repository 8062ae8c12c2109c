package v1

import (
	"net/http"

	"github.com/finance-assistant/backend/internal/httputil"
	"github.com/finance-assistant/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
}

type Category struct {
	Name  string          `json:"name" example:"Food"`     // Name of the category
	Total decimal.Decimal `json:"total" example:"270.5"`   // Total expenses in this category, as a positive number
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                       // List of resources
	Error *string    `json:"error" example:"the database is unavailable"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the total expenses per category. Categories without expenses are not included.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	totals, err := models.ExpenseTotalsByCategory()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Category, 0, len(totals))
	for _, total := range totals {
		data = append(data, Category{
			Name:  total.Category,
			Total: total.Total,
		})
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: data,
	})
}
