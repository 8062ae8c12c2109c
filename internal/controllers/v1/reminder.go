package v1

import (
	"errors"
	"net/http"

	"github.com/finance-assistant/backend/internal/httputil"
	"github.com/finance-assistant/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func RegisterReminderRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsReminders)
		r.GET("", GetReminders)
		r.POST("", CreateReminders)
	}
	{
		r.OPTIONS("/:id", OptionsReminderDetail)
		r.GET("/:id", GetReminder)
		r.PATCH("/:id", UpdateReminder)
		r.DELETE("/:id", DeleteReminder)
	}
	{
		r.OPTIONS("/:id/toggle", OptionsReminderToggle)
		r.POST("/:id/toggle", ToggleReminder)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reminders
// @Success		204
// @Router			/v1/reminders [options]
func OptionsReminders(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reminders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reminders/{id} [options]
func OptionsReminderDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Reminder{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reminders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reminders/{id}/toggle [options]
func OptionsReminderToggle(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Reminder{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create reminders
// @Description	Creates new bill reminders
// @Tags			Reminders
// @Produce		json
// @Success		201			{object}	ReminderCreateResponse
// @Failure		400			{object}	ReminderCreateResponse
// @Failure		500			{object}	ReminderCreateResponse
// @Param			reminders	body		[]ReminderEditable	true	"Reminders"
// @Router			/v1/reminders [post]
func CreateReminders(c *gin.Context) {
	var editables []ReminderEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ReminderCreateResponse{}

	for _, editable := range editables {
		reminder := editable.model()
		err = models.DB.Create(&reminder).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newReminder(c, reminder)
		r.Data = append(r.Data, ReminderResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get reminders
// @Description	Returns a list of bill reminders
// @Tags			Reminders
// @Produce		json
// @Success		200	{object}	ReminderListResponse
// @Failure		400	{object}	ReminderListResponse
// @Failure		500	{object}	ReminderListResponse
// @Router			/v1/reminders [get]
// @Param			category	query	string	false	"Filter by exact category"
// @Param			frequency	query	string	false	"Filter by exact frequency"
// @Param			isPaid		query	bool	false	"Has the bill been paid?"
// @Param			offset		query	uint	false	"The offset of the first reminder returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of reminders to return. Defaults to 50."
func GetReminders(c *gin.Context) {
	var filter ReminderQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReminderListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.
		Order("date(reminders.due_date) ASC, reminders.title ASC").
		Where(&where, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 reminders and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var reminders []models.Reminder
	err := q.Find(&reminders).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Reminder, 0, len(reminders))
	for _, reminder := range reminders {
		data = append(data, newReminder(c, reminder))
	}

	c.JSON(http.StatusOK, ReminderListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get reminder
// @Description	Returns a specific bill reminder
// @Tags			Reminders
// @Produce		json
// @Success		200	{object}	ReminderResponse
// @Failure		400	{object}	ReminderResponse
// @Failure		404	{object}	ReminderResponse
// @Failure		500	{object}	ReminderResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reminders/{id} [get]
func GetReminder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &e,
		})
		return
	}

	var reminder models.Reminder
	err = models.DB.First(&reminder, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &e,
		})
		return
	}

	apiResource := newReminder(c, reminder)
	c.JSON(http.StatusOK, ReminderResponse{Data: &apiResource})
}

// @Summary		Update reminder
// @Description	Updates an existing bill reminder. Only values to be updated need to be specified.
// @Tags			Reminders
// @Accept			json
// @Produce		json
// @Success		200			{object}	ReminderResponse
// @Failure		400			{object}	ReminderResponse
// @Failure		404			{object}	ReminderResponse
// @Failure		500			{object}	ReminderResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			reminder	body		ReminderEditable	true	"Reminder"
// @Router			/v1/reminders/{id} [patch]
func UpdateReminder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &e,
		})
		return
	}

	var reminder models.Reminder
	err = models.DB.First(&reminder, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ReminderEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data ReminderEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&reminder).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &e,
		})
		return
	}

	apiResource := newReminder(c, reminder)
	c.JSON(http.StatusOK, ReminderResponse{Data: &apiResource})
}

// @Summary		Toggle paid state
// @Description	Flips the paid state of a bill reminder
// @Tags			Reminders
// @Produce		json
// @Success		200	{object}	ReminderResponse
// @Failure		400	{object}	ReminderResponse
// @Failure		404	{object}	ReminderResponse
// @Failure		500	{object}	ReminderResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reminders/{id}/toggle [post]
func ToggleReminder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &e,
		})
		return
	}

	var reminder models.Reminder
	err = models.DB.First(&reminder, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&reminder).Select("paid").Updates(map[string]any{"paid": !reminder.Paid}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &e,
		})
		return
	}

	apiResource := newReminder(c, reminder)
	c.JSON(http.StatusOK, ReminderResponse{Data: &apiResource})
}

// @Summary		Delete reminder
// @Description	Deletes a bill reminder. Deleting a reminder that does not exist is not an error.
// @Tags			Reminders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reminders/{id} [delete]
func DeleteReminder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Deleting is idempotent, a missing resource results in the same
	// state as a successful delete
	err = models.DB.Delete(&models.Reminder{}, uri.ID).Error
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
