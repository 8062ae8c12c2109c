package healthz

import (
	"net/http"

	"github.com/finance-assistant/backend/internal/assistant"
	"github.com/finance-assistant/backend/internal/httperror"
	"github.com/finance-assistant/backend/internal/httputil"
	"github.com/finance-assistant/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// session is the assistant session whose gateway status is reported.
// It is optional, a nil session reports the status as unknown.
var session *assistant.Session

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// RegisterSession sets the assistant session for the health report.
func RegisterSession(s *assistant.Session) {
	session = s
}

type Health struct {
	Database  string           `json:"database" example:"ok"`           // Health of the database connection
	Assistant assistant.Status `json:"assistant" example:"running"`     // Result of the assistant gateway liveness probe
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		200	{object}	Health
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}

	health := Health{
		Database:  "ok",
		Assistant: assistant.StatusUnknown,
	}

	if session != nil {
		health.Assistant = session.GatewayStatus()
	}

	c.JSON(http.StatusOK, health)
}
