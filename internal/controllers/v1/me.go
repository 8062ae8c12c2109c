package v1

import (
	"errors"
	"net/http"

	"github.com/finance-assistant/backend/internal/httputil"
	"github.com/finance-assistant/backend/internal/identity"
	"github.com/gin-gonic/gin"
)

var errNoIdentity = errors.New("no user session is configured")

func RegisterMeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMe)
	r.GET("", GetMe)
}

type MeResponse struct {
	Error *string `json:"error" example:"no user session is configured"` // The error, if any occurred
	Data  *Me     `json:"data"`                                          // The user session
}

type Me struct {
	Authenticated bool             `json:"authenticated" example:"true"` // Is a user signed in?
	Profile       identity.Profile `json:"profile"`                      // The profile of the signed in user
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Me
// @Success		204
// @Router			/v1/me [options]
func OptionsMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get user session
// @Description	Returns the signed in state and profile of the current user
// @Tags			Me
// @Produce		json
// @Success		200	{object}	MeResponse
// @Failure		500	{object}	MeResponse
// @Router			/v1/me [get]
func GetMe(c *gin.Context) {
	session, ok := identity.FromContext(c)
	if !ok {
		e := errNoIdentity.Error()
		c.JSON(http.StatusInternalServerError, MeResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		Data: &Me{
			Authenticated: session.Authenticated(),
			Profile:       session.Profile(),
		},
	})
}
