package v1

import (
	"net/http"

	"github.com/finance-assistant/backend/internal/assistant"
	"github.com/finance-assistant/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// chatSession is the process wide assistant session. It is set once
// during startup via RegisterChatSession.
var chatSession *assistant.Session

// RegisterChatSession sets the assistant session used by the chat endpoints.
func RegisterChatSession(session *assistant.Session) {
	chatSession = session
}

func RegisterChatRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsChat)
	r.GET("", GetChat)
	r.POST("", SendChatMessage)
	r.DELETE("", CloseChat)
}

type ChatRequest struct {
	Message string `json:"message" example:"How much did I spend on food?"` // The message to send to the assistant
}

type ChatResponse struct {
	Error *string          `json:"error" example:"the chat message must not be empty"` // The error, if any occurred
	Data  *assistant.State `json:"data"`                                               // The session state
}

type ChatMessageResponse struct {
	Error *string            `json:"error" example:"the chat message must not be empty"` // The error, if any occurred
	Data  *assistant.Message `json:"data"`                                               // The reply of the assistant
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Chat
// @Success		204
// @Router			/v1/chat [options]
func OptionsChat(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Get chat session
// @Description	Returns the chat session with the full transcript. Opens the chat window if it was closed.
// @Tags			Chat
// @Produce		json
// @Success		200	{object}	ChatResponse
// @Failure		500	{object}	ChatResponse
// @Router			/v1/chat [get]
func GetChat(c *gin.Context) {
	if chatSession == nil {
		e := errChatNotConfigured.Error()
		c.JSON(http.StatusServiceUnavailable, ChatResponse{
			Error: &e,
		})
		return
	}

	chatSession.Open()

	state := chatSession.Snapshot()
	c.JSON(http.StatusOK, ChatResponse{Data: &state})
}

// @Summary		Send chat message
// @Description	Sends a message to the assistant and returns its reply. Gateway failures are answered with a recovery message in the transcript, not with an error status.
// @Tags			Chat
// @Accept			json
// @Produce		json
// @Success		200		{object}	ChatMessageResponse
// @Failure		400		{object}	ChatMessageResponse
// @Failure		409		{object}	ChatMessageResponse
// @Failure		503		{object}	ChatMessageResponse
// @Param			message	body		ChatRequest	true	"Message"
// @Router			/v1/chat [post]
func SendChatMessage(c *gin.Context) {
	if chatSession == nil {
		e := errChatNotConfigured.Error()
		c.JSON(http.StatusServiceUnavailable, ChatMessageResponse{
			Error: &e,
		})
		return
	}

	var request ChatRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChatMessageResponse{
			Error: &e,
		})
		return
	}

	reply, err := chatSession.Submit(c.Request.Context(), request.Message)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChatMessageResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ChatMessageResponse{Data: &reply})
}

// @Summary		Close chat session
// @Description	Closes the chat window. The transcript is preserved and restored when the chat is opened again.
// @Tags			Chat
// @Success		204
// @Failure		503	{object}	ChatResponse
// @Router			/v1/chat [delete]
func CloseChat(c *gin.Context) {
	if chatSession == nil {
		e := errChatNotConfigured.Error()
		c.JSON(http.StatusServiceUnavailable, ChatResponse{
			Error: &e,
		})
		return
	}

	chatSession.Close()
	c.JSON(http.StatusNoContent, nil)
}
