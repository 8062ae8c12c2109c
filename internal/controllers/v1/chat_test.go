package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/finance-assistant/backend/internal/assistant"
	v1 "github.com/finance-assistant/backend/internal/controllers/v1"
	"github.com/finance-assistant/backend/internal/routing"
	"github.com/finance-assistant/backend/test"
	"github.com/rs/zerolog"
)

// registerChatSession connects the chat endpoints to a gateway served
// by the given handler and returns the session.
func (suite *TestSuiteStandard) registerChatSession(handler http.HandlerFunc) *assistant.Session {
	server := httptest.NewServer(handler)
	suite.T().Cleanup(server.Close)

	session := assistant.NewSession(assistant.NewClient(server.URL, zerolog.Nop()), zerolog.Nop())
	v1.RegisterChatSession(session)

	return session
}

func replyHandler(reply string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"reply": reply})
	}
}

func (suite *TestSuiteStandard) TestChatOptions() {
	suite.registerChatSession(replyHandler("ok"))

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/chat", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestChatSend() {
	suite.registerChatSession(replyHandler("You spent $185.50 on food."))

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/chat", map[string]any{
		"message": "How much did I spend on food?",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChatMessageResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(assistant.RoleAssistant, response.Data.Role)
	suite.Assert().Equal("You spent $185.50 on food.", response.Data.Content)
}

// A whitespace only message is rejected and does not reach the gateway.
func (suite *TestSuiteStandard) TestChatSendEmpty() {
	session := suite.registerChatSession(func(w http.ResponseWriter, r *http.Request) {
		suite.Assert().Fail("the gateway must not be called")
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/chat", map[string]any{
		"message": "   ",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Empty(session.Snapshot().Messages)
}

// A gateway error is answered with a recovery message in the
// transcript, not with an error status.
func (suite *TestSuiteStandard) TestChatSendGatewayError() {
	suite.registerChatSession(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "model overloaded"})
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/chat", map[string]any{
		"message": "Hello",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChatMessageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Error: model overloaded. Please try again.", response.Data.Content)
}

// While a request is in flight, further requests are rejected with a 409.
func (suite *TestSuiteStandard) TestChatSendWhilePending() {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	suite.registerChatSession(func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { close(started) })
		<-release
		_ = json.NewEncoder(w).Encode(map[string]string{"reply": "done"})
	})

	// Both requests have to hit the same router concurrently
	baseURL, err := url.Parse("http://example.com")
	suite.Require().Nil(err)

	router, teardown, err := routing.Config(baseURL)
	defer teardown()
	suite.Require().Nil(err)
	routing.AttachRoutes(router.Group("/"))

	send := func(message string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "http://example.com/v1/chat", strings.NewReader(`{"message": "`+message+`"}`))
		router.ServeHTTP(recorder, req)
		return recorder
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		recorder := send("First")
		suite.Assert().Equal(http.StatusOK, recorder.Code)
	}()

	<-started

	recorder := send("Second")
	suite.Assert().Equal(http.StatusConflict, recorder.Code)

	close(release)
	wg.Wait()
}

func (suite *TestSuiteStandard) TestChatGet() {
	suite.registerChatSession(replyHandler("Hi!"))

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/chat", map[string]any{
		"message": "Hello",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/chat", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChatResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Open)
	suite.Assert().False(response.Data.Pending)
	suite.Require().Len(response.Data.Messages, 2)
	suite.Assert().Equal(assistant.RoleUser, response.Data.Messages[0].Role)
	suite.Assert().Equal(assistant.RoleAssistant, response.Data.Messages[1].Role)
}

// Closing the chat keeps the transcript, reopening restores it.
func (suite *TestSuiteStandard) TestChatClose() {
	suite.registerChatSession(replyHandler("Hi!"))

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/chat", map[string]any{
		"message": "Hello",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/chat", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/chat", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChatResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Open, "a GET reopens the chat")
	suite.Assert().Len(response.Data.Messages, 2)
}

func (suite *TestSuiteStandard) TestChatNotConfigured() {
	v1.RegisterChatSession(nil)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/chat", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)
}
