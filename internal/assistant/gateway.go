// Package assistant implements the chat session with the remote finance
// assistant and the HTTP client for its gateway.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// Status classifies the connectivity to the assistant gateway.
type Status string

const (
	StatusUnknown Status = "unknown"
	StatusRunning Status = "running"
	StatusError   Status = "error"
)

// GatewayError is returned when the gateway answered, but without a usable
// reply. The session recovers from it by turning it into a transcript entry.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return e.Message
}

// TransportError is returned when the gateway could not be reached at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

const defaultGatewayError = "Failed to get response from AI"

// Gateway answers natural-language finance questions.
type Gateway interface {
	Ask(ctx context.Context, message string) (string, error)
	Probe(ctx context.Context) Status
}

// Client is the HTTP client for the assistant gateway.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient returns a gateway client for the service at baseURL.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     log,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error"`
}

// Ask sends one message to the gateway and returns the reply.
//
// A *TransportError means the gateway was unreachable or did not speak the
// protocol. A *GatewayError means it responded, but carried an error
// instead of a reply. Both are recoverable for the caller; the session
// stays usable.
func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return "", &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("assistant gateway unreachable")
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Warn().Err(err).Int("status", resp.StatusCode).Msg("assistant gateway sent a non-JSON body")
		return "", &TransportError{Err: fmt.Errorf("decoding gateway response: %w", err)}
	}

	// The gateway reports errors in the body, with both 2xx and non-2xx
	// status codes. A response without a reply is an error either way.
	if payload.Reply == "" {
		message := payload.Error
		if message == "" {
			message = defaultGatewayError
		}

		c.log.Warn().Int("status", resp.StatusCode).Str("error", message).Msg("assistant gateway returned an error")
		return "", &GatewayError{Message: message}
	}

	return payload.Reply, nil
}

// Probe checks whether the gateway is reachable. Any HTTP success counts
// as running.
func (c *Client) Probe(ctx context.Context) Status {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return StatusError
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("assistant gateway probe failed")
		return StatusError
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return StatusRunning
	}

	return StatusError
}
