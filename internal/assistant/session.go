package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Role is the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the chat transcript.
type Message struct {
	Role    Role   `json:"role" example:"assistant"`
	Content string `json:"content" example:"Your savings rate is 20%."`
}

var (
	ErrMessageEmpty    = errors.New("the chat message must not be empty")
	ErrRequestInFlight = errors.New("a chat request is already being answered, wait for the reply")
)

// Session manages one conversation with the assistant.
//
// The transcript is append-only and survives closing the session. At most
// one request is in flight at any time; submissions while a request is
// pending are rejected, which keeps the transcript order identical to the
// submission order.
type Session struct {
	mu      sync.Mutex
	gateway Gateway
	log     zerolog.Logger

	messages []Message
	pending  bool
	open     bool
	status   Status
}

// State is a point-in-time snapshot of a session.
type State struct {
	Open     bool      `json:"open" example:"true"`                 // Is the chat window open?
	Pending  bool      `json:"pending" example:"false"`             // Is a request being answered right now?
	Status   Status    `json:"gatewayStatus" example:"running"`     // Result of the gateway liveness probe
	Messages []Message `json:"messages"`                            // The transcript, oldest message first
}

// NewSession returns a session talking to the given gateway.
func NewSession(gateway Gateway, log zerolog.Logger) *Session {
	return &Session{
		gateway: gateway,
		log:     log,
		status:  StatusUnknown,
	}
}

// Submit sends one user message to the assistant and returns the
// assistant's transcript entry.
//
// Empty messages and submissions while another request is pending are
// rejected without changing the transcript. Gateway and transport failures
// do not fail the submission; they are recovered into an assistant-role
// error entry so the conversation stays usable.
func (s *Session) Submit(ctx context.Context, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrMessageEmpty
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return Message{}, ErrRequestInFlight
	}

	// The user entry is appended before the request is issued, so the
	// transcript reflects the submission immediately.
	s.messages = append(s.messages, Message{Role: RoleUser, Content: text})
	s.pending = true
	s.open = true
	s.mu.Unlock()

	reply, err := s.gateway.Ask(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false

	var message Message

	var gatewayErr *GatewayError
	var transportErr *TransportError

	switch {
	case err == nil:
		message = Message{Role: RoleAssistant, Content: reply}
	case errors.As(err, &gatewayErr):
		message = Message{
			Role:    RoleAssistant,
			Content: fmt.Sprintf("Error: %s. Please try again.", gatewayErr.Message),
		}
	case errors.As(err, &transportErr):
		s.status = StatusError
		message = Message{
			Role:    RoleAssistant,
			Content: fmt.Sprintf("Network error: %v. Please check if the assistant server is running.", transportErr.Err),
		}
	default:
		// Unknown errors are treated like transport failures.
		s.log.Error().Err(err).Msg("unexpected assistant gateway error")
		message = Message{
			Role:    RoleAssistant,
			Content: fmt.Sprintf("Network error: %v. Please check if the assistant server is running.", err),
		}
	}

	s.messages = append(s.messages, message)
	return message, nil
}

// Open marks the chat window as open.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
}

// Close marks the chat window as closed. The transcript is preserved, so
// reopening the session restores the conversation.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// CheckGateway probes the gateway once and records the result. It never
// blocks submissions; the status only feeds the connectivity banner.
func (s *Session) CheckGateway(ctx context.Context) Status {
	status := s.gateway.Probe(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	return status
}

// GatewayStatus returns the recorded probe result.
func (s *Session) GatewayStatus() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Snapshot returns the current session state. The transcript is copied, so
// the caller can use it without holding any lock.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]Message, len(s.messages))
	copy(messages, s.messages)

	return State{
		Open:     s.open,
		Pending:  s.pending,
		Status:   s.status,
		Messages: messages,
	}
}
