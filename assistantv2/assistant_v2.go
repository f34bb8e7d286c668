// Package assistantv2 is the client for the Watson Assistant v2 API: session
// lifecycle and stateful or stateless message exchange with an assistant.
package assistantv2

import (
	"context"
	"net/http"

	"github.com/RoeZX/watson-go-sdk/core"
)

// DefaultServiceURL is the endpoint used when none is configured.
const DefaultServiceURL = "https://gateway.watsonplatform.net/assistant/api"

var serviceInfo = core.ServiceInfo{
	Name:        "assistant",
	HeaderName:  "conversation",
	APIVersion:  "v2",
	DefaultURL:  DefaultServiceURL,
	Versioned:   true,
	Constructor: "NewAssistantV2",
}

// AssistantV2 is a Watson Assistant v2 client. It is safe for concurrent use.
type AssistantV2 struct {
	Service *core.BaseService
}

// NewAssistantV2 creates a client for API version date version
// (e.g. "2019-02-28"). Without an authentication option, credentials are
// discovered under the ASSISTANT_ prefix.
func NewAssistantV2(version string, opts ...core.ServiceOption) (*AssistantV2, error) {
	s, err := core.NewBaseService(serviceInfo, version, opts...)
	if err != nil {
		return nil, err
	}
	return &AssistantV2{Service: s}, nil
}

// CreateSessionOptions are the parameters of CreateSession.
type CreateSessionOptions struct {
	AssistantID string `validate:"required"`

	Headers map[string]string
}

// CreateSession creates a new session. A session keeps the conversation state
// of one user until it is deleted or times out.
func (a *AssistantV2) CreateSession(ctx context.Context, opts *CreateSessionOptions) (*core.DetailedResponse[SessionResponse], error) {
	const op = "CreateSession"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}

	b := core.NewRequestBuilder(op, http.MethodPost)
	if err := b.ResolvePath("/v2/assistants/{assistant_id}/sessions", opts.AssistantID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)

	return core.Invoke[SessionResponse](ctx, a.Service, b)
}

// DeleteSessionOptions are the parameters of DeleteSession.
type DeleteSessionOptions struct {
	AssistantID string `validate:"required"`
	SessionID   string `validate:"required"`

	Headers map[string]string
}

// DeleteSession ends a session before it times out.
func (a *AssistantV2) DeleteSession(ctx context.Context, opts *DeleteSessionOptions) (*core.DetailedResponse[map[string]interface{}], error) {
	const op = "DeleteSession"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}

	b := core.NewRequestBuilder(op, http.MethodDelete)
	if err := b.ResolvePath("/v2/assistants/{assistant_id}/sessions/{session_id}", opts.AssistantID, opts.SessionID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)

	return core.Invoke[map[string]interface{}](ctx, a.Service, b)
}

// MessageOptions are the parameters of Message.
type MessageOptions struct {
	AssistantID string `validate:"required"`
	SessionID   string `validate:"required"`
	Input       *MessageInput
	Context     *MessageContext

	Headers map[string]string
}

// Message sends user input to the assistant within a session and returns its
// response.
func (a *AssistantV2) Message(ctx context.Context, opts *MessageOptions) (*core.DetailedResponse[MessageResponse], error) {
	const op = "Message"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}

	b := core.NewRequestBuilder(op, http.MethodPost)
	if err := b.ResolvePath("/v2/assistants/{assistant_id}/sessions/{session_id}/message", opts.AssistantID, opts.SessionID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)

	body := core.Body{}.
		SetOptional("input", opts.Input).
		SetOptional("context", opts.Context)
	if err := b.SetJSONBody(body); err != nil {
		return nil, err
	}

	return core.Invoke[MessageResponse](ctx, a.Service, b)
}

// MessageStatelessOptions are the parameters of MessageStateless.
type MessageStatelessOptions struct {
	AssistantID string `validate:"required"`
	Input       *MessageInputStateless
	Context     *MessageContextStateless

	Headers map[string]string
}

// MessageStateless sends user input to the assistant without a session. The
// caller keeps the conversation state by passing back the returned context.
func (a *AssistantV2) MessageStateless(ctx context.Context, opts *MessageStatelessOptions) (*core.DetailedResponse[MessageResponseStateless], error) {
	const op = "MessageStateless"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}

	b := core.NewRequestBuilder(op, http.MethodPost)
	if err := b.ResolvePath("/v2/assistants/{assistant_id}/message", opts.AssistantID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)

	body := core.Body{}.
		SetOptional("input", opts.Input).
		SetOptional("context", opts.Context)
	if err := b.SetJSONBody(body); err != nil {
		return nil, err
	}

	return core.Invoke[MessageResponseStateless](ctx, a.Service, b)
}
