package assistantv2

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoeZX/watson-go-sdk/core"
	"github.com/RoeZX/watson-go-sdk/internal/watsontest"
)

const testVersion = "2019-02-28"

func newTestAssistant(t *testing.T, transport core.Transport) *AssistantV2 {
	t.Helper()
	a, err := NewAssistantV2(testVersion,
		core.WithURL("https://gateway.example.com/assistant/api"),
		core.WithBearerToken("tok"),
		core.WithTransport(transport),
	)
	require.NoError(t, err)
	return a
}

func TestNewAssistantV2RequiresVersion(t *testing.T) {
	_, err := NewAssistantV2("", core.WithBearerToken("tok"))
	var argErr *core.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "version", argErr.Parameter)
	assert.Equal(t, "NewAssistantV2", argErr.Operation)
}

func TestRequiredParametersFailBeforeSending(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	a := newTestAssistant(t, transport)
	ctx := context.Background()

	tests := []struct {
		name  string
		call  func() error
		param string
		op    string
	}{
		{"nil create options", func() error { _, err := a.CreateSession(ctx, nil); return err }, "options", "CreateSession"},
		{"empty assistant id", func() error { _, err := a.CreateSession(ctx, &CreateSessionOptions{}); return err }, "AssistantID", "CreateSession"},
		{"delete without session", func() error {
			_, err := a.DeleteSession(ctx, &DeleteSessionOptions{AssistantID: "a1"})
			return err
		}, "SessionID", "DeleteSession"},
		{"message without assistant", func() error {
			_, err := a.Message(ctx, &MessageOptions{SessionID: "s1"})
			return err
		}, "AssistantID", "Message"},
		{"stateless without assistant", func() error {
			_, err := a.MessageStateless(ctx, &MessageStatelessOptions{})
			return err
		}, "AssistantID", "MessageStateless"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var argErr *core.ArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.param, argErr.Parameter)
			assert.Equal(t, tt.op, argErr.Operation)
		})
	}
	assert.Equal(t, 0, transport.Len())
}

func TestCreateSession(t *testing.T) {
	transport := watsontest.NewRecordingTransport(
		watsontest.JSONReply(http.StatusCreated, `{"session_id":"s-123"}`),
	)
	a := newTestAssistant(t, transport)

	resp, err := a.CreateSession(context.Background(), &CreateSessionOptions{
		AssistantID: "a1",
		Headers:     map[string]string{"X-Watson-Test": "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "s-123", resp.Result.SessionID)

	req := transport.Last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/assistant/api/v2/assistants/a1/sessions", req.URL.Path)
	assert.Equal(t, testVersion, req.URL.Query().Get("version"))
	assert.Equal(t, "1", req.Header.Get("X-Watson-Test"))
	assert.Equal(t, "service_name=conversation;service_version=v2;operation_id=CreateSession", req.Header.Get("X-IBMCloud-SDK-Analytics"))
	assert.Empty(t, req.Body)
}

func TestMessageBodyOmitsUnsetFields(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	a := newTestAssistant(t, transport)

	_, err := a.Message(context.Background(), &MessageOptions{
		AssistantID: "a1",
		SessionID:   "s1",
		Input: &MessageInput{
			MessageType: core.StringPtr(MessageTypeText),
			Text:        core.StringPtr("Hello"),
			Options: &MessageInputOptions{
				ReturnContext:    core.BoolPtr(true),
				AlternateIntents: core.BoolPtr(false),
			},
		},
	})
	require.NoError(t, err)

	req := transport.Last()
	assert.Equal(t, "/assistant/api/v2/assistants/a1/sessions/s1/message", req.URL.Path)
	assert.JSONEq(t, `{
		"input": {
			"message_type": "text",
			"text": "Hello",
			"options": {"return_context": true, "alternate_intents": false}
		}
	}`, string(req.Body))
}

func TestMessageStatelessSendsContext(t *testing.T) {
	transport := watsontest.NewRecordingTransport(watsontest.JSONReply(http.StatusOK, `{
		"output": {"generic": [{"response_type": "text", "text": "Hi"}]},
		"context": {"global": {"session_id": "g-1", "system": {"turn_count": 2}}}
	}`))
	a := newTestAssistant(t, transport)

	resp, err := a.MessageStateless(context.Background(), &MessageStatelessOptions{
		AssistantID: "a1",
		Context: &MessageContextStateless{
			Global: &MessageContextGlobal{SessionID: core.StringPtr("g-1")},
		},
	})
	require.NoError(t, err)

	body := transport.Last().JSON()
	assert.NotContains(t, body, "input")
	assert.Equal(t, map[string]interface{}{"global": map[string]interface{}{"session_id": "g-1"}}, body["context"])

	require.NotNil(t, resp.Result.Context)
	assert.Equal(t, "g-1", *resp.Result.Context.Global.SessionID)
	assert.Equal(t, int64(2), *resp.Result.Context.Global.System.TurnCount)
	assert.Equal(t, ResponseTypeText, resp.Result.Output.Generic[0].ResponseType)
}

func TestDeleteUnknownSessionIsNotFound(t *testing.T) {
	transport := watsontest.NewRecordingTransport(
		watsontest.JSONReply(http.StatusNotFound, `{"error":"Invalid Session","code":404}`),
	)
	a := newTestAssistant(t, transport)

	_, err := a.DeleteSession(context.Background(), &DeleteSessionOptions{AssistantID: "a1", SessionID: "gone"})
	var nfErr *core.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Invalid Session", nfErr.Message)
	assert.Equal(t, "conversation", nfErr.Service)
}

func TestSessionConversation(t *testing.T) {
	server := watsontest.NewServer()
	defer server.Close()

	a, err := NewAssistantV2(testVersion, core.WithURL(server.URL), core.WithBasicAuth("user", "pass"))
	require.NoError(t, err)
	ctx := context.Background()

	session, err := a.CreateSession(ctx, &CreateSessionOptions{AssistantID: "a1"})
	require.NoError(t, err)
	require.NotEmpty(t, session.Result.SessionID)
	assert.NotEmpty(t, session.TransactionID())
	assert.Equal(t, 1, server.SessionCount())

	msg, err := a.Message(ctx, &MessageOptions{
		AssistantID: "a1",
		SessionID:   session.Result.SessionID,
		Input: &MessageInput{
			MessageType: core.StringPtr(MessageTypeText),
			Text:        core.StringPtr("Hello"),
		},
	})
	require.NoError(t, err)
	require.Len(t, msg.Result.Output.Generic, 1)
	assert.Contains(t, *msg.Result.Output.Generic[0].Text, "Hello")
	assert.Equal(t, "General_Greetings", msg.Result.Output.Intents[0].Intent)

	_, err = a.DeleteSession(ctx, &DeleteSessionOptions{AssistantID: "a1", SessionID: session.Result.SessionID})
	require.NoError(t, err)
	assert.Equal(t, 0, server.SessionCount())

	stateless, err := a.MessageStateless(ctx, &MessageStatelessOptions{
		AssistantID: "a1",
		Input: &MessageInputStateless{
			MessageType: core.StringPtr(MessageTypeText),
			Text:        core.StringPtr("Hello"),
			Options:     &MessageInputOptionsStateless{AlternateIntents: core.BoolPtr(true)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "text", stateless.Result.Output.Generic[0].ResponseType)
	assert.NotNil(t, stateless.Result.Context.Global.SessionID)
}

func TestMessageUnknownSession(t *testing.T) {
	server := watsontest.NewServer()
	defer server.Close()

	a, err := NewAssistantV2(testVersion, core.WithURL(server.URL), core.WithBasicAuth("user", "pass"))
	require.NoError(t, err)
	_, err = a.Message(context.Background(), &MessageOptions{AssistantID: "a1", SessionID: "missing"})
	var nfErr *core.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}
