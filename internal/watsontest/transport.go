// Package watsontest provides test doubles for the Watson service clients: a
// recording Transport and a fake Watson HTTP server.
package watsontest

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"sync"

	json "github.com/goccy/go-json"
)

// RecordedRequest is a request captured by RecordingTransport.
type RecordedRequest struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// JSON decodes the recorded body into a generic map. It returns nil when the
// body is empty or not a JSON object.
func (r RecordedRequest) JSON() map[string]interface{} {
	var m map[string]interface{}
	if err := json.Unmarshal(r.Body, &m); err != nil {
		return nil
	}
	return m
}

// Reply is a canned response returned by RecordingTransport.
type Reply struct {
	StatusCode int
	Header     http.Header
	Body       string
}

// JSONReply builds a Reply with a JSON content type.
func JSONReply(status int, body string) Reply {
	return Reply{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       body,
	}
}

// RecordingTransport records every request it receives and answers with the
// queued replies in order, then with 200 "{}". Setting Err makes every call
// fail with that error instead.
type RecordingTransport struct {
	Err error

	mu       sync.Mutex
	requests []RecordedRequest
	replies  []Reply
}

// NewRecordingTransport creates a transport that will answer with replies.
func NewRecordingTransport(replies ...Reply) *RecordingTransport {
	return &RecordingTransport{replies: replies}
}

// Do records req and returns the next queued reply.
func (t *RecordingTransport) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		body = b
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests = append(t.requests, RecordedRequest{
		Method: req.Method,
		URL:    req.URL,
		Header: req.Header.Clone(),
		Body:   body,
	})
	if t.Err != nil {
		return nil, t.Err
	}

	reply := JSONReply(http.StatusOK, "{}")
	if len(t.replies) > 0 {
		reply = t.replies[0]
		t.replies = t.replies[1:]
	}
	header := reply.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode:    reply.StatusCode,
		Status:        http.StatusText(reply.StatusCode),
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader([]byte(reply.Body))),
		ContentLength: int64(len(reply.Body)),
		Request:       req,
	}, nil
}

// Requests returns a copy of the recorded requests.
func (t *RecordingTransport) Requests() []RecordedRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]RecordedRequest(nil), t.requests...)
}

// Len returns the number of recorded requests.
func (t *RecordingTransport) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}

// Last returns the most recent request. It panics when nothing was recorded.
func (t *RecordingTransport) Last() RecordedRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.requests[len(t.requests)-1]
}
