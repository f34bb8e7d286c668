package core

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
)

// FastHTTPTransport is a Transport backed by a fasthttp client. It buffers
// request and response bodies, which suits the JSON and document-upload
// payloads the Watson services exchange.
type FastHTTPTransport struct {
	client  *fasthttp.Client
	timeout time.Duration
}

// NewFastHTTPTransport creates a fasthttp based Transport with default timeouts.
func NewFastHTTPTransport() *FastHTTPTransport {
	return &FastHTTPTransport{
		client: &fasthttp.Client{
			ReadTimeout:              120 * time.Second,
			WriteTimeout:             120 * time.Second,
			MaxIdleConnDuration:      90 * time.Second,
			MaxConnsPerHost:          100,
			NoDefaultUserAgentHeader: true,
		},
		timeout: 120 * time.Second,
	}
}

// Do converts req to a fasthttp request, sends it and converts the reply back.
func (t *FastHTTPTransport) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	freq := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(freq)
	fresp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(fresp)

	freq.SetRequestURI(req.URL.String())
	freq.Header.SetMethod(req.Method)
	for key, values := range req.Header {
		for _, v := range values {
			freq.Header.Add(key, v)
		}
	}
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		freq.SetBody(body)
	}

	deadline := time.Now().Add(t.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := t.client.DoDeadline(freq, fresp, deadline); err != nil {
		return nil, err
	}

	body := append([]byte(nil), fresp.Body()...)
	code := fresp.StatusCode()
	resp := &http.Response{
		Status:        fmt.Sprintf("%d %s", code, http.StatusText(code)),
		StatusCode:    code,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        make(http.Header),
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
	fresp.Header.VisitAll(func(key, value []byte) {
		resp.Header.Add(string(key), string(value))
	})
	return resp, nil
}
