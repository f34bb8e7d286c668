package core

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/gorilla/schema"
)

var queryEncoder = newQueryEncoder()

// newQueryEncoder encodes `schema`-tagged structs into query values. Watson
// expects list-valued query parameters as one comma-separated value.
func newQueryEncoder() *schema.Encoder {
	enc := schema.NewEncoder()
	enc.RegisterEncoder([]string{}, func(v reflect.Value) string {
		return strings.Join(v.Interface().([]string), ",")
	})
	return enc
}

// FormPart is one part of a multipart/form-data body. Either Reader (a file)
// or Value (a plain field) is set.
type FormPart struct {
	Name        string
	Filename    string
	ContentType string
	Reader      io.Reader
	Value       string
}

// RequestBuilder describes one HTTP call. It is built fresh for every call
// and consumed by Invoke.
type RequestBuilder struct {
	operation string
	method    string
	path      string
	query     url.Values
	header    http.Header
	overrides map[string]string
	body      []byte
	hasBody   bool
}

// NewRequestBuilder starts a request for operation using method.
func NewRequestBuilder(operation, method string) *RequestBuilder {
	b := &RequestBuilder{
		operation: operation,
		method:    method,
		query:     url.Values{},
		header:    http.Header{},
	}
	b.header.Set("Accept", "application/json")
	return b
}

// Operation returns the operation name.
func (b *RequestBuilder) Operation() string { return b.operation }

// ResolvePath substitutes params, in order, for the {placeholders} of
// template. Each value is path-escaped; an empty value is an argument error.
func (b *RequestBuilder) ResolvePath(template string, params ...string) error {
	var sb strings.Builder
	rest := template
	i := 0
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return &SDKError{Message: fmt.Sprintf("unterminated placeholder in path %q", template)}
		}
		name := rest[open+1 : open+end]
		if i >= len(params) {
			return &SDKError{Message: fmt.Sprintf("no value for path parameter %q in %q", name, template)}
		}
		if params[i] == "" {
			return newArgumentError(name, b.operation)
		}
		sb.WriteString(rest[:open])
		sb.WriteString(url.PathEscape(params[i]))
		rest = rest[open+end+1:]
		i++
	}
	if i != len(params) {
		return &SDKError{Message: fmt.Sprintf("%d path parameters given for %q, want %d", len(params), template, i)}
	}
	b.path = sb.String()
	return nil
}

// AddQuery adds a query parameter.
func (b *RequestBuilder) AddQuery(name, value string) *RequestBuilder {
	b.query.Add(name, value)
	return b
}

// SetQuery encodes the `schema`-tagged fields of v as query parameters.
// Fields tagged omitempty are skipped when unset.
func (b *RequestBuilder) SetQuery(v interface{}) error {
	values := map[string][]string{}
	if err := queryEncoder.Encode(v, values); err != nil {
		return &SDKError{Message: "failed to encode query parameters", Cause: err}
	}
	for name, vals := range values {
		for _, val := range vals {
			b.query.Add(name, val)
		}
	}
	return nil
}

// Query returns the query values collected so far.
func (b *RequestBuilder) Query() url.Values { return b.query }

// AddHeader sets a header owned by the operation itself.
func (b *RequestBuilder) AddHeader(name, value string) *RequestBuilder {
	b.header.Set(name, value)
	return b
}

// WithHeaders records caller-supplied header overrides. They are applied
// after the SDK's own headers and win on conflicts.
func (b *RequestBuilder) WithHeaders(headers map[string]string) *RequestBuilder {
	if len(headers) == 0 {
		return b
	}
	if b.overrides == nil {
		b.overrides = make(map[string]string, len(headers))
	}
	for k, v := range headers {
		b.overrides[k] = v
	}
	return b
}

// SetJSONBody serializes v as the JSON request body.
func (b *RequestBuilder) SetJSONBody(v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return &SDKError{Message: "failed to serialize request body", Cause: err}
	}
	b.body = body
	b.hasBody = true
	b.header.Set("Content-Type", "application/json")
	return nil
}

// SetMultipartBody builds a multipart/form-data body from parts.
func (b *RequestBuilder) SetMultipartBody(parts []FormPart) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		if p.Reader == nil {
			if err := w.WriteField(p.Name, p.Value); err != nil {
				return &SDKError{Message: "failed to write form field " + p.Name, Cause: err}
			}
			continue
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, p.Name, p.Filename))
		contentType := p.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)
		pw, err := w.CreatePart(h)
		if err != nil {
			return &SDKError{Message: "failed to create form part " + p.Name, Cause: err}
		}
		if _, err := io.Copy(pw, p.Reader); err != nil {
			return &SDKError{Message: "failed to read form part " + p.Name, Cause: err}
		}
	}
	if err := w.Close(); err != nil {
		return &SDKError{Message: "failed to finish multipart body", Cause: err}
	}
	b.body = buf.Bytes()
	b.hasBody = true
	b.header.Set("Content-Type", w.FormDataContentType())
	return nil
}

// build creates the *http.Request against baseURL. Headers from later merge
// stages are applied by Invoke.
func (b *RequestBuilder) build(ctx context.Context, baseURL string) (*http.Request, error) {
	u := baseURL + b.path
	if len(b.query) > 0 {
		u += "?" + b.query.Encode()
	}
	var body io.Reader
	if b.hasBody {
		body = bytes.NewReader(b.body)
	}
	req, err := http.NewRequestWithContext(ctx, b.method, u, body)
	if err != nil {
		return nil, &SDKError{Message: "failed to create request", Cause: err}
	}
	for k, vs := range b.header {
		req.Header[k] = append([]string(nil), vs...)
	}
	return req, nil
}
