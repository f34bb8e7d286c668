// Package comparecomplyv1 is the client for the Watson Compare and Comply v1
// API, which converts, classifies and compares contract documents.
package comparecomplyv1

import (
	"context"
	"io"
	"net/http"

	"github.com/RoeZX/watson-go-sdk/core"
)

// DefaultServiceURL is the endpoint used when none is configured.
const DefaultServiceURL = "https://gateway.watsonplatform.net/compare-comply/api"

// Analysis models accepted by the Model option.
const (
	ModelContracts = "contracts"
	ModelTables    = "tables"
)

var serviceInfo = core.ServiceInfo{
	Name:        "compare_comply",
	HeaderName:  "compare-comply",
	APIVersion:  "v1",
	DefaultURL:  DefaultServiceURL,
	Versioned:   true,
	Constructor: "NewCompareComplyV1",
}

// CompareComplyV1 is a Compare and Comply client. It is safe for concurrent use.
type CompareComplyV1 struct {
	Service *core.BaseService
}

// NewCompareComplyV1 creates a client for API version date version
// (e.g. "2018-10-15").
func NewCompareComplyV1(version string, opts ...core.ServiceOption) (*CompareComplyV1, error) {
	s, err := core.NewBaseService(serviceInfo, version, opts...)
	if err != nil {
		return nil, err
	}
	return &CompareComplyV1{Service: s}, nil
}

type modelQuery struct {
	Model *string `schema:"model,omitempty"`
}

// DocumentOptions are the parameters shared by the single-document
// operations: ConvertToHTML, ClassifyElements and ExtractTables.
type DocumentOptions struct {
	File            io.Reader `validate:"-"`
	Filename        string
	FileContentType string
	Model           *string

	Headers map[string]string
}

// ConvertToHTML converts a PDF, Word or image document to HTML.
func (c *CompareComplyV1) ConvertToHTML(ctx context.Context, opts *DocumentOptions) (*core.DetailedResponse[HTMLReturn], error) {
	b, err := c.documentRequest("ConvertToHTML", "/v1/html_conversion", opts)
	if err != nil {
		return nil, err
	}
	return core.Invoke[HTMLReturn](ctx, c.Service, b)
}

// ClassifyElements analyzes the structural and semantic elements of a
// document: parties, dates, amounts, types and tables.
func (c *CompareComplyV1) ClassifyElements(ctx context.Context, opts *DocumentOptions) (*core.DetailedResponse[ClassifyReturn], error) {
	b, err := c.documentRequest("ClassifyElements", "/v1/element_classification", opts)
	if err != nil {
		return nil, err
	}
	return core.Invoke[ClassifyReturn](ctx, c.Service, b)
}

// ExtractTables extracts the tables of a document.
func (c *CompareComplyV1) ExtractTables(ctx context.Context, opts *DocumentOptions) (*core.DetailedResponse[TableReturn], error) {
	b, err := c.documentRequest("ExtractTables", "/v1/tables", opts)
	if err != nil {
		return nil, err
	}
	return core.Invoke[TableReturn](ctx, c.Service, b)
}

func (c *CompareComplyV1) documentRequest(op, path string, opts *DocumentOptions) (*core.RequestBuilder, error) {
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	if err := core.RequireOneOf(op, "File", opts.File != nil); err != nil {
		return nil, err
	}

	b := core.NewRequestBuilder(op, http.MethodPost)
	if err := b.ResolvePath(path); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	if err := b.SetQuery(&modelQuery{Model: opts.Model}); err != nil {
		return nil, err
	}
	err := b.SetMultipartBody([]core.FormPart{
		filePart("file", opts.Filename, opts.FileContentType, opts.File),
	})
	return b, err
}

// CompareDocumentsOptions are the parameters of CompareDocuments.
type CompareDocumentsOptions struct {
	File1            io.Reader `validate:"-"`
	File1Filename    string
	File1ContentType string
	File2            io.Reader `validate:"-"`
	File2Filename    string
	File2ContentType string
	// File1Label and File2Label name the documents in the result; the
	// service defaults them to "file_1" and "file_2".
	File1Label *string
	File2Label *string
	Model      *string

	Headers map[string]string
}

type compareQuery struct {
	File1Label *string `schema:"file_1_label,omitempty"`
	File2Label *string `schema:"file_2_label,omitempty"`
	Model      *string `schema:"model,omitempty"`
}

// CompareDocuments compares two documents and aligns their elements.
func (c *CompareComplyV1) CompareDocuments(ctx context.Context, opts *CompareDocumentsOptions) (*core.DetailedResponse[CompareReturn], error) {
	const op = "CompareDocuments"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	if err := core.RequireOneOf(op, "File1", opts.File1 != nil); err != nil {
		return nil, err
	}
	if err := core.RequireOneOf(op, "File2", opts.File2 != nil); err != nil {
		return nil, err
	}

	b := core.NewRequestBuilder(op, http.MethodPost)
	if err := b.ResolvePath("/v1/comparison"); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	if err := b.SetQuery(&compareQuery{
		File1Label: opts.File1Label,
		File2Label: opts.File2Label,
		Model:      opts.Model,
	}); err != nil {
		return nil, err
	}
	if err := b.SetMultipartBody([]core.FormPart{
		filePart("file_1", opts.File1Filename, opts.File1ContentType, opts.File1),
		filePart("file_2", opts.File2Filename, opts.File2ContentType, opts.File2),
	}); err != nil {
		return nil, err
	}

	return core.Invoke[CompareReturn](ctx, c.Service, b)
}

func filePart(name, filename, contentType string, r io.Reader) core.FormPart {
	if filename == "" {
		filename = name
	}
	return core.FormPart{Name: name, Filename: filename, ContentType: contentType, Reader: r}
}
