// Package naturallanguageunderstandingv1 is the client for the Watson
// Natural Language Understanding v1 API. Analyze extracts features such as
// keywords, entities, sentiment and categories from text, HTML or a public
// URL; the model operations manage custom models.
package naturallanguageunderstandingv1

import (
	"context"
	"net/http"

	"github.com/RoeZX/watson-go-sdk/core"
)

// DefaultServiceURL is the endpoint used when none is configured.
const DefaultServiceURL = "https://gateway.watsonplatform.net/natural-language-understanding/api"

var serviceInfo = core.ServiceInfo{
	Name:        "natural_language_understanding",
	HeaderName:  "natural-language-understanding",
	APIVersion:  "v1",
	DefaultURL:  DefaultServiceURL,
	Versioned:   true,
	Constructor: "NewNaturalLanguageUnderstandingV1",
}

// NaturalLanguageUnderstandingV1 is an NLU client. It is safe for concurrent use.
type NaturalLanguageUnderstandingV1 struct {
	Service *core.BaseService
}

// NewNaturalLanguageUnderstandingV1 creates a client for API version date
// version (e.g. "2019-07-12").
func NewNaturalLanguageUnderstandingV1(version string, opts ...core.ServiceOption) (*NaturalLanguageUnderstandingV1, error) {
	s, err := core.NewBaseService(serviceInfo, version, opts...)
	if err != nil {
		return nil, err
	}
	return &NaturalLanguageUnderstandingV1{Service: s}, nil
}

// AnalyzeOptions are the parameters of Analyze. Exactly one of Text, HTML
// or URL is normally given.
type AnalyzeOptions struct {
	Features            *Features `validate:"required"`
	Text                *string
	HTML                *string
	URL                 *string
	Clean               *bool
	Xpath               *string
	FallbackToRaw       *bool
	ReturnAnalyzedText  *bool
	Language            *string
	LimitTextCharacters *int64

	Headers map[string]string
}

// Analyze analyzes content for the requested features.
func (n *NaturalLanguageUnderstandingV1) Analyze(ctx context.Context, opts *AnalyzeOptions) (*core.DetailedResponse[AnalysisResults], error) {
	const op = "Analyze"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}

	b := core.NewRequestBuilder(op, http.MethodPost)
	if err := b.ResolvePath("/v1/analyze"); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)

	body := core.Body{}.
		Set("features", opts.Features).
		SetOptional("text", opts.Text).
		SetOptional("html", opts.HTML).
		SetOptional("url", opts.URL).
		SetOptional("clean", opts.Clean).
		SetOptional("xpath", opts.Xpath).
		SetOptional("fallback_to_raw", opts.FallbackToRaw).
		SetOptional("return_analyzed_text", opts.ReturnAnalyzedText).
		SetOptional("language", opts.Language).
		SetOptional("limit_text_characters", opts.LimitTextCharacters)
	if err := b.SetJSONBody(body); err != nil {
		return nil, err
	}

	return core.Invoke[AnalysisResults](ctx, n.Service, b)
}

// DeleteModelOptions are the parameters of DeleteModel.
type DeleteModelOptions struct {
	ModelID string `validate:"required"`

	Headers map[string]string
}

// DeleteModel deletes a custom model.
func (n *NaturalLanguageUnderstandingV1) DeleteModel(ctx context.Context, opts *DeleteModelOptions) (*core.DetailedResponse[DeleteModelResults], error) {
	const op = "DeleteModel"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}

	b := core.NewRequestBuilder(op, http.MethodDelete)
	if err := b.ResolvePath("/v1/models/{model_id}", opts.ModelID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)

	return core.Invoke[DeleteModelResults](ctx, n.Service, b)
}

// ListModelsOptions are the parameters of ListModels.
type ListModelsOptions struct {
	Headers map[string]string
}

// ListModels lists the custom models deployed to the instance. opts may be
// nil.
func (n *NaturalLanguageUnderstandingV1) ListModels(ctx context.Context, opts *ListModelsOptions) (*core.DetailedResponse[ListModelsResults], error) {
	const op = "ListModels"
	b := core.NewRequestBuilder(op, http.MethodGet)
	if err := b.ResolvePath("/v1/models"); err != nil {
		return nil, err
	}
	if opts != nil {
		b.WithHeaders(opts.Headers)
	}

	return core.Invoke[ListModelsResults](ctx, n.Service, b)
}
