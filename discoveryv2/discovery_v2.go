// Package discoveryv2 is the client for the Watson Discovery v2 API. It
// covers project collections, search, document ingestion and relevancy
// training queries.
package discoveryv2

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/RoeZX/watson-go-sdk/core"
)

// DefaultServiceURL is the endpoint used when none is configured.
const DefaultServiceURL = "https://api.us-south.discovery.watson.cloud.ibm.com"

var serviceInfo = core.ServiceInfo{
	Name:        "discovery",
	HeaderName:  "discovery",
	APIVersion:  "v2",
	DefaultURL:  DefaultServiceURL,
	Versioned:   true,
	Constructor: "NewDiscoveryV2",
}

// DiscoveryV2 is a Watson Discovery v2 client. It is safe for concurrent use.
type DiscoveryV2 struct {
	Service *core.BaseService
}

// NewDiscoveryV2 creates a client for API version date version
// (e.g. "2019-11-22").
func NewDiscoveryV2(version string, opts ...core.ServiceOption) (*DiscoveryV2, error) {
	s, err := core.NewBaseService(serviceInfo, version, opts...)
	if err != nil {
		return nil, err
	}
	return &DiscoveryV2{Service: s}, nil
}

// ListCollectionsOptions are the parameters of ListCollections.
type ListCollectionsOptions struct {
	ProjectID string `validate:"required"`

	Headers map[string]string
}

// ListCollections lists the collections of a project.
func (d *DiscoveryV2) ListCollections(ctx context.Context, opts *ListCollectionsOptions) (*core.DetailedResponse[ListCollectionsResponse], error) {
	const op = "ListCollections"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodGet)
	if err := b.ResolvePath("/v2/projects/{project_id}/collections", opts.ProjectID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	return core.Invoke[ListCollectionsResponse](ctx, d.Service, b)
}

// QueryOptions are the parameters of Query.
type QueryOptions struct {
	ProjectID            string `validate:"required"`
	CollectionIds        []string
	Filter               *string
	Query                *string
	NaturalLanguageQuery *string
	Aggregation          *string
	Count                *int64
	Return               []string
	Offset               *int64
	Sort                 *string
	Highlight            *bool
	SpellingSuggestions  *bool
	TableResults         *QueryLargeTableResults
	SuggestedRefinements *QueryLargeSuggestedRefinements
	Passages             *QueryLargePassages

	Headers map[string]string
}

// Query searches the collections of a project.
func (d *DiscoveryV2) Query(ctx context.Context, opts *QueryOptions) (*core.DetailedResponse[QueryResponse], error) {
	const op = "Query"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodPost)
	if err := b.ResolvePath("/v2/projects/{project_id}/query", opts.ProjectID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)

	body := core.Body{}.
		SetOptional("collection_ids", opts.CollectionIds).
		SetOptional("filter", opts.Filter).
		SetOptional("query", opts.Query).
		SetOptional("natural_language_query", opts.NaturalLanguageQuery).
		SetOptional("aggregation", opts.Aggregation).
		SetOptional("count", opts.Count).
		SetOptional("return", opts.Return).
		SetOptional("offset", opts.Offset).
		SetOptional("sort", opts.Sort).
		SetOptional("highlight", opts.Highlight).
		SetOptional("spelling_suggestions", opts.SpellingSuggestions).
		SetOptional("table_results", opts.TableResults).
		SetOptional("suggested_refinements", opts.SuggestedRefinements).
		SetOptional("passages", opts.Passages)
	if err := b.SetJSONBody(body); err != nil {
		return nil, err
	}

	return core.Invoke[QueryResponse](ctx, d.Service, b)
}

// GetAutocompletionOptions are the parameters of GetAutocompletion.
type GetAutocompletionOptions struct {
	ProjectID     string `validate:"required"`
	Prefix        string `validate:"required"`
	CollectionIds []string
	Field         *string
	Count         *int64

	Headers map[string]string
}

type autocompletionQuery struct {
	Prefix        string   `schema:"prefix"`
	CollectionIds []string `schema:"collection_ids,omitempty"`
	Field         *string  `schema:"field,omitempty"`
	Count         *int64   `schema:"count,omitempty"`
}

// GetAutocompletion returns completion suggestions for a query prefix.
func (d *DiscoveryV2) GetAutocompletion(ctx context.Context, opts *GetAutocompletionOptions) (*core.DetailedResponse[Completions], error) {
	const op = "GetAutocompletion"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodGet)
	if err := b.ResolvePath("/v2/projects/{project_id}/autocompletion", opts.ProjectID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	if err := b.SetQuery(&autocompletionQuery{
		Prefix:        opts.Prefix,
		CollectionIds: opts.CollectionIds,
		Field:         opts.Field,
		Count:         opts.Count,
	}); err != nil {
		return nil, err
	}
	return core.Invoke[Completions](ctx, d.Service, b)
}

// QueryNoticesOptions are the parameters of QueryNotices.
type QueryNoticesOptions struct {
	ProjectID            string `validate:"required"`
	Filter               *string
	Query                *string
	NaturalLanguageQuery *string
	Count                *int64
	Offset               *int64

	Headers map[string]string
}

type noticesQuery struct {
	Filter               *string `schema:"filter,omitempty"`
	Query                *string `schema:"query,omitempty"`
	NaturalLanguageQuery *string `schema:"natural_language_query,omitempty"`
	Count                *int64  `schema:"count,omitempty"`
	Offset               *int64  `schema:"offset,omitempty"`
}

// QueryNotices finds the ingestion and processing notices of a project.
func (d *DiscoveryV2) QueryNotices(ctx context.Context, opts *QueryNoticesOptions) (*core.DetailedResponse[QueryNoticesResponse], error) {
	const op = "QueryNotices"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodGet)
	if err := b.ResolvePath("/v2/projects/{project_id}/notices", opts.ProjectID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	if err := b.SetQuery(&noticesQuery{
		Filter:               opts.Filter,
		Query:                opts.Query,
		NaturalLanguageQuery: opts.NaturalLanguageQuery,
		Count:                opts.Count,
		Offset:               opts.Offset,
	}); err != nil {
		return nil, err
	}
	return core.Invoke[QueryNoticesResponse](ctx, d.Service, b)
}

// ListFieldsOptions are the parameters of ListFields.
type ListFieldsOptions struct {
	ProjectID     string `validate:"required"`
	CollectionIds []string

	Headers map[string]string
}

type fieldsQuery struct {
	CollectionIds []string `schema:"collection_ids,omitempty"`
}

// ListFields lists the fields of the collections of a project.
func (d *DiscoveryV2) ListFields(ctx context.Context, opts *ListFieldsOptions) (*core.DetailedResponse[ListFieldsResponse], error) {
	const op = "ListFields"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodGet)
	if err := b.ResolvePath("/v2/projects/{project_id}/fields", opts.ProjectID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	if err := b.SetQuery(&fieldsQuery{CollectionIds: opts.CollectionIds}); err != nil {
		return nil, err
	}
	return core.Invoke[ListFieldsResponse](ctx, d.Service, b)
}

// GetComponentSettingsOptions are the parameters of GetComponentSettings.
type GetComponentSettingsOptions struct {
	ProjectID string `validate:"required"`

	Headers map[string]string
}

// GetComponentSettings returns the default search UI settings of a project.
func (d *DiscoveryV2) GetComponentSettings(ctx context.Context, opts *GetComponentSettingsOptions) (*core.DetailedResponse[ComponentSettingsResponse], error) {
	const op = "GetComponentSettings"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodGet)
	if err := b.ResolvePath("/v2/projects/{project_id}/component_settings", opts.ProjectID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	return core.Invoke[ComponentSettingsResponse](ctx, d.Service, b)
}

// AddDocumentOptions are the parameters of AddDocument.
type AddDocumentOptions struct {
	ProjectID    string `validate:"required"`
	CollectionID string `validate:"required"`
	// File is the document content. Filename is required with it.
	File            io.Reader `validate:"-"`
	Filename        string
	FileContentType string
	// Metadata is a JSON object string stored with the document.
	Metadata              *string
	XWatsonDiscoveryForce *bool

	Headers map[string]string
}

// AddDocument ingests a document into a collection. Processing is
// asynchronous; the returned status is "processing" or "pending".
func (d *DiscoveryV2) AddDocument(ctx context.Context, opts *AddDocumentOptions) (*core.DetailedResponse[DocumentAccepted], error) {
	const op = "AddDocument"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodPost)
	if err := b.ResolvePath("/v2/projects/{project_id}/collections/{collection_id}/documents", opts.ProjectID, opts.CollectionID); err != nil {
		return nil, err
	}
	if err := setDocumentUpload(b, upload{opts.File, opts.Filename, opts.FileContentType, opts.Metadata, opts.XWatsonDiscoveryForce}); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	return core.Invoke[DocumentAccepted](ctx, d.Service, b)
}

// UpdateDocumentOptions are the parameters of UpdateDocument.
type UpdateDocumentOptions struct {
	ProjectID             string `validate:"required"`
	CollectionID          string `validate:"required"`
	DocumentID            string `validate:"required"`
	File                  io.Reader `validate:"-"`
	Filename              string
	FileContentType       string
	Metadata              *string
	XWatsonDiscoveryForce *bool

	Headers map[string]string
}

// UpdateDocument replaces an existing document, or creates it under the
// given id.
func (d *DiscoveryV2) UpdateDocument(ctx context.Context, opts *UpdateDocumentOptions) (*core.DetailedResponse[DocumentAccepted], error) {
	const op = "UpdateDocument"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodPost)
	if err := b.ResolvePath("/v2/projects/{project_id}/collections/{collection_id}/documents/{document_id}",
		opts.ProjectID, opts.CollectionID, opts.DocumentID); err != nil {
		return nil, err
	}
	if err := setDocumentUpload(b, upload{opts.File, opts.Filename, opts.FileContentType, opts.Metadata, opts.XWatsonDiscoveryForce}); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	return core.Invoke[DocumentAccepted](ctx, d.Service, b)
}

type upload struct {
	file        io.Reader
	filename    string
	contentType string
	metadata    *string
	force       *bool
}

func setDocumentUpload(b *core.RequestBuilder, u upload) error {
	op := b.Operation()
	if err := core.RequireOneOf(op, "file or metadata", u.file != nil, u.metadata != nil); err != nil {
		return err
	}
	if u.file != nil {
		if err := core.RequireOneOf(op, "Filename", u.filename != ""); err != nil {
			return err
		}
	}
	if u.force != nil {
		b.AddHeader("X-Watson-Discovery-Force", strconv.FormatBool(*u.force))
	}

	var parts []core.FormPart
	if u.file != nil {
		parts = append(parts, core.FormPart{
			Name:        "file",
			Filename:    u.filename,
			ContentType: u.contentType,
			Reader:      u.file,
		})
	}
	if u.metadata != nil {
		parts = append(parts, core.FormPart{Name: "metadata", Value: *u.metadata})
	}
	return b.SetMultipartBody(parts)
}

// DeleteDocumentOptions are the parameters of DeleteDocument.
type DeleteDocumentOptions struct {
	ProjectID             string `validate:"required"`
	CollectionID          string `validate:"required"`
	DocumentID            string `validate:"required"`
	XWatsonDiscoveryForce *bool

	Headers map[string]string
}

// DeleteDocument removes a document from a collection.
func (d *DiscoveryV2) DeleteDocument(ctx context.Context, opts *DeleteDocumentOptions) (*core.DetailedResponse[DeleteDocumentResponse], error) {
	const op = "DeleteDocument"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodDelete)
	if err := b.ResolvePath("/v2/projects/{project_id}/collections/{collection_id}/documents/{document_id}",
		opts.ProjectID, opts.CollectionID, opts.DocumentID); err != nil {
		return nil, err
	}
	if opts.XWatsonDiscoveryForce != nil {
		b.AddHeader("X-Watson-Discovery-Force", strconv.FormatBool(*opts.XWatsonDiscoveryForce))
	}
	b.WithHeaders(opts.Headers)
	return core.Invoke[DeleteDocumentResponse](ctx, d.Service, b)
}

// ListTrainingQueriesOptions are the parameters of ListTrainingQueries.
type ListTrainingQueriesOptions struct {
	ProjectID string `validate:"required"`

	Headers map[string]string
}

// ListTrainingQueries lists the training queries of a project.
func (d *DiscoveryV2) ListTrainingQueries(ctx context.Context, opts *ListTrainingQueriesOptions) (*core.DetailedResponse[TrainingQuerySet], error) {
	const op = "ListTrainingQueries"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodGet)
	if err := b.ResolvePath("/v2/projects/{project_id}/training_data/queries", opts.ProjectID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	return core.Invoke[TrainingQuerySet](ctx, d.Service, b)
}

// DeleteTrainingQueriesOptions are the parameters of DeleteTrainingQueries.
type DeleteTrainingQueriesOptions struct {
	ProjectID string `validate:"required"`

	Headers map[string]string
}

// DeleteTrainingQueries removes all training queries of a project.
func (d *DiscoveryV2) DeleteTrainingQueries(ctx context.Context, opts *DeleteTrainingQueriesOptions) (*core.DetailedResponse[map[string]interface{}], error) {
	const op = "DeleteTrainingQueries"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodDelete)
	if err := b.ResolvePath("/v2/projects/{project_id}/training_data/queries", opts.ProjectID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	return core.Invoke[map[string]interface{}](ctx, d.Service, b)
}

// CreateTrainingQueryOptions are the parameters of CreateTrainingQuery.
type CreateTrainingQueryOptions struct {
	ProjectID            string            `validate:"required"`
	NaturalLanguageQuery string            `validate:"required"`
	Examples             []TrainingExample `validate:"required,min=1"`
	Filter               *string

	Headers map[string]string
}

// CreateTrainingQuery adds a query with relevance-rated example documents.
func (d *DiscoveryV2) CreateTrainingQuery(ctx context.Context, opts *CreateTrainingQueryOptions) (*core.DetailedResponse[TrainingQuery], error) {
	const op = "CreateTrainingQuery"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodPost)
	if err := b.ResolvePath("/v2/projects/{project_id}/training_data/queries", opts.ProjectID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	if err := b.SetJSONBody(trainingQueryBody(opts.NaturalLanguageQuery, opts.Examples, opts.Filter)); err != nil {
		return nil, err
	}
	return core.Invoke[TrainingQuery](ctx, d.Service, b)
}

// GetTrainingQueryOptions are the parameters of GetTrainingQuery.
type GetTrainingQueryOptions struct {
	ProjectID string `validate:"required"`
	QueryID   string `validate:"required"`

	Headers map[string]string
}

// GetTrainingQuery returns one training query.
func (d *DiscoveryV2) GetTrainingQuery(ctx context.Context, opts *GetTrainingQueryOptions) (*core.DetailedResponse[TrainingQuery], error) {
	const op = "GetTrainingQuery"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodGet)
	if err := b.ResolvePath("/v2/projects/{project_id}/training_data/queries/{query_id}", opts.ProjectID, opts.QueryID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	return core.Invoke[TrainingQuery](ctx, d.Service, b)
}

// UpdateTrainingQueryOptions are the parameters of UpdateTrainingQuery.
type UpdateTrainingQueryOptions struct {
	ProjectID            string            `validate:"required"`
	QueryID              string            `validate:"required"`
	NaturalLanguageQuery string            `validate:"required"`
	Examples             []TrainingExample `validate:"required,min=1"`
	Filter               *string

	Headers map[string]string
}

// UpdateTrainingQuery replaces a training query.
func (d *DiscoveryV2) UpdateTrainingQuery(ctx context.Context, opts *UpdateTrainingQueryOptions) (*core.DetailedResponse[TrainingQuery], error) {
	const op = "UpdateTrainingQuery"
	if err := core.ValidateOptions(op, opts); err != nil {
		return nil, err
	}
	b := core.NewRequestBuilder(op, http.MethodPost)
	if err := b.ResolvePath("/v2/projects/{project_id}/training_data/queries/{query_id}", opts.ProjectID, opts.QueryID); err != nil {
		return nil, err
	}
	b.WithHeaders(opts.Headers)
	if err := b.SetJSONBody(trainingQueryBody(opts.NaturalLanguageQuery, opts.Examples, opts.Filter)); err != nil {
		return nil, err
	}
	return core.Invoke[TrainingQuery](ctx, d.Service, b)
}

func trainingQueryBody(nlq string, examples []TrainingExample, filter *string) core.Body {
	return core.Body{}.
		Set("natural_language_query", nlq).
		Set("examples", examples).
		SetOptional("filter", filter)
}
