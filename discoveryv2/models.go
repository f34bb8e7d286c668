package discoveryv2

import (
	"time"

	json "github.com/goccy/go-json"
)

// Document statuses returned by AddDocument, UpdateDocument and
// DeleteDocument.
const (
	DocumentStatusProcessing = "processing"
	DocumentStatusPending    = "pending"
	DocumentStatusDeleted    = "deleted"
)

// Notice severities.
const (
	NoticeSeverityWarning = "warning"
	NoticeSeverityError   = "error"
)

// Collection is a collection of a project.
type Collection struct {
	CollectionID *string `json:"collection_id,omitempty"`
	Name         *string `json:"name,omitempty"`
}

// ListCollectionsResponse is the result of ListCollections.
type ListCollectionsResponse struct {
	Collections []Collection `json:"collections,omitempty"`
}

// QueryLargeTableResults configures table retrieval in a query.
type QueryLargeTableResults struct {
	Enabled *bool  `json:"enabled,omitempty"`
	Count   *int64 `json:"count,omitempty"`
}

// QueryLargeSuggestedRefinements configures refinement suggestions.
type QueryLargeSuggestedRefinements struct {
	Enabled *bool  `json:"enabled,omitempty"`
	Count   *int64 `json:"count,omitempty"`
}

// QueryLargePassages configures passage retrieval.
type QueryLargePassages struct {
	Enabled        *bool    `json:"enabled,omitempty"`
	PerDocument    *bool    `json:"per_document,omitempty"`
	MaxPerDocument *int64   `json:"max_per_document,omitempty"`
	Fields         []string `json:"fields,omitempty"`
	Count          *int64   `json:"count,omitempty"`
	Characters     *int64   `json:"characters,omitempty"`
}

// QueryResponse is the result of Query.
type QueryResponse struct {
	MatchingResults      *int64                     `json:"matching_results,omitempty"`
	Results              []QueryResult              `json:"results,omitempty"`
	Aggregations         []map[string]interface{}   `json:"aggregations,omitempty"`
	RetrievalDetails     *RetrievalDetails          `json:"retrieval_details,omitempty"`
	SuggestedQuery       *string                    `json:"suggested_query,omitempty"`
	SuggestedRefinements []QuerySuggestedRefinement `json:"suggested_refinements,omitempty"`
	TableResults         []QueryTableResult         `json:"table_results,omitempty"`
}

// QueryResult is one matching document. Document fields outside the fixed
// schema are kept in AdditionalProperties.
type QueryResult struct {
	DocumentID       string                 `json:"document_id"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	ResultMetadata   *QueryResultMetadata   `json:"result_metadata,omitempty"`
	DocumentPassages []QueryResultPassage   `json:"document_passages,omitempty"`

	AdditionalProperties map[string]interface{} `json:"-"`
}

var queryResultKeys = []string{"document_id", "metadata", "result_metadata", "document_passages"}

// UnmarshalJSON decodes the fixed fields and collects the rest into
// AdditionalProperties.
func (r *QueryResult) UnmarshalJSON(data []byte) error {
	type plain QueryResult
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range queryResultKeys {
		delete(all, k)
	}
	*r = QueryResult(p)
	if len(all) > 0 {
		r.AdditionalProperties = all
	}
	return nil
}

// MarshalJSON writes the fixed fields and AdditionalProperties as one object.
func (r QueryResult) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(r.AdditionalProperties)+4)
	for k, v := range r.AdditionalProperties {
		m[k] = v
	}
	m["document_id"] = r.DocumentID
	if r.Metadata != nil {
		m["metadata"] = r.Metadata
	}
	if r.ResultMetadata != nil {
		m["result_metadata"] = r.ResultMetadata
	}
	if r.DocumentPassages != nil {
		m["document_passages"] = r.DocumentPassages
	}
	return json.Marshal(m)
}

// QueryResultMetadata describes how a result was retrieved.
type QueryResultMetadata struct {
	DocumentRetrievalSource *string  `json:"document_retrieval_source,omitempty"`
	CollectionID            string   `json:"collection_id"`
	Confidence              *float64 `json:"confidence,omitempty"`
}

// QueryResultPassage is a passage of a matching document.
type QueryResultPassage struct {
	PassageText *string `json:"passage_text,omitempty"`
	StartOffset *int64  `json:"start_offset,omitempty"`
	EndOffset   *int64  `json:"end_offset,omitempty"`
	Field       *string `json:"field,omitempty"`
}

// RetrievalDetails names the strategy used to retrieve results.
type RetrievalDetails struct {
	DocumentRetrievalStrategy *string `json:"document_retrieval_strategy,omitempty"`
}

// QuerySuggestedRefinement is a suggested query refinement.
type QuerySuggestedRefinement struct {
	Text *string `json:"text,omitempty"`
}

// QueryTableResult is a table found in a matching document.
type QueryTableResult struct {
	TableID          *string                `json:"table_id,omitempty"`
	SourceDocumentID *string                `json:"source_document_id,omitempty"`
	CollectionID     *string                `json:"collection_id,omitempty"`
	TableHTML        *string                `json:"table_html,omitempty"`
	TableHTMLOffset  *int64                 `json:"table_html_offset,omitempty"`
	Table            map[string]interface{} `json:"table,omitempty"`
}

// Completions is the result of GetAutocompletion.
type Completions struct {
	Completions []string `json:"completions,omitempty"`
}

// Notice is a processing notice.
type Notice struct {
	NoticeID     *string    `json:"notice_id,omitempty"`
	Created      *time.Time `json:"created,omitempty"`
	DocumentID   *string    `json:"document_id,omitempty"`
	CollectionID *string    `json:"collection_id,omitempty"`
	QueryID      *string    `json:"query_id,omitempty"`
	Severity     *string    `json:"severity,omitempty"`
	Step         *string    `json:"step,omitempty"`
	Description  *string    `json:"description,omitempty"`
}

// QueryNoticesResponse is the result of QueryNotices.
type QueryNoticesResponse struct {
	MatchingResults *int64   `json:"matching_results,omitempty"`
	Notices         []Notice `json:"notices,omitempty"`
}

// Field is an indexed field of a collection.
type Field struct {
	Field        *string `json:"field,omitempty"`
	Type         *string `json:"type,omitempty"`
	CollectionID *string `json:"collection_id,omitempty"`
}

// ListFieldsResponse is the result of ListFields.
type ListFieldsResponse struct {
	Fields []Field `json:"fields,omitempty"`
}

// ComponentSettingsFieldsShownBody selects the field shown as result body.
type ComponentSettingsFieldsShownBody struct {
	UsePassage *bool   `json:"use_passage,omitempty"`
	Field      *string `json:"field,omitempty"`
}

// ComponentSettingsFieldsShownTitle selects the field shown as result title.
type ComponentSettingsFieldsShownTitle struct {
	Field *string `json:"field,omitempty"`
}

// ComponentSettingsFieldsShown lists the fields shown for each result.
type ComponentSettingsFieldsShown struct {
	Body  *ComponentSettingsFieldsShownBody  `json:"body,omitempty"`
	Title *ComponentSettingsFieldsShownTitle `json:"title,omitempty"`
}

// ComponentSettingsAggregation is a facet shown in the search UI.
type ComponentSettingsAggregation struct {
	Name                      *string `json:"name,omitempty"`
	Label                     *string `json:"label,omitempty"`
	MultipleSelectionsAllowed *bool   `json:"multiple_selections_allowed,omitempty"`
	VisualizationType         *string `json:"visualization_type,omitempty"`
}

// ComponentSettingsResponse is the result of GetComponentSettings.
type ComponentSettingsResponse struct {
	FieldsShown      *ComponentSettingsFieldsShown  `json:"fields_shown,omitempty"`
	Autocomplete     *bool                          `json:"autocomplete,omitempty"`
	StructuredSearch *bool                          `json:"structured_search,omitempty"`
	ResultsPerPage   *int64                         `json:"results_per_page,omitempty"`
	Aggregations     []ComponentSettingsAggregation `json:"aggregations,omitempty"`
}

// DocumentAccepted is the result of AddDocument and UpdateDocument.
type DocumentAccepted struct {
	DocumentID *string `json:"document_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// DeleteDocumentResponse is the result of DeleteDocument.
type DeleteDocumentResponse struct {
	DocumentID *string `json:"document_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// TrainingExample rates the relevance of one document to a training query.
type TrainingExample struct {
	DocumentID   string     `json:"document_id"`
	CollectionID string     `json:"collection_id"`
	Relevance    int64      `json:"relevance"`
	Created      *time.Time `json:"created,omitempty"`
	Updated      *time.Time `json:"updated,omitempty"`
}

// TrainingQuery is a query used to train relevancy.
type TrainingQuery struct {
	QueryID              *string           `json:"query_id,omitempty"`
	NaturalLanguageQuery string            `json:"natural_language_query"`
	Filter               *string           `json:"filter,omitempty"`
	Created              *time.Time        `json:"created,omitempty"`
	Updated              *time.Time        `json:"updated,omitempty"`
	Examples             []TrainingExample `json:"examples"`
}

// TrainingQuerySet is the result of ListTrainingQueries.
type TrainingQuerySet struct {
	Queries []TrainingQuery `json:"queries,omitempty"`
}
