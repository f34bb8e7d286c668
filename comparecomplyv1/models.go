package comparecomplyv1

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// ConfidenceLevel rates how certain the service is about an identified
// element. Decoding keeps levels this package does not know; use Valid or
// ParseConfidenceLevel to check for one of the constants.
type ConfidenceLevel string

const (
	ConfidenceLevelHigh   ConfidenceLevel = "High"
	ConfidenceLevelMedium ConfidenceLevel = "Medium"
	ConfidenceLevelLow    ConfidenceLevel = "Low"
)

// ParseConfidenceLevel returns the level named s. Any other value is an error.
func ParseConfidenceLevel(s string) (ConfidenceLevel, error) {
	if l := ConfidenceLevel(s); l.Valid() {
		return l, nil
	}
	return "", fmt.Errorf("invalid confidence level %q", s)
}

// Valid reports whether l is one of the known levels.
func (l ConfidenceLevel) Valid() bool {
	switch l {
	case ConfidenceLevelHigh, ConfidenceLevelMedium, ConfidenceLevelLow:
		return true
	}
	return false
}

// Location is a character span in the input document.
type Location struct {
	Begin int64 `json:"begin"`
	End   int64 `json:"end"`
}

// EffectiveDates is an effective date found in a contract.
type EffectiveDates struct {
	ConfidenceLevel ConfidenceLevel `json:"confidence_level,omitempty"`
	Text            *string         `json:"text,omitempty"`
	TextNormalized  *string         `json:"text_normalized,omitempty"`
	Location        *Location       `json:"location,omitempty"`
}

// ColumnHeaderIds references a column header of a table. The service sends
// it either as {"id": "..."} or as the bare id string.
type ColumnHeaderIds struct {
	ID string `json:"id"`
}

func (c *ColumnHeaderIds) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.ID)
	}
	type plain ColumnHeaderIds
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = ColumnHeaderIds(p)
	return nil
}

// Parties is a party to a contract.
type Parties struct {
	Party      *string   `json:"party,omitempty"`
	Role       *string   `json:"role,omitempty"`
	Importance *string   `json:"importance,omitempty"`
	Addresses  []Address `json:"addresses,omitempty"`
	Contacts   []Contact `json:"contacts,omitempty"`
	Mentions   []Mention `json:"mentions,omitempty"`
}

type Address struct {
	Text     *string   `json:"text,omitempty"`
	Location *Location `json:"location,omitempty"`
}

type Contact struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty"`
}

type Mention struct {
	Text     *string   `json:"text,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// ContractAmts is a monetary amount found in a contract.
type ContractAmts struct {
	ConfidenceLevel ConfidenceLevel `json:"confidence_level,omitempty"`
	Text            *string         `json:"text,omitempty"`
	TextNormalized  *string         `json:"text_normalized,omitempty"`
	Interpretation  *Interpretation `json:"interpretation,omitempty"`
	Location        *Location       `json:"location,omitempty"`
}

// Interpretation is the normalized value of an amount.
type Interpretation struct {
	Value        *string  `json:"value,omitempty"`
	NumericValue *float64 `json:"numeric_value,omitempty"`
	Unit         *string  `json:"unit,omitempty"`
}

// TerminationDates is a termination date found in a contract.
type TerminationDates struct {
	ConfidenceLevel ConfidenceLevel `json:"confidence_level,omitempty"`
	Text            *string         `json:"text,omitempty"`
	TextNormalized  *string         `json:"text_normalized,omitempty"`
	Location        *Location       `json:"location,omitempty"`
}

// ContractTypes is the contract type found in a document.
type ContractTypes struct {
	ConfidenceLevel ConfidenceLevel `json:"confidence_level,omitempty"`
	Text            *string         `json:"text,omitempty"`
	Location        *Location       `json:"location,omitempty"`
}

// Element is a classified sentence or clause.
type Element struct {
	Location   *Location   `json:"location,omitempty"`
	Text       *string     `json:"text,omitempty"`
	Types      []TypeLabel `json:"types,omitempty"`
	Categories []Category  `json:"categories,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

type TypeLabel struct {
	Label         *Label   `json:"label,omitempty"`
	ProvenanceIds []string `json:"provenance_ids,omitempty"`
}

// Label pairs the nature of an element ("Obligation", "Right", ...) with
// the party it applies to.
type Label struct {
	Nature string `json:"nature"`
	Party  string `json:"party"`
}

type Category struct {
	Label         *string  `json:"label,omitempty"`
	ProvenanceIds []string `json:"provenance_ids,omitempty"`
}

type Attribute struct {
	Type     *string   `json:"type,omitempty"`
	Text     *string   `json:"text,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// Document describes an input document.
type Document struct {
	Title *string `json:"title,omitempty"`
	HTML  *string `json:"html,omitempty"`
	Hash  *string `json:"hash,omitempty"`
	Label *string `json:"label,omitempty"`
}

// HTMLReturn is the result of ConvertToHTML.
type HTMLReturn struct {
	NumPages        *string `json:"num_pages,omitempty"`
	Author          *string `json:"author,omitempty"`
	PublicationDate *string `json:"publication_date,omitempty"`
	Title           *string `json:"title,omitempty"`
	HTML            *string `json:"html,omitempty"`
}

// ClassifyReturn is the result of ClassifyElements.
type ClassifyReturn struct {
	Document         *Document          `json:"document,omitempty"`
	ModelID          *string            `json:"model_id,omitempty"`
	ModelVersion     *string            `json:"model_version,omitempty"`
	Elements         []Element          `json:"elements,omitempty"`
	EffectiveDates   []EffectiveDates   `json:"effective_dates,omitempty"`
	ContractAmounts  []ContractAmts     `json:"contract_amounts,omitempty"`
	TerminationDates []TerminationDates `json:"termination_dates,omitempty"`
	ContractTypes    []ContractTypes    `json:"contract_types,omitempty"`
	Tables           []Tables           `json:"tables,omitempty"`
	Parties          []Parties          `json:"parties,omitempty"`
}

// TableReturn is the result of ExtractTables.
type TableReturn struct {
	Document     *Document `json:"document,omitempty"`
	ModelID      *string   `json:"model_id,omitempty"`
	ModelVersion *string   `json:"model_version,omitempty"`
	Tables       []Tables  `json:"tables,omitempty"`
}

// Tables is one table of a document.
type Tables struct {
	Location      *Location       `json:"location,omitempty"`
	Text          *string         `json:"text,omitempty"`
	SectionTitle  *SectionTitle   `json:"section_title,omitempty"`
	TableHeaders  []TableHeaders  `json:"table_headers,omitempty"`
	RowHeaders    []RowHeaders    `json:"row_headers,omitempty"`
	ColumnHeaders []ColumnHeaders `json:"column_headers,omitempty"`
	BodyCells     []BodyCells     `json:"body_cells,omitempty"`
}

type SectionTitle struct {
	Text     *string   `json:"text,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// TableHeaders is a cell spanning the top-left corner of a table.
type TableHeaders struct {
	CellID           *string   `json:"cell_id,omitempty"`
	Location         *Location `json:"location,omitempty"`
	Text             *string   `json:"text,omitempty"`
	RowIndexBegin    *int64    `json:"row_index_begin,omitempty"`
	RowIndexEnd      *int64    `json:"row_index_end,omitempty"`
	ColumnIndexBegin *int64    `json:"column_index_begin,omitempty"`
	ColumnIndexEnd   *int64    `json:"column_index_end,omitempty"`
}

type RowHeaders struct {
	CellID           *string   `json:"cell_id,omitempty"`
	Location         *Location `json:"location,omitempty"`
	Text             *string   `json:"text,omitempty"`
	TextNormalized   *string   `json:"text_normalized,omitempty"`
	RowIndexBegin    *int64    `json:"row_index_begin,omitempty"`
	RowIndexEnd      *int64    `json:"row_index_end,omitempty"`
	ColumnIndexBegin *int64    `json:"column_index_begin,omitempty"`
	ColumnIndexEnd   *int64    `json:"column_index_end,omitempty"`
}

type ColumnHeaders struct {
	CellID           *string   `json:"cell_id,omitempty"`
	Location         *Location `json:"location,omitempty"`
	Text             *string   `json:"text,omitempty"`
	TextNormalized   *string   `json:"text_normalized,omitempty"`
	RowIndexBegin    *int64    `json:"row_index_begin,omitempty"`
	RowIndexEnd      *int64    `json:"row_index_end,omitempty"`
	ColumnIndexBegin *int64    `json:"column_index_begin,omitempty"`
	ColumnIndexEnd   *int64    `json:"column_index_end,omitempty"`
}

// BodyCells is a data cell of a table.
type BodyCells struct {
	CellID           *string           `json:"cell_id,omitempty"`
	Location         *Location         `json:"location,omitempty"`
	Text             *string           `json:"text,omitempty"`
	RowIndexBegin    *int64            `json:"row_index_begin,omitempty"`
	RowIndexEnd      *int64            `json:"row_index_end,omitempty"`
	ColumnIndexBegin *int64            `json:"column_index_begin,omitempty"`
	ColumnIndexEnd   *int64            `json:"column_index_end,omitempty"`
	RowHeaderIds     []string          `json:"row_header_ids,omitempty"`
	ColumnHeaderIds  []ColumnHeaderIds `json:"column_header_ids,omitempty"`
}

// CompareReturn is the result of CompareDocuments.
type CompareReturn struct {
	ModelID           *string            `json:"model_id,omitempty"`
	ModelVersion      *string            `json:"model_version,omitempty"`
	Documents         []Document         `json:"documents,omitempty"`
	AlignedElements   []AlignedElement   `json:"aligned_elements,omitempty"`
	UnalignedElements []UnalignedElement `json:"unaligned_elements,omitempty"`
}

// AlignedElement pairs matching elements of the compared documents.
type AlignedElement struct {
	ElementPair         []ElementPair `json:"element_pair,omitempty"`
	IdenticalText       *bool         `json:"identical_text,omitempty"`
	ProvenanceIds       []string      `json:"provenance_ids,omitempty"`
	SignificantElements *bool         `json:"significant_elements,omitempty"`
}

type ElementPair struct {
	DocumentLabel *string     `json:"document_label,omitempty"`
	Text          *string     `json:"text,omitempty"`
	Location      *Location   `json:"location,omitempty"`
	Types         []TypeLabel `json:"types,omitempty"`
	Categories    []Category  `json:"categories,omitempty"`
	Attributes    []Attribute `json:"attributes,omitempty"`
}

// UnalignedElement is an element present in only one of the documents.
type UnalignedElement struct {
	DocumentLabel *string     `json:"document_label,omitempty"`
	Location      *Location   `json:"location,omitempty"`
	Text          *string     `json:"text,omitempty"`
	Types         []TypeLabel `json:"types,omitempty"`
	Categories    []Category  `json:"categories,omitempty"`
	Attributes    []Attribute `json:"attributes,omitempty"`
}
