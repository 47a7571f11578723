package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SourceCitation points at where in the document an answer was found. All
// fields are optional; the highlighting layer degrades to "no highlight" when
// they are absent. The anchor is advisory and is not checked against the
// actual page text.
type SourceCitation struct {
	Page   *int   `json:"page,omitempty"`
	Anchor string `json:"anchor,omitempty"`
	Method string `json:"method,omitempty"`
}

// Conversation is a single question/answer record for a document. Records are
// unique per (document_hash, question) and append-only: re-asking the same
// question returns the stored record instead of a fresh model call.
type Conversation struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	DocumentHash string          `db:"document_hash" json:"document_hash"`
	Question     string          `db:"question" json:"question"`
	Answer       string          `db:"answer" json:"answer"`
	Confidence   float64         `db:"confidence" json:"confidence"`
	Reasoning    string          `db:"reasoning" json:"reasoning"`
	Source       *SourceCitation `db:"-" json:"source,omitempty"`
	SourceRaw    []byte          `db:"source" json:"-"`
	Verified     bool            `db:"verified" json:"verified"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// EncodeSource serializes Source into SourceRaw for persistence.
func (c *Conversation) EncodeSource() error {
	if c.Source == nil {
		c.SourceRaw = nil
		return nil
	}
	b, err := json.Marshal(c.Source)
	if err != nil {
		return err
	}
	c.SourceRaw = b
	return nil
}

// DecodeSource populates Source from SourceRaw after a read.
func (c *Conversation) DecodeSource() error {
	if len(c.SourceRaw) == 0 {
		c.Source = nil
		return nil
	}
	var src SourceCitation
	if err := json.Unmarshal(c.SourceRaw, &src); err != nil {
		return err
	}
	c.Source = &src
	return nil
}

// Classification is the model's judgment of what kind of document this is.
type Classification struct {
	DocumentType string  `json:"document_type"`
	Description  string  `json:"description"`
	Confidence   float64 `json:"confidence"`
}

// FieldValue is one extracted field: a scalar or nested value plus the
// model's confidence in it.
type FieldValue struct {
	Value      interface{} `json:"value"`
	Confidence float64     `json:"confidence"`
}

// ExtractionResult pairs a classification with the extracted field values.
// Field order is not significant.
type ExtractionResult struct {
	Classification Classification        `json:"classification"`
	Fields         map[string]FieldValue `json:"field_values"`
}

// ExtractionJob tracks the lifecycle of an adaptive extraction for one
// document. At most one job row exists per document hash; a missing row means
// the job was never started.
type ExtractionJob struct {
	DocumentHash string          `db:"document_hash" json:"document_hash"`
	Status       JobStatus       `db:"status" json:"status"`
	Result       json.RawMessage `db:"result" json:"result,omitempty"`
	ErrorDetail  string          `db:"error_detail" json:"error_detail,omitempty"`
	StartedAt    time.Time       `db:"started_at" json:"started_at"`
	CompletedAt  *time.Time      `db:"completed_at" json:"completed_at,omitempty"`
}

// DecodeResult unmarshals the stored extraction result. Only valid for
// succeeded jobs.
func (j *ExtractionJob) DecodeResult() (*ExtractionResult, error) {
	var res ExtractionResult
	if err := json.Unmarshal(j.Result, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Page is one page of extracted document text, as produced by the upstream
// text-extraction pipeline.
type Page struct {
	Number int    `json:"page"`
	Text   string `json:"text"`
}
