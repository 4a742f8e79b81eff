package models

import "fmt"

// maxTopK caps how many chunks a single request may ask for.
const maxTopK = 100

// SearchQuery is a semantic retrieval request.
type SearchQuery struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// Validate checks the query fields. TopK must be set by the caller (the
// configured default is applied before validation); zero or negative values
// are rejected rather than silently corrected, values above the cap are
// clamped.
func (q *SearchQuery) Validate() error {
	if q.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if q.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %d", q.TopK)
	}
	if q.TopK > maxTopK {
		q.TopK = maxTopK
	}
	return nil
}

// AskQuery is a question-answering request.
type AskQuery struct {
	Question string `json:"question"`
	TopK     int    `json:"top_k,omitempty"`
}

// Validate checks the question and top-k, mirroring SearchQuery.Validate.
func (q *AskQuery) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("question cannot be empty")
	}
	if q.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %d", q.TopK)
	}
	if q.TopK > maxTopK {
		q.TopK = maxTopK
	}
	return nil
}

// LookupQuery is a keyword lookup request against the chunk index.
type LookupQuery struct {
	Term  string `json:"term"`
	Limit int    `json:"limit,omitempty"`
}

// Validate checks the term and normalizes the limit.
func (q *LookupQuery) Validate() error {
	if q.Term == "" {
		return fmt.Errorf("term cannot be empty")
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > maxTopK {
		q.Limit = maxTopK
	}
	return nil
}
