package models

import (
	"testing"
)

func TestSearchQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   *SearchQuery
		wantErr bool
	}{
		{"empty query", &SearchQuery{Query: "", TopK: 3}, true},
		{"valid query", &SearchQuery{Query: "hello", TopK: 3}, false},
		{"zero top_k rejected", &SearchQuery{Query: "x", TopK: 0}, true},
		{"negative top_k rejected", &SearchQuery{Query: "x", TopK: -1}, true},
		{"caps top_k at 100", &SearchQuery{Query: "x", TopK: 200}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.query.TopK > 100 {
				t.Errorf("expected top_k capped at 100, got %d", tt.query.TopK)
			}
		})
	}
}

func TestAskQuery_Validate(t *testing.T) {
	if err := (&AskQuery{Question: "", TopK: 3}).Validate(); err == nil {
		t.Error("expected error for empty question")
	}
	if err := (&AskQuery{Question: "why", TopK: 0}).Validate(); err == nil {
		t.Error("expected error for zero top_k")
	}
	q := &AskQuery{Question: "why", TopK: 3}
	if err := q.Validate(); err != nil {
		t.Errorf("valid ask query rejected: %v", err)
	}
}

func TestLookupQuery_Validate(t *testing.T) {
	if err := (&LookupQuery{Term: ""}).Validate(); err == nil {
		t.Error("expected error for empty term")
	}
	q := &LookupQuery{Term: "policy"}
	if err := q.Validate(); err != nil {
		t.Fatalf("valid lookup query rejected: %v", err)
	}
	if q.Limit != 10 {
		t.Errorf("expected default limit 10, got %d", q.Limit)
	}
	q = &LookupQuery{Term: "policy", Limit: 500}
	if err := q.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if q.Limit != 100 {
		t.Errorf("expected limit capped at 100, got %d", q.Limit)
	}
}
