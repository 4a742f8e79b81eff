package models

import "time"

// Answer is a generated response to a question, together with the retrieved
// chunks it was grounded on. Model names the generation backend that produced
// the text ("ollama:llama3.2:3b", "template", ...).
type Answer struct {
	ID         string          `json:"id"`
	Question   string          `json:"question"`
	Text       string          `json:"text"`
	Model      string          `json:"model"`
	Sources    []*SearchResult `json:"sources"`
	DurationMS int64           `json:"duration_ms"`
	CreatedAt  time.Time       `json:"created_at"`
}
