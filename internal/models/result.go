package models

// SearchResult is a single retrieval hit. Distance is the squared Euclidean
// distance between the normalized query and chunk vectors; Similarity is
// 1/(1+Distance), so identical vectors score 1.0. Rank is the 1-based
// position in the returned list. Results are produced fresh per query and
// never persisted.
type SearchResult struct {
	Chunk      *Chunk  `json:"chunk"`
	Distance   float64 `json:"distance"`
	Similarity float64 `json:"similarity"`
	Rank       int     `json:"rank"`
}

// SearchResponse is the response for a retrieval request.
type SearchResponse struct {
	Query     string          `json:"query"`
	Results   []*SearchResult `json:"results"`
	Total     int             `json:"total"`
	QueryTime int64           `json:"query_time_ms"`
}

// LookupResult is a single keyword hit from the chunk index.
type LookupResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float64 `json:"score"`
}

// LookupResponse is the response for a keyword lookup. Suggestion carries a
// "did you mean" candidate when the term matched nothing but is close to a
// word that occurs in the document.
type LookupResponse struct {
	Term       string          `json:"term"`
	Results    []*LookupResult `json:"results"`
	Total      int             `json:"total"`
	Suggestion string          `json:"suggestion,omitempty"`
	QueryTime  int64           `json:"query_time_ms"`
}
