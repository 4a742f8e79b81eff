// Package cli provides output formatting for the Kotae command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/pkg/utils"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

var separator = strings.Repeat("=", 70)

const resultDivider = "─────────────────────────────────────────────────────────"

// WriteAnswer writes a generated answer to w. Text output appends a SOURCES
// section listing the page, similarity, and a preview of every chunk the
// answer was grounded on.
func WriteAnswer(w io.Writer, answer *models.Answer, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(answer)
	}

	fmt.Fprintf(w, "%s\n", answer.Text)
	fmt.Fprintf(w, "\n%s\n", separator)
	fmt.Fprintln(w, "SOURCES:")
	fmt.Fprintf(w, "%s\n", separator)
	for _, src := range answer.Sources {
		fmt.Fprintf(w, "\n[%d] Page %d (Similarity: %.1f%%)\n", src.Rank, src.Chunk.PageNumber, src.Similarity*100)
		fmt.Fprintf(w, "    Preview: %s\n", utils.Truncate(src.Chunk.Text, 150))
	}
	fmt.Fprintf(w, "\nAnswered by %s in %dms\n", answer.Model, answer.DurationMS)
	return nil
}

// WriteSearchResults writes retrieval results to w in the given format.
func WriteSearchResults(w io.Writer, response *models.SearchResponse, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	}

	fmt.Fprintf(w, "\nFound %d results in %dms\n\n", response.Total, response.QueryTime)
	for _, result := range response.Results {
		fmt.Fprintf(w, "%s\n", resultDivider)
		fmt.Fprintf(w, "Rank: %d | Distance: %.4f | Similarity: %.1f%%\n",
			result.Rank, result.Distance, result.Similarity*100)
		fmt.Fprintf(w, "Page %d, chunk %d\n", result.Chunk.PageNumber, result.Chunk.ChunkIndex)
		fmt.Fprintf(w, "\n%s\n\n", utils.Truncate(result.Chunk.Text, 200))
	}
	return nil
}

// WriteLookupResults writes keyword lookup results to w in the given format.
func WriteLookupResults(w io.Writer, response *models.LookupResponse, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	}

	if response.Total == 0 {
		fmt.Fprintf(w, "\nNo chunks contain %q", response.Term)
		if response.Suggestion != "" {
			fmt.Fprintf(w, " (did you mean %q?)", response.Suggestion)
		}
		fmt.Fprintln(w)
		return nil
	}
	fmt.Fprintf(w, "\nFound %d chunks containing %q in %dms\n\n", response.Total, response.Term, response.QueryTime)
	for _, result := range response.Results {
		fmt.Fprintf(w, "%s\n", resultDivider)
		fmt.Fprintf(w, "Score: %.4f | Page %d, chunk %d\n", result.Score, result.Chunk.PageNumber, result.Chunk.ChunkIndex)
		fmt.Fprintf(w, "\n%s\n\n", utils.Truncate(result.Chunk.Text, 200))
	}
	return nil
}

// WriteHistory writes recorded answers to w, newest first.
func WriteHistory(w io.Writer, answers []*models.Answer, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(answers)
	}

	if len(answers) == 0 {
		fmt.Fprintln(w, "\nNo answers recorded yet")
		return nil
	}
	fmt.Fprintf(w, "\n%d recorded answers\n\n", len(answers))
	for _, answer := range answers {
		fmt.Fprintf(w, "%s\n", resultDivider)
		fmt.Fprintf(w, "[%s] %s\n", answer.CreatedAt.Format("2006-01-02 15:04"), answer.Question)
		fmt.Fprintf(w, "\n%s\n", utils.Truncate(answer.Text, 300))
		fmt.Fprintf(w, "\nAnswered by %s in %dms, %d sources\n\n", answer.Model, answer.DurationMS, len(answer.Sources))
	}
	return nil
}

// Status summarizes the local configuration and stores for the status command.
type Status struct {
	ConfigPath       string `json:"config_path,omitempty"`
	DocumentPath     string `json:"document_path"`
	DocumentExists   bool   `json:"document_exists"`
	DocumentBytes    int64  `json:"document_bytes,omitempty"`
	ChunkSize        int    `json:"chunk_size"`
	ChunkOverlap     int    `json:"chunk_overlap"`
	TopK             int    `json:"top_k"`
	EmbeddingBackend string `json:"embedding_backend"`
	Dimensions       int    `json:"dimensions"`
	GenerationModel  string `json:"generation_model"`
	HistoryEnabled   bool   `json:"history_enabled"`
	HistoryAnswers   int64  `json:"history_answers,omitempty"`
	HistoryBytes     int64  `json:"history_bytes,omitempty"`
}

// WriteStatus writes the status summary to w in the given format.
func WriteStatus(w io.Writer, status *Status, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	fmt.Fprintf(w, "\nDocument: %s", status.DocumentPath)
	if status.DocumentPath == "" {
		fmt.Fprint(w, "(not configured)")
	} else if !status.DocumentExists {
		fmt.Fprint(w, " (missing)")
	} else {
		fmt.Fprintf(w, " (%d bytes)", status.DocumentBytes)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Chunking: %d characters, %d sentence overlap\n", status.ChunkSize, status.ChunkOverlap)
	fmt.Fprintf(w, "Retrieval: top %d chunks\n", status.TopK)
	fmt.Fprintf(w, "Embedding: %s (%d dimensions)\n", status.EmbeddingBackend, status.Dimensions)
	fmt.Fprintf(w, "Generation: %s\n", status.GenerationModel)
	if status.HistoryEnabled {
		fmt.Fprintf(w, "History: %d answers, %d bytes on disk\n", status.HistoryAnswers, status.HistoryBytes)
	} else {
		fmt.Fprintln(w, "History: disabled")
	}
	return nil
}
