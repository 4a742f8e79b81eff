package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/hyperjump/kotae/internal/history"
	"github.com/hyperjump/kotae/internal/knowledge"
	"github.com/hyperjump/kotae/internal/models"
)

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var query models.AskQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if query.TopK == 0 {
		query.TopK = s.config.Retrieval.TopK
	}
	if err := query.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("ask request", zap.String("question", query.Question), zap.Int("top_k", query.TopK))
	answer, err := s.pipeline.Ask(r.Context(), &query)
	if err != nil {
		if errors.Is(err, knowledge.ErrNotLoaded) {
			s.respondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.logger.Error("ask failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, answer)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var query models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if query.TopK == 0 {
		query.TopK = s.config.Retrieval.TopK
	}
	if err := query.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("search request", zap.String("query", query.Query), zap.Int("top_k", query.TopK))
	response, err := s.pipeline.Search(r.Context(), &query)
	if err != nil {
		if errors.Is(err, knowledge.ErrNotLoaded) {
			s.respondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	var query models.LookupQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := query.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("lookup request", zap.String("term", query.Term), zap.Int("limit", query.Limit))
	response, err := s.pipeline.Lookup(r.Context(), &query)
	if err != nil {
		if errors.Is(err, knowledge.ErrNotLoaded) {
			s.respondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.logger.Error("lookup failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, response)
}

type reloadRequest struct {
	Path string `json:"path,omitempty"`
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	var req reloadRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	path := req.Path
	if path == "" {
		path = s.config.Document.Path
	}
	if path == "" {
		s.respondError(w, http.StatusBadRequest, "no document path configured or provided")
		return
	}
	s.logger.Debug("reload request", zap.String("path", path))
	doc, err := s.base.Load(r.Context(), path)
	if err != nil {
		s.logger.Error("reload failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"loaded": false,
	}
	stats, err := s.base.Stats()
	if err == nil {
		resp["loaded"] = true
		resp["document"] = stats.Document
		resp["chunks"] = stats.Chunks
		resp["dimensions"] = stats.Dimensions
		resp["terms"] = stats.Terms
	} else if !errors.Is(err, knowledge.ErrNotLoaded) {
		s.logger.Error("status: stats failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp["config"] = map[string]interface{}{
		"chunk_size":           s.config.Chunking.Size,
		"chunk_overlap":        s.config.Chunking.Overlap,
		"top_k":                s.config.Retrieval.TopK,
		"embedding_provider":   s.config.Embedding.Provider,
		"embedding_dimensions": s.config.Embedding.Dimensions,
		"generation_provider":  s.config.Generation.Provider,
		"generation_model":     s.config.Generation.Model,
	}

	if s.history != nil {
		count, err := s.history.Count(r.Context())
		if err == nil {
			resp["history_answers"] = count
		}
		diskBytes, err := history.DiskUsageBytes(history.DatabaseFiles(s.config.History.DatabasePath)...)
		if err == nil {
			resp["disk_usage_bytes"] = diskBytes
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.respondError(w, http.StatusNotImplemented, "history not enabled")
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	answers, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		s.logger.Error("history failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if answers == nil {
		answers = []*models.Answer{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"answers": answers,
		"total":   len(answers),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
