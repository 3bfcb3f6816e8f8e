package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/slidekit/search-advisor/apimodels"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "query must not be empty", http.StatusBadRequest)
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		slog.Error("Analysis request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("Analyzed query", "query", req.Query, "needs_web_search", result.NeedsWebSearch)
	writeJSON(w, result)
}

func (s *Server) handleBatchAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	results := s.analyzer.BatchAnalyze(r.Context(), req.Queries)
	resp := apimodels.NewBatchResponse(results)

	slog.Info("Batch analysis completed", "successful", resp.SuccessCount, "errors", resp.ErrorCount)
	writeJSON(w, resp)
}

func (s *Server) handleTriggers(w http.ResponseWriter, r *http.Request) {
	catalog := apimodels.TriggerCatalog()
	writeJSON(w, map[string]any{
		"triggers": catalog,
		"total":    len(catalog),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "healthy",
		"service": "web_search_analysis",
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
