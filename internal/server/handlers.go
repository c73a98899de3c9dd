package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/octools/oc-analyzer/api/models"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	slog.Debug("Received chat request", "request", req)

	result, err := s.agent.Chat(r.Context(), req)
	if err != nil {
		slog.Error("Chat request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleAnalyze runs the analysis engine directly, no LLM involved. Parse
// failures are reported inside the envelope, so the HTTP status is 200 either
// way.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	result := s.toolset.AnalyzeCommand(req.Command)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":       "healthy",
		"service":      serviceName,
		"version":      serviceVersion,
		"llm_provider": s.cfg.OpenAI.Provider,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
