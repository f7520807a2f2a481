package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"grantbook/internal/log"
	"grantbook/internal/query"
)

// Handler returns the HTTP surface: the MCP streamable endpoint at
// /mcp, one JSON endpoint per tool at /tools/{name}, and a health
// probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp", s.StreamableHTTP())
	mux.HandleFunc("POST /tools/{name}", s.handleToolHTTP)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

func (s *Server) handleToolHTTP(w http.ResponseWriter, r *http.Request) {
	tool := r.PathValue("name")

	args := map[string]any{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			writeError(w, http.StatusBadRequest, "request body must be a JSON object")
			return
		}
	}

	result, err := s.Dispatch(r.Context(), tool, args)
	if err != nil {
		s.logger.Warn("tool request failed",
			log.FieldTool, tool,
			log.FieldError, err)
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": len(s.snapshot.Records),
	})
}

func statusFor(err error) int {
	var ve *query.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var nf *query.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
