package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vovakirdan/tui-runner/internal/leaderboard"
)

// maxBodyBytes bounds a score submission body.
const maxBodyBytes = 4 << 10

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// handleSubmit implements POST /score.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	sub, err := leaderboard.DecodeSubmission(r.Body)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if _, err := s.scores.Submit(r.Context(), sub, ClientIP(r)); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// handleScores implements GET /scores.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	rows, err := s.scores.Top(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// writeError maps service errors onto status codes. Validation messages are
// surfaced; anything else becomes a generic 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var verr *leaderboard.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
		return
	}

	s.logger.Error("request failed", "err", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
