package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// errorResponse is the uniform error body: {"error": "..."}.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "error encoding response", "error", err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// serverError logs the full failure detail and returns the generic 500
// body. No internal detail crosses the boundary.
func (s *Server) serverError(ctx context.Context, w http.ResponseWriter, err error) {
	s.logger.Error(ctx, "internal error", "error", err.Error())
	s.writeError(w, http.StatusInternalServerError, "Internal server error")
}

// noteError maps NoteService outcomes to responses: validation failures to
// 400, missing or foreign-owned notes to 404, everything else to the
// generic 500.
func (s *Server) noteError(ctx context.Context, w http.ResponseWriter, err error) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		s.writeError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, common.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "Note not found")
	default:
		s.serverError(ctx, w, err)
	}
}
