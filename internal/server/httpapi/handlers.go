package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/go-chi/chi/v5"
)

type signUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// userResponse is the outward projection of a user: id and email only.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email}
}

// SignUp handles POST /api/auth/signup.
func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {

	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := s.users.SignUp(r.Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		var ve *common.ValidationError
		switch {
		case errors.As(err, &ve):
			s.writeError(w, http.StatusBadRequest, ve.Message)
		case errors.Is(err, common.ErrDuplicateEmail):
			s.writeError(w, http.StatusBadRequest, "User with this email already exists")
		default:
			s.serverError(r.Context(), w, err)
		}
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", user.Email)

	s.setSessionCookie(w, token)
	s.writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    toUserResponse(user),
	})
}

// Login handles POST /api/auth/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var ve *common.ValidationError
		switch {
		case errors.As(err, &ve):
			s.writeError(w, http.StatusBadRequest, ve.Message)
		case errors.Is(err, common.ErrUnauthenticated):
			s.writeError(w, http.StatusUnauthorized, "Invalid email or password")
		default:
			s.serverError(r.Context(), w, err)
		}
		return
	}

	s.setSessionCookie(w, token)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Logged in successfully",
		"user":    toUserResponse(user),
	})
}

// Logout handles POST /api/auth/logout. The credential itself stays valid
// until expiry; logout only removes it from the browser.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Logged out successfully",
	})
}

// CurrentUser handles GET /api/auth/me. A verified credential whose account
// was deleted out-of-band yields 404, distinct from 401.
func (s *Server) CurrentUser(w http.ResponseWriter, r *http.Request) {

	user, err := s.users.GetCurrentUser(r.Context(), userID(r))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "User not found")
			return
		}
		s.serverError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserResponse(user),
	})
}

// ListNotes handles GET /api/notes.
func (s *Server) ListNotes(w http.ResponseWriter, r *http.Request) {

	notes, err := s.notes.List(r.Context(), userID(r))
	if err != nil {
		s.serverError(r.Context(), w, err)
		return
	}

	if notes == nil {
		notes = []*models.Note{}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"notes": notes,
	})
}

// CreateNote handles POST /api/notes.
func (s *Server) CreateNote(w http.ResponseWriter, r *http.Request) {

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := s.notes.Create(r.Context(), userID(r), req.Title, req.Content)
	if err != nil {
		s.noteError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Note created successfully",
		"note":    note,
	})
}

// GetNote handles GET /api/notes/{id}.
func (s *Server) GetNote(w http.ResponseWriter, r *http.Request) {

	note, err := s.notes.Get(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		s.noteError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"note": note,
	})
}

// UpdateNote handles PUT /api/notes/{id}.
func (s *Server) UpdateNote(w http.ResponseWriter, r *http.Request) {

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := s.notes.Update(r.Context(), userID(r), chi.URLParam(r, "id"), req.Title, req.Content)
	if err != nil {
		s.noteError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Note updated successfully",
		"note":    note,
	})
}

// DeleteNote handles DELETE /api/notes/{id}.
func (s *Server) DeleteNote(w http.ResponseWriter, r *http.Request) {

	if err := s.notes.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		s.noteError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Note deleted successfully",
	})
}
