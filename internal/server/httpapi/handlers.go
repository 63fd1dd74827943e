package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/snippr/internal/common"
	"github.com/go-chi/chi/v5"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type createSnippetRequest struct {
	Language    string `json:"language"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// createSnippetResponse deliberately omits the code: the caller already
// has it and the stored form is ciphertext.
type createSnippetResponse struct {
	ID          int64  `json:"id"`
	Language    string `json:"language"`
	Description string `json:"description,omitempty"`
}

type snippetResponse struct {
	ID          int64  `json:"id"`
	Language    string `json:"language"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrorValidation)
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", user.Email, "request_id", requestID(r.Context()))
	s.writeJSON(w, http.StatusCreated, registerResponse{Email: user.Email})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrorValidation)
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

func (s *Server) handleCreateSnippet(w http.ResponseWriter, r *http.Request) {
	var req createSnippetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrorValidation)
		return
	}

	snippet, err := s.snippets.Create(r.Context(), req.Language, req.Code, req.Description)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "snippet created",
		"id", snippet.ID, "language", snippet.Language, "request_id", requestID(r.Context()))
	s.writeJSON(w, http.StatusCreated, createSnippetResponse{
		ID:          snippet.ID,
		Language:    snippet.Language,
		Description: snippet.Description,
	})
}

func (s *Server) handleListSnippets(w http.ResponseWriter, r *http.Request) {
	views, err := s.snippets.List(r.Context(), r.URL.Query().Get("lang"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result := make([]snippetResponse, 0, len(views))
	for _, v := range views {
		result = append(result, snippetResponse{
			ID:          v.ID,
			Language:    v.Language,
			Code:        v.Code,
			Description: v.Description,
		})
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetSnippet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, r, common.ErrorNotFound)
		return
	}

	view, err := s.snippets.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, snippetResponse{
		ID:          view.ID,
		Language:    view.Language,
		Code:        view.Code,
		Description: view.Description,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto status codes. Anything outside
// the taxonomy (including crypto failures) is a 500 and gets logged with
// the request id.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int

	switch {
	case errors.Is(err, common.ErrorValidation):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrorAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, common.ErrorUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
		s.logger.Error(r.Context(), "request failed",
			"error", err.Error(), "path", r.URL.Path, "request_id", requestID(r.Context()))
	}

	s.writeJSON(w, status, errorResponse{Error: messageFor(status)})
}

func messageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "missing or invalid fields"
	case http.StatusConflict:
		return "already exists"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not found"
	default:
		return "internal error"
	}
}
