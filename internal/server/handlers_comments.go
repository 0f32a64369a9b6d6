package server

import (
	"net/http"
	"strings"
)

// POST /api/comments
func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.BookID == "" || req.Text == "" {
		writeError(w, http.StatusBadRequest, "bookId and text are required")
		return
	}
	comment, err := s.app.AddComment(user.ID, req.BookID, req.Text)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

// GET /api/comments/{bookId} is public; PUT/DELETE /api/comments/{id} require
// the caller to own the comment.
func (s *Server) handleCommentByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(r, "/api/comments/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		comments, err := s.app.CommentsForBook(id)
		if err != nil {
			s.writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, comments)
	case http.MethodPut:
		user, ok := s.requireUser(w, r)
		if !ok {
			return
		}
		var req commentUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.Text = strings.TrimSpace(req.Text)
		if req.Text == "" {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}
		comment, err := s.app.EditComment(id, user.ID, req.Text)
		if err != nil {
			s.writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, comment)
	case http.MethodDelete:
		user, ok := s.requireUser(w, r)
		if !ok {
			return
		}
		if err := s.app.RemoveComment(id, user.ID); err != nil {
			s.writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted"})
	default:
		methodNotAllowed(w)
	}
}

type commentRequest struct {
	BookID string `json:"bookId"`
	Text   string `json:"text"`
}

type commentUpdateRequest struct {
	Text string `json:"text"`
}
