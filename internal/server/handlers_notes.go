package server

import (
	"net/http"
	"strings"

	"bookhive/pkg/domain"
)

// POST /api/notes
func (s *Server) handleNotes(w http.ResponseWriter, r *http.Request, user domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.BookID == "" || req.Text == "" {
		writeError(w, http.StatusBadRequest, "bookId and text are required")
		return
	}
	note, err := s.app.AddNote(user.ID, req.BookID, req.Text, req.Page)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// GET /api/notes/{bookId} lists only the caller's notes;
// DELETE /api/notes/{id} removes one of the caller's notes.
func (s *Server) handleNoteByID(w http.ResponseWriter, r *http.Request, user domain.User) {
	id, ok := pathParam(r, "/api/notes/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		notes, err := s.app.NotesForBook(id, user.ID)
		if err != nil {
			s.writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, notes)
	case http.MethodDelete:
		if err := s.app.RemoveNote(id, user.ID); err != nil {
			s.writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Note deleted"})
	default:
		methodNotAllowed(w)
	}
}

type noteRequest struct {
	BookID string `json:"bookId"`
	Text   string `json:"text"`
	Page   int    `json:"page"`
}
