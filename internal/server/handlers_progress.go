package server

import (
	"net/http"
	"time"

	"bookhive/pkg/domain"
)

// GET /api/progress lists everything the caller has started reading;
// POST /api/progress records the current position in one book.
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request, user domain.User) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.app.ReadingList(user.ID)
		if err != nil {
			s.writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req progressRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.BookID == "" {
			writeError(w, http.StatusBadRequest, "bookId is required")
			return
		}
		progress, created, err := s.app.SaveProgress(user.ID, req.BookID, req.CurrentPage)
		if err != nil {
			s.writeAppError(w, r, err)
			return
		}
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, progress)
	default:
		methodNotAllowed(w)
	}
}

// GET /api/progress/{bookId} — the caller's position, page 0 when unread.
func (s *Server) handleProgressByBook(w http.ResponseWriter, r *http.Request, user domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	bookID, ok := pathParam(r, "/api/progress/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	progress, err := s.app.Progress(user.ID, bookID)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	resp := progressResponse{CurrentPage: progress.CurrentPage}
	if !progress.LastRead.IsZero() {
		resp.LastRead = progress.LastRead.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

type progressRequest struct {
	BookID      string `json:"bookId"`
	CurrentPage int    `json:"currentPage"`
}

type progressResponse struct {
	CurrentPage int    `json:"currentPage"`
	LastRead    string `json:"lastRead,omitempty"`
}
