package server

import (
	"net/http"

	"bookhive/pkg/domain"
)

// POST /api/ratings
func (s *Server) handleRatings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var req ratingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.BookID == "" {
		writeError(w, http.StatusBadRequest, "bookId is required")
		return
	}
	rating, created, err := s.app.SubmitRating(user.ID, req.BookID, req.Score)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, rating)
}

// GET /api/ratings/book/{bookId} — aggregate stats, public.
func (s *Server) handleBookRating(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	bookID, ok := pathParam(r, "/api/ratings/book/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	stats, err := s.app.BookRatingStats(bookID)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GET /api/ratings/user/{bookId} — the caller's own score, 0 when unrated.
func (s *Server) handleUserRating(w http.ResponseWriter, r *http.Request, user domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	bookID, ok := pathParam(r, "/api/ratings/user/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	rating, err := s.app.UserRating(user.ID, bookID)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userRatingResponse{Score: rating.Score})
}

type ratingRequest struct {
	BookID string `json:"bookId"`
	Score  int    `json:"score"`
}

type userRatingResponse struct {
	Score int `json:"score"`
}
