package server

import (
	"net/http"
	"strings"

	"bookhive/internal/app"
	"bookhive/internal/store"
)

// GET /api/reviews lists every review; POST /api/reviews creates one,
// optionally tied to a book.
func (s *Server) handleReviews(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		reviews, err := s.app.ListReviews()
		if err != nil {
			s.writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)
	case http.MethodPost:
		user, ok := s.requireUser(w, r)
		if !ok {
			return
		}
		var req reviewRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.Content = strings.TrimSpace(req.Content)
		if req.Content == "" {
			writeError(w, http.StatusBadRequest, "content is required")
			return
		}
		review, err := s.app.AddReview(user.ID, app.ReviewInput{
			Title:     strings.TrimSpace(req.Title),
			Content:   req.Content,
			Rating:    req.Rating,
			Recommend: req.Recommend,
			BookID:    req.BookID,
		})
		if err != nil {
			s.writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, review)
	default:
		methodNotAllowed(w)
	}
}

// GET /api/reviews/book/{bookId}
func (s *Server) handleReviewsByBook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	bookID, ok := pathParam(r, "/api/reviews/book/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	reviews, err := s.app.ReviewsForBook(bookID)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// PUT/DELETE /api/reviews/{id} — owner only.
func (s *Server) handleReviewByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(r, "/api/reviews/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		user, ok := s.requireUser(w, r)
		if !ok {
			return
		}
		var req reviewUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		review, err := s.app.EditReview(id, user.ID, store.ReviewUpdate{
			Title:     req.Title,
			Content:   req.Content,
			Rating:    req.Rating,
			Recommend: req.Recommend,
		})
		if err != nil {
			s.writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, review)
	case http.MethodDelete:
		user, ok := s.requireUser(w, r)
		if !ok {
			return
		}
		if err := s.app.RemoveReview(id, user.ID); err != nil {
			s.writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Review deleted"})
	default:
		methodNotAllowed(w)
	}
}

type reviewRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	Recommend bool   `json:"recommend"`
	BookID    string `json:"bookId"`
}

type reviewUpdateRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Rating    *int    `json:"rating"`
	Recommend *bool   `json:"recommend"`
}
