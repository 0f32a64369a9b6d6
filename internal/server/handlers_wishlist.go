package server

import (
	"net/http"

	"bookhive/pkg/domain"
)

// GET /api/wishlist
func (s *Server) handleWishlist(w http.ResponseWriter, r *http.Request, user domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	items, err := s.app.Wishlist(user.ID)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// POST /api/wishlist/toggle flips membership: 201 when the book was saved,
// 200 when it was removed.
func (s *Server) handleWishlistToggle(w http.ResponseWriter, r *http.Request, user domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req wishlistToggleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.BookID == "" {
		writeError(w, http.StatusBadRequest, "bookId is required")
		return
	}
	saved, err := s.app.ToggleWishlist(user.ID, req.BookID)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	status := http.StatusOK
	if saved {
		status = http.StatusCreated
	}
	writeJSON(w, status, wishlistToggleResponse{Saved: saved})
}

type wishlistToggleRequest struct {
	BookID string `json:"bookId"`
}

type wishlistToggleResponse struct {
	Saved bool `json:"saved"`
}
