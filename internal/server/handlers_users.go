package server

import (
	"net/http"

	"bookhive/internal/app"
	"bookhive/pkg/domain"
)

// GET /api/users/me — the caller's profile with activity counts.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request, user domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	profile, stats, err := s.app.GetProfile(r.Context(), user.ID)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{User: profile, Stats: stats})
}

// PUT /api/users/update — partial profile update; absent fields are kept.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request, user domain.User) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}
	var req profileUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Username != nil && *req.Username == "" {
		writeError(w, http.StatusBadRequest, "username must not be empty")
		return
	}
	updated, err := s.app.UpdateProfile(user.ID, app.ProfileUpdate{
		Username:  req.Username,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileUpdateResponse{Message: "Profile updated successfully", User: updated})
}

type profileResponse struct {
	User  domain.User         `json:"user"`
	Stats domain.ProfileStats `json:"stats"`
}

type profileUpdateResponse struct {
	Message string      `json:"message"`
	User    domain.User `json:"user"`
}

type profileUpdateRequest struct {
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
}
