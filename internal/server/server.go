package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"bookhive/internal/app"
	"bookhive/internal/ratelimit"
	"bookhive/internal/util"
	"bookhive/pkg/domain"
)

// Config wires required dependencies for the HTTP server.
type Config struct {
	App                      *app.App
	CORSOrigin               string
	TrustedProxies           *util.TrustedProxies
	RedisAddr                string
	RedisPassword            string
	SignupRateLimitPerMinute int
	SigninRateLimitPerMinute int
}

// Server exposes the HTTP API.
type Server struct {
	app           *app.App
	mux           *http.ServeMux
	corsOrigin    string
	trusted       *util.TrustedProxies
	signupLimiter *ratelimit.FixedWindowLimiter // nil disables limiting
	signinLimiter *ratelimit.FixedWindowLimiter
}

// New constructs the server with routes configured. Rate limiting is active
// only when a redis address is configured.
func New(cfg Config) (*Server, error) {
	s := &Server{
		app:        cfg.App,
		mux:        http.NewServeMux(),
		corsOrigin: cfg.CORSOrigin,
		trusted:    cfg.TrustedProxies,
	}
	if cfg.RedisAddr != "" {
		signupLimit := cfg.SignupRateLimitPerMinute
		if signupLimit <= 0 {
			signupLimit = 5
		}
		signinLimit := cfg.SigninRateLimitPerMinute
		if signinLimit <= 0 {
			signinLimit = 10
		}
		newLimiter := func(name string, limit int) (*ratelimit.FixedWindowLimiter, error) {
			prefix := "bookhive:ratelimit:" + name
			limiter, err := ratelimit.NewRedisFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, prefix, limit, time.Minute)
			if err != nil {
				return nil, fmt.Errorf("init %s limiter: %w", name, err)
			}
			// limiting is opt-in here, so a redis outage should not block auth
			return limiter.FailOpen(), nil
		}
		var err error
		if s.signupLimiter, err = newLimiter("signup", signupLimit); err != nil {
			return nil, err
		}
		if s.signinLimiter, err = newLimiter("signin", signinLimit); err != nil {
			return nil, err
		}
	}
	s.routes()
	return s, nil
}

// Router returns the configured handler with the middleware chain applied.
func (s *Server) Router() http.Handler {
	return util.WithSecurityHeaders(
		util.WithCORS(s.corsOrigin,
			util.WithRequestID(
				util.WithRequestLog(s.mux))))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	// auth
	s.mux.HandleFunc("/api/auth/signup", s.handleSignup)
	s.mux.HandleFunc("/api/auth/signin", s.handleSignin)
	s.mux.HandleFunc("/api/auth/forgot-password", s.handleForgotPassword)

	// catalog (public) and source-file download (auth)
	s.mux.HandleFunc("/api/books", s.handleBooks)
	s.mux.HandleFunc("/api/books/", s.handleBookByID)

	// comments: listing is public, mutations check auth per method
	s.mux.HandleFunc("/api/comments", s.handleComments)
	s.mux.HandleFunc("/api/comments/", s.handleCommentByID)

	// notes (private)
	s.mux.Handle("/api/notes", s.authenticated(s.handleNotes))
	s.mux.Handle("/api/notes/", s.authenticated(s.handleNoteByID))

	// reading progress
	s.mux.Handle("/api/progress", s.authenticated(s.handleProgress))
	s.mux.Handle("/api/progress/", s.authenticated(s.handleProgressByBook))

	// ratings
	s.mux.HandleFunc("/api/ratings", s.handleRatings)
	s.mux.HandleFunc("/api/ratings/book/", s.handleBookRating)
	s.mux.Handle("/api/ratings/user/", s.authenticated(s.handleUserRating))

	// reviews: listing is public, mutations check auth per method
	s.mux.HandleFunc("/api/reviews", s.handleReviews)
	s.mux.HandleFunc("/api/reviews/book/", s.handleReviewsByBook)
	s.mux.HandleFunc("/api/reviews/", s.handleReviewByID)

	// wishlist
	s.mux.Handle("/api/wishlist", s.authenticated(s.handleWishlist))
	s.mux.Handle("/api/wishlist/toggle", s.authenticated(s.handleWishlistToggle))

	// profile
	s.mux.Handle("/api/users/me", s.authenticated(s.handleMe))
	s.mux.Handle("/api/users/update", s.authenticated(s.handleUpdateProfile))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// auth wrappers
type authHandler func(http.ResponseWriter, *http.Request, domain.User)

func (s *Server) authenticated(next authHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.requireUser(w, r)
		if !ok {
			return
		}
		next(w, r, user)
	})
}

// requireUser resolves the bearer token, writing a 401 on failure.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	token, ok := bearerToken(r)
	if !ok {
		s.audit(r, "auth.token.verify", "fail", "reason", "missing_token")
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return domain.User{}, false
	}
	user, ok, err := s.app.UserFromToken(token)
	if err != nil {
		s.internalError(w, r, err)
		return domain.User{}, false
	}
	if !ok {
		s.audit(r, "auth.token.verify", "fail", "reason", "invalid_or_expired")
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return domain.User{}, false
	}
	return user, true
}

func (s *Server) audit(r *http.Request, event, outcome string, attrs ...any) {
	logAttrs := []any{
		"event", event,
		"outcome", outcome,
		"path", r.URL.Path,
		"method", r.Method,
		"ip", util.ClientIP(r, s.trusted),
	}
	logAttrs = append(logAttrs, attrs...)
	if outcome == "success" {
		slog.Info("security_event", logAttrs...)
		return
	}
	slog.Warn("security_event", logAttrs...)
}

// allowRate passes when no limiter is configured.
func (s *Server) allowRate(w http.ResponseWriter, r *http.Request, limiter *ratelimit.FixedWindowLimiter, msg string) bool {
	if limiter == nil {
		return true
	}
	key := r.URL.Path + "|" + util.ClientIP(r, s.trusted)
	if limiter.Allow(key) {
		return true
	}
	w.Header().Set("Retry-After", "60")
	writeError(w, http.StatusTooManyRequests, msg)
	return false
}

// writeAppError maps application sentinels to HTTP statuses. Anything
// unrecognized is a 500 with a generic body and a logged diagnostic.
func (s *Server) writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, app.ErrEmailTaken):
		writeError(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, app.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, app.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, app.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, app.ErrScoreOutOfRange):
		writeError(w, http.StatusBadRequest, app.ErrScoreOutOfRange.Error())
	case errors.Is(err, app.ErrInvalidPage):
		writeError(w, http.StatusBadRequest, app.ErrInvalidPage.Error())
	default:
		s.internalError(w, r, err)
	}
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed",
		"path", r.URL.Path,
		"method", r.Method,
		"request_id", util.RequestIDFromRequest(r),
		"error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
