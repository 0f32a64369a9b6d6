package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"bookhive/internal/app"
	"bookhive/internal/store"
)

func TestSigninRateLimit(t *testing.T) {
	redis := miniredis.RunT(t)
	st := store.NewMemoryStore()
	sessions := store.NewJWTSessionStore("test-secret", time.Hour)
	core := app.New(st, sessions, nil)
	srv, err := New(Config{
		App:                      core,
		RedisAddr:                redis.Addr(),
		SignupRateLimitPerMinute: 10,
		SigninRateLimitPerMinute: 1,
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	status, _ := doJSON(t, http.MethodPost, ts.URL+"/api/auth/signup", "", map[string]string{
		"username": "ann", "email": "ann@example.com", "password": "hunter22",
	})
	if status != http.StatusCreated {
		t.Fatalf("signup status = %d", status)
	}

	creds := map[string]string{"email": "ann@example.com", "password": "hunter22"}
	status, _ = doJSON(t, http.MethodPost, ts.URL+"/api/auth/signin", "", creds)
	if status != http.StatusOK {
		t.Fatalf("first signin status = %d, want 200", status)
	}
	status, _ = doJSON(t, http.MethodPost, ts.URL+"/api/auth/signin", "", creds)
	if status != http.StatusTooManyRequests {
		t.Fatalf("second signin status = %d, want 429", status)
	}
}

func TestRateLimitingDisabledWithoutRedis(t *testing.T) {
	ts, _ := newTestServer(t)
	for i := 0; i < 20; i++ {
		status, _ := doJSON(t, http.MethodPost, ts.URL+"/api/auth/signin", "", map[string]string{
			"email": "nobody@example.com", "password": "x",
		})
		if status == http.StatusTooManyRequests {
			t.Fatalf("request %d rate limited with no redis configured", i)
		}
	}
}
