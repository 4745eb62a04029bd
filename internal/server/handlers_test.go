package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"greeter/internal/config"
	"greeter/internal/version"
)

const greeting = "Hello, World! This is a simple Node.js web app."

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Port:        config.DefaultPort,
		Greeting:    config.DefaultGreeting,
		LogRotation: config.DefaultLogRotation,
		Environment: config.ProductionEnv,
	}
	srv, err := New(cfg, version.Info{Version: "test"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func TestHandleRoot(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		target     string
		headers    map[string]string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "GET root",
			method:     http.MethodGet,
			target:     "/",
			wantStatus: http.StatusOK,
			wantBody:   greeting,
		},
		{
			name:       "GET root with query",
			method:     http.MethodGet,
			target:     "/?name=gopher&x=1",
			wantStatus: http.StatusOK,
			wantBody:   greeting,
		},
		{
			name:   "GET root with headers",
			method: http.MethodGet,
			target: "/",
			headers: map[string]string{
				"Accept":          "application/json",
				"Accept-Language": "fr",
			},
			wantStatus: http.StatusOK,
			wantBody:   greeting,
		},
		{
			name:       "HEAD root",
			method:     http.MethodHead,
			target:     "/",
			wantStatus: http.StatusOK,
			wantBody:   "",
		},
		{
			name:       "missing path",
			method:     http.MethodGet,
			target:     "/missing",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "nested path",
			method:     http.MethodGet,
			target:     "/a/b/c",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "POST root",
			method:     http.MethodPost,
			target:     "/",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "DELETE root",
			method:     http.MethodDelete,
			target:     "/",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			body, _ := io.ReadAll(rec.Body)
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
				t.Errorf("Content-Type = %q, want text/plain; charset=utf-8", ct)
			}
		})
	}
}

func TestCustomGreeting(t *testing.T) {
	cfg := &config.Config{
		Port:        8080,
		Greeting:    "Howdy",
		Environment: config.DevelopmentEnv,
	}
	srv, err := New(cfg, version.Info{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Body.String() != "Howdy" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "Howdy")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(nil, version.Info{}); err == nil {
		t.Error("New(nil) error = nil, want error")
	}

	cfg := &config.Config{Port: 0, Greeting: "hi", Environment: config.ProductionEnv}
	if _, err := New(cfg, version.Info{}); err == nil {
		t.Error("New() with port 0 error = nil, want error")
	}
}
