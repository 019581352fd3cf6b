package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func assertHelloResponse(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != Body {
		t.Fatalf("expected body %q, got %q", Body, got)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected text/plain content type, got %q", ct)
	}
}

func TestHandler_RespondsToRoot(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assertHelloResponse(t, rec)
}

func TestHandler_RespondsToAnyMethod(t *testing.T) {
	h := NewHandler()

	for _, method := range []string{"GET", "HEAD", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"} {
		req := httptest.NewRequest(method, "/", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s /: expected status 200, got %d", method, rec.Code)
		}
	}
}

func TestHandler_RespondsToAnyPath(t *testing.T) {
	h := NewHandler()

	paths := []string{
		"/",
		"/unknown_route",
		"/deeply/nested/path",
		"/with?query=params&x=1",
		"/trailing/",
	}
	for _, path := range paths {
		req := httptest.NewRequest("GET", path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assertHelloResponse(t, rec)
	}
}

func TestHandler_IgnoresRequestBody(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest("POST", "/submit", strings.NewReader("some payload"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assertHelloResponse(t, rec)
}
