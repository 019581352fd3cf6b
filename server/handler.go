package server

import (
	"net/http"
)

// Body is the response every request receives.
const Body = "Hello, World!"

type (
	handler struct {
		m *http.ServeMux
	}
)

// NewHandler returns a handler that answers every request, regardless of
// method, path, headers or body, with status 200 and the fixed body.
func NewHandler() *handler {
	h := &handler{
		m: http.NewServeMux(),
	}
	h.m.HandleFunc("/", h.hello)
	return h
}

func (h *handler) hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(Body))
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.m.ServeHTTP(w, r)
}
