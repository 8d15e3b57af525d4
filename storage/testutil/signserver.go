package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"
)

// SignServer emulates the remote service behind signed URLs. Issued
// URLs carry an expiry timestamp; the server rejects transfers arriving
// after it with 403, the way real backends enforce signed URL validity.
type SignServer struct {
	srv *httptest.Server

	mu      sync.Mutex
	objects map[string][]byte
}

// NewSignServer starts a SignServer. Callers must Close it.
func NewSignServer() *SignServer {
	s := &SignServer{objects: make(map[string][]byte)}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Close shuts the server down.
func (s *SignServer) Close() { s.srv.Close() }

// SignedURL issues a URL for key that the server honors until expiry
// has elapsed.
func (s *SignServer) SignedURL(key string, expiry time.Duration) string {
	deadline := time.Now().Add(expiry).Unix()
	return fmt.Sprintf("%s/%s?expires=%d", s.srv.URL, key, deadline)
}

// Object returns the uploaded content for key and whether it exists.
func (s *SignServer) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

func (s *SignServer) handle(w http.ResponseWriter, r *http.Request) {
	deadline, err := strconv.ParseInt(r.URL.Query().Get("expires"), 10, 64)
	if err != nil {
		http.Error(w, "SignatureDoesNotMatch", http.StatusForbidden)
		return
	}
	if time.Now().Unix() > deadline {
		http.Error(w, "Request has expired", http.StatusForbidden)
		return
	}

	key := r.URL.Path[1:]
	switch r.Method {
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "read error", http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.objects[key] = body
		s.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		s.mu.Lock()
		data, ok := s.objects[key]
		s.mu.Unlock()
		if !ok {
			http.Error(w, "NoSuchKey", http.StatusNotFound)
			return
		}
		_, _ = w.Write(data)
	default:
		http.Error(w, "MethodNotAllowed", http.StatusMethodNotAllowed)
	}
}
