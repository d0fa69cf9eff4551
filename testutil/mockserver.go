package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

const (
	throttleStatus = http.StatusServiceUnavailable
	contentJSON    = "application/json"
)

type Reply struct {
	Status      int
	ContentType string
	Body        string
}

func JSONReply(status int, value any) Reply {
	body, err := json.Marshal(value)
	if err != nil {
		panic("testutil: cannot marshal reply: " + err.Error())
	}

	return Reply{Status: status, ContentType: contentJSON, Body: string(body)}
}

func RawReply(status int, body string) Reply {
	return Reply{Status: status, ContentType: "text/plain", Body: body}
}

// ThrottleReply is LiquidPlanner's rate-limit answer.
func ThrottleReply(message string) Reply {
	return JSONReply(throttleStatus, map[string]string{
		"type":    "Error",
		"error":   "Throttled",
		"message": message,
	})
}

type RecordedRequest struct {
	Method     string
	Path       string
	RawQuery   string
	Header     http.Header
	Body       []byte
	Username   string
	Password   string
	HasAuth    bool
	ReceivedAt time.Time
}

// MockServer answers with the scripted replies in order and keeps repeating
// the last one once the script runs out.
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	replies  []Reply
	requests []RecordedRequest
}

func NewMockServer(t *testing.T, replies ...Reply) *MockServer {
	t.Helper()

	mock := newMockServer(replies)
	mock.Server = httptest.NewServer(http.HandlerFunc(mock.serveHTTP))
	t.Cleanup(mock.Close)

	return mock
}

func NewMockTLSServer(t *testing.T, replies ...Reply) *MockServer {
	t.Helper()

	mock := newMockServer(replies)
	mock.Server = httptest.NewTLSServer(http.HandlerFunc(mock.serveHTTP))
	t.Cleanup(mock.Close)

	return mock
}

func newMockServer(replies []Reply) *MockServer {
	return &MockServer{
		Server:   nil,
		mu:       sync.Mutex{},
		replies:  replies,
		requests: make([]RecordedRequest, 0),
	}
}

func (s *MockServer) Enqueue(replies ...Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replies = append(s.replies, replies...)
}

func (s *MockServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)

	return out
}

func (s *MockServer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

func (s *MockServer) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	username, password, hasAuth := r.BasicAuth()

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:     r.Method,
		Path:       r.URL.Path,
		RawQuery:   r.URL.RawQuery,
		Header:     r.Header.Clone(),
		Body:       body,
		Username:   username,
		Password:   password,
		HasAuth:    hasAuth,
		ReceivedAt: time.Now(),
	})

	reply := JSONReply(http.StatusOK, map[string]any{})

	switch {
	case len(s.replies) > 1:
		reply = s.replies[0]
		s.replies = s.replies[1:]
	case len(s.replies) == 1:
		reply = s.replies[0]
	}
	s.mu.Unlock()

	if reply.ContentType != "" {
		w.Header().Set("Content-Type", reply.ContentType)
	}

	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}
