package testutil

import (
	"context"
	"net/http"
)

// StubServer implements the server package's httpServer seam for tests.
type StubServer struct {
	ListenCalls   int
	ShutdownCalls int
	ListenErr     error
	ShutdownErr   error
	AddrVal       string
	HandlerVal    http.Handler
}

func (s *StubServer) ListenAndServe() error {
	s.ListenCalls++
	return s.ListenErr
}

func (s *StubServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.ShutdownCalls++
	return s.ShutdownErr
}

func (s *StubServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubServer) Handler() http.Handler { return s.HandlerVal }
