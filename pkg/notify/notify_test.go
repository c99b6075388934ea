package notify

import (
	"context"
	"errors"
	"testing"
)

type stubTransport struct {
	err   error
	calls int
}

func (s *stubTransport) Send(_ context.Context, _ string, _ float64, _ string) error {
	s.calls++
	return s.err
}

func TestDispatch_Success(t *testing.T) {
	transport := &stubTransport{}
	d := NewDispatcher(transport)

	if !d.Dispatch(context.Background(), "0712345678", 2500, "MC-1-1") {
		t.Fatal("expected dispatch to report success")
	}
	if transport.calls != 1 {
		t.Fatalf("expected 1 send, got %d", transport.calls)
	}
}

func TestDispatch_SwallowsTransportError(t *testing.T) {
	transport := &stubTransport{err: errors.New("provider down")}
	d := NewDispatcher(transport)

	// failure is logged, never panics or propagates
	if d.Dispatch(context.Background(), "0712345678", 2500, "MC-1-2") {
		t.Fatal("expected dispatch to report failure")
	}
}

func TestLogTransport_NeverFails(t *testing.T) {
	if err := (LogTransport{}).Send(context.Background(), "0712345678", 1500, "MC-1-3"); err != nil {
		t.Fatalf("log transport returned error: %v", err)
	}
}
