package http

import (
	"context"
	"io"
	stdhttp "net/http"
	"testing"
	"time"

	"humanize/internal/platform/config"

	"github.com/go-chi/chi/v5"
)

func TestNewServer_AddrAndTimeouts(t *testing.T) {
	t.Setenv("API_PORT", "4100")
	t.Setenv("READ_TIMEOUT", " 2s ")
	t.Setenv("WRITE_TIMEOUT", "1m")

	s := NewServer(config.New())
	if s.Addr() != ":4100" {
		t.Fatalf("addr = %q", s.Addr())
	}
	if s.srv.ReadTimeout != 2*time.Second || s.srv.WriteTimeout != time.Minute {
		t.Fatalf("timeouts = %v / %v", s.srv.ReadTimeout, s.srv.WriteTimeout)
	}
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:0")
	s := NewServer(config.New(), func(m *chi.Mux) {
		m.Get("/ping", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte("pong")) })
	})
	if err := s.Listen(); err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	resp, err := stdhttp.Get("http://" + s.Addr() + "/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "pong" {
		t.Fatalf("body = %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}
