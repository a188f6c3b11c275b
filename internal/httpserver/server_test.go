package httpserver

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/config"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
)

func TestServerServeAndStop(t *testing.T) {
	log := logger.NewNop()
	d := deps.Deps{Logger: log, StartTime: time.Now(), Version: "test"}
	s := New(&config.Config{ListenPort: "127.0.0.1:0"}, log, d)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() { done <- s.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := <-done; err != nil {
		t.Errorf("Serve returned %v after graceful stop", err)
	}
}
