package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/livefeed-server/internal/config"
	"github.com/vovakirdan/livefeed-server/internal/core"
	"github.com/vovakirdan/livefeed-server/internal/render"
)

// testEnv bundles the wired components behind a running httptest server.
type testEnv struct {
	ts   *httptest.Server
	feed *core.Feed
	svc  *core.FeedService
}

// startTestServer wires a fresh feed behind an httptest server.
func startTestServer(t *testing.T) *testEnv {
	t.Helper()

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	feed := core.NewFeed(core.NewSignal(), core.FeedOptions{})
	svc := core.NewFeedService(feed)

	cfg := config.Config{
		Addr:               ":0",
		ReadHeaderTimeout:  time.Second,
		ShutdownTimeout:    time.Second,
		StreamWriteTimeout: time.Second,
	}

	disabledLogger := zerolog.New(nil)
	server := NewServer(feed, svc, renderer, cfg, &disabledLogger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return &testEnv{ts: ts, feed: feed, svc: svc}
}
