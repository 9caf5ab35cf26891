package app

import (
	"context"
	"fmt"
	"net"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/livefeed-server/internal/config"
	"github.com/vovakirdan/livefeed-server/internal/core"
	"github.com/vovakirdan/livefeed-server/internal/render"
	transporthttp "github.com/vovakirdan/livefeed-server/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	feed            *core.Feed
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	signal := core.NewSignal()
	feed := core.NewFeed(signal, core.FeedOptions{
		MaxContentBytes: cfg.MaxContentBytes,
		MaxPosts:        cfg.MaxPosts,
	})
	svc := core.NewFeedService(feed)

	logger.Info().
		Int("max_content_bytes", cfg.MaxContentBytes).
		Int("max_posts", cfg.MaxPosts).
		Msg("feed initialized")

	server := transporthttp.NewServer(feed, svc, renderer, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		feed:            feed,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
// Cancellation also tears down every open streaming connection: request
// contexts derive from ctx, so blocked subscriptions unwind promptly.
func (a *App) Run(ctx context.Context) error {
	a.server.BaseContext = func(_ net.Listener) context.Context {
		return ctx
	}

	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Int("posts", a.feed.Len()).Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
