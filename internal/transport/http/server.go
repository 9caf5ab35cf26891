package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/livefeed-server/internal/config"
	"github.com/vovakirdan/livefeed-server/internal/core"
	"github.com/vovakirdan/livefeed-server/internal/render"
)

// NewServer builds the HTTP server with all feed routes.
func NewServer(feed *core.Feed, svc *core.FeedService, renderer *render.Renderer, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	pages := NewPageHandlers(feed, renderer, logger)
	posts := NewPostHandlers(feed, svc, logger)
	streams := NewStreamHandlers(feed, renderer, cfg.StreamWriteTimeout, logger)

	router.GET("/", pages.Home)
	router.GET("/health", healthHandler)
	router.GET("/events", streams.Events)
	router.GET("/ws", streams.WS)
	router.POST("/posts", posts.Create)
	router.GET("/api/posts", posts.List)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
