package http

import (
	"fmt"
	"io"
	stdhttp "net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/livefeed-server/internal/core"
	"github.com/vovakirdan/livefeed-server/internal/render"
	"github.com/vovakirdan/livefeed-server/internal/utils"
)

// StreamHandlers serves the long-lived feed streams (SSE and websocket).
// One subscription is created per connection; a write failure or client
// disconnect ends only that connection, never the feed.
type StreamHandlers struct {
	feed         *core.Feed
	renderer     *render.Renderer
	writeTimeout time.Duration
	log          *zerolog.Logger
}

// NewStreamHandlers creates a new stream handlers instance.
func NewStreamHandlers(feed *core.Feed, renderer *render.Renderer, writeTimeout time.Duration, logger *zerolog.Logger) *StreamHandlers {
	return &StreamHandlers{
		feed:         feed,
		renderer:     renderer,
		writeTimeout: writeTimeout,
		log:          logger,
	}
}

// Events streams the rendered feed over Server-Sent Events. The first event
// is the current snapshot (a late subscriber never waits for an append to
// see existing posts), then one event per coalesced change until the client
// disconnects or the server shuts down.
// GET /events
func (h *StreamHandlers) Events(c *gin.Context) {
	flusher, ok := c.Writer.(stdhttp.Flusher)
	if !ok {
		c.JSON(stdhttp.StatusInternalServerError, ErrorResponse{Error: "streaming not supported"})
		return
	}

	streamID := utils.NewStreamID()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// Each write gets a deadline so a stalled client cannot pin the
	// handler goroutine; deadline support depends on the underlying
	// ResponseWriter, so degrade gracefully when it is missing.
	rc := stdhttp.NewResponseController(c.Writer)
	deadlinesSupported := true

	emit := func(version uint64) error {
		html, err := h.renderer.Feed(h.feed.Snapshot())
		if err != nil {
			return fmt.Errorf("render feed: %w", err)
		}
		if deadlinesSupported {
			if err := rc.SetWriteDeadline(time.Now().Add(h.writeTimeout)); err != nil {
				h.log.Debug().Err(err).Str("stream_id", streamID).Msg("sse write deadlines not supported")
				deadlinesSupported = false
			}
		}
		if err := writeSSEData(c.Writer, fmt.Sprintf("%d", version), html); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	sub := h.feed.Subscribe()
	defer sub.Close()

	h.log.Debug().Str("stream_id", streamID).Msg("sse stream opened")

	ctx := c.Request.Context()
	for {
		// The subscription starts behind the current version, so the
		// first pass emits the initial snapshot without waiting.
		version, err := sub.Next(ctx)
		if err != nil {
			// Client disconnect or server shutdown.
			h.log.Debug().Err(err).Str("stream_id", streamID).Msg("sse stream closed")
			return
		}
		if err := emit(version); err != nil {
			h.log.Warn().Err(err).Str("stream_id", streamID).Msg("sse write failed, dropping stream")
			return
		}
	}
}

// writeSSEData writes one SSE event, splitting the payload so embedded
// newlines stay within the event.
func writeSSEData(w io.Writer, id, data string) error {
	if _, err := fmt.Fprintf(w, "id: %s\n", id); err != nil {
		return err
	}
	for _, line := range strings.Split(data, "\n") {
		if _, err := fmt.Fprintf(w, "data: %s\n", line); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
