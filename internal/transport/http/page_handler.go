package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/livefeed-server/internal/core"
	"github.com/vovakirdan/livefeed-server/internal/render"
	"github.com/vovakirdan/livefeed-server/internal/utils"
)

// PageHandlers serves the one-shot HTML views.
type PageHandlers struct {
	feed     *core.Feed
	renderer *render.Renderer
	log      *zerolog.Logger
}

// NewPageHandlers creates a new page handlers instance.
func NewPageHandlers(feed *core.Feed, renderer *render.Renderer, logger *zerolog.Logger) *PageHandlers {
	return &PageHandlers{
		feed:     feed,
		renderer: renderer,
		log:      logger,
	}
}

// Home renders the full page against the current snapshot. Each visit gets a
// throwaway guest username used to prefill the submit form.
// GET /
func (h *PageHandlers) Home(c *gin.Context) {
	data := render.PageData{
		Username: "guest-" + utils.ShortID(),
		Posts:    h.feed.Snapshot(),
	}

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, data); err != nil {
		h.log.Error().Err(err).Msg("failed to render home page")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
