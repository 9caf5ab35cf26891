package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/livefeed-server/internal/core"
)

// PostHandlers provides HTTP handlers for the submit and JSON read endpoints.
type PostHandlers struct {
	feed *core.Feed
	svc  *core.FeedService
	log  *zerolog.Logger
}

// NewPostHandlers creates a new post handlers instance.
func NewPostHandlers(feed *core.Feed, svc *core.FeedService, logger *zerolog.Logger) *PostHandlers {
	return &PostHandlers{
		feed: feed,
		svc:  svc,
		log:  logger,
	}
}

// CreatePostRequest represents the submit body, accepted as form data (the
// htmx page) or JSON (API clients). Domain limits live in core; binding only
// rejects structurally broken bodies.
type CreatePostRequest struct {
	Author    string `form:"author" json:"author" binding:"required"`
	Content   string `form:"content" json:"content"`
	AvatarRef string `form:"avatar_ref" json:"avatar_ref"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Create handles post submission.
// POST /posts
func (h *PostHandlers) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid create post request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	post, err := h.svc.CreatePost(req.Author, req.Content, req.AvatarRef)
	if err != nil {
		var coreErr *core.CoreError
		if errors.As(err, &coreErr) {
			h.log.Debug().Str("code", coreErr.Code).Str("author", req.Author).Msg("post rejected")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: coreErr.Message})
			return
		}
		h.log.Error().Err(err).Msg("failed to create post")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	h.log.Info().Str("post_id", post.ID).Str("author", post.Author).Msg("post created")
	c.JSON(http.StatusCreated, post)
}

// List returns the current snapshot as JSON.
// GET /api/posts
func (h *PostHandlers) List(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.JSON(http.StatusOK, h.feed.Snapshot())
}
