package http

import (
	"context"
	"errors"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/livefeed-server/internal/proto"
	"github.com/vovakirdan/livefeed-server/internal/utils"
)

// WS streams feed snapshots as JSON frames over a websocket. The connection
// is write-only: clients submit posts through POST /posts like everyone else.
// GET /ws
func (h *StreamHandlers) WS(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	streamID := utils.NewStreamID()

	sub := h.feed.Subscribe()
	defer sub.Close()

	h.log.Debug().Str("stream_id", streamID).Msg("ws stream opened")

	ctx := c.Request.Context()
	for {
		version, err := sub.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				conn.Close(websocket.StatusNormalClosure, "closing")
			} else {
				conn.Close(websocket.StatusGoingAway, "shutting down")
			}
			h.log.Debug().Err(err).Str("stream_id", streamID).Msg("ws stream closed")
			return
		}

		frame := proto.Snapshot{
			Type:    proto.OutboundTypeSnapshot,
			Version: version,
			Posts:   h.feed.Snapshot(),
		}
		writeCtx, cancel := context.WithTimeout(ctx, h.writeTimeout)
		err = wsjson.Write(writeCtx, conn, frame)
		cancel()
		if err != nil {
			h.log.Warn().Err(err).Str("stream_id", streamID).Msg("ws write failed, dropping stream")
			return
		}
	}
}
