package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/Guliveer/livegame-go/internal/livegame"
	"github.com/Guliveer/livegame-go/internal/model"
)

const (
	feedWriteTimeout = 10 * time.Second

	// statusPlayerNotFound is an application close code (4000-4999 range).
	statusPlayerNotFound websocket.StatusCode = 4404
)

func (s *Server) handleLiveFeed(w http.ResponseWriter, r *http.Request) {
	platform, viewerID, msg := parseLiveParams(r)
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.Warn("Websocket upgrade failed", "viewer", viewerID, "error", err)
		return
	}
	defer conn.CloseNow() //nolint:errcheck

	// The feed is write-only; CloseRead handles control frames and cancels
	// ctx once the client goes away.
	ctx := conn.CloseRead(r.Context())

	s.log.Event(ctx, model.EventFeedOpened, "Live feed opened", "viewer", viewerID, "platform", platform.String())
	err = s.service.Watch(ctx, viewerID, platform, s.feedInterval, func(ctx context.Context, u livegame.Update) error {
		wctx, cancel := context.WithTimeout(ctx, feedWriteTimeout)
		defer cancel()
		return wsjson.Write(wctx, conn, u)
	})

	switch {
	case errors.Is(err, livegame.ErrPlayerNotFound):
		conn.Close(statusPlayerNotFound, "player not found") //nolint:errcheck
	case err != nil && ctx.Err() == nil:
		s.log.Error("Live feed failed", "viewer", viewerID, "error", err)
		conn.Close(websocket.StatusInternalError, "internal error") //nolint:errcheck
	default:
		conn.Close(websocket.StatusNormalClosure, "") //nolint:errcheck
	}
	s.log.Event(context.Background(), model.EventFeedClosed, "Live feed closed", "viewer", viewerID)
}
