package livegame

import (
	"context"
	"errors"
	"time"

	"github.com/Guliveer/livegame-go/internal/model"
)

// Update is one push of a live feed. Game is nil when the player is not in
// a game.
type Update struct {
	InGame bool            `json:"in_game"`
	Game   *model.LiveGame `json:"game,omitempty"`
}

// Watch polls the viewer's live game every interval, starting immediately,
// and hands each result to send. It stops when ctx is cancelled (returning
// nil), when send fails, or on a lookup error.
func (s *Service) Watch(ctx context.Context, viewerID int64, platform model.PlatformRoute, interval time.Duration, send func(context.Context, Update) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}
		game, err := s.LiveGame(ctx, viewerID, platform)
		if err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				return nil
			}
			return err
		}
		if err := send(ctx, Update{InGame: game != nil, Game: game}); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
