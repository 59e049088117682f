package riot

import (
	"context"

	"github.com/Guliveer/livegame-go/internal/model"
)

// MatchSource is the upstream surface used by the live game pipeline.
// *Client satisfies this interface.
type MatchSource interface {
	// CurrentGame returns the match the player is in, or nil (and no error)
	// when the player is not in a game.
	CurrentGame(ctx context.Context, puuid string, platform model.PlatformRoute) (*CurrentGameInfo, error)
	// Account resolves a player identity to its display identity.
	Account(ctx context.Context, puuid string, region model.RegionalRoute) (*model.Account, error)
}
