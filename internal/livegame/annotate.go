package livegame

import (
	"context"
	"fmt"

	"github.com/Guliveer/livegame-go/internal/model"
	"github.com/Guliveer/livegame-go/internal/store"
)

// Annotator fills in viewer-relative encounter counts.
type Annotator struct {
	source store.EncounterSource
}

// NewAnnotator creates an Annotator backed by source.
func NewAnnotator(source store.EncounterSource) *Annotator {
	return &Annotator{source: source}
}

// Annotate returns a copy of game whose participants carry the number of
// prior matches each shares with viewerID. All participants are counted in
// one query. game itself is not modified.
func (a *Annotator) Annotate(ctx context.Context, viewerID int64, game *model.LiveGame) (*model.LiveGame, error) {
	counts, err := a.source.EncounterCounts(ctx, viewerID, game.SummonerIDs())
	if err != nil {
		return nil, fmt.Errorf("counting encounters for summoner %d: %w", viewerID, err)
	}
	return game.WithEncounters(counts), nil
}
