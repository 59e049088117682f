// Package livegame answers "is this player in a game right now" with a fully
// enriched snapshot of the match. Snapshots are shared between all of a
// match's participants through Cache; encounter counts are computed per
// viewer on every request.
package livegame

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Guliveer/livegame-go/internal/config"
	"github.com/Guliveer/livegame-go/internal/constants"
	"github.com/Guliveer/livegame-go/internal/logger"
	"github.com/Guliveer/livegame-go/internal/metrics"
	"github.com/Guliveer/livegame-go/internal/model"
	"github.com/Guliveer/livegame-go/internal/riot"
	"github.com/Guliveer/livegame-go/internal/store"
)

// ErrPlayerNotFound is returned when the viewer id is not in the directory.
var ErrPlayerNotFound = errors.New("player not found")

// Deps are the collaborators of a Service.
type Deps struct {
	Cache      *Cache
	Source     riot.MatchSource
	Players    store.PlayerDirectory
	Stats      store.StatsSource
	Encounters store.EncounterSource
	Metrics    *metrics.Metrics
}

// Service orchestrates cache lookups, upstream fetches, discovery, stats
// aggregation and annotation.
type Service struct {
	cache     *Cache
	source    riot.MatchSource
	players   store.PlayerDirectory
	stats     store.StatsSource
	annotator *Annotator
	metrics   *metrics.Metrics
	log       *logger.Logger

	rankedQueueID int
	cutoff        time.Time
	now           func() time.Time

	// inflight collapses concurrent misses for the same viewer identity.
	inflight singleflight.Group
}

// NewService wires a Service. cfg sets the historical stats window.
func NewService(deps Deps, cfg config.StatsConfig, log *logger.Logger) *Service {
	return &Service{
		cache:         deps.Cache,
		source:        deps.Source,
		players:       deps.Players,
		stats:         deps.Stats,
		annotator:     NewAnnotator(deps.Encounters),
		metrics:       deps.Metrics,
		log:           log.WithComponent("livegame"),
		rankedQueueID: cfg.RankedQueueID,
		cutoff:        cfg.Cutoff,
		now:           time.Now,
	}
}

// LiveGame returns the live game of the player with local id viewerID,
// annotated with that player's encounter counts. It returns (nil, nil) when
// the player is not in a game or the upstream could not be reached.
func (s *Service) LiveGame(ctx context.Context, viewerID int64, platform model.PlatformRoute) (*model.LiveGame, error) {
	puuid, err := s.players.FindPuuidByID(ctx, viewerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrPlayerNotFound, viewerID)
	}
	if err != nil {
		return nil, fmt.Errorf("resolving viewer %d: %w", viewerID, err)
	}

	game, ok := s.cache.Get(puuid)
	if ok {
		s.log.Debug("Live game served from cache", "event", model.EventCacheHit,
			"viewer", viewerID, "match_id", game.GameID.String())
	} else {
		var err error
		game, err = s.fetchShared(ctx, puuid, platform)
		if err != nil {
			return nil, err
		}
	}
	if game == nil {
		return nil, nil
	}

	return s.annotator.Annotate(ctx, viewerID, game)
}

// fetchShared joins or starts the flight for puuid. The flight ignores the
// cancellation of whichever caller started it; each caller stops waiting
// when its own ctx ends.
func (s *Service) fetchShared(ctx context.Context, puuid model.Puuid, platform model.PlatformRoute) (*model.LiveGame, error) {
	ch := s.inflight.DoChan(puuid.String(), func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.DefaultLiveFetchTimeout)
		defer cancel()
		return s.fetch(fctx, puuid, platform)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*model.LiveGame), nil
	}
}

// fetch runs the miss path: upstream fetch, discovery, stats, assembly and
// cache population.
func (s *Service) fetch(ctx context.Context, puuid model.Puuid, platform model.PlatformRoute) (*model.LiveGame, error) {
	// Another participant of the same match may have filled the cache while
	// this call waited.
	if game, ok := s.cache.Get(puuid); ok {
		return game, nil
	}

	info, err := s.source.CurrentGame(ctx, puuid.String(), platform)
	if err != nil {
		s.metrics.UpstreamFailure()
		s.log.Warn("Current game fetch failed, reporting no live game",
			"event", model.EventUpstreamFailure, "puuid", puuid.String(), "platform", platform.String(), "error", err)
		return nil, nil
	}
	if info == nil {
		s.log.Debug("Player not in game", "event", model.EventLiveGameAbsent, "puuid", puuid.String())
		return nil, nil
	}

	keys := participantPuuids(info)
	players, err := s.players.FindByPuuids(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("resolving participants: %w", err)
	}

	var unresolved []model.Puuid
	for _, k := range keys {
		if _, ok := players[k]; !ok {
			unresolved = append(unresolved, k)
		}
	}
	if len(unresolved) > 0 {
		discovered, err := s.discover(ctx, info, unresolved, matchPlatform(info, platform))
		if err != nil {
			return nil, err
		}
		for k, rec := range discovered {
			players[k] = rec
		}
	}

	ids := make([]int64, 0, len(players))
	for _, rec := range players {
		ids = append(ids, rec.ID)
	}
	rows, err := s.stats.ChampionStats(ctx, ids, s.rankedQueueID, s.cutoff)
	if err != nil {
		return nil, fmt.Errorf("aggregating champion stats: %w", err)
	}

	game := assemble(info, players, buildChampionTable(rows))
	s.cache.Put(game.GameID, game.Puuids(), game)

	s.log.Event(ctx, model.EventLiveGameFound, "Live game cached",
		"match_id", game.GameID.String(), "queue", game.Queue.Name(), "participants", len(game.Participants))
	return game, nil
}

// matchPlatform prefers the platform reported by the match record over the
// one requested.
func matchPlatform(info *riot.CurrentGameInfo, requested model.PlatformRoute) model.PlatformRoute {
	if p, ok := model.ParsePlatformRoute(info.PlatformID); ok {
		return p
	}
	return requested
}
