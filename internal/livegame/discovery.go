package livegame

import (
	"context"
	"fmt"

	"github.com/Guliveer/livegame-go/internal/model"
	"github.com/Guliveer/livegame-go/internal/riot"
	"github.com/Guliveer/livegame-go/internal/workerpool"
)

// discover looks up the display identity of every unresolved participant,
// inserts the players that could be resolved and returns their directory
// records. Failed lookups are dropped; only store failures are returned.
func (s *Service) discover(ctx context.Context, info *riot.CurrentGameInfo, unresolved []model.Puuid, platform model.PlatformRoute) (map[model.Puuid]model.PlayerRecord, error) {
	icons := make(map[model.Puuid]int, len(info.Participants))
	for _, p := range info.Participants {
		if v := p.PuuidValue(); v != "" {
			icons[model.NewPuuid(v)] = p.ProfileIconID
		}
	}

	region := platform.Regional()
	results := workerpool.Map(ctx, unresolved, len(unresolved), func(ctx context.Context, puuid model.Puuid) (*model.Account, error) {
		return s.source.Account(ctx, puuid.String(), region)
	})

	now := s.now()
	players := make([]model.NewPlayer, 0, len(results))
	for _, r := range results {
		if r.Err != nil || r.Value == nil {
			s.metrics.DiscoveryFailed()
			s.log.Debug("Account lookup failed, skipping participant", "puuid", r.Item.String(), "error", r.Err)
			continue
		}
		players = append(players, model.NewPlayer{
			GameName:      r.Value.GameName,
			TagLine:       r.Value.TagLine,
			Puuid:         r.Item,
			Platform:      platform,
			ProfileIconID: icons[r.Item],
			UpdatedAt:     now,
		})
	}
	if len(players) == 0 {
		return map[model.Puuid]model.PlayerRecord{}, nil
	}

	if err := s.players.BulkInsert(ctx, players); err != nil {
		return nil, fmt.Errorf("inserting discovered players: %w", err)
	}

	keys := make([]model.Puuid, len(players))
	for i, p := range players {
		keys[i] = p.Puuid
	}
	found, err := s.players.FindByPuuids(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("resolving discovered players: %w", err)
	}

	s.metrics.Discovered(len(found))
	s.log.Event(ctx, model.EventPlayerDiscovered, "Discovered new players",
		"count", len(found), "failed", len(unresolved)-len(players))
	return found, nil
}
