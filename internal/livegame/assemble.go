package livegame

import (
	"github.com/Guliveer/livegame-go/internal/model"
	"github.com/Guliveer/livegame-go/internal/riot"
)

// participantPuuids returns the distinct non-empty identities of the match,
// in participant order.
func participantPuuids(info *riot.CurrentGameInfo) []model.Puuid {
	seen := make(map[model.Puuid]struct{}, len(info.Participants))
	keys := make([]model.Puuid, 0, len(info.Participants))
	for _, p := range info.Participants {
		v := p.PuuidValue()
		if v == "" {
			continue
		}
		k := model.NewPuuid(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// assemble builds the snapshot from the upstream record and the resolved
// players. Participants without an identity, or whose identity did not
// resolve to a known player, are left out, and an identity listed twice is
// kept once. Encounter counts are zero.
func assemble(info *riot.CurrentGameInfo, players map[model.Puuid]model.PlayerRecord, stats championTable) *model.LiveGame {
	game := &model.LiveGame{
		GameID:       model.FormatMatchID(info.GameID, info.PlatformID),
		GameLength:   info.GameLength,
		Map:          model.MapFromID(info.MapID),
		Queue:        model.QueueFromOptionalID(info.GameQueueConfigID),
		Participants: make([]model.Participant, 0, len(info.Participants)),
	}

	emitted := make(map[model.Puuid]struct{}, len(info.Participants))
	for _, p := range info.Participants {
		v := p.PuuidValue()
		if v == "" {
			continue
		}
		rec, ok := players[model.NewPuuid(v)]
		if !ok {
			continue
		}
		if _, dup := emitted[rec.Puuid]; dup {
			continue
		}
		emitted[rec.Puuid] = struct{}{}

		primary, subStyle := p.PrimaryAndSubStyle()
		part := model.Participant{
			SummonerID:             rec.ID,
			Puuid:                  rec.Puuid,
			ChampionID:             p.ChampionID,
			SummonerSpell1ID:       p.Spell1ID,
			SummonerSpell2ID:       p.Spell2ID,
			PerkPrimarySelectionID: primary,
			PerkSubStyleID:         subStyle,
			GameName:               rec.GameName,
			TagLine:                rec.TagLine,
			Platform:               rec.Platform,
			SummonerLevel:          rec.SummonerLevel,
			TeamID:                 p.TeamID,
			ChampionStats:          stats.champion(rec.ID, p.ChampionID),
			RankedStats:            stats.ranked(rec.ID),
		}
		if rec.ProSlug != "" {
			slug := model.NewProSlug(rec.ProSlug)
			part.ProPlayerSlug = &slug
		}
		game.Participants = append(game.Participants, part)
	}
	return game
}
