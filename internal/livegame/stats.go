package livegame

import (
	"github.com/Guliveer/livegame-go/internal/model"
	"github.com/Guliveer/livegame-go/internal/store"
	"github.com/Guliveer/livegame-go/internal/utils"
)

// championTable is player id -> champion id -> historical stats. Players
// without history have no entry at all.
type championTable map[int64]map[int]model.ChampionStats

func buildChampionTable(rows []store.ChampionStatsRow) championTable {
	t := make(championTable)
	for _, r := range rows {
		byChampion, ok := t[r.SummonerID]
		if !ok {
			byChampion = make(map[int]model.ChampionStats)
			t[r.SummonerID] = byChampion
		}
		byChampion[r.ChampionID] = model.ChampionStats{
			TotalPlayed: r.TotalMatch,
			TotalWins:   r.TotalWin,
			AvgKills:    utils.FloatRound(r.AvgKills, 2),
			AvgDeaths:   utils.FloatRound(r.AvgDeaths, 2),
			AvgAssists:  utils.FloatRound(r.AvgAssists, 2),
		}
	}
	return t
}

// champion returns the player's stats on championID, nil when absent.
func (t championTable) champion(summonerID int64, championID int) *model.ChampionStats {
	cs, ok := t[summonerID][championID]
	if !ok {
		return nil
	}
	return &cs
}

// ranked folds all of the player's champion stats, nil when the player has
// no history in the window.
func (t championTable) ranked(summonerID int64) *model.RankedSummary {
	byChampion, ok := t[summonerID]
	if !ok || len(byChampion) == 0 {
		return nil
	}
	var sum model.RankedSummary
	for _, cs := range byChampion {
		sum.TotalRanked += cs.TotalPlayed
		sum.TotalRankedWins += cs.TotalWins
	}
	return &sum
}
