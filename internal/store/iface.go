package store

import (
	"context"
	"time"

	"github.com/Guliveer/livegame-go/internal/model"
)

// PlayerDirectory is the store of known players. *Store satisfies it.
type PlayerDirectory interface {
	FindPuuidByID(ctx context.Context, id int64) (model.Puuid, error)
	FindByPuuids(ctx context.Context, puuids []model.Puuid) (map[model.Puuid]model.PlayerRecord, error)
	BulkInsert(ctx context.Context, players []model.NewPlayer) error
}

// StatsSource runs the historical champion stats query. *Store satisfies it.
type StatsSource interface {
	ChampionStats(ctx context.Context, summonerIDs []int64, queueID int, since time.Time) ([]ChampionStatsRow, error)
}

// EncounterSource runs the batched encounter query. *Store satisfies it.
type EncounterSource interface {
	EncounterCounts(ctx context.Context, viewerID int64, candidateIDs []int64) (map[int64]int, error)
}

// ChampionStatsRow is one (player, champion) group of the stats query.
type ChampionStatsRow struct {
	SummonerID int64
	ChampionID int
	TotalMatch int
	TotalWin   int
	AvgKills   float64
	AvgDeaths  float64
	AvgAssists float64
}
