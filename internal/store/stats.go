package store

import (
	"context"
	"fmt"
	"time"
)

// ChampionStats groups the participations of summonerIDs in queueID games
// that ended at or after since, by (player, champion).
func (s *Store) ChampionStats(ctx context.Context, summonerIDs []int64, queueID int, since time.Time) ([]ChampionStatsRow, error) {
	if len(summonerIDs) == 0 {
		return nil, nil
	}

	args := int64Args(summonerIDs)
	args = append(args, queueID, since.Unix())

	rows, err := s.db.QueryContext(ctx, `
		SELECT
			lmp.summoner_id,
			lmp.champion_id,
			COUNT(lmp.lol_match_id)                AS total_match,
			SUM(CASE WHEN lmp.won THEN 1 ELSE 0 END) AS total_win,
			AVG(lmp.kills)                         AS avg_kills,
			AVG(lmp.deaths)                        AS avg_deaths,
			AVG(lmp.assists)                       AS avg_assists
		FROM lol_match_participants AS lmp
			JOIN lol_matches AS lm ON lmp.lol_match_id = lm.id
		WHERE lmp.summoner_id IN `+inClause(len(summonerIDs))+`
			AND lm.queue_id = ?
			AND lm.match_end >= ?
		GROUP BY lmp.summoner_id, lmp.champion_id`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying champion stats: %w", err)
	}
	defer rows.Close()

	var out []ChampionStatsRow
	for rows.Next() {
		var r ChampionStatsRow
		if err := rows.Scan(&r.SummonerID, &r.ChampionID, &r.TotalMatch, &r.TotalWin,
			&r.AvgKills, &r.AvgDeaths, &r.AvgAssists); err != nil {
			return nil, fmt.Errorf("scanning champion stats row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating champion stats rows: %w", err)
	}
	return out, nil
}
