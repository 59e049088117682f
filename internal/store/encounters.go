package store

import (
	"context"
	"fmt"
)

// EncounterCounts returns, for each candidate, the number of distinct
// recorded matches the viewer and the candidate both played in. Candidates
// without a shared match, and the viewer itself, are absent from the result.
func (s *Store) EncounterCounts(ctx context.Context, viewerID int64, candidateIDs []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(candidateIDs))
	if len(candidateIDs) == 0 {
		return out, nil
	}

	args := []any{viewerID}
	args = append(args, int64Args(candidateIDs)...)
	args = append(args, viewerID)

	rows, err := s.db.QueryContext(ctx, `
		SELECT lmp.summoner_id, COUNT(DISTINCT lmp.lol_match_id) AS match_count
		FROM lol_match_participants AS lmp
			JOIN lol_match_participants AS tm
				ON tm.lol_match_id = lmp.lol_match_id AND tm.summoner_id = ?
		WHERE lmp.summoner_id IN `+inClause(len(candidateIDs))+`
			AND lmp.summoner_id != ?
		GROUP BY lmp.summoner_id`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying encounters for summoner %d: %w", viewerID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    int64
			count int
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scanning encounter row: %w", err)
		}
		out[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating encounter rows: %w", err)
	}
	return out, nil
}
