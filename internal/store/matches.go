package store

import (
	"context"
	"fmt"
	"time"
)

// MatchRecord is a finished match with its participations, as written by
// the match history ingestion.
type MatchRecord struct {
	MatchID      string
	Platform     string
	QueueID      int
	MatchEnd     time.Time
	Participants []ParticipationRecord
}

// ParticipationRecord is one player's line in a finished match.
type ParticipationRecord struct {
	SummonerID int64
	ChampionID int
	TeamID     int
	Won        bool
	Kills      int
	Deaths     int
	Assists    int
}

// RecordMatch stores a finished match and its participations in one
// transaction and returns the match's local id. Recording a match id that
// already exists is an error.
func (s *Store) RecordMatch(ctx context.Context, m MatchRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning match insert: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		`INSERT INTO lol_matches (match_id, platform, queue_id, match_end) VALUES (?, ?, ?, ?)`,
		m.MatchID, m.Platform, m.QueueID, m.MatchEnd.Unix())
	if err != nil {
		return 0, fmt.Errorf("inserting match %s: %w", m.MatchID, err)
	}
	matchID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading id of match %s: %w", m.MatchID, err)
	}

	for _, p := range m.Participants {
		won := 0
		if p.Won {
			won = 1
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO lol_match_participants
				(lol_match_id, summoner_id, champion_id, team_id, won, kills, deaths, assists)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			matchID, p.SummonerID, p.ChampionID, p.TeamID, won, p.Kills, p.Deaths, p.Assists,
		); err != nil {
			return 0, fmt.Errorf("inserting participant %d of match %s: %w", p.SummonerID, m.MatchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing match %s: %w", m.MatchID, err)
	}
	return matchID, nil
}
