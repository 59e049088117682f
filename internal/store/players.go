package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Guliveer/livegame-go/internal/model"
	"github.com/Guliveer/livegame-go/internal/utils"
)

// FindPuuidByID returns the identity of the player with local id id, or
// ErrNotFound.
func (s *Store) FindPuuidByID(ctx context.Context, id int64) (model.Puuid, error) {
	var puuid string
	err := s.db.QueryRowContext(ctx, `SELECT puuid FROM summoners WHERE id = ?`, id).Scan(&puuid)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Puuid{}, ErrNotFound
	}
	if err != nil {
		return model.Puuid{}, fmt.Errorf("finding summoner %d: %w", id, err)
	}
	return model.NewPuuid(puuid), nil
}

// FindByPuuids returns the known players among puuids, keyed by identity.
// Unknown identities are simply absent from the result.
func (s *Store) FindByPuuids(ctx context.Context, puuids []model.Puuid) (map[model.Puuid]model.PlayerRecord, error) {
	out := make(map[model.Puuid]model.PlayerRecord, len(puuids))
	if len(puuids) == 0 {
		return out, nil
	}

	args := make([]any, len(puuids))
	for i, p := range puuids {
		args[i] = p.String()
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, puuid, game_name, tag_line, platform, summoner_level, pro_player_slug
		FROM summoners
		WHERE puuid IN `+inClause(len(puuids)), args...)
	if err != nil {
		return nil, fmt.Errorf("finding summoners by puuid: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rec      model.PlayerRecord
			puuid    string
			platform string
			proSlug  sql.NullString
		)
		if err := rows.Scan(&rec.ID, &puuid, &rec.GameName, &rec.TagLine, &platform, &rec.SummonerLevel, &proSlug); err != nil {
			return nil, fmt.Errorf("scanning summoner row: %w", err)
		}
		rec.Puuid = model.NewPuuid(puuid)
		rec.Platform = model.PlatformRoute(platform)
		rec.ProSlug = proSlug.String
		out[rec.Puuid] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating summoner rows: %w", err)
	}
	return out, nil
}

// BulkInsert inserts newly discovered players in one transaction. Players
// whose identity already exists are left untouched, so concurrent discovery
// of the same player never creates a duplicate.
func (s *Store) BulkInsert(ctx context.Context, players []model.NewPlayer) error {
	if len(players) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning summoner insert: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO summoners (puuid, game_name, tag_line, platform, summoner_level, profile_icon_id, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (puuid) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("preparing summoner insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range players {
		if _, err := stmt.ExecContext(ctx,
			p.Puuid.String(), p.GameName, p.TagLine, string(p.Platform),
			p.SummonerLevel, p.ProfileIconID, p.UpdatedAt.Unix(),
		); err != nil {
			return fmt.Errorf("inserting summoner %s: %w", p.Puuid, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing summoner insert: %w", err)
	}
	return nil
}

// SetProPlayerSlug marks a player as notable. The name is normalized to a
// slug; an empty slug clears the marker.
func (s *Store) SetProPlayerSlug(ctx context.Context, id int64, name string) error {
	var slug any
	if v := utils.Slugify(name); v != "" {
		slug = v
	}
	res, err := s.db.ExecContext(ctx, `UPDATE summoners SET pro_player_slug = ? WHERE id = ?`, slug, id)
	if err != nil {
		return fmt.Errorf("setting pro slug for summoner %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
