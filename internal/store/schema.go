package store

// schema is applied in order on every Open; every statement is idempotent.
// Timestamps are unix seconds.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS summoners (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		puuid           TEXT    NOT NULL UNIQUE,
		game_name       TEXT    NOT NULL DEFAULT '',
		tag_line        TEXT    NOT NULL DEFAULT '',
		platform        TEXT    NOT NULL,
		summoner_level  INTEGER NOT NULL DEFAULT 0,
		profile_icon_id INTEGER NOT NULL DEFAULT 0,
		pro_player_slug TEXT,
		updated_at      INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS lol_matches (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		match_id  TEXT    NOT NULL UNIQUE,
		platform  TEXT    NOT NULL DEFAULT '',
		queue_id  INTEGER NOT NULL,
		match_end INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS lol_match_participants (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		lol_match_id INTEGER NOT NULL REFERENCES lol_matches(id) ON DELETE CASCADE,
		summoner_id  INTEGER NOT NULL REFERENCES summoners(id) ON DELETE CASCADE,
		champion_id  INTEGER NOT NULL,
		team_id      INTEGER NOT NULL,
		won          INTEGER NOT NULL DEFAULT 0,
		kills        INTEGER NOT NULL DEFAULT 0,
		deaths       INTEGER NOT NULL DEFAULT 0,
		assists      INTEGER NOT NULL DEFAULT 0,
		UNIQUE (lol_match_id, summoner_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_lmp_summoner ON lol_match_participants (summoner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lm_queue_end ON lol_matches (queue_id, match_end)`,
}
