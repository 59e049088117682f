package model

// LiveGame is the assembled snapshot of one in-progress match. A LiveGame
// held by the cache is shared by every participant key and every reader;
// it must not be mutated after construction. Use WithEncounters to obtain a
// per-viewer copy.
type LiveGame struct {
	GameID       MatchID       `json:"game_id"`
	GameLength   int           `json:"game_length"`
	Map          Map           `json:"map"`
	Queue        Queue         `json:"queue"`
	Participants []Participant `json:"participants"`
}

// Participant is one resolved player of a live game.
type Participant struct {
	SummonerID             int64          `json:"summoner_id"`
	Puuid                  Puuid          `json:"puuid"`
	ChampionID             int            `json:"champion_id"`
	SummonerSpell1ID       int            `json:"summoner_spell1_id"`
	SummonerSpell2ID       int            `json:"summoner_spell2_id"`
	PerkPrimarySelectionID int            `json:"perk_primary_selection_id"`
	PerkSubStyleID         int            `json:"perk_sub_style_id"`
	GameName               string         `json:"game_name"`
	TagLine                string         `json:"tag_line"`
	Platform               PlatformRoute  `json:"platform"`
	SummonerLevel          int            `json:"summoner_level"`
	TeamID                 int            `json:"team_id"`
	ChampionStats          *ChampionStats `json:"champion_stats,omitempty"`
	RankedStats            *RankedSummary `json:"ranked_stats,omitempty"`
	EncounterCount         int            `json:"encounter_count"`
	ProPlayerSlug          *ProSlug       `json:"pro_player_slug,omitempty"`
}

// ChampionStats is a player's historical performance on one champion.
type ChampionStats struct {
	TotalPlayed int     `json:"total_champion_played"`
	TotalWins   int     `json:"total_champion_wins"`
	AvgKills    float64 `json:"avg_kills"`
	AvgDeaths   float64 `json:"avg_deaths"`
	AvgAssists  float64 `json:"avg_assists"`
}

// RankedSummary folds a player's ranked games across all champions.
type RankedSummary struct {
	TotalRanked     int `json:"total_ranked"`
	TotalRankedWins int `json:"total_ranked_wins"`
}

// SummonerIDs returns the local ids of all participants, in order.
func (g *LiveGame) SummonerIDs() []int64 {
	ids := make([]int64, 0, len(g.Participants))
	for _, p := range g.Participants {
		ids = append(ids, p.SummonerID)
	}
	return ids
}

// Puuids returns the identities of all participants, in order.
func (g *LiveGame) Puuids() []Puuid {
	keys := make([]Puuid, 0, len(g.Participants))
	for _, p := range g.Participants {
		keys = append(keys, p.Puuid)
	}
	return keys
}

// WithEncounters returns a copy of the game whose participants carry the
// encounter counts from counts (missing ids count as zero). The receiver is
// left untouched, so it is safe to call on a shared snapshot.
func (g *LiveGame) WithEncounters(counts map[int64]int) *LiveGame {
	out := *g
	out.Participants = make([]Participant, len(g.Participants))
	copy(out.Participants, g.Participants)
	for i := range out.Participants {
		out.Participants[i].EncounterCount = counts[out.Participants[i].SummonerID]
	}
	return &out
}
