package model

import "time"

// PlayerRecord is a known player as stored in the player directory.
type PlayerRecord struct {
	ID            int64
	Puuid         Puuid
	GameName      string
	TagLine       string
	Platform      PlatformRoute
	SummonerLevel int
	ProSlug       string
}

// NewPlayer is a player discovered as a live game participant that is not
// yet in the directory. It carries no local id until inserted.
type NewPlayer struct {
	GameName      string
	TagLine       string
	Puuid         Puuid
	Platform      PlatformRoute
	SummonerLevel int
	ProfileIconID int
	UpdatedAt     time.Time
}

// Account is the display identity returned by the upstream account lookup.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}
