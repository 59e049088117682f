package riot

// CurrentGameInfo is the spectator-v5 active game payload.
type CurrentGameInfo struct {
	GameID            int64                    `json:"gameId"`
	GameType          string                   `json:"gameType"`
	GameMode          string                   `json:"gameMode"`
	GameStartTime     int64                    `json:"gameStartTime"`
	MapID             int                      `json:"mapId"`
	GameLength        int                      `json:"gameLength"`
	PlatformID        string                   `json:"platformId"`
	GameQueueConfigID *int                     `json:"gameQueueConfigId,omitempty"`
	Participants      []CurrentGameParticipant `json:"participants"`
}

// CurrentGameParticipant is one player of an active game. Puuid is nil or
// empty for players the upstream hides (e.g. bots or streamer mode).
type CurrentGameParticipant struct {
	Puuid         *string `json:"puuid"`
	ChampionID    int     `json:"championId"`
	Spell1ID      int     `json:"spell1Id"`
	Spell2ID      int     `json:"spell2Id"`
	TeamID        int     `json:"teamId"`
	ProfileIconID int     `json:"profileIconId"`
	RiotID        string  `json:"riotId,omitempty"`
	Bot           bool    `json:"bot"`
	Perks         *Perks  `json:"perks,omitempty"`
}

// Perks is the rune selection of a participant.
type Perks struct {
	PerkIDs      []int `json:"perkIds"`
	PerkStyle    int   `json:"perkStyle"`
	PerkSubStyle int   `json:"perkSubStyle"`
}

// PuuidValue returns the participant identity, "" when absent.
func (p CurrentGameParticipant) PuuidValue() string {
	if p.Puuid == nil {
		return ""
	}
	return *p.Puuid
}

// PrimaryAndSubStyle returns the first perk id and the sub style, zero for
// whatever is missing.
func (p CurrentGameParticipant) PrimaryAndSubStyle() (primary, subStyle int) {
	if p.Perks == nil {
		return 0, 0
	}
	if len(p.Perks.PerkIDs) > 0 {
		primary = p.Perks.PerkIDs[0]
	}
	return primary, p.Perks.PerkSubStyle
}
