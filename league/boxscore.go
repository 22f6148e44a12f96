package league

// PlayerLine is one player's stat line in a single game.
type PlayerLine struct {
	PlayerID string `json:"playerId"`
	Minutes  int    `json:"minutes"`
	Points   int    `json:"points"`
	Rebounds int    `json:"rebounds"`
	Assists  int    `json:"assists"`
	Steals   int    `json:"steals"`
	Blocks   int    `json:"blocks"`
	Turnover int    `json:"turnovers"`
	FGM      int    `json:"fgm"`
	FGA      int    `json:"fga"`
	TPM      int    `json:"tpm"`
	TPA      int    `json:"tpa"`
	FTM      int    `json:"ftm"`
	FTA      int    `json:"fta"`
	Fouls    int    `json:"fouls"`
}

// BoxScore is the structured output of one simulated game. Team scores are
// accumulated event by event alongside the player lines, so the home score
// always equals the sum of home player points (and likewise away).
type BoxScore struct {
	HomeScore   int          `json:"homeScore"`
	AwayScore   int          `json:"awayScore"`
	Home        []PlayerLine `json:"home"`
	Away        []PlayerLine `json:"away"`
	Possessions int          `json:"possessions"`
	Overtimes   int          `json:"overtimes"`
}

// Winner reports "home" or "away". Simulated games never end tied.
func (b *BoxScore) Winner() string {
	if b.HomeScore > b.AwayScore {
		return "home"
	}
	return "away"
}
