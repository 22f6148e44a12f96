package league

import "sort"

// Phase is one stage of the season state machine.
type Phase string

const (
	PhaseRegular    Phase = "regular"
	PhasePlayoffs   Phase = "playoffs"
	PhaseOffseason  Phase = "offseason"
	PhaseDraft      Phase = "draft"
	PhaseFreeAgency Phase = "free_agency"
)

// Game is one schedule entry. Result stays nil until the game is played
// and is immutable once set.
type Game struct {
	ID      string    `json:"id"`
	Day     int       `json:"day"`
	HomeID  string    `json:"homeId"`
	AwayID  string    `json:"awayId"`
	Playoff bool      `json:"playoff,omitempty"`
	Result  *BoxScore `json:"result,omitempty"`
}

// Transaction is one append-only audit entry.
type Transaction struct {
	Year      int      `json:"year"`
	Day       int      `json:"day"`
	Kind      string   `json:"kind"`
	Detail    string   `json:"detail"`
	TeamIDs   []string `json:"teamIds,omitempty"`
	PlayerIDs []string `json:"playerIds,omitempty"`
}

const (
	TxTrade   = "trade"
	TxSigning = "signing"
	TxRelease = "release"
	TxDraft   = "draft"
	TxRetire  = "retirement"
)

// TeamRecord is one derived standings row.
type TeamRecord struct {
	TeamID    string
	Wins      int
	Losses    int
	PointDiff int
}

// winPct avoids a zero division before any games are played.
func (r TeamRecord) winPct() float64 {
	games := r.Wins + r.Losses
	if games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(games)
}

// LeagueState is the aggregate the whole engine operates on. Players and
// teams live in flat slices; cross-references are IDs resolved through the
// unexported index maps, which are rebuilt after deserialization. Exactly
// one logical actor mutates a LeagueState at a time.
type LeagueState struct {
	Seed     int64    `json:"seed"`
	Year     int      `json:"year"`
	Day      int      `json:"day"`
	Phase    Phase    `json:"phase"`
	// PhaseStart is the league day the current phase began, used to size
	// the fixed-length offseason and free agency windows.
	PhaseStart int      `json:"phaseStart"`
	Settings   Settings `json:"settings"`

	Teams      []*Team   `json:"teams"`
	Players    []*Player `json:"players"`
	FreeAgents []string  `json:"freeAgents"`

	Schedule []*Game        `json:"schedule"`
	Playoffs *Bracket       `json:"playoffs,omitempty"`
	Draft    *DraftState    `json:"draft,omitempty"`
	Log      []Transaction  `json:"log"`

	UserTeamID string `json:"userTeamId"`

	teamIndex   map[string]*Team
	playerIndex map[string]*Player
}

// Reindex rebuilds the ID lookup maps. Call after constructing or
// deserializing a state, and after appending to Teams or Players.
func (ls *LeagueState) Reindex() {
	ls.teamIndex = make(map[string]*Team, len(ls.Teams))
	for _, t := range ls.Teams {
		ls.teamIndex[t.ID] = t
	}
	ls.playerIndex = make(map[string]*Player, len(ls.Players))
	for _, p := range ls.Players {
		ls.playerIndex[p.ID] = p
	}
}

// Team resolves a team ID, nil if unknown.
func (ls *LeagueState) Team(id string) *Team {
	return ls.teamIndex[id]
}

// Player resolves a player ID, nil if unknown.
func (ls *LeagueState) Player(id string) *Player {
	return ls.playerIndex[id]
}

// addPlayer appends a player to the arena and index.
func (ls *LeagueState) addPlayer(p *Player) {
	ls.Players = append(ls.Players, p)
	ls.playerIndex[p.ID] = p
}

// appendLog records one transaction at the current league date.
func (ls *LeagueState) appendLog(kind, detail string, teamIDs, playerIDs []string) {
	ls.Log = append(ls.Log, Transaction{
		Year:      ls.Year,
		Day:       ls.Day,
		Kind:      kind,
		Detail:    detail,
		TeamIDs:   teamIDs,
		PlayerIDs: playerIDs,
	})
}

// Record derives a team's current-season record from completed regular
// season schedule entries. Nothing caches this, so it cannot drift.
func (ls *LeagueState) Record(teamID string) TeamRecord {
	rec := TeamRecord{TeamID: teamID}
	for _, g := range ls.Schedule {
		if g.Result == nil || g.Playoff {
			continue
		}
		switch teamID {
		case g.HomeID:
			rec.PointDiff += g.Result.HomeScore - g.Result.AwayScore
			if g.Result.HomeScore > g.Result.AwayScore {
				rec.Wins++
			} else {
				rec.Losses++
			}
		case g.AwayID:
			rec.PointDiff += g.Result.AwayScore - g.Result.HomeScore
			if g.Result.AwayScore > g.Result.HomeScore {
				rec.Wins++
			} else {
				rec.Losses++
			}
		}
	}
	return rec
}

// Standings returns every team's derived record, best first. Ties break on
// point differential and then team ID so ordering is deterministic.
func (ls *LeagueState) Standings() []TeamRecord {
	recs := make([]TeamRecord, 0, len(ls.Teams))
	for _, t := range ls.Teams {
		recs = append(recs, ls.Record(t.ID))
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].winPct() != recs[j].winPct() {
			return recs[i].winPct() > recs[j].winPct()
		}
		if recs[i].PointDiff != recs[j].PointDiff {
			return recs[i].PointDiff > recs[j].PointDiff
		}
		return recs[i].TeamID < recs[j].TeamID
	})
	return recs
}

// reverseStandings returns team IDs worst first, same tie-breaks.
func (ls *LeagueState) reverseStandings() []string {
	recs := ls.Standings()
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[len(recs)-1-i] = r.TeamID
	}
	return ids
}
