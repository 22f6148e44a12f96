package league

import "fmt"

// Matchup is one single-elimination pairing. WinnerID stays empty until
// the game resolves.
type Matchup struct {
	HighSeed string `json:"highSeed"`
	LowSeed  string `json:"lowSeed"`
	GameID   string `json:"gameId,omitempty"`
	WinnerID string `json:"winnerId,omitempty"`
}

// BracketRound is one round of the bracket, first round first.
type BracketRound struct {
	Number   int        `json:"number"`
	Matchups []*Matchup `json:"matchups"`
}

// Bracket is the playoff tree for one season.
type Bracket struct {
	Year       int             `json:"year"`
	Rounds     []*BracketRound `json:"rounds"`
	ChampionID string          `json:"championId,omitempty"`
}

// newBracket seeds the configured number of teams from final standings
// into standard bracket order (1v8, 4v5, 3v6, 2v7) so that re-seeding is
// never needed between rounds.
func newBracket(ls *LeagueState) *Bracket {
	n := ls.Settings.PlayoffTeams
	recs := ls.Standings()
	if n > len(recs) {
		n = len(recs)
	}
	// Round down to a power of two.
	for n&(n-1) != 0 {
		n--
	}
	seeds := make([]string, n)
	for i := 0; i < n; i++ {
		seeds[i] = recs[i].TeamID
	}

	order := bracketOrder(n)
	round := &BracketRound{Number: 1}
	for i := 0; i < len(order); i += 2 {
		round.Matchups = append(round.Matchups, &Matchup{
			HighSeed: seeds[order[i]],
			LowSeed:  seeds[order[i+1]],
		})
	}
	return &Bracket{Year: ls.Year, Rounds: []*BracketRound{round}}
}

// bracketOrder returns seed indices (0-based) in matchup order for a
// bracket of size n, computed by the classic fold: 1v n, pairing so the
// top two seeds can only meet in the final.
func bracketOrder(n int) []int {
	order := []int{0}
	for len(order) < n {
		next := make([]int, 0, len(order)*2)
		for _, s := range order {
			next = append(next, s, len(order)*2-1-s)
		}
		order = next
	}
	return order
}

// currentRound returns the deepest round, nil when the bracket is done.
func (b *Bracket) currentRound() *BracketRound {
	if b == nil || len(b.Rounds) == 0 {
		return nil
	}
	return b.Rounds[len(b.Rounds)-1]
}

// advancePlayoffRound plays every unresolved matchup in the current round
// (higher seed at home), then builds the next round or crowns a champion.
func (ls *LeagueState) advancePlayoffRound() ([]*Game, error) {
	round := ls.Playoffs.currentRound()
	if round == nil {
		return nil, &ScheduleExhaustedError{Phase: ls.Phase}
	}

	var games []*Game
	for i, m := range round.Matchups {
		if m.WinnerID != "" {
			continue
		}
		g := &Game{
			ID:      fmt.Sprintf("playoff-%d-r%d-m%d", ls.Year, round.Number, i+1),
			Day:     ls.Day,
			HomeID:  m.HighSeed,
			AwayID:  m.LowSeed,
			Playoff: true,
		}
		ls.Schedule = append(ls.Schedule, g)
		if err := ls.playGame(g); err != nil {
			return nil, err
		}
		m.GameID = g.ID
		if g.Result.Winner() == "home" {
			m.WinnerID = m.HighSeed
		} else {
			m.WinnerID = m.LowSeed
		}
		games = append(games, g)
	}

	if len(round.Matchups) == 1 {
		ls.Playoffs.ChampionID = round.Matchups[0].WinnerID
		return games, nil
	}

	next := &BracketRound{Number: round.Number + 1}
	for i := 0; i < len(round.Matchups); i += 2 {
		next.Matchups = append(next.Matchups, &Matchup{
			HighSeed: round.Matchups[i].WinnerID,
			LowSeed:  round.Matchups[i+1].WinnerID,
		})
	}
	ls.Playoffs.Rounds = append(ls.Playoffs.Rounds, next)
	return games, nil
}
