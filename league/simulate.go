package league

import (
	"math"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
)

// regulation game length in minutes of floor time per lineup slot.
const gameMinutes = 48

// possessions added per team when a game goes to overtime.
const overtimePossessions = 10

// cap on overtime periods before the deciding free throw; keeps the
// simulation O(possessions) even in pathological rating matchups.
const maxOvertimes = 4

// simTeam is the working state for one side of a simulated game.
type simTeam struct {
	players []*Player    // rotation, best first
	lines   []PlayerLine // parallel to players
	floor   []int        // per-player possessions played
	score   int
}

// SimulateGame resolves one game between two rosters. It is pure: the same
// rosters and seed always produce an identical box score, and no league
// state is touched. The caller applies the result.
//
// The model runs a fixed number of alternating team possessions. Each
// possession draws discrete events (turnover, foul, shot, rebound) from
// distributions parameterized by the involved players' ratings, degraded
// by accumulated floor time.
func SimulateGame(home, away []*Player, seed int64, s Settings) (*BoxScore, error) {
	if err := checkRoster(home); err != nil {
		return nil, err
	}
	if err := checkRoster(away); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	h := newSimTeam(home, s.RotationSize)
	a := newSimTeam(away, s.RotationSize)

	poss := s.PossessionsPerTeam
	if poss <= 0 {
		poss = DefaultSettings().PossessionsPerTeam
	}

	for t := 0; t < poss; t++ {
		h.runPossession(a, t, poss, rng, s, s.HomeCourtBonus)
		a.runPossession(h, t, poss, rng, s, 0)
	}

	overtimes := 0
	totalPoss := poss
	for h.score == a.score && overtimes < maxOvertimes {
		overtimes++
		for t := 0; t < overtimePossessions; t++ {
			h.runPossession(a, totalPoss+t, totalPoss+overtimePossessions, rng, s, s.HomeCourtBonus)
			a.runPossession(h, totalPoss+t, totalPoss+overtimePossessions, rng, s, 0)
		}
		totalPoss += overtimePossessions
	}
	if h.score == a.score {
		// Deciding free throw by the better shooter; keeps the per-player
		// lines consistent with the final score.
		decideTie(h, a)
	}

	box := &BoxScore{
		HomeScore:   h.score,
		AwayScore:   a.score,
		Home:        h.finish(totalPoss),
		Away:        a.finish(totalPoss),
		Possessions: totalPoss,
		Overtimes:   overtimes,
	}
	logrus.Debugf("simulated game: %d-%d over %d possessions (%d OT)",
		box.HomeScore, box.AwayScore, box.Possessions, box.Overtimes)
	return box, nil
}

func checkRoster(roster []*Player) error {
	active := 0
	teamID := ""
	for _, p := range roster {
		if p == nil {
			continue
		}
		teamID = p.TeamID
		if !p.Retired {
			active++
		}
	}
	if active < len(Positions) {
		return &InvalidRosterError{TeamID: teamID, Size: active}
	}
	return nil
}

func newSimTeam(roster []*Player, rotation int) *simTeam {
	players := make([]*Player, 0, len(roster))
	for _, p := range roster {
		if p != nil && !p.Retired {
			players = append(players, p)
		}
	}
	sort.SliceStable(players, func(i, j int) bool {
		oi, oj := players[i].Overall(), players[j].Overall()
		if oi != oj {
			return oi > oj
		}
		return players[i].ID < players[j].ID
	})
	if rotation < len(Positions) {
		rotation = DefaultSettings().RotationSize
	}
	if len(players) > rotation {
		players = players[:rotation]
	}
	st := &simTeam{
		players: players,
		lines:   make([]PlayerLine, len(players)),
		floor:   make([]int, len(players)),
	}
	for i, p := range players {
		st.lines[i].PlayerID = p.ID
	}
	return st
}

// lineup returns the player indices on the floor for possession t. The
// starting five take three of every four possessions; the bench unit mixes
// in the top two players with the reserves for the rest.
func (st *simTeam) lineup(t int) []int {
	if t%4 == 3 && len(st.players) > len(Positions) {
		out := []int{0, 1}
		for i := len(Positions); i < len(st.players) && len(out) < len(Positions); i++ {
			out = append(out, i)
		}
		for i := 2; len(out) < len(Positions); i++ {
			out = append(out, i)
		}
		return out
	}
	out := make([]int, 0, len(Positions))
	for i := 0; i < len(Positions) && i < len(st.players); i++ {
		out = append(out, i)
	}
	return out
}

// effective scales a rating by the player's accumulated fatigue.
func (st *simTeam) effective(idx, rating, t, totalPoss int, s Settings) float64 {
	slope := s.FatigueSlope
	if slope <= 0 {
		slope = DefaultSettings().FatigueSlope
	}
	load := float64(st.floor[idx]) / math.Max(1, float64(totalPoss))
	mult := 1 - slope*load
	if mult < 0.6 {
		mult = 0.6
	}
	return float64(rating) * mult
}

// weightedPick selects an index from weights, which must be non-empty.
func weightedPick(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return i
		}
	}
	return len(weights) - 1
}

// runPossession plays one offensive possession for st against def.
func (st *simTeam) runPossession(def *simTeam, t, totalPoss int, rng *rand.Rand, s Settings, bonus float64) {
	off := st.lineup(t)
	d := def.lineup(t)
	for _, idx := range off {
		st.floor[idx]++
	}
	for _, idx := range d {
		def.floor[idx]++
	}

	// Turnover pressure: defensive steals against the handler's control.
	handler := st.pickBy(off, rng, func(p *Player) float64 {
		return float64(p.Ratings.BallHandling + p.Ratings.Passing)
	})
	stealer := def.pickBy(d, rng, func(p *Player) float64 {
		return float64(p.Ratings.Stealing + p.Ratings.PerimeterDefense)
	})
	handling := st.effective(handler, st.players[handler].Ratings.BallHandling, t, totalPoss, s)
	stealing := def.effective(stealer, def.players[stealer].Ratings.Stealing, t, totalPoss, s)
	pTurnover := 0.08 + (stealing-handling)/800
	if rng.Float64() < clampProb(pTurnover, 0.02, 0.25) {
		st.lines[handler].Turnover++
		if rng.Float64() < 0.55 {
			def.lines[stealer].Steals++
		}
		return
	}

	// Shooting foul before the attempt.
	if rng.Float64() < 0.09 {
		shooter := st.pickBy(off, rng, func(p *Player) float64 {
			return usage(p)
		})
		fouler := d[rng.Intn(len(d))]
		def.lines[fouler].Fouls++
		ft := st.effective(shooter, st.players[shooter].Ratings.FreeThrow, t, totalPoss, s)
		pMake := clampProb(0.45+ft/160, 0.40, 0.95)
		for shot := 0; shot < 2; shot++ {
			st.lines[shooter].FTA++
			if rng.Float64() < pMake {
				st.lines[shooter].FTM++
				st.lines[shooter].Points++
				st.score++
			}
		}
		return
	}

	// Shot attempts; an offensive rebound earns a putback try, bounded.
	for attempt := 0; attempt < 3; attempt++ {
		shooter := st.pickBy(off, rng, func(p *Player) float64 {
			return usage(p)
		})
		sp := st.players[shooter]

		three := rng.Float64() < clampProb(0.15+float64(sp.Ratings.ThreePoint)/250, 0.05, 0.55)
		var pMake float64
		if three {
			shoot := st.effective(shooter, sp.Ratings.ThreePoint, t, totalPoss, s)
			contest := def.effective(d[0], defenseAvg(def, d, true), t, totalPoss, s)
			pMake = 0.28 + shoot/400 - contest/900 + bonus/100
		} else {
			shoot := st.effective(shooter, sp.Ratings.InsideScoring+sp.Ratings.MidRange, t, totalPoss, s) / 2
			contest := def.effective(d[0], defenseAvg(def, d, false), t, totalPoss, s)
			pMake = 0.42 + shoot/350 - contest/900 + bonus/100
		}
		pMake = clampProb(pMake, 0.15, 0.75)

		st.lines[shooter].FGA++
		if three {
			st.lines[shooter].TPA++
		}

		if rng.Float64() < pMake {
			points := 2
			if three {
				points = 3
				st.lines[shooter].TPM++
			}
			st.lines[shooter].FGM++
			st.lines[shooter].Points += points
			st.score += points
			// Assist on most made baskets, by the best remaining passer.
			if rng.Float64() < 0.58 {
				passer := st.bestBy(off, shooter, func(p *Player) float64 {
					return float64(p.Ratings.Passing)
				})
				if passer >= 0 {
					st.lines[passer].Assists++
				}
			}
			return
		}

		// Miss. Interior misses can be blocked.
		if !three {
			blocker := def.bestBy(d, -1, func(p *Player) float64 {
				return float64(p.Ratings.Blocking)
			})
			if blocker >= 0 && rng.Float64() < clampProb(float64(def.players[blocker].Ratings.Blocking)/900, 0.01, 0.12) {
				def.lines[blocker].Blocks++
			}
		}

		// Rebound battle.
		oreb := st.pickBy(off, rng, func(p *Player) float64 {
			return float64(p.Ratings.OffensiveRebounding)
		})
		dreb := def.pickBy(d, rng, func(p *Player) float64 {
			return float64(p.Ratings.DefensiveRebounding)
		})
		oStrength := st.effective(oreb, st.players[oreb].Ratings.OffensiveRebounding, t, totalPoss, s)
		dStrength := def.effective(dreb, def.players[dreb].Ratings.DefensiveRebounding, t, totalPoss, s)
		if rng.Float64() < clampProb(0.22+(oStrength-dStrength)/500, 0.10, 0.40) {
			st.lines[oreb].Rebounds++
			continue // putback attempt
		}
		def.lines[dreb].Rebounds++
		return
	}
}

// usage weighs how often a player ends possessions with a shot.
func usage(p *Player) float64 {
	return float64(p.Ratings.InsideScoring + p.Ratings.MidRange + p.Ratings.ThreePoint)
}

// defenseAvg averages the relevant defensive rating of the on-floor unit.
func defenseAvg(st *simTeam, lineup []int, perimeter bool) int {
	total := 0
	for _, idx := range lineup {
		if perimeter {
			total += st.players[idx].Ratings.PerimeterDefense
		} else {
			total += st.players[idx].Ratings.InteriorDefense
		}
	}
	return total / len(lineup)
}

// pickBy draws one lineup index with probability proportional to weight.
func (st *simTeam) pickBy(lineup []int, rng *rand.Rand, weight func(*Player) float64) int {
	weights := make([]float64, len(lineup))
	for i, idx := range lineup {
		weights[i] = weight(st.players[idx])
	}
	return lineup[weightedPick(rng, weights)]
}

// bestBy returns the lineup index maximizing weight, skipping one index,
// with ID tie-break for determinism. Returns -1 for an empty lineup.
func (st *simTeam) bestBy(lineup []int, skip int, weight func(*Player) float64) int {
	best := -1
	var bestW float64
	for _, idx := range lineup {
		if idx == skip {
			continue
		}
		w := weight(st.players[idx])
		if best == -1 || w > bestW || (w == bestW && st.players[idx].ID < st.players[best].ID) {
			best, bestW = idx, w
		}
	}
	return best
}

func clampProb(p, lo, hi float64) float64 {
	if p < lo {
		return lo
	}
	if p > hi {
		return hi
	}
	return p
}

// decideTie awards a single made free throw to whichever side has the
// better shooter, home first on equal ratings.
func decideTie(h, a *simTeam) {
	hIdx := h.bestBy(h.lineup(0), -1, func(p *Player) float64 { return float64(p.Ratings.FreeThrow) })
	aIdx := a.bestBy(a.lineup(0), -1, func(p *Player) float64 { return float64(p.Ratings.FreeThrow) })
	winner, idx := h, hIdx
	if a.players[aIdx].Ratings.FreeThrow > h.players[hIdx].Ratings.FreeThrow {
		winner, idx = a, aIdx
	}
	winner.lines[idx].FTA++
	winner.lines[idx].FTM++
	winner.lines[idx].Points++
	winner.score++
}

// finish converts on-floor possession counts into minutes and returns the
// final player lines.
func (st *simTeam) finish(totalPoss int) []PlayerLine {
	for i := range st.lines {
		st.lines[i].Minutes = int(math.Round(float64(st.floor[i]) / float64(totalPoss) * gameMinutes))
	}
	return st.lines
}
