package league

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// DraftPick is one slot in the draft order. TeamID is the team on the
// clock, which differs from OriginalTeamID when the pick was traded.
// PlayerID fills in once the selection is made.
type DraftPick struct {
	Overall        int    `json:"overall"`
	Round          int    `json:"round"`
	TeamID         string `json:"teamId"`
	OriginalTeamID string `json:"originalTeamId"`
	PlayerID       string `json:"playerId,omitempty"`
}

// DraftState holds one draft from lottery to last pick. Pool lists the
// prospect IDs still on the board.
type DraftState struct {
	Year     int          `json:"year"`
	Order    []*DraftPick `json:"order"`
	NextPick int          `json:"nextPick"`
	Pool     []string     `json:"pool"`
}

// Complete reports whether every slot has selected.
func (d *DraftState) Complete() bool {
	return d.NextPick >= len(d.Order)
}

// OnClock returns the team holding the next selection, empty when done.
func (d *DraftState) OnClock() string {
	if d.Complete() {
		return ""
	}
	return d.Order[d.NextPick].TeamID
}

// initDraft generates the incoming class, runs the lottery, resolves
// traded pick ownership, and installs the draft state. The class year is
// the season about to begin, matching the pick refs teams hold.
func (ls *LeagueState) initDraft() error {
	draftYear := ls.Year + 1
	s := ls.Settings

	classSize := len(ls.Teams)*s.DraftRounds + s.DraftClassExtra
	rng := Stream(ls.Seed, StreamGenerator, yearPart(draftYear))
	pool := make([]string, 0, classSize)
	for i := 0; i < classSize; i++ {
		id := fmt.Sprintf("d-%d-%03d", draftYear, i+1)
		pos := Positions[i%len(Positions)]
		p := genPlayer(rng, s, id, pos, tierProspect, 19+rng.Intn(4))
		p.Potential = clampRating(p.Overall() + 10 + rng.Intn(25))
		p.DraftYear = draftYear
		p.Contract = Contract{}
		ls.addPlayer(p)
		pool = append(pool, id)
	}

	baseOrder := ls.lotteryOrder(draftYear)

	d := &DraftState{Year: draftYear, Pool: pool}
	overall := 0
	for round := 1; round <= s.DraftRounds; round++ {
		for _, originalID := range baseOrder {
			overall++
			ref := PickRef{Year: draftYear, Round: round, OriginalTeamID: originalID}
			owner := ls.pickOwner(ref)
			if owner == nil {
				return &ValidationError{Op: "draft", Detail: fmt.Sprintf("no owner for pick %d-R%d (%s)", ref.Year, ref.Round, ref.OriginalTeamID)}
			}
			owner.removePick(ref)
			d.Order = append(d.Order, &DraftPick{
				Overall:        overall,
				Round:          round,
				TeamID:         owner.ID,
				OriginalTeamID: originalID,
			})
		}
	}
	ls.Draft = d
	logrus.Infof("year %d draft: %d prospects, %s on the clock", draftYear, classSize, d.OnClock())
	return nil
}

// pickOwner finds the team currently holding a pick ref.
func (ls *LeagueState) pickOwner(ref PickRef) *Team {
	for _, t := range ls.Teams {
		if t.HasPick(ref) {
			return t
		}
	}
	return nil
}

// lotteryOrder returns the original-team order for one round: weighted
// draws decide the top slots among the worst teams, then the remainder
// falls back to reverse standings.
func (ls *LeagueState) lotteryOrder(draftYear int) []string {
	worstFirst := ls.reverseStandings()
	rng := Stream(ls.Seed, StreamLottery, yearPart(draftYear))

	weights := make([]float64, len(worstFirst))
	for i := range worstFirst {
		w := ls.Settings.LotteryWeights
		if len(w) == 0 {
			weights[i] = 1
		} else if i < len(w) {
			weights[i] = w[i]
		} else {
			weights[i] = w[len(w)-1]
		}
	}

	draws := ls.Settings.LotteryDraws
	if draws > len(worstFirst) {
		draws = len(worstFirst)
	}

	order := make([]string, 0, len(worstFirst))
	taken := make(map[string]bool, len(worstFirst))
	for draw := 0; draw < draws; draw++ {
		var total float64
		for i, id := range worstFirst {
			if !taken[id] {
				total += weights[i]
			}
		}
		roll := rng.Float64() * total
		for i, id := range worstFirst {
			if taken[id] {
				continue
			}
			roll -= weights[i]
			if roll <= 0 {
				order = append(order, id)
				taken[id] = true
				break
			}
		}
	}
	for _, id := range worstFirst {
		if !taken[id] {
			order = append(order, id)
		}
	}
	return order
}

// MakeDraftPick selects a prospect for the team on the clock. The drafted
// player signs a rookie scale contract and joins the roster; a team
// already at the roster maximum sees its pick stashed in the free agent
// pool instead of losing the selection.
func (ls *LeagueState) MakeDraftPick(teamID, playerID string) error {
	const op = "draft pick"
	if ls.Phase != PhaseDraft || ls.Draft == nil {
		return &StateError{Op: op, Phase: ls.Phase}
	}
	d := ls.Draft
	if d.Complete() {
		return &StateError{Op: op, Phase: ls.Phase}
	}
	if d.OnClock() != teamID {
		return &ValidationError{Op: op, Detail: fmt.Sprintf("team %s is not on the clock (%s is)", teamID, d.OnClock())}
	}
	p := ls.Player(playerID)
	if p == nil {
		return &ValidationError{Op: op, Detail: fmt.Sprintf("unknown prospect %s", playerID)}
	}
	idx := -1
	for i, id := range d.Pool {
		if id == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		for _, pick := range d.Order[:d.NextPick] {
			if pick.PlayerID == playerID {
				return &AlreadyDraftedError{PlayerID: playerID}
			}
		}
		return &ValidationError{Op: op, Detail: fmt.Sprintf("player %s is not in the draft pool", playerID)}
	}

	pick := d.Order[d.NextPick]
	d.Pool = append(d.Pool[:idx], d.Pool[idx+1:]...)
	pick.PlayerID = playerID
	d.NextPick++

	p.DraftPick = pick.Overall
	p.Contract = ls.rookieContract(pick)

	team := ls.Team(teamID)
	if len(team.Roster) >= ls.Settings.RosterMax {
		// No roster room: the pick still belongs to the team on paper but
		// the player waits in the free agent pool.
		ls.FreeAgents = append(ls.FreeAgents, playerID)
	} else {
		team.Roster = append(team.Roster, playerID)
		p.TeamID = teamID
	}

	ls.appendLog(TxDraft,
		fmt.Sprintf("%s selects %s at pick %d", teamID, p.Name, pick.Overall),
		[]string{teamID}, []string{playerID})
	logrus.Debugf("draft %d: pick %d, %s takes %s (%s, %d overall rating)",
		d.Year, pick.Overall, teamID, p.Name, p.Pos, p.Overall())
	return nil
}

// rookieContract prices a selection off the rookie scale table. First
// round picks sign for four years, later rounds for two.
func (ls *LeagueState) rookieContract(pick *DraftPick) Contract {
	scale := ls.Settings.RookieScale
	salary := ls.Settings.MinimumSalary
	if len(scale) > 0 {
		i := pick.Overall - 1
		if i >= len(scale) {
			i = len(scale) - 1
		}
		salary = scale[i]
	}
	years := 2
	if pick.Round == 1 {
		years = 4
	}
	return Contract{Salary: salary, Years: years}
}

// resolveRemainingPicks lets the AI finish the draft, then releases every
// undrafted prospect into the free agent pool.
func (ls *LeagueState) resolveRemainingPicks() error {
	d := ls.Draft
	if d == nil {
		return &StateError{Op: "draft", Phase: ls.Phase}
	}
	for !d.Complete() {
		pick := d.Order[d.NextPick]
		rng := Stream(ls.Seed, StreamDraftAI, yearPart(d.Year), fmt.Sprintf("pick%d", pick.Overall))
		choice := ls.aiSelectProspect(pick.TeamID, d.Pool, rng)
		if choice == "" {
			// Board is empty; the slot goes unused.
			d.NextPick++
			continue
		}
		if err := ls.MakeDraftPick(pick.TeamID, choice); err != nil {
			return err
		}
	}
	for _, id := range d.Pool {
		ls.FreeAgents = append(ls.FreeAgents, id)
	}
	d.Pool = nil
	return nil
}

// aiSelectProspect scores the board for one team: rating and upside
// dominate, the team's thinnest position gets a bump, and a small jitter
// keeps identical boards from producing identical drafts across seeds.
func (ls *LeagueState) aiSelectProspect(teamID string, pool []string, rng *rand.Rand) string {
	team := ls.Team(teamID)
	if team == nil || len(pool) == 0 {
		return ""
	}
	need := team.scarcestPosition(ls)

	best := ""
	bestScore := -1.0
	for _, id := range pool {
		p := ls.Player(id)
		if p == nil {
			continue
		}
		score := float64(p.Overall())*2 + float64(p.Potential)
		if p.Pos == need {
			score += 15
		}
		score += rng.Float64() * 10
		if score > bestScore || (score == bestScore && id < best) {
			best, bestScore = id, score
		}
	}
	return best
}
