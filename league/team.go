package league

import "slices"

// PickRef identifies one future draft pick by its origin. Ownership is
// whichever team currently holds the ref in its Picks slice; the original
// team determines where the pick lands in the draft order.
type PickRef struct {
	Year           int    `json:"year"`
	Round          int    `json:"round"`
	OriginalTeamID string `json:"originalTeamId"`
}

// Team is one franchise. Roster holds player IDs in acquisition order;
// payroll is always recomputed from roster contracts, never cached.
type Team struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Conference string `json:"conference"`
	Division   string `json:"division"`

	Roster []string  `json:"roster"`
	Picks  []PickRef `json:"picks"`
}

// Payroll sums the active contracts on the roster. Unknown IDs are a
// programmer error upstream and contribute nothing here.
func (t *Team) Payroll(ls *LeagueState) int64 {
	var total int64
	for _, id := range t.Roster {
		if p := ls.Player(id); p != nil {
			total += p.Contract.Salary
		}
	}
	return total
}

// HasPlayer reports whether the roster contains the player ID.
func (t *Team) HasPlayer(id string) bool {
	return slices.Contains(t.Roster, id)
}

// HasPick reports whether the team currently owns the pick.
func (t *Team) HasPick(ref PickRef) bool {
	return slices.Contains(t.Picks, ref)
}

func (t *Team) removePlayer(id string) {
	if i := slices.Index(t.Roster, id); i >= 0 {
		t.Roster = slices.Delete(t.Roster, i, i+1)
	}
}

func (t *Team) removePick(ref PickRef) {
	if i := slices.Index(t.Picks, ref); i >= 0 {
		t.Picks = slices.Delete(t.Picks, i, i+1)
	}
}

// positionCounts tallies roster spots per position, used by the trade and
// draft AI to spot the scarcest slot.
func (t *Team) positionCounts(ls *LeagueState) map[Position]int {
	counts := make(map[Position]int, len(Positions))
	for _, pos := range Positions {
		counts[pos] = 0
	}
	for _, id := range t.Roster {
		if p := ls.Player(id); p != nil {
			counts[p.Pos]++
		}
	}
	return counts
}

// scarcestPosition returns the position with the fewest roster players,
// breaking ties in lineup order for determinism.
func (t *Team) scarcestPosition(ls *LeagueState) Position {
	counts := t.positionCounts(ls)
	best := Positions[0]
	for _, pos := range Positions[1:] {
		if counts[pos] < counts[best] {
			best = pos
		}
	}
	return best
}
