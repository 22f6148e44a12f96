package league

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// SignFreeAgent adds a free agent to a team at the given salary and term.
// Teams over the salary cap may still sign at the minimum salary; the hard
// cap and roster maximum are never crossed.
func (ls *LeagueState) SignFreeAgent(teamID, playerID string, salary int64, years int) error {
	const op = "signing"
	team := ls.Team(teamID)
	if team == nil {
		return &ValidationError{Op: op, Detail: fmt.Sprintf("unknown team %s", teamID)}
	}
	p := ls.Player(playerID)
	if p == nil {
		return &ValidationError{Op: op, Detail: fmt.Sprintf("unknown player %s", playerID)}
	}
	if !ls.isFreeAgent(playerID) {
		return &ValidationError{Op: op, Detail: fmt.Sprintf("player %s is not a free agent", playerID)}
	}
	if salary < ls.Settings.MinimumSalary || salary > ls.Settings.MaximumSalary {
		return &ValidationError{Op: op, Detail: fmt.Sprintf("salary %d outside [%d,%d]", salary, ls.Settings.MinimumSalary, ls.Settings.MaximumSalary)}
	}
	if years < 1 || years > 5 {
		return &ValidationError{Op: op, Detail: fmt.Sprintf("contract length %d outside [1,5]", years)}
	}
	if len(team.Roster) >= ls.Settings.RosterMax {
		return &RosterBoundsError{TeamID: teamID, Size: len(team.Roster) + 1, Min: ls.Settings.RosterMin, Max: ls.Settings.RosterMax}
	}

	payroll := team.Payroll(ls) + salary
	if payroll > ls.Settings.HardCap {
		return &CapViolationError{TeamID: teamID, Payroll: payroll, Ceiling: ls.Settings.HardCap}
	}
	// Over the soft cap only the minimum exception is available.
	if payroll > ls.Settings.SalaryCap && salary > ls.Settings.MinimumSalary {
		return &CapViolationError{TeamID: teamID, Payroll: payroll, Ceiling: ls.Settings.SalaryCap}
	}

	ls.removeFreeAgent(playerID)
	team.Roster = append(team.Roster, playerID)
	p.TeamID = teamID
	p.Contract = Contract{Salary: salary, Years: years}

	ls.appendLog(TxSigning,
		fmt.Sprintf("%s signs %s for %d over %d years", teamID, p.Name, salary, years),
		[]string{teamID}, []string{playerID})
	return nil
}

// ReleasePlayer waives a rostered player into the free agent pool. The
// team may not drop below the roster minimum outside of the offseason
// windows.
func (ls *LeagueState) ReleasePlayer(teamID, playerID string) error {
	const op = "release"
	team := ls.Team(teamID)
	if team == nil {
		return &ValidationError{Op: op, Detail: fmt.Sprintf("unknown team %s", teamID)}
	}
	if !team.HasPlayer(playerID) {
		return &ValidationError{Op: op, Detail: fmt.Sprintf("team %s does not roster player %s", teamID, playerID)}
	}
	if ls.Phase == PhaseRegular || ls.Phase == PhasePlayoffs {
		if len(team.Roster)-1 < ls.Settings.RosterMin {
			return &RosterBoundsError{TeamID: teamID, Size: len(team.Roster) - 1, Min: ls.Settings.RosterMin, Max: ls.Settings.RosterMax}
		}
	}

	p := ls.Player(playerID)
	team.removePlayer(playerID)
	p.TeamID = ""
	ls.FreeAgents = append(ls.FreeAgents, playerID)

	ls.appendLog(TxRelease,
		fmt.Sprintf("%s releases %s", teamID, p.Name),
		[]string{teamID}, []string{playerID})
	return nil
}

func (ls *LeagueState) isFreeAgent(id string) bool {
	for _, fa := range ls.FreeAgents {
		if fa == id {
			return true
		}
	}
	return false
}

// fillThinRosters runs the AI signing pass before a new season: every team
// under the roster minimum signs the best available free agents at the
// minimum salary, worst teams choosing first. Hard cap still binds, so a
// team that cannot afford even minimum deals stays thin and will forfeit
// games it cannot field a lineup for.
func (ls *LeagueState) fillThinRosters() {
	for _, teamID := range ls.reverseStandings() {
		team := ls.Team(teamID)
		for len(team.Roster) < ls.Settings.RosterMin {
			id := ls.bestFreeAgent(team)
			if id == "" {
				break
			}
			if err := ls.SignFreeAgent(teamID, id, ls.Settings.MinimumSalary, 1); err != nil {
				logrus.Warnf("ai signing for %s failed: %v", teamID, err)
				break
			}
		}
	}
}

// bestFreeAgent picks the strongest available player, preferring the
// team's scarcest position when ratings are close.
func (ls *LeagueState) bestFreeAgent(team *Team) string {
	need := team.scarcestPosition(ls)
	ids := append([]string{}, ls.FreeAgents...)
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := ls.Player(ids[i]), ls.Player(ids[j])
		as, bs := a.Overall(), b.Overall()
		if a.Pos == need {
			as += 5
		}
		if b.Pos == need {
			bs += 5
		}
		if as != bs {
			return as > bs
		}
		return ids[i] < ids[j]
	})
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
