package league

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// AdvanceReport summarizes what one advance call did.
type AdvanceReport struct {
	Games        []*Game // games resolved during the advance
	Transitioned bool    // whether a phase boundary was crossed
	Phase        Phase   // phase after the advance
}

// AdvanceDay moves the league date forward one day. Scheduled games whose
// date falls inside the window are resolved through the game simulator and
// written back into their schedule entries; crossing a phase boundary
// triggers exactly one phase transition. A day with neither games nor an
// available transition fails with ScheduleExhaustedError.
func (ls *LeagueState) AdvanceDay() (*AdvanceReport, error) {
	report := &AdvanceReport{}
	switch ls.Phase {
	case PhaseRegular:
		ls.Day++
		for _, g := range ls.Schedule {
			if g.Playoff || g.Result != nil || g.Day > ls.Day {
				continue
			}
			if err := ls.playGame(g); err != nil {
				return nil, err
			}
			report.Games = append(report.Games, g)
		}
		if ls.remainingRegularGames() == 0 {
			ls.startPlayoffs()
			report.Transitioned = true
		}

	case PhasePlayoffs:
		ls.Day++
		games, err := ls.advancePlayoffRound()
		if err != nil {
			return nil, err
		}
		report.Games = games
		if ls.Playoffs != nil && ls.Playoffs.ChampionID != "" {
			ls.endSeason()
			report.Transitioned = true
		}

	case PhaseOffseason:
		ls.Day++
		if ls.Day-ls.PhaseStart >= ls.Settings.OffseasonDays {
			if err := ls.startDraft(); err != nil {
				return nil, err
			}
			report.Transitioned = true
		}

	case PhaseDraft:
		// Advancing through the draft resolves every remaining pick in
		// order, then moves on to free agency.
		if err := ls.resolveRemainingPicks(); err != nil {
			return nil, err
		}
		ls.setPhase(PhaseFreeAgency)
		report.Transitioned = true

	case PhaseFreeAgency:
		ls.Day++
		if ls.Day-ls.PhaseStart >= ls.Settings.FreeAgencyDays || ls.allTeamsCapCompliant() {
			ls.startNewSeason()
			report.Transitioned = true
		}

	default:
		return nil, &ScheduleExhaustedError{Phase: ls.Phase}
	}

	report.Phase = ls.Phase
	return report, nil
}

// AdvanceToNextEvent advances day by day until something happened: at
// least one game was resolved or exactly one phase transition fired. It
// never cascades through multiple transitions.
func (ls *LeagueState) AdvanceToNextEvent() (*AdvanceReport, error) {
	total := &AdvanceReport{Phase: ls.Phase}
	// Window bound: the longest stretch of empty days is a full season.
	limit := ls.Settings.SeasonDays + ls.Settings.OffseasonDays + ls.Settings.FreeAgencyDays + 2
	for i := 0; i < limit; i++ {
		rep, err := ls.AdvanceDay()
		if err != nil {
			return nil, err
		}
		total.Games = append(total.Games, rep.Games...)
		total.Phase = rep.Phase
		if rep.Transitioned {
			total.Transitioned = true
			return total, nil
		}
		if len(total.Games) > 0 {
			return total, nil
		}
	}
	return nil, &ScheduleExhaustedError{Phase: ls.Phase}
}

// playGame simulates one schedule entry and applies the result. The result
// write is idempotent-guarded: a second attempt on the same entry fails.
func (ls *LeagueState) playGame(g *Game) error {
	if g.Result != nil {
		return &AlreadyPlayedError{GameID: g.ID}
	}
	home := ls.activeRoster(g.HomeID)
	away := ls.activeRoster(g.AwayID)
	box, err := SimulateGame(home, away, StreamSeed(ls.Seed, StreamGame, g.ID), ls.Settings)
	if err != nil {
		return err
	}
	g.Result = box
	ls.applyStats(box)
	logrus.Infof("day %d: %s %d - %s %d", ls.Day, g.HomeID, box.HomeScore, g.AwayID, box.AwayScore)
	return nil
}

// activeRoster resolves a team's roster into player records.
func (ls *LeagueState) activeRoster(teamID string) []*Player {
	t := ls.Team(teamID)
	if t == nil {
		return nil
	}
	out := make([]*Player, 0, len(t.Roster))
	for _, id := range t.Roster {
		if p := ls.Player(id); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// applyStats appends a box score's lines into season and career totals.
func (ls *LeagueState) applyStats(box *BoxScore) {
	for _, line := range box.Home {
		if p := ls.Player(line.PlayerID); p != nil {
			p.Season.add(line)
			p.Career.add(line)
		}
	}
	for _, line := range box.Away {
		if p := ls.Player(line.PlayerID); p != nil {
			p.Season.add(line)
			p.Career.add(line)
		}
	}
}

func (ls *LeagueState) setPhase(p Phase) {
	logrus.Infof("year %d day %d: phase %s -> %s", ls.Year, ls.Day, ls.Phase, p)
	ls.Phase = p
	ls.PhaseStart = ls.Day
}

// startPlayoffs seeds the bracket from final standings.
func (ls *LeagueState) startPlayoffs() {
	ls.Playoffs = newBracket(ls)
	ls.setPhase(PhasePlayoffs)
}

// endSeason hands out awards, records the champion, and opens the
// offseason window.
func (ls *LeagueState) endSeason() {
	selectAwards(ls)
	champ := ls.Playoffs.ChampionID
	ls.appendLog("champion", fmt.Sprintf("%s won the %d title", champ, ls.Year), []string{champ}, nil)
	ls.setPhase(PhaseOffseason)
}

// startDraft runs offseason player processing, generates the class, holds
// the lottery, and opens the draft.
func (ls *LeagueState) startDraft() error {
	ls.runOffseasonDevelopment()
	ls.expireContracts()
	if err := ls.initDraft(); err != nil {
		return err
	}
	ls.setPhase(PhaseDraft)
	return nil
}

// allTeamsCapCompliant reports whether every payroll is at or under the
// salary cap, which closes free agency early.
func (ls *LeagueState) allTeamsCapCompliant() bool {
	for _, t := range ls.Teams {
		if t.Payroll(ls) > ls.Settings.SalaryCap {
			return false
		}
	}
	return true
}

// startNewSeason rolls the league into the next year: AI teams top up thin
// rosters, season stats reset into career totals, future pick inventory is
// extended, and a fresh schedule is generated.
func (ls *LeagueState) startNewSeason() {
	ls.fillThinRosters()
	ls.Year++
	for _, p := range ls.Players {
		p.Season = StatLine{}
	}
	for _, t := range ls.Teams {
		for round := 1; round <= ls.Settings.DraftRounds; round++ {
			t.Picks = append(t.Picks, PickRef{
				Year:           ls.Year + ls.Settings.PickYearsOwned,
				Round:          round,
				OriginalTeamID: t.ID,
			})
		}
	}
	ls.Playoffs = nil
	ls.Draft = nil
	ls.Schedule = generateSchedule(ls, ls.Year)
	for _, g := range ls.Schedule {
		g.Day += ls.Day
	}
	ls.setPhase(PhaseRegular)
}
