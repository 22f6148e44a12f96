package league

import (
	"fmt"
	"strings"
)

// TradeLeg is one direction of a trade: assets leaving From for To.
type TradeLeg struct {
	FromTeamID string    `json:"fromTeamId"`
	ToTeamID   string    `json:"toTeamId"`
	PlayerIDs  []string  `json:"playerIds,omitempty"`
	Picks      []PickRef `json:"picks,omitempty"`
}

// TradeProposal is a two-team swap expressed as two legs. Legs must be
// mirror images of each other: each team sends in exactly one leg.
// Deals involving three or more teams are not representable: with more
// than two legs an asset has no unambiguous destination. Build larger
// deals as consecutive two-team trades instead.
type TradeProposal struct {
	Legs [2]TradeLeg `json:"legs"`
}

// Verdict is the counterparty AI's answer to a proposal.
type Verdict struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason"`
}

// ValidateTrade checks structure, asset ownership, roster bounds, and the
// hard cap without mutating anything. A nil return means CommitTrade on
// the same state will succeed.
func (ls *LeagueState) ValidateTrade(tp *TradeProposal) error {
	const op = "trade"
	a, b := tp.Legs[0], tp.Legs[1]
	if a.FromTeamID != b.ToTeamID || b.FromTeamID != a.ToTeamID {
		return &ValidationError{Op: op, Detail: "legs do not mirror each other"}
	}
	if a.FromTeamID == a.ToTeamID {
		return &ValidationError{Op: op, Detail: "a team cannot trade with itself"}
	}
	if len(a.PlayerIDs)+len(a.Picks) == 0 || len(b.PlayerIDs)+len(b.Picks) == 0 {
		return &ValidationError{Op: op, Detail: "both teams must send at least one asset"}
	}

	seenPlayers := make(map[string]bool)
	seenPicks := make(map[PickRef]bool)
	for _, leg := range tp.Legs {
		from := ls.Team(leg.FromTeamID)
		if from == nil {
			return &ValidationError{Op: op, Detail: fmt.Sprintf("unknown team %s", leg.FromTeamID)}
		}
		for _, pid := range leg.PlayerIDs {
			if seenPlayers[pid] {
				return &ValidationError{Op: op, Detail: fmt.Sprintf("player %s listed twice", pid)}
			}
			seenPlayers[pid] = true
			if ls.Player(pid) == nil {
				return &ValidationError{Op: op, Detail: fmt.Sprintf("unknown player %s", pid)}
			}
			if !from.HasPlayer(pid) {
				return &ValidationError{Op: op, Detail: fmt.Sprintf("team %s does not roster player %s", from.ID, pid)}
			}
		}
		for _, ref := range leg.Picks {
			if seenPicks[ref] {
				return &ValidationError{Op: op, Detail: fmt.Sprintf("pick %d-R%d (%s) listed twice", ref.Year, ref.Round, ref.OriginalTeamID)}
			}
			seenPicks[ref] = true
			if !from.HasPick(ref) {
				return &ValidationError{Op: op, Detail: fmt.Sprintf("team %s does not own pick %d-R%d (%s)", from.ID, ref.Year, ref.Round, ref.OriginalTeamID)}
			}
		}
	}

	for i, leg := range tp.Legs {
		from := ls.Team(leg.FromTeamID)
		incoming := tp.Legs[1-i]
		size := len(from.Roster) - len(leg.PlayerIDs) + len(incoming.PlayerIDs)
		if size < ls.Settings.RosterMin || size > ls.Settings.RosterMax {
			return &RosterBoundsError{TeamID: from.ID, Size: size, Min: ls.Settings.RosterMin, Max: ls.Settings.RosterMax}
		}
		payroll := from.Payroll(ls)
		for _, pid := range leg.PlayerIDs {
			payroll -= ls.Player(pid).Contract.Salary
		}
		for _, pid := range incoming.PlayerIDs {
			payroll += ls.Player(pid).Contract.Salary
		}
		if payroll > ls.Settings.HardCap {
			return &CapViolationError{TeamID: from.ID, Payroll: payroll, Ceiling: ls.Settings.HardCap}
		}
	}
	return nil
}

// playerTradeValue scores a player the way a front office would: rating
// dominates, youth and upside add, an aging expensive contract subtracts.
func playerTradeValue(ls *LeagueState, p *Player) float64 {
	overall := float64(p.Overall())
	value := overall * 10

	switch {
	case p.Age < 25:
		value += float64(p.Potential-p.Overall()) * 5
		value += float64(25-p.Age) * 15
	case p.Age > 30:
		value -= float64(p.Age-30) * 25
	}

	// Contract drag: salary far above production hurts, a bargain helps.
	expected := (overall - 50) / 50 * float64(ls.Settings.MaximumSalary)
	if expected < float64(ls.Settings.MinimumSalary) {
		expected = float64(ls.Settings.MinimumSalary)
	}
	value += (expected - float64(p.Contract.Salary)) / 1_000_000
	if value < 0 {
		value = 0
	}
	return value
}

// pickTradeValue scores a future pick: round one beats round two, sooner
// beats later, and a pick originating from a weak team carries extra value.
func pickTradeValue(ls *LeagueState, ref PickRef) float64 {
	base := 300.0
	if ref.Round > 1 {
		base = 80.0
	}
	yearsOut := ref.Year - ls.Year
	if yearsOut < 0 {
		yearsOut = 0
	}
	base *= 1 / (1 + 0.15*float64(yearsOut))

	if origin := ls.Team(ref.OriginalTeamID); origin != nil {
		rec := ls.Record(origin.ID)
		if rec.Wins+rec.Losses > 0 && rec.winPct() < 0.4 {
			base *= 1.5
		}
	}
	return base
}

// legValue totals the outgoing assets of one leg.
func (ls *LeagueState) legValue(leg TradeLeg) float64 {
	var total float64
	for _, pid := range leg.PlayerIDs {
		if p := ls.Player(pid); p != nil {
			total += playerTradeValue(ls, p)
		}
	}
	for _, ref := range leg.Picks {
		total += pickTradeValue(ls, ref)
	}
	return total
}

// EvaluateTrade runs validation and then asks the counterparty AI whether
// it accepts. The counterparty is whichever team is not the user's; if
// neither leg involves the user team the second team evaluates. A small
// positional bonus rewards packages that fill the counterparty's thinnest
// slot. Evaluation never mutates state.
func (ls *LeagueState) EvaluateTrade(tp *TradeProposal) (Verdict, error) {
	if err := ls.ValidateTrade(tp); err != nil {
		return Verdict{}, err
	}

	counter, incoming, outgoing := tp.Legs[1].FromTeamID, tp.Legs[0], tp.Legs[1]
	if counter == ls.UserTeamID {
		counter, incoming, outgoing = tp.Legs[0].FromTeamID, tp.Legs[1], tp.Legs[0]
	}

	gets := ls.legValue(incoming)
	gives := ls.legValue(outgoing)

	team := ls.Team(counter)
	need := team.scarcestPosition(ls)
	for _, pid := range incoming.PlayerIDs {
		if p := ls.Player(pid); p != nil && p.Pos == need {
			gets += 50
		}
	}

	if gets+1e-9 < gives*ls.Settings.FairnessTolerance {
		return Verdict{
			Accepted: false,
			Reason:   fmt.Sprintf("%s declines: receiving %.0f against %.0f given up", counter, gets, gives),
		}, nil
	}
	return Verdict{
		Accepted: true,
		Reason:   fmt.Sprintf("%s accepts: receiving %.0f against %.0f given up", counter, gets, gives),
	}, nil
}

// CommitTrade validates, asks the counterparty, and applies both legs
// atomically. Validation runs first so no asset moves on a rejected or
// malformed proposal; after it passes, the moves below cannot fail.
func (ls *LeagueState) CommitTrade(tp *TradeProposal) (Verdict, error) {
	verdict, err := ls.EvaluateTrade(tp)
	if err != nil || !verdict.Accepted {
		return verdict, err
	}

	for _, leg := range tp.Legs {
		from, to := ls.Team(leg.FromTeamID), ls.Team(leg.ToTeamID)
		for _, pid := range leg.PlayerIDs {
			from.removePlayer(pid)
			to.Roster = append(to.Roster, pid)
			ls.Player(pid).TeamID = to.ID
		}
		for _, ref := range leg.Picks {
			from.removePick(ref)
			to.Picks = append(to.Picks, ref)
		}
	}

	ls.appendLog(TxTrade, tradeSummary(ls, tp),
		[]string{tp.Legs[0].FromTeamID, tp.Legs[1].FromTeamID},
		append(append([]string{}, tp.Legs[0].PlayerIDs...), tp.Legs[1].PlayerIDs...))
	return verdict, nil
}

func tradeSummary(ls *LeagueState, tp *TradeProposal) string {
	var parts []string
	for _, leg := range tp.Legs {
		var assets []string
		for _, pid := range leg.PlayerIDs {
			if p := ls.Player(pid); p != nil {
				assets = append(assets, p.Name)
			}
		}
		for _, ref := range leg.Picks {
			assets = append(assets, fmt.Sprintf("%d R%d pick (%s)", ref.Year, ref.Round, ref.OriginalTeamID))
		}
		parts = append(parts, fmt.Sprintf("%s sends %s", leg.FromTeamID, strings.Join(assets, ", ")))
	}
	return strings.Join(parts, "; ")
}
