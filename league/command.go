package league

import (
	"context"
	"fmt"
)

// SlotStore persists league states into named save slots. The concrete
// implementation lives outside this package so the core stays free of
// storage concerns.
type SlotStore interface {
	Save(ctx context.Context, slot string, ls *LeagueState) error
	Load(ctx context.Context, slot string) (*LeagueState, error)
}

// Command is the closed set of operations a frontend can request. Every
// mutation of a LeagueState flows through Apply with one of the variants
// below; there is no other public mutation path.
type Command interface {
	isCommand()
}

// NewGameCommand creates a fresh league from a seed.
type NewGameCommand struct {
	Seed   int64  `json:"seed"`
	Year   int    `json:"year"`
	TeamID string `json:"teamId,omitempty"`
}

// SelectTeamCommand changes which franchise the user controls.
type SelectTeamCommand struct {
	TeamID string `json:"teamId"`
}

// AdvanceTimeCommand moves the calendar. With ToNextEvent set it runs
// until games resolve or a phase boundary is crossed; otherwise it
// advances Days days (default one).
type AdvanceTimeCommand struct {
	Days        int  `json:"days,omitempty"`
	ToNextEvent bool `json:"toNextEvent,omitempty"`
}

// ProposeTradeCommand submits a trade. DryRun evaluates without moving
// any asset.
type ProposeTradeCommand struct {
	Proposal TradeProposal `json:"proposal"`
	DryRun   bool          `json:"dryRun,omitempty"`
}

// MakeDraftPickCommand selects a prospect for the team on the clock.
type MakeDraftPickCommand struct {
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
}

// SignFreeAgentCommand signs a free agent to a new contract.
type SignFreeAgentCommand struct {
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
	Salary   int64  `json:"salary"`
	Years    int    `json:"years"`
}

// ReleasePlayerCommand waives a rostered player.
type ReleasePlayerCommand struct {
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
}

// SaveCommand writes the current state into a named slot.
type SaveCommand struct {
	Slot string `json:"slot"`
}

// LoadCommand replaces the current state from a named slot.
type LoadCommand struct {
	Slot string `json:"slot"`
}

func (NewGameCommand) isCommand()       {}
func (SelectTeamCommand) isCommand()    {}
func (AdvanceTimeCommand) isCommand()   {}
func (ProposeTradeCommand) isCommand()  {}
func (MakeDraftPickCommand) isCommand() {}
func (SignFreeAgentCommand) isCommand() {}
func (ReleasePlayerCommand) isCommand() {}
func (SaveCommand) isCommand()          {}
func (LoadCommand) isCommand()          {}

// Result carries whatever a command produced. State is always the state
// to continue with: the same pointer for in-place mutations, a new one
// for NewGame and Load.
type Result struct {
	State   *LeagueState
	Report  *AdvanceReport
	Verdict *Verdict
}

// Apply executes one command against a league state. Commands either
// succeed completely or leave the state untouched; the returned error is
// always one of the typed errors in this package.
func Apply(ctx context.Context, ls *LeagueState, store SlotStore, cmd Command) (*Result, error) {
	switch c := cmd.(type) {
	case NewGameCommand:
		year := c.Year
		if year == 0 {
			year = 2025
		}
		next := NewLeague(c.Seed, year, DefaultSettings(), c.TeamID)
		if c.TeamID != "" && next.Team(c.TeamID) == nil {
			return nil, &ValidationError{Op: "new game", Detail: fmt.Sprintf("unknown team %s", c.TeamID)}
		}
		return &Result{State: next}, nil

	case SelectTeamCommand:
		if ls.Team(c.TeamID) == nil {
			return nil, &ValidationError{Op: "select team", Detail: fmt.Sprintf("unknown team %s", c.TeamID)}
		}
		ls.UserTeamID = c.TeamID
		return &Result{State: ls}, nil

	case AdvanceTimeCommand:
		if c.ToNextEvent {
			rep, err := ls.AdvanceToNextEvent()
			if err != nil {
				return nil, err
			}
			return &Result{State: ls, Report: rep}, nil
		}
		days := c.Days
		if days <= 0 {
			days = 1
		}
		total := &AdvanceReport{Phase: ls.Phase}
		for i := 0; i < days; i++ {
			rep, err := ls.AdvanceDay()
			if err != nil {
				return nil, err
			}
			total.Games = append(total.Games, rep.Games...)
			total.Transitioned = total.Transitioned || rep.Transitioned
			total.Phase = rep.Phase
		}
		return &Result{State: ls, Report: total}, nil

	case ProposeTradeCommand:
		var verdict Verdict
		var err error
		if c.DryRun {
			verdict, err = ls.EvaluateTrade(&c.Proposal)
		} else {
			verdict, err = ls.CommitTrade(&c.Proposal)
		}
		if err != nil {
			return nil, err
		}
		return &Result{State: ls, Verdict: &verdict}, nil

	case MakeDraftPickCommand:
		if err := ls.MakeDraftPick(c.TeamID, c.PlayerID); err != nil {
			return nil, err
		}
		return &Result{State: ls}, nil

	case SignFreeAgentCommand:
		if err := ls.SignFreeAgent(c.TeamID, c.PlayerID, c.Salary, c.Years); err != nil {
			return nil, err
		}
		return &Result{State: ls}, nil

	case ReleasePlayerCommand:
		if err := ls.ReleasePlayer(c.TeamID, c.PlayerID); err != nil {
			return nil, err
		}
		return &Result{State: ls}, nil

	case SaveCommand:
		if store == nil {
			return nil, &ValidationError{Op: "save", Detail: "no store configured"}
		}
		if err := store.Save(ctx, c.Slot, ls); err != nil {
			return nil, err
		}
		return &Result{State: ls}, nil

	case LoadCommand:
		if store == nil {
			return nil, &ValidationError{Op: "load", Detail: "no store configured"}
		}
		next, err := store.Load(ctx, c.Slot)
		if err != nil {
			return nil, err
		}
		return &Result{State: next}, nil

	default:
		return nil, &ValidationError{Op: "apply", Detail: fmt.Sprintf("unhandled command %T", cmd)}
	}
}
