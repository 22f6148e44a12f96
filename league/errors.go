package league

import "fmt"

// ValidationError reports malformed command input, such as a trade that
// references an asset the sending team does not own.
type ValidationError struct {
	Op     string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

// StateError reports an operation that is not legal in the current season
// phase, e.g. making a draft pick during the regular season.
type StateError struct {
	Op    string
	Phase Phase
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: not allowed in phase %q", e.Op, e.Phase)
}

// InvalidRosterError reports a roster that cannot field a lineup.
type InvalidRosterError struct {
	TeamID string
	Size   int
}

func (e *InvalidRosterError) Error() string {
	return fmt.Sprintf("team %s: roster of %d cannot play a game", e.TeamID, e.Size)
}

// AlreadyPlayedError reports an attempt to write a result into a schedule
// entry that already holds one. Results are immutable once set.
type AlreadyPlayedError struct {
	GameID string
}

func (e *AlreadyPlayedError) Error() string {
	return fmt.Sprintf("game %s has already been played", e.GameID)
}

// AlreadyDraftedError reports a second selection of the same prospect.
type AlreadyDraftedError struct {
	PlayerID string
}

func (e *AlreadyDraftedError) Error() string {
	return fmt.Sprintf("prospect %s has already been drafted", e.PlayerID)
}

// CapViolationError reports a roster move that would push a team's payroll
// past the hard cap ceiling.
type CapViolationError struct {
	TeamID  string
	Payroll int64
	Ceiling int64
}

func (e *CapViolationError) Error() string {
	return fmt.Sprintf("team %s: payroll %d would exceed hard cap %d", e.TeamID, e.Payroll, e.Ceiling)
}

// RosterBoundsError reports a roster move that would leave a team outside
// the configured roster size bounds.
type RosterBoundsError struct {
	TeamID string
	Size   int
	Min    int
	Max    int
}

func (e *RosterBoundsError) Error() string {
	return fmt.Sprintf("team %s: roster size %d outside bounds [%d,%d]", e.TeamID, e.Size, e.Min, e.Max)
}

// ScheduleExhaustedError reports an advance with no remaining games and no
// phase transition available.
type ScheduleExhaustedError struct {
	Phase Phase
}

func (e *ScheduleExhaustedError) Error() string {
	return fmt.Sprintf("nothing left to advance in phase %q", e.Phase)
}
