package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addFreeAgent drops a flat-rated player into the pool.
func addFreeAgent(ls *LeagueState, id string, pos Position, v int) *Player {
	p := flatPlayer(id, "", pos, v, ls.Settings.MinimumSalary)
	ls.addPlayer(p)
	ls.FreeAgents = append(ls.FreeAgents, p.ID)
	return p
}

func TestSignFreeAgent_UnderCap_Succeeds(t *testing.T) {
	ls := tradeLeague()
	addFreeAgent(ls, "fa-1", Center, 70)

	require.NoError(t, ls.SignFreeAgent("AAA", "fa-1", 5_000_000, 2))

	p := ls.Player("fa-1")
	assert.Equal(t, "AAA", p.TeamID)
	assert.Equal(t, int64(5_000_000), p.Contract.Salary)
	assert.Equal(t, 2, p.Contract.Years)
	assert.True(t, ls.Team("AAA").HasPlayer("fa-1"))
	assert.False(t, ls.isFreeAgent("fa-1"))

	require.NotEmpty(t, ls.Log)
	assert.Equal(t, TxSigning, ls.Log[len(ls.Log)-1].Kind)
}

func TestSignFreeAgent_OverCap_OnlyMinimumAllowed(t *testing.T) {
	ls := tradeLeague()
	// Anchor AAA above the salary cap but below the hard cap.
	anchor := flatPlayer("AAA-anchor", "AAA", Center, 85, ls.Settings.SalaryCap)
	ls.addPlayer(anchor)
	ls.Team("AAA").Roster = append(ls.Team("AAA").Roster, anchor.ID)
	addFreeAgent(ls, "fa-1", Center, 70)

	var capErr *CapViolationError
	require.ErrorAs(t, ls.SignFreeAgent("AAA", "fa-1", 5_000_000, 1), &capErr)
	assert.Equal(t, "AAA", capErr.TeamID)
	assert.False(t, ls.Team("AAA").HasPlayer("fa-1"), "failed signing must not change the roster")

	require.NoError(t, ls.SignFreeAgent("AAA", "fa-1", ls.Settings.MinimumSalary, 1))
	assert.True(t, ls.Team("AAA").HasPlayer("fa-1"))
}

func TestSignFreeAgent_RosteredPlayer_Fails(t *testing.T) {
	ls := tradeLeague()
	var verr *ValidationError
	require.ErrorAs(t, ls.SignFreeAgent("AAA", "BBB-0", 5_000_000, 1), &verr)
}

func TestSignFreeAgent_FullRoster_Fails(t *testing.T) {
	ls := tradeLeague()
	ls.Settings.RosterMax = 5
	addFreeAgent(ls, "fa-1", Center, 70)

	var boundsErr *RosterBoundsError
	require.ErrorAs(t, ls.SignFreeAgent("AAA", "fa-1", 5_000_000, 1), &boundsErr)
}

func TestReleasePlayer_ReturnsToPool(t *testing.T) {
	ls := tradeLeague()

	require.NoError(t, ls.ReleasePlayer("AAA", "AAA-0"))
	assert.False(t, ls.Team("AAA").HasPlayer("AAA-0"))
	assert.True(t, ls.isFreeAgent("AAA-0"))
	assert.Empty(t, ls.Player("AAA-0").TeamID)
	assert.Equal(t, TxRelease, ls.Log[len(ls.Log)-1].Kind)
}

func TestReleasePlayer_InSeasonBelowMinimum_Fails(t *testing.T) {
	ls := tradeLeague()
	ls.Phase = PhaseRegular
	ls.Settings.RosterMin = 5

	var boundsErr *RosterBoundsError
	require.ErrorAs(t, ls.ReleasePlayer("AAA", "AAA-0"), &boundsErr)
	assert.True(t, ls.Team("AAA").HasPlayer("AAA-0"))
}

func TestFillThinRosters_SignsUpToMinimum(t *testing.T) {
	ls := tradeLeague()
	ls.Settings.RosterMin = 5
	// Strip AAA down to two players.
	for _, id := range []string{"AAA-2", "AAA-3", "AAA-4"} {
		require.NoError(t, ls.ReleasePlayer("AAA", id))
	}
	require.Len(t, ls.Team("AAA").Roster, 2)

	ls.fillThinRosters()
	assert.Len(t, ls.Team("AAA").Roster, 5)
	for _, team := range ls.Teams {
		assert.GreaterOrEqual(t, len(team.Roster), ls.Settings.RosterMin, "team %s", team.ID)
	}
}
