package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeCurve_Shape(t *testing.T) {
	assert.Greater(t, ageCurve(20, 27), ageCurve(25, 27))
	assert.Greater(t, ageCurve(25, 27), 0.0)
	assert.Less(t, ageCurve(30, 27), 0.0)
	assert.Less(t, ageCurve(36, 27), ageCurve(30, 27))
}

func TestOffseasonDevelopment_AgesEveryone(t *testing.T) {
	ls := NewLeague(42, 2025, DefaultSettings(), "")
	ages := make(map[string]int, len(ls.Players))
	for _, p := range ls.Players {
		ages[p.ID] = p.Age
	}

	ls.runOffseasonDevelopment()

	for _, p := range ls.Players {
		assert.Equal(t, ages[p.ID]+1, p.Age, "player %s did not age", p.ID)
	}
}

func TestOffseasonDevelopment_ForcedRetirementAtLimit(t *testing.T) {
	ls := NewLeague(42, 2025, DefaultSettings(), "")
	old := ls.Player(ls.Teams[0].Roster[0])
	old.Age = ls.Settings.RetirementAge

	ls.runOffseasonDevelopment()

	assert.True(t, old.Retired)
	assert.Empty(t, old.TeamID)
	assert.False(t, ls.Team(ls.Teams[0].ID).HasPlayer(old.ID))
	assert.False(t, ls.isFreeAgent(old.ID))

	found := false
	for _, tx := range ls.Log {
		if tx.Kind == TxRetire && len(tx.PlayerIDs) == 1 && tx.PlayerIDs[0] == old.ID {
			found = true
		}
	}
	assert.True(t, found, "no retirement log entry")
}

func TestOffseasonDevelopment_Deterministic(t *testing.T) {
	run := func() Ratings {
		ls := NewLeague(7, 2025, DefaultSettings(), "")
		ls.runOffseasonDevelopment()
		return ls.Players[0].Ratings
	}
	assert.Equal(t, run(), run())
}

func TestExpireContracts_MovesExpiringToPool(t *testing.T) {
	ls := NewLeague(42, 2025, DefaultSettings(), "")
	team := ls.Teams[0]
	expiring := ls.Player(team.Roster[0])
	expiring.Contract.Years = 1
	keeper := ls.Player(team.Roster[1])
	keeper.Contract.Years = 3

	ls.expireContracts()

	assert.False(t, team.HasPlayer(expiring.ID))
	assert.True(t, ls.isFreeAgent(expiring.ID))
	require.True(t, team.HasPlayer(keeper.ID))
	assert.Equal(t, 2, keeper.Contract.Years)
}
