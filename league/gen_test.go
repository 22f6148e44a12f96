package league

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeague_Shape(t *testing.T) {
	s := DefaultSettings()
	ls := NewLeague(42, 2025, s, "")

	require.Len(t, ls.Teams, s.TeamsPerLeague)
	assert.Len(t, ls.FreeAgents, s.FreeAgentPool)
	assert.Equal(t, PhaseRegular, ls.Phase)
	assert.Equal(t, ls.Teams[0].ID, ls.UserTeamID)

	for _, team := range ls.Teams {
		assert.Len(t, team.Roster, s.InitialRoster, "team %s", team.ID)
		assert.Len(t, team.Picks, s.PickYearsOwned*s.DraftRounds, "team %s", team.ID)
		for _, id := range team.Roster {
			p := ls.Player(id)
			require.NotNil(t, p, "roster id %s", id)
			assert.Equal(t, team.ID, p.TeamID)
		}
	}
}

func TestNewLeague_SameSeed_IdenticalState(t *testing.T) {
	a := NewLeague(99, 2025, DefaultSettings(), "")
	b := NewLeague(99, 2025, DefaultSettings(), "")

	aj, err := json.Marshal(a)
	require.NoError(t, err)
	bj, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(aj), string(bj))
}

func TestNewLeague_DifferentSeeds_DifferentPlayers(t *testing.T) {
	a := NewLeague(1, 2025, DefaultSettings(), "")
	b := NewLeague(2, 2025, DefaultSettings(), "")

	different := false
	for i := range a.Players {
		if a.Players[i].Name != b.Players[i].Name || a.Players[i].Ratings != b.Players[i].Ratings {
			different = true
			break
		}
	}
	assert.True(t, different, "two seeds produced identical player pools")
}

func TestNewLeague_EveryTeamCoversAllPositions(t *testing.T) {
	ls := NewLeague(7, 2025, DefaultSettings(), "")
	for _, team := range ls.Teams {
		counts := team.positionCounts(ls)
		for _, pos := range Positions {
			assert.Greater(t, counts[pos], 0, "team %s has no %s", team.ID, pos)
		}
	}
}

func TestNewLeague_SalariesWithinLeagueBounds(t *testing.T) {
	s := DefaultSettings()
	ls := NewLeague(5, 2025, s, "")
	for _, p := range ls.Players {
		assert.GreaterOrEqual(t, p.Contract.Salary, s.MinimumSalary, "player %s", p.ID)
		assert.LessOrEqual(t, p.Contract.Salary, s.MaximumSalary, "player %s", p.ID)
	}
}

func TestNewLeague_ScheduleBalanced(t *testing.T) {
	s := DefaultSettings()
	ls := NewLeague(11, 2025, s, "")

	perTeam := make(map[string]int)
	for _, g := range ls.Schedule {
		require.NotNil(t, ls.Team(g.HomeID))
		require.NotNil(t, ls.Team(g.AwayID))
		assert.Nil(t, g.Result)
		perTeam[g.HomeID]++
		perTeam[g.AwayID]++
	}

	// 4 division opponents, 10 other in-conference, 15 cross-conference.
	want := 4*s.GamesPerPairSameDivision + 10*s.GamesPerPairSameConf + 15*s.GamesPerPairCrossConf
	for _, team := range ls.Teams {
		assert.Equal(t, want, perTeam[team.ID], "team %s", team.ID)
	}
}
