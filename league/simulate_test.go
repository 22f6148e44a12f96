package league

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRoster builds n players of descending quality for simulator tests.
func testRoster(prefix string, n, base int) []*Player {
	players := make([]*Player, 0, n)
	for i := 0; i < n; i++ {
		v := clampRating(base - i*2)
		r := Ratings{
			Speed: v, Strength: v, Jumping: v, Endurance: v,
			InsideScoring: v, MidRange: v, ThreePoint: v, FreeThrow: v,
			BallHandling: v, Passing: v,
			PerimeterDefense: v, InteriorDefense: v, Stealing: v, Blocking: v,
			OffensiveRebounding: v, DefensiveRebounding: v, IQ: v, Clutch: v,
		}
		players = append(players, &Player{
			ID:      fmt.Sprintf("%s-%02d", prefix, i),
			Name:    fmt.Sprintf("Player %s %d", prefix, i),
			Pos:     Positions[i%len(Positions)],
			Age:     26,
			PeakAge: 27,
			Ratings: r,
		})
	}
	return players
}

func TestSimulateGame_SameSeed_SameBoxScore(t *testing.T) {
	s := DefaultSettings()
	home := testRoster("h", 10, 80)
	away := testRoster("a", 10, 78)

	b1, err := SimulateGame(home, away, 1234, s)
	require.NoError(t, err)
	b2, err := SimulateGame(home, away, 1234, s)
	require.NoError(t, err)

	assert.Equal(t, b1.HomeScore, b2.HomeScore)
	assert.Equal(t, b1.AwayScore, b2.AwayScore)
	assert.Equal(t, b1.Home, b2.Home)
	assert.Equal(t, b1.Away, b2.Away)
}

func TestSimulateGame_DifferentSeeds_DifferentOutcomes(t *testing.T) {
	s := DefaultSettings()
	home := testRoster("h", 10, 80)
	away := testRoster("a", 10, 78)

	different := false
	base, err := SimulateGame(home, away, 1, s)
	require.NoError(t, err)
	for seed := int64(2); seed < 12; seed++ {
		b, err := SimulateGame(home, away, seed, s)
		require.NoError(t, err)
		if b.HomeScore != base.HomeScore || b.AwayScore != base.AwayScore {
			different = true
			break
		}
	}
	assert.True(t, different, "ten seeds produced identical scores")
}

func TestSimulateGame_ShortRoster_Fails(t *testing.T) {
	s := DefaultSettings()
	home := testRoster("h", 4, 80)
	away := testRoster("a", 10, 78)

	_, err := SimulateGame(home, away, 1, s)
	var rosterErr *InvalidRosterError
	require.ErrorAs(t, err, &rosterErr)
	assert.Equal(t, 4, rosterErr.Size)
}

func TestSimulateGame_NeverEndsTied(t *testing.T) {
	s := DefaultSettings()
	home := testRoster("h", 10, 75)
	away := testRoster("a", 10, 75)

	for seed := int64(0); seed < 25; seed++ {
		b, err := SimulateGame(home, away, seed, s)
		require.NoError(t, err)
		assert.NotEqual(t, b.HomeScore, b.AwayScore, "seed %d ended tied", seed)
	}
}

func TestSimulateGame_LinesAddUpToScore(t *testing.T) {
	s := DefaultSettings()
	home := testRoster("h", 12, 82)
	away := testRoster("a", 12, 74)

	b, err := SimulateGame(home, away, 77, s)
	require.NoError(t, err)

	sum := func(lines []PlayerLine) int {
		total := 0
		for _, l := range lines {
			total += l.Points
		}
		return total
	}
	assert.Equal(t, b.HomeScore, sum(b.Home))
	assert.Equal(t, b.AwayScore, sum(b.Away))
	assert.Greater(t, b.HomeScore, 0)
	assert.Greater(t, b.AwayScore, 0)
}

func TestSimulateGame_RetiredPlayersSitOut(t *testing.T) {
	s := DefaultSettings()
	home := testRoster("h", 10, 80)
	home[0].Retired = true
	away := testRoster("a", 10, 78)

	b, err := SimulateGame(home, away, 5, s)
	require.NoError(t, err)
	for _, line := range b.Home {
		assert.NotEqual(t, home[0].ID, line.PlayerID, "retired player appeared in the box score")
	}
}

func TestSimulateGame_BetterTeamWinsMost(t *testing.T) {
	s := DefaultSettings()
	strong := testRoster("s", 10, 90)
	weak := testRoster("w", 10, 55)

	wins := 0
	const games = 20
	for seed := int64(0); seed < games; seed++ {
		b, err := SimulateGame(strong, weak, seed, s)
		require.NoError(t, err)
		if b.HomeScore > b.AwayScore {
			wins++
		}
	}
	assert.Greater(t, wins, games/2, "a far stronger team should win most games")
}
