package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverall_PositionWeighting(t *testing.T) {
	r := Ratings{
		Speed: 50, Strength: 50, Jumping: 50, Endurance: 50,
		InsideScoring: 90, MidRange: 50, ThreePoint: 20, FreeThrow: 50,
		BallHandling: 20, Passing: 30,
		PerimeterDefense: 40, InteriorDefense: 90, Stealing: 30, Blocking: 90,
		OffensiveRebounding: 85, DefensiveRebounding: 90, IQ: 60, Clutch: 50,
	}
	// An interior-heavy profile grades out better at center than at point.
	assert.Greater(t, r.Overall(Center), r.Overall(PointGuard))
}

func TestOverall_Bounded(t *testing.T) {
	var zero Ratings
	assert.Equal(t, 0, zero.Overall(SmallForward))

	max := Ratings{
		Speed: 100, Strength: 100, Jumping: 100, Endurance: 100,
		InsideScoring: 100, MidRange: 100, ThreePoint: 100, FreeThrow: 100,
		BallHandling: 100, Passing: 100,
		PerimeterDefense: 100, InteriorDefense: 100, Stealing: 100, Blocking: 100,
		OffensiveRebounding: 100, DefensiveRebounding: 100, IQ: 100, Clutch: 100,
	}
	for _, pos := range Positions {
		assert.LessOrEqual(t, max.Overall(pos), 100)
		assert.GreaterOrEqual(t, max.Overall(pos), 90)
	}
}

func TestStatLine_Add(t *testing.T) {
	var total StatLine
	total.add(PlayerLine{PlayerID: "p", Points: 20, Rebounds: 5, Assists: 7, Minutes: 34})
	total.add(PlayerLine{PlayerID: "p", Points: 10, Rebounds: 3, Assists: 2, Minutes: 28})

	assert.Equal(t, 2, total.Games)
	assert.Equal(t, 30, total.Points)
	assert.Equal(t, 8, total.Rebounds)
	assert.Equal(t, 9, total.Assists)
	assert.Equal(t, 62, total.Minutes)
}
