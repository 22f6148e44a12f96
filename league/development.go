package league

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// runOffseasonDevelopment ages every active player one year and nudges
// each rating along an age curve centered on the player's peak. Old or
// faded players retire; retirement is a terminal status, the record stays
// in the arena forever.
func (ls *LeagueState) runOffseasonDevelopment() {
	for _, p := range ls.Players {
		if p.Retired {
			continue
		}
		rng := Stream(ls.Seed, StreamDevelopment, yearPart(ls.Year), p.ID)
		p.Age++
		curve := ageCurve(p.Age, p.PeakAge)

		adjust := func(v *int, extra float64) {
			delta := curve*(0.5+rng.Float64()) + extra
			*v = clampRating(*v + int(delta))
		}

		adjust(&p.Ratings.Speed, physicalDecline(p.Age, 30))
		adjust(&p.Ratings.Strength, 0)
		adjust(&p.Ratings.Jumping, physicalDecline(p.Age, 32))
		adjust(&p.Ratings.Endurance, 0)
		adjust(&p.Ratings.InsideScoring, 0)
		adjust(&p.Ratings.MidRange, 0)
		adjust(&p.Ratings.ThreePoint, 0)
		adjust(&p.Ratings.FreeThrow, 0)
		adjust(&p.Ratings.BallHandling, 0)
		adjust(&p.Ratings.Passing, 0)
		adjust(&p.Ratings.PerimeterDefense, 0)
		adjust(&p.Ratings.InteriorDefense, 0)
		adjust(&p.Ratings.Stealing, 0)
		adjust(&p.Ratings.Blocking, 0)
		adjust(&p.Ratings.OffensiveRebounding, 0)
		adjust(&p.Ratings.DefensiveRebounding, 0)
		// Mental game only ever improves with experience.
		if curve > 0 {
			adjust(&p.Ratings.IQ, 0.5)
		}

		if ls.shouldRetire(p) {
			ls.retire(p)
		}
	}
}

// ageCurve returns the per-rating development slope for one offseason.
// Rapid growth before 22, steady growth to peak, then accelerating
// decline.
func ageCurve(age, peakAge int) float64 {
	switch {
	case age < 22:
		return 1.5
	case age < peakAge:
		return 1.0 + float64(peakAge-age)*0.15
	case age == peakAge:
		return 0.5
	}
	yearsPast := age - peakAge
	switch {
	case yearsPast <= 3:
		return -0.5
	case yearsPast <= 5:
		return -1.0
	case yearsPast <= 7:
		return -1.5
	}
	return -2.0
}

// physicalDecline penalizes an athletic rating past a threshold age.
func physicalDecline(age, threshold int) float64 {
	if age > threshold {
		return -0.5
	}
	return 0
}

func (ls *LeagueState) shouldRetire(p *Player) bool {
	if p.Age >= ls.Settings.RetirementAge {
		return true
	}
	return p.Age >= ls.Settings.SoftRetirementAge && p.Overall() < ls.Settings.SoftRetirementOverall
}

// retire marks the player retired and removes every live reference. The
// record itself is never deleted.
func (ls *LeagueState) retire(p *Player) {
	if t := ls.Team(p.TeamID); t != nil {
		t.removePlayer(p.ID)
	}
	ls.removeFreeAgent(p.ID)
	p.TeamID = ""
	p.Retired = true
	p.Contract = Contract{}
	ls.appendLog(TxRetire, fmt.Sprintf("%s retired at age %d", p.Name, p.Age), nil, []string{p.ID})
	logrus.Debugf("retired %s (%s) at %d", p.Name, p.ID, p.Age)
}

// expireContracts burns one contract year off every signed player and
// moves expiring players into the free agent pool.
func (ls *LeagueState) expireContracts() {
	for _, p := range ls.Players {
		if p.Retired || p.TeamID == "" && p.Contract.Years == 0 {
			continue
		}
		if p.Contract.Years > 0 {
			p.Contract.Years--
		}
		if p.Contract.Years == 0 && p.TeamID != "" {
			if t := ls.Team(p.TeamID); t != nil {
				t.removePlayer(p.ID)
			}
			p.TeamID = ""
			ls.FreeAgents = append(ls.FreeAgents, p.ID)
		}
	}
}
