package league

import (
	"fmt"
	"math/rand"
)

// Name pools for the fiction generator. Any loader producing the same
// Player/Team shapes could replace this package's output; the core never
// cares which loader built the league.
var firstNames = []string{
	"Marcus", "Jalen", "Darius", "Tyrese", "Malik", "Isaiah", "Jordan",
	"Andre", "Devon", "Xavier", "Cameron", "Elijah", "Grant", "Trevor",
	"Caleb", "Dante", "Omar", "Reggie", "Silas", "Terrence", "Victor",
	"Wendell", "Austin", "Bryce", "Colin", "Damon", "Emmett", "Felix",
	"Gabe", "Harlan", "Ivan", "Jonas", "Kendall", "Lamar", "Miles",
	"Noel", "Oscar", "Pierce", "Quentin", "Rashad", "Stefan", "Theo",
}

var lastNames = []string{
	"Abbott", "Barnes", "Caldwell", "Dawson", "Ellison", "Fletcher",
	"Graves", "Holloway", "Ingram", "Jennings", "Kirkland", "Lawson",
	"Maddox", "Norwood", "Oakley", "Prescott", "Quimby", "Rhodes",
	"Sampson", "Thorne", "Underwood", "Vance", "Whitfield", "Yates",
	"Ashford", "Bellamy", "Crowell", "Donahue", "Everhart", "Fairbanks",
	"Gentry", "Hargrove", "Irwin", "Jessup", "Kemp", "Langford",
	"Merritt", "Nolan", "Osgood", "Pemberton", "Redding", "Sutton",
}

// franchise is one row of the fictional league table.
type franchise struct {
	id, name, conference, division string
}

var franchises = []franchise{
	{"ATL", "Atlantica Tides", "Eastern", "Atlantic"},
	{"BHR", "Black Harbor Gulls", "Eastern", "Atlantic"},
	{"CPV", "Cape Verde Mariners", "Eastern", "Atlantic"},
	{"DRT", "Dockridge Titans", "Eastern", "Atlantic"},
	{"ELM", "Elmshore Pilots", "Eastern", "Atlantic"},
	{"FRL", "Ferrolton Forge", "Eastern", "Central"},
	{"GRV", "Graniteville Miners", "Eastern", "Central"},
	{"HLC", "Hillcrest Stags", "Eastern", "Central"},
	{"IRW", "Ironworks City Anvils", "Eastern", "Central"},
	{"JNC", "Junction Falls Express", "Eastern", "Central"},
	{"KNG", "Kingsbridge Royals", "Eastern", "Southeast"},
	{"LKW", "Lakewood Herons", "Eastern", "Southeast"},
	{"MGN", "Magnolia Bay Cyclones", "Eastern", "Southeast"},
	{"NPT", "Newport Sound Breakers", "Eastern", "Southeast"},
	{"OKF", "Oakfield Grove Owls", "Eastern", "Southeast"},
	{"PNK", "Pinnacle Peaks", "Western", "Northwest"},
	{"QRY", "Quarry Ridge Rams", "Western", "Northwest"},
	{"RVB", "Riverbend Rapids", "Western", "Northwest"},
	{"SLT", "Saltflat Coyotes", "Western", "Northwest"},
	{"TMB", "Timberline Wolves", "Western", "Northwest"},
	{"UPL", "Upland Mesa Hawks", "Western", "Pacific"},
	{"VST", "Vista del Sol Suns", "Western", "Pacific"},
	{"WCV", "West Cove Sharks", "Western", "Pacific"},
	{"XSP", "Crosspoint Surge", "Western", "Pacific"},
	{"YBR", "Ybarra Beach Waves", "Western", "Pacific"},
	{"ZPH", "Zephyr Plains Stampede", "Western", "Southwest"},
	{"ARY", "Arroyo Verde Scorpions", "Western", "Southwest"},
	{"BSN", "Basin City Drillers", "Western", "Southwest"},
	{"CYN", "Canyon Gate Condors", "Western", "Southwest"},
	{"DSW", "Dustwell Vipers", "Western", "Southwest"},
}

// ratingTier sets the base rating band a generated player draws from.
type ratingTier int

const (
	tierStar ratingTier = iota
	tierStarter
	tierRotation
	tierBench
	tierProspect
)

func (t ratingTier) base() int {
	switch t {
	case tierStar:
		return 85
	case tierStarter:
		return 72
	case tierRotation:
		return 62
	case tierBench:
		return 52
	default:
		return 45
	}
}

// genStat draws one attribute around the tier base.
func genStat(rng *rand.Rand, tier ratingTier) int {
	return clampRating(tier.base() + int((rng.Float64()-0.5)*20))
}

// genRatings produces a position-shaped attribute vector: guards skew
// toward handling and shooting, bigs toward inside play and the glass.
func genRatings(rng *rand.Rand, pos Position, tier ratingTier) Ratings {
	r := Ratings{
		Speed:               genStat(rng, tier),
		Strength:            genStat(rng, tier),
		Jumping:             genStat(rng, tier),
		Endurance:           genStat(rng, tier),
		InsideScoring:       genStat(rng, tier),
		MidRange:            genStat(rng, tier),
		ThreePoint:          genStat(rng, tier),
		FreeThrow:           genStat(rng, tier),
		BallHandling:        genStat(rng, tier),
		Passing:             genStat(rng, tier),
		PerimeterDefense:    genStat(rng, tier),
		InteriorDefense:     genStat(rng, tier),
		Stealing:            genStat(rng, tier),
		Blocking:            genStat(rng, tier),
		OffensiveRebounding: genStat(rng, tier),
		DefensiveRebounding: genStat(rng, tier),
		IQ:                  genStat(rng, tier),
		Clutch:              40 + rng.Intn(60),
	}
	scale := func(v *int, mult float64) {
		*v = clampRating(int(float64(*v) * mult))
	}
	switch pos {
	case PointGuard:
		scale(&r.BallHandling, 1.3)
		scale(&r.Passing, 1.3)
		scale(&r.Speed, 1.2)
		scale(&r.ThreePoint, 1.1)
		scale(&r.InteriorDefense, 0.7)
		scale(&r.Blocking, 0.5)
		scale(&r.OffensiveRebounding, 0.6)
	case ShootingGuard:
		scale(&r.ThreePoint, 1.2)
		scale(&r.MidRange, 1.2)
		scale(&r.PerimeterDefense, 1.1)
		scale(&r.Blocking, 0.6)
		scale(&r.OffensiveRebounding, 0.7)
	case PowerForward:
		scale(&r.Strength, 1.2)
		scale(&r.DefensiveRebounding, 1.2)
		scale(&r.OffensiveRebounding, 1.1)
		scale(&r.InsideScoring, 1.1)
		scale(&r.InteriorDefense, 1.1)
		scale(&r.BallHandling, 0.8)
	case Center:
		scale(&r.Strength, 1.3)
		scale(&r.DefensiveRebounding, 1.4)
		scale(&r.OffensiveRebounding, 1.3)
		scale(&r.Blocking, 1.5)
		scale(&r.InteriorDefense, 1.3)
		scale(&r.InsideScoring, 1.2)
		scale(&r.Speed, 0.7)
		scale(&r.BallHandling, 0.6)
		scale(&r.ThreePoint, 0.6)
	}
	return r
}

// genSalary bands salary by overall rating, falling back to a veteran
// minimum ladder for fringe players.
func genSalary(rng *rand.Rand, s Settings, overall, experience int) int64 {
	between := func(lo, hi int64) int64 {
		return lo + int64(rng.Float64()*float64(hi-lo))
	}
	switch {
	case overall >= 90:
		return between(40_000_000, s.MaximumSalary)
	case overall >= 85:
		return between(30_000_000, 45_000_000)
	case overall >= 80:
		return between(20_000_000, 35_000_000)
	case overall >= 75:
		return between(12_000_000, 25_000_000)
	case overall >= 70:
		return between(6_000_000, 15_000_000)
	case overall >= 65:
		return between(2_000_000, 8_000_000)
	}
	minimum := s.MinimumSalary
	if experience > 3 {
		minimum = minimum * 2
	}
	return minimum
}

func genName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}

// genPlayer creates one player. The caller owns the ID.
func genPlayer(rng *rand.Rand, s Settings, id string, pos Position, tier ratingTier, age int) *Player {
	ratings := genRatings(rng, pos, tier)
	p := &Player{
		ID:      id,
		Name:    genName(rng),
		Pos:     pos,
		Age:     age,
		PeakAge: 26 + rng.Intn(5),
		Ratings: ratings,
	}
	overall := p.Overall()
	p.Potential = overall
	if age < 25 {
		p.Potential = clampRating(overall + (25-age)*2 + rng.Intn(10))
	}
	experience := age - 19
	if experience < 0 {
		experience = 0
	}
	p.Contract = Contract{
		Salary: genSalary(rng, s, overall, experience),
		Years:  1 + rng.Intn(4),
	}
	return p
}

// rosterTier spreads talent across a generated roster: a couple of
// cornerstones, a starting five, then rotation and bench depth.
func rosterTier(slot int) ratingTier {
	switch {
	case slot < 2:
		return tierStar
	case slot < 5:
		return tierStarter
	case slot < 10:
		return tierRotation
	}
	return tierBench
}

// NewLeague builds a complete fictional league: teams, rosters, a free
// agent pool, owned future picks, and the opening schedule. Everything is
// drawn from the generator stream of the master seed, so the same seed
// always produces the same league.
func NewLeague(seed int64, year int, s Settings, userTeamID string) *LeagueState {
	ls := &LeagueState{
		Seed:     seed,
		Year:     year,
		Phase:    PhaseRegular,
		Settings: s,
	}
	ls.Reindex()

	rng := Stream(seed, StreamGenerator)

	count := s.TeamsPerLeague
	if count <= 0 || count > len(franchises) {
		count = len(franchises)
	}
	nextID := 1
	for _, f := range franchises[:count] {
		t := &Team{
			ID:         f.id,
			Name:       f.name,
			Conference: f.conference,
			Division:   f.division,
		}
		for y := 1; y <= s.PickYearsOwned; y++ {
			for round := 1; round <= s.DraftRounds; round++ {
				t.Picks = append(t.Picks, PickRef{Year: year + y, Round: round, OriginalTeamID: t.ID})
			}
		}
		for slot := 0; slot < s.InitialRoster; slot++ {
			pos := Positions[slot%len(Positions)]
			age := 19 + rng.Intn(16)
			p := genPlayer(rng, s, fmt.Sprintf("p-%04d", nextID), pos, rosterTier(slot), age)
			nextID++
			p.TeamID = t.ID
			ls.addPlayer(p)
			t.Roster = append(t.Roster, p.ID)
		}
		ls.Teams = append(ls.Teams, t)
		ls.teamIndex[t.ID] = t
	}

	for i := 0; i < s.FreeAgentPool; i++ {
		tier := tierBench
		if i < s.FreeAgentPool/6 {
			tier = tierStarter
		} else if i < s.FreeAgentPool/2 {
			tier = tierRotation
		}
		pos := Positions[i%len(Positions)]
		p := genPlayer(rng, s, fmt.Sprintf("p-%04d", nextID), pos, tier, 21+rng.Intn(14))
		nextID++
		ls.addPlayer(p)
		ls.FreeAgents = append(ls.FreeAgents, p.ID)
	}

	if userTeamID == "" && len(ls.Teams) > 0 {
		userTeamID = ls.Teams[0].ID
	}
	ls.UserTeamID = userTeamID
	ls.Schedule = generateSchedule(ls, year)
	return ls
}

// removeFreeAgent drops an ID from the free agent pool if present.
func (ls *LeagueState) removeFreeAgent(id string) {
	for i, fa := range ls.FreeAgents {
		if fa == id {
			ls.FreeAgents = append(ls.FreeAgents[:i], ls.FreeAgents[i+1:]...)
			return
		}
	}
}
