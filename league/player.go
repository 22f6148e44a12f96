package league

import "math"

// Position is one of the five classic lineup slots.
type Position string

const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
)

// Positions lists every position in lineup order.
var Positions = []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}

// Ratings is the bounded 0-100 attribute vector for one player. Overall is
// never stored here; it is always derived via Overall so it cannot drift
// from its inputs.
type Ratings struct {
	Speed     int `json:"speed"`
	Strength  int `json:"strength"`
	Jumping   int `json:"jumping"`
	Endurance int `json:"endurance"`

	InsideScoring int `json:"insideScoring"`
	MidRange      int `json:"midRange"`
	ThreePoint    int `json:"threePoint"`
	FreeThrow     int `json:"freeThrow"`
	BallHandling  int `json:"ballHandling"`
	Passing       int `json:"passing"`

	PerimeterDefense int `json:"perimeterDefense"`
	InteriorDefense  int `json:"interiorDefense"`
	Stealing         int `json:"stealing"`
	Blocking         int `json:"blocking"`

	OffensiveRebounding int `json:"offensiveRebounding"`
	DefensiveRebounding int `json:"defensiveRebounding"`

	IQ     int `json:"iq"`
	Clutch int `json:"clutch"`
}

// ratingWeight pairs one attribute with its overall weight.
type ratingWeight struct {
	value  int
	weight float64
}

// Overall computes the weighted overall rating for the given position.
// Guards lean on handling, shooting and perimeter defense; bigs on inside
// play, rebounding and rim protection. Weights per position sum to 1.
func (r Ratings) Overall(pos Position) int {
	var interior, perimeter, handling float64
	switch pos {
	case PointGuard:
		interior, perimeter, handling = 0.6, 1.3, 1.4
	case ShootingGuard:
		interior, perimeter, handling = 0.7, 1.3, 1.1
	case SmallForward:
		interior, perimeter, handling = 1.0, 1.0, 1.0
	case PowerForward:
		interior, perimeter, handling = 1.3, 0.8, 0.8
	case Center:
		interior, perimeter, handling = 1.5, 0.6, 0.6
	default:
		interior, perimeter, handling = 1.0, 1.0, 1.0
	}

	weighted := []ratingWeight{
		{r.Speed, 0.06},
		{r.Strength, 0.04 * interior},
		{r.Jumping, 0.04},
		{r.Endurance, 0.04},
		{r.InsideScoring, 0.09 * interior},
		{r.MidRange, 0.08},
		{r.ThreePoint, 0.10 * perimeter},
		{r.FreeThrow, 0.04},
		{r.BallHandling, 0.07 * handling},
		{r.Passing, 0.06 * handling},
		{r.PerimeterDefense, 0.08 * perimeter},
		{r.InteriorDefense, 0.06 * interior},
		{r.Stealing, 0.04},
		{r.Blocking, 0.04 * interior},
		{r.OffensiveRebounding, 0.04 * interior},
		{r.DefensiveRebounding, 0.05 * interior},
		{r.IQ, 0.05},
		{r.Clutch, 0.02},
	}

	var sum, total float64
	for _, rw := range weighted {
		sum += float64(rw.value) * rw.weight
		total += rw.weight
	}
	return clampRating(int(math.Round(sum / total)))
}

func clampRating(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Contract is a player's active deal.
type Contract struct {
	Salary int64 `json:"salary"`
	Years  int   `json:"years"`
}

// StatLine accumulates per-game output. All fields are season or career
// totals except Games, which counts appearances.
type StatLine struct {
	Games    int `json:"games"`
	Minutes  int `json:"minutes"`
	Points   int `json:"points"`
	Rebounds int `json:"rebounds"`
	Assists  int `json:"assists"`
	Steals   int `json:"steals"`
	Blocks   int `json:"blocks"`
	Turnover int `json:"turnovers"`
	FGM      int `json:"fgm"`
	FGA      int `json:"fga"`
	TPM      int `json:"tpm"`
	TPA      int `json:"tpa"`
	FTM      int `json:"ftm"`
	FTA      int `json:"fta"`
	Fouls    int `json:"fouls"`
}

// add accumulates one game's line into the total.
func (s *StatLine) add(l PlayerLine) {
	s.Games++
	s.Minutes += l.Minutes
	s.Points += l.Points
	s.Rebounds += l.Rebounds
	s.Assists += l.Assists
	s.Steals += l.Steals
	s.Blocks += l.Blocks
	s.Turnover += l.Turnover
	s.FGM += l.FGM
	s.FGA += l.FGA
	s.TPM += l.TPM
	s.TPA += l.TPA
	s.FTM += l.FTM
	s.FTA += l.FTA
	s.Fouls += l.Fouls
}

// Award records a season honor on a player.
type Award struct {
	Year int    `json:"year"`
	Type string `json:"type"`
}

const (
	AwardMVP           = "MVP"
	AwardScoringLeader = "ScoringLeader"
)

// Player is one athlete. ID and identity are immutable; everything else is
// mutated only by the systems in this package. Records are never deleted:
// retirement sets Retired and clears the team reference.
type Player struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Pos     Position `json:"pos"`
	Age     int      `json:"age"`
	PeakAge int      `json:"peakAge"`

	Ratings   Ratings `json:"ratings"`
	Potential int     `json:"potential"`

	Contract Contract `json:"contract"`
	TeamID   string   `json:"teamId"` // empty for free agents and prospects
	Retired  bool     `json:"retired,omitempty"`

	DraftYear int `json:"draftYear,omitempty"`
	DraftPick int `json:"draftPick,omitempty"` // overall pick, 1-based

	Season StatLine `json:"season"`
	Career StatLine `json:"career"`
	Awards []Award  `json:"awards,omitempty"`
}

// Overall is the derived overall rating at the player's position.
func (p *Player) Overall() int {
	return p.Ratings.Overall(p.Pos)
}
