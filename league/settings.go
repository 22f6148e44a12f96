package league

// Settings carries every tunable the simulation reads. Values are plain
// data so they serialize with the league state and can be overridden from
// a YAML file; nothing in the core reaches for a global constant.
type Settings struct {
	// Cap table, in whole dollars.
	SalaryCap     int64 `yaml:"salary_cap" json:"salaryCap"`
	LuxuryTax     int64 `yaml:"luxury_tax" json:"luxuryTax"`
	HardCap       int64 `yaml:"hard_cap" json:"hardCap"`
	MinimumSalary int64 `yaml:"minimum_salary" json:"minimumSalary"`
	MaximumSalary int64 `yaml:"maximum_salary" json:"maximumSalary"`

	// Roster bounds enforced on every roster mutation.
	RosterMin int `yaml:"roster_min" json:"rosterMin"`
	RosterMax int `yaml:"roster_max" json:"rosterMax"`

	// Schedule shape.
	GamesPerPairSameDivision int `yaml:"games_same_division" json:"gamesPerPairSameDivision"`
	GamesPerPairSameConf     int `yaml:"games_same_conference" json:"gamesPerPairSameConf"`
	GamesPerPairCrossConf    int `yaml:"games_cross_conference" json:"gamesPerPairCrossConf"`
	SeasonDays               int `yaml:"season_days" json:"seasonDays"`
	OffseasonDays            int `yaml:"offseason_days" json:"offseasonDays"`
	FreeAgencyDays           int `yaml:"free_agency_days" json:"freeAgencyDays"`

	// Game model.
	PossessionsPerTeam int     `yaml:"possessions_per_team" json:"possessionsPerTeam"`
	RotationSize       int     `yaml:"rotation_size" json:"rotationSize"`
	HomeCourtBonus     float64 `yaml:"home_court_bonus" json:"homeCourtBonus"`
	FatigueSlope       float64 `yaml:"fatigue_slope" json:"fatigueSlope"`

	// Playoffs: number of teams seeded into the single-elimination bracket.
	// Must be a power of two.
	PlayoffTeams int `yaml:"playoff_teams" json:"playoffTeams"`

	// Draft.
	DraftRounds int `yaml:"draft_rounds" json:"draftRounds"`
	// LotteryWeights[i] is the relative chance of the i-th worst team
	// winning a lottery draw. Teams beyond the slice get the last weight.
	LotteryWeights []float64 `yaml:"lottery_weights" json:"lotteryWeights"`
	// LotteryDraws is how many top slots are decided by weighted draws;
	// the rest of the order is reverse standings.
	LotteryDraws int `yaml:"lottery_draws" json:"lotteryDraws"`
	// RookieScale[i] is the first-year salary for overall pick i+1. Picks
	// beyond the slice get the last entry.
	RookieScale []int64 `yaml:"rookie_scale" json:"rookieScale"`

	// Trade AI. A counterparty accepts when the value it receives is at
	// least FairnessTolerance times the value it gives up.
	FairnessTolerance float64 `yaml:"fairness_tolerance" json:"fairnessTolerance"`

	// Aging.
	RetirementAge     int `yaml:"retirement_age" json:"retirementAge"`
	SoftRetirementAge int `yaml:"soft_retirement_age" json:"softRetirementAge"`
	// A player past SoftRetirementAge retires once overall drops below this.
	SoftRetirementOverall int `yaml:"soft_retirement_overall" json:"softRetirementOverall"`

	// League shape used by the generator.
	TeamsPerLeague  int `yaml:"teams_per_league" json:"teamsPerLeague"`
	InitialRoster   int `yaml:"initial_roster" json:"initialRoster"`
	FreeAgentPool   int `yaml:"free_agent_pool" json:"freeAgentPool"`
	PickYearsOwned  int `yaml:"pick_years_owned" json:"pickYearsOwned"`
	DraftClassExtra int `yaml:"draft_class_extra" json:"draftClassExtra"`
}

// DefaultSettings mirrors the 2024-25 cap table and league shape.
func DefaultSettings() Settings {
	return Settings{
		SalaryCap:     140_588_000,
		LuxuryTax:     170_814_000,
		HardCap:       188_931_000,
		MinimumSalary: 1_119_563,
		MaximumSalary: 51_415_938,

		RosterMin: 12,
		RosterMax: 15,

		GamesPerPairSameDivision: 4,
		GamesPerPairSameConf:     3,
		GamesPerPairCrossConf:    2,
		SeasonDays:               170,
		OffseasonDays:            30,
		FreeAgencyDays:           14,

		PossessionsPerTeam: 100,
		RotationSize:       8,
		HomeCourtBonus:     1.5,
		FatigueSlope:       0.15,

		PlayoffTeams: 8,

		DraftRounds:  2,
		LotteryDraws: 4,
		LotteryWeights: []float64{
			14.0, 14.0, 14.0, 12.5, 10.5, 9.0, 7.5,
			6.0, 4.5, 3.0, 2.0, 1.5, 1.0, 0.5,
		},
		RookieScale: []int64{
			12_100_000, 10_900_000, 9_800_000, 9_300_000, 8_800_000,
			8_300_000, 7_900_000, 7_500_000, 7_100_000, 6_800_000,
			6_500_000, 6_200_000, 5_900_000, 5_600_000, 5_400_000,
			5_100_000, 4_900_000, 4_700_000, 4_500_000, 4_300_000,
			4_100_000, 3_900_000, 3_800_000, 3_600_000, 3_500_000,
			3_400_000, 3_300_000, 3_200_000, 3_100_000, 3_000_000,
			1_800_000, 1_750_000, 1_700_000, 1_650_000, 1_600_000,
			1_550_000, 1_500_000, 1_450_000, 1_400_000, 1_350_000,
			1_300_000, 1_200_000, 1_100_000,
		},

		FairnessTolerance: 0.85,

		RetirementAge:         40,
		SoftRetirementAge:     36,
		SoftRetirementOverall: 65,

		TeamsPerLeague:  30,
		InitialRoster:   14,
		FreeAgentPool:   60,
		PickYearsOwned:  7,
		DraftClassExtra: 4,
	}
}
