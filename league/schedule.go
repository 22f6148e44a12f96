package league

import "fmt"

// generateSchedule builds the regular season slate for the given year.
// Division rivals meet most often, then conference opponents, then the
// rest, with home court alternating inside each pairing. Games are then
// shuffled on the schedule RNG stream and spread evenly across the season
// window so every day carries a similar slate.
func generateSchedule(ls *LeagueState, year int) []*Game {
	var games []*Game
	next := 1
	for i, a := range ls.Teams {
		for _, b := range ls.Teams[i+1:] {
			n := ls.Settings.GamesPerPairCrossConf
			if a.Conference == b.Conference {
				n = ls.Settings.GamesPerPairSameConf
				if a.Division == b.Division {
					n = ls.Settings.GamesPerPairSameDivision
				}
			}
			for g := 0; g < n; g++ {
				home, away := a.ID, b.ID
				if g%2 == 1 {
					home, away = b.ID, a.ID
				}
				games = append(games, &Game{
					ID:     fmt.Sprintf("game-%d-%d", year, next),
					HomeID: home,
					AwayID: away,
				})
				next++
			}
		}
	}

	rng := Stream(ls.Seed, StreamSchedule, yearPart(year))
	rng.Shuffle(len(games), func(i, j int) {
		games[i], games[j] = games[j], games[i]
	})

	days := ls.Settings.SeasonDays
	if days <= 0 {
		days = DefaultSettings().SeasonDays
	}
	perDay := (len(games) + days - 1) / days
	if perDay < 1 {
		perDay = 1
	}
	for i, g := range games {
		g.Day = i/perDay + 1
	}
	return games
}

// remainingRegularGames counts unplayed, non-playoff schedule entries.
func (ls *LeagueState) remainingRegularGames() int {
	n := 0
	for _, g := range ls.Schedule {
		if !g.Playoff && g.Result == nil {
			n++
		}
	}
	return n
}
