package league

import "fmt"

// awardScore is the MVP voting formula: per-game production weighted
// toward scoring and playmaking, plus team success and raw rating.
func awardScore(ls *LeagueState, p *Player) float64 {
	games := float64(p.Season.Games)
	if games == 0 {
		return 0
	}
	rec := ls.Record(p.TeamID)
	ppg := float64(p.Season.Points) / games
	rpg := float64(p.Season.Rebounds) / games
	apg := float64(p.Season.Assists) / games
	return ppg*2 + rpg*1.2 + apg*1.5 + rec.winPct()*100 + float64(p.Overall())*0.5
}

// selectAwards picks the season MVP and scoring leader and appends the
// honors to the winners. Candidates must have appeared in at least half of
// the season's games.
func selectAwards(ls *LeagueState) {
	totalGames := 0
	for _, g := range ls.Schedule {
		if !g.Playoff {
			totalGames++
		}
	}
	minGames := 0
	if n := len(ls.Teams); n > 0 {
		// Each game involves two teams; half of one team's slate.
		minGames = totalGames / n
	}

	var mvp, scorer *Player
	var mvpScore, scorerPPG float64
	for _, p := range ls.Players {
		if p.TeamID == "" || p.Season.Games < minGames || p.Season.Games == 0 {
			continue
		}
		if s := awardScore(ls, p); mvp == nil || s > mvpScore || (s == mvpScore && p.ID < mvp.ID) {
			mvp, mvpScore = p, s
		}
		if ppg := float64(p.Season.Points) / float64(p.Season.Games); scorer == nil || ppg > scorerPPG || (ppg == scorerPPG && p.ID < scorer.ID) {
			scorer, scorerPPG = p, ppg
		}
	}

	if mvp != nil {
		mvp.Awards = append(mvp.Awards, Award{Year: ls.Year, Type: AwardMVP})
		ls.appendLog("award", fmt.Sprintf("%s named %d MVP", mvp.Name, ls.Year), nil, []string{mvp.ID})
	}
	if scorer != nil {
		scorer.Awards = append(scorer.Awards, Award{Year: ls.Year, Type: AwardScoringLeader})
	}
}
