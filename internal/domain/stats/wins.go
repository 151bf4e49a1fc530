package stats

import "sort"

// SeasonWin is the number of matches a team won in one season.
type SeasonWin struct {
	Season string
	Team   string
	Wins   int
}

// SeasonWins tallies wins per (season, winner code). No-result matches are skipped.
func SeasonWins(f Filtered) []SeasonWin {
	type key struct {
		season string
		team   string
	}

	counts := make(map[key]int)
	for _, m := range f.Matches {
		if m.WinnerCode == "" {
			continue
		}
		counts[key{season: m.Season, team: m.WinnerCode}]++
	}

	out := make([]SeasonWin, 0, len(counts))
	for k, wins := range counts {
		out = append(out, SeasonWin{Season: k.season, Team: k.team, Wins: wins})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season < out[j].Season
		}
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Team < out[j].Team
	})
	return out
}
