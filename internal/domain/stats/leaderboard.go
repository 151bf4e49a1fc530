package stats

import "sort"

const DefaultLeaderboardSize = 10

// LeaderboardEntry is one ranked row: a player and their aggregate.
type LeaderboardEntry struct {
	Name  string
	Value int
}

// TopBatters ranks batters by runs off the bat.
func TopBatters(f Filtered, n int) []LeaderboardEntry {
	totals := make(map[string]int)
	for _, d := range f.Deliveries {
		if d.Batter == "" {
			continue
		}
		totals[d.Batter] += d.BatsmanRuns
	}
	return rank(totals, n)
}

// TopBowlers ranks bowlers by wickets credited to them.
func TopBowlers(f Filtered, n int) []LeaderboardEntry {
	totals := make(map[string]int)
	for _, d := range f.Deliveries {
		if d.Bowler == "" || !d.BowlerWicket() {
			continue
		}
		totals[d.Bowler]++
	}
	return rank(totals, n)
}

func rank(totals map[string]int, n int) []LeaderboardEntry {
	if n <= 0 {
		n = DefaultLeaderboardSize
	}

	out := make([]LeaderboardEntry, 0, len(totals))
	for name, value := range totals {
		out = append(out, LeaderboardEntry{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
