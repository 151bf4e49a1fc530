package stats

import "time"

// Summary carries the headline counters of a season range.
type Summary struct {
	Matches    int
	Seasons    int
	Venues     int
	TotalRuns  int64
	Wickets    int
	FirstMatch *time.Time
	LastMatch  *time.Time
}

// Summarize counts matches, seasons, venues, runs and wickets fallen.
// Every wicket counts here, including run outs.
func Summarize(f Filtered) Summary {
	seasons := make(map[string]struct{})
	venues := make(map[string]struct{})
	var first, last time.Time

	for _, m := range f.Matches {
		seasons[m.Season] = struct{}{}
		if m.Venue != "" {
			venues[m.Venue] = struct{}{}
		}
		if !m.HasDate() {
			continue
		}
		if first.IsZero() || m.Date.Before(first) {
			first = m.Date
		}
		if last.IsZero() || m.Date.After(last) {
			last = m.Date
		}
	}

	out := Summary{
		Matches: len(f.Matches),
		Seasons: len(seasons),
		Venues:  len(venues),
	}
	for _, d := range f.Deliveries {
		out.TotalRuns += int64(d.TotalRuns)
		if d.IsWicket {
			out.Wickets++
		}
	}
	if !first.IsZero() {
		out.FirstMatch = &first
		out.LastMatch = &last
	}
	return out
}
