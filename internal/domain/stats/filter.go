package stats

import (
	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
	"github.com/riskibarqy/iplt20-stats/internal/domain/season"
)

// Filtered is the season-scoped view of a Dataset.
type Filtered struct {
	Range      season.Range
	Matches    []match.Match
	Deliveries []delivery.Delivery
}

// FilterBySeason keeps the matches whose season lies in r and the deliveries
// that belong to those matches. Deliveries never outlive their match.
func FilterBySeason(ds Dataset, r season.Range) Filtered {
	out := Filtered{Range: r}
	if r.Empty() {
		return out
	}

	kept := make(map[int64]struct{})
	for _, m := range ds.Matches {
		if !r.Contains(m.Season) {
			continue
		}
		kept[m.ID] = struct{}{}
		out.Matches = append(out.Matches, m)
	}
	if len(kept) == 0 {
		return out
	}

	for _, d := range ds.Deliveries {
		if _, ok := kept[d.MatchID]; ok {
			out.Deliveries = append(out.Deliveries, d)
		}
	}
	return out
}
