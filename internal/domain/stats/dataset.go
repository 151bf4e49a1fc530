package stats

import (
	"errors"
	"fmt"
	"sort"

	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
	"github.com/riskibarqy/iplt20-stats/internal/domain/season"
	"github.com/riskibarqy/iplt20-stats/internal/domain/team"
)

var ErrDuplicateMatchID = errors.New("duplicate match id")

// Dataset holds the normalized base tables. It is read-only once built.
type Dataset struct {
	Matches    []match.Match
	Deliveries []delivery.Delivery
	Report     LoadReport
}

// LoadReport collects row-level problems found while building a Dataset.
// None of them stop the pipeline.
type LoadReport struct {
	MatchRows        int
	DeliveryRows     int
	InvalidDates     []int64
	UnmappedTeams    []string
	OrphanDeliveries int
}

// Clean reports whether the load produced no row-level issues.
func (r LoadReport) Clean() bool {
	return len(r.InvalidDates) == 0 && len(r.UnmappedTeams) == 0 && r.OrphanDeliveries == 0
}

// Issues describes every row-level issue in a form fit for display.
func (r LoadReport) Issues() []string {
	var out []string
	if n := len(r.InvalidDates); n > 0 {
		out = append(out, fmt.Sprintf("%d match(es) with an unparseable date are grouped under season %q", n, season.Unknown))
	}
	if n := len(r.UnmappedTeams); n > 0 {
		out = append(out, fmt.Sprintf("%d team name(s) have no short code and are shown as-is: %v", n, r.UnmappedTeams))
	}
	if r.OrphanDeliveries > 0 {
		out = append(out, fmt.Sprintf("%d delivery row(s) reference an unknown match and are ignored by season filters", r.OrphanDeliveries))
	}
	return out
}

// NewDataset normalizes raw match rows and validates the match table.
// Duplicate match ids are the only fatal condition.
func NewDataset(matches []match.Match, deliveries []delivery.Delivery) (Dataset, error) {
	normalized := make([]match.Match, 0, len(matches))
	ids := make(map[int64]struct{}, len(matches))
	unmapped := make(map[string]struct{})
	report := LoadReport{
		MatchRows:    len(matches),
		DeliveryRows: len(deliveries),
	}

	for _, raw := range matches {
		if _, exists := ids[raw.ID]; exists {
			return Dataset{}, fmt.Errorf("%w: %d", ErrDuplicateMatchID, raw.ID)
		}
		ids[raw.ID] = struct{}{}

		m := raw.Normalize()
		if !m.HasDate() {
			report.InvalidDates = append(report.InvalidDates, m.ID)
		}
		for _, name := range m.TeamNames() {
			if name == "" {
				continue
			}
			if _, ok := team.Lookup(name); !ok {
				unmapped[name] = struct{}{}
			}
		}
		normalized = append(normalized, m)
	}

	for _, d := range deliveries {
		if _, ok := ids[d.MatchID]; !ok {
			report.OrphanDeliveries++
		}
	}

	report.UnmappedTeams = sortedKeys(unmapped)

	return Dataset{
		Matches:    normalized,
		Deliveries: append([]delivery.Delivery(nil), deliveries...),
		Report:     report,
	}, nil
}

// Bounds returns the earliest and latest season present in the dataset.
func Bounds(ds Dataset) (season.Range, bool) {
	var out season.Range
	found := false
	for _, m := range ds.Matches {
		year, ok := season.Year(m.Season)
		if !ok {
			continue
		}
		if !found || year < out.Min {
			out.Min = year
		}
		if !found || year > out.Max {
			out.Max = year
		}
		found = true
	}
	return out, found
}

// Labels returns the distinct valid season labels in ascending order.
func Labels(ds Dataset) []string {
	set := make(map[string]struct{})
	for _, m := range ds.Matches {
		if _, ok := season.Year(m.Season); ok {
			set[m.Season] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// TeamCodes returns the distinct normalized codes of the first team column,
// which is the list of franchises shown in the team picker.
func TeamCodes(ds Dataset) []string {
	set := make(map[string]struct{})
	for _, m := range ds.Matches {
		if m.Team1Code != "" {
			set[m.Team1Code] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
