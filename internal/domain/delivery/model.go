package delivery

import "strings"

// Delivery is one ball bowled. An empty DismissalKind means no dismissal.
type Delivery struct {
	MatchID         int64
	Inning          int
	BattingTeam     string
	BowlingTeam     string
	Batter          string
	Bowler          string
	BatsmanRuns     int
	ExtraRuns       int
	TotalRuns       int
	IsWicket        bool
	DismissalKind   string
	PlayerDismissed string
}

// Dismissal kinds that count as a wicket fallen but are not credited to the bowler.
const (
	DismissalRunOut              = "run out"
	DismissalRetiredHurt         = "retired hurt"
	DismissalObstructingTheField = "obstructing the field"
)

var notCreditedToBowler = map[string]struct{}{
	DismissalRunOut:              {},
	DismissalRetiredHurt:         {},
	DismissalObstructingTheField: {},
}

// ExcludedFromBowler reports whether a dismissal kind is not credited to the bowler.
func ExcludedFromBowler(kind string) bool {
	_, ok := notCreditedToBowler[strings.ToLower(strings.TrimSpace(kind))]
	return ok
}

// BowlerWicket reports whether the delivery adds a wicket to the bowler's tally.
func (d Delivery) BowlerWicket() bool {
	return d.IsWicket && !ExcludedFromBowler(d.DismissalKind)
}
