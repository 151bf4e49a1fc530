package stats

import (
	"fmt"
	"testing"

	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
	"github.com/riskibarqy/iplt20-stats/internal/domain/season"
	"github.com/stretchr/testify/assert"
)

func matchWithWinner(id int64, label, winner string) match.Match {
	return match.Match{ID: id, Season: label, WinnerCode: winner}
}

func TestTopBatters_TieBrokenByName(t *testing.T) {
	t.Parallel()

	f := Filtered{Deliveries: []delivery.Delivery{
		{Batter: "A", BatsmanRuns: 4},
		{Batter: "B", BatsmanRuns: 6},
		{Batter: "A", BatsmanRuns: 2},
	}}

	assert.Equal(t, []LeaderboardEntry{{Name: "A", Value: 6}, {Name: "B", Value: 6}}, TopBatters(f, 10))
}

func TestTopBatters_SortedAndTruncated(t *testing.T) {
	t.Parallel()

	var f Filtered
	for i := 0; i < 15; i++ {
		f.Deliveries = append(f.Deliveries, delivery.Delivery{
			Batter:      fmt.Sprintf("batter-%02d", i),
			BatsmanRuns: i % 5,
		})
	}

	got := TopBatters(f, 0)
	assert.Len(t, got, DefaultLeaderboardSize)
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.Value < cur.Value || (prev.Value == cur.Value && prev.Name >= cur.Name) {
			t.Fatalf("leaderboard out of order at %d: %+v then %+v", i, prev, cur)
		}
	}

	assert.Len(t, TopBatters(f, 3), 3)
}

func TestTopBatters_FromDataset(t *testing.T) {
	t.Parallel()

	f := FilterBySeason(sampleDataset(t), season.Range{Min: 2008, Max: 2012})
	got := TopBatters(f, 3)

	assert.Equal(t, []LeaderboardEntry{
		{Name: "BB McCullum", Value: 10},
		{Name: "SR Tendulkar", Value: 8},
		{Name: "AC Gilchrist", Value: 4},
	}, got)
}

func TestTopBowlers_ExcludesNonBowlerDismissals(t *testing.T) {
	t.Parallel()

	f := Filtered{Deliveries: []delivery.Delivery{
		{Bowler: "X", IsWicket: true, DismissalKind: "caught"},
		{Bowler: "X", IsWicket: true, DismissalKind: "run out"},
		{Bowler: "Y", IsWicket: true, DismissalKind: "retired hurt"},
		{Bowler: "Y", IsWicket: true, DismissalKind: "obstructing the field"},
		{Bowler: "Z", IsWicket: true, DismissalKind: "bowled"},
		{Bowler: "Z", IsWicket: true, DismissalKind: "stumped"},
		{Bowler: "W", DismissalKind: ""},
	}}

	assert.Equal(t, []LeaderboardEntry{{Name: "Z", Value: 2}, {Name: "X", Value: 1}}, TopBowlers(f, 10))
}

func TestTopBowlers_FromDataset(t *testing.T) {
	t.Parallel()

	f := FilterBySeason(sampleDataset(t), season.Range{Min: 2008, Max: 2012})
	got := TopBowlers(f, 10)

	assert.Equal(t, []LeaderboardEntry{
		{Name: "AB Agarkar", Value: 1},
		{Name: "R Ashwin", Value: 1},
		{Name: "Z Khan", Value: 1},
	}, got)
}
