package stats

import (
	"testing"

	"github.com/riskibarqy/iplt20-stats/internal/domain/season"
	"github.com/stretchr/testify/assert"
)

func TestSeasonWins(t *testing.T) {
	t.Parallel()

	f := FilterBySeason(sampleDataset(t), season.Range{Min: 2008, Max: 2012})
	got := SeasonWins(f)

	assert.Equal(t, []SeasonWin{
		{Season: "2008", Team: "KKR", Wins: 1},
		{Season: "2009", Team: "MI", Wins: 1},
		{Season: "2010", Team: "KKR", Wins: 1},
		{Season: "2010", Team: "MI", Wins: 1},
		{Season: "2011", Team: "CSK", Wins: 1},
		{Season: "2012", Team: "KKR", Wins: 1},
	}, got)
}

func TestSeasonWins_OrdersByWinsWithinSeason(t *testing.T) {
	t.Parallel()

	var f Filtered
	for i, winner := range []string{"RR", "MI", "RR", "CSK", "RR", "MI"} {
		f.Matches = append(f.Matches, matchWithWinner(int64(i+1), "2013", winner))
	}

	got := SeasonWins(f)
	assert.Equal(t, []SeasonWin{
		{Season: "2013", Team: "RR", Wins: 3},
		{Season: "2013", Team: "MI", Wins: 2},
		{Season: "2013", Team: "CSK", Wins: 1},
	}, got)
}
