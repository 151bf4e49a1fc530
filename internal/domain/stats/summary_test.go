package stats

import (
	"testing"
	"time"

	"github.com/riskibarqy/iplt20-stats/internal/domain/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	f := FilterBySeason(sampleDataset(t), season.Range{Min: 2008, Max: 2012})
	got := Summarize(f)

	assert.Equal(t, 7, got.Matches)
	assert.Equal(t, 5, got.Seasons)
	assert.Equal(t, 5, got.Venues)
	assert.EqualValues(t, 27, got.TotalRuns)
	assert.Equal(t, 4, got.Wickets)
	require.NotNil(t, got.FirstMatch)
	require.NotNil(t, got.LastMatch)
	assert.True(t, got.FirstMatch.Equal(time.Date(2008, 4, 18, 0, 0, 0, 0, time.UTC)))
	assert.True(t, got.LastMatch.Equal(time.Date(2012, 5, 27, 0, 0, 0, 0, time.UTC)))
}

func TestSummarize_RunOutCountsAsWicketFallen(t *testing.T) {
	t.Parallel()

	f := FilterBySeason(sampleDataset(t), season.Range{Min: 2010, Max: 2010})
	got := Summarize(f)

	assert.Equal(t, 2, got.Wickets, "bowled and run out both count as wickets fallen")
	for _, entry := range TopBowlers(f, 10) {
		assert.NotEqual(t, "SK Warne", entry.Name, "run out must not be credited to the bowler")
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	got := Summarize(Filtered{})
	assert.Equal(t, Summary{}, got)
}
