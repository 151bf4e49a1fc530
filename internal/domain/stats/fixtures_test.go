package stats

import (
	"testing"

	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
)

// sampleDataset spans seasons 2008-2012 with one bad date and one no-result match.
func sampleDataset(t *testing.T) Dataset {
	t.Helper()

	matches := []match.Match{
		{ID: 1, RawDate: "2008-04-18", Venue: "M Chinnaswamy Stadium", City: "Bangalore", Team1: "Royal Challengers Bangalore", Team2: "Kolkata Knight Riders", TossWinner: "Royal Challengers Bangalore", Winner: "Kolkata Knight Riders", TossDecision: "field"},
		{ID: 2, RawDate: "2009-04-19", Venue: "Newlands", City: "Cape Town", Team1: "Chennai Super Kings", Team2: "Mumbai Indians", TossWinner: "Mumbai Indians", Winner: "Mumbai Indians", TossDecision: "bat"},
		{ID: 3, RawDate: "2010-03-12", Venue: "DY Patil Stadium", City: "Mumbai", Team1: "Deccan Chargers", Team2: "Kolkata Knight Riders", TossWinner: "Deccan Chargers", Winner: "Kolkata Knight Riders", TossDecision: "bat"},
		{ID: 4, RawDate: "2010-03-13", Venue: "Wankhede Stadium", City: "Mumbai", Team1: "Mumbai Indians", Team2: "Rajasthan Royals", TossWinner: "Mumbai Indians", Winner: "Mumbai Indians", TossDecision: "bat"},
		{ID: 5, RawDate: "2010-03-14", Venue: "Wankhede Stadium", City: "Mumbai", Team1: "Delhi Daredevils", Team2: "Kings XI Punjab", TossWinner: "Kings XI Punjab", Winner: "", TossDecision: "field", Result: "no result"},
		{ID: 6, RawDate: "2011-04-08", Venue: "MA Chidambaram Stadium", City: "Chennai", Team1: "Chennai Super Kings", Team2: "Kochi Tuskers Kerala", TossWinner: "Kochi Tuskers Kerala", Winner: "Chennai Super Kings", TossDecision: "field"},
		{ID: 7, RawDate: "2012-05-27", Venue: "MA Chidambaram Stadium", City: "Chennai", Team1: "Kolkata Knight Riders", Team2: "Chennai Super Kings", TossWinner: "Chennai Super Kings", Winner: "Kolkata Knight Riders", TossDecision: "bat"},
		{ID: 8, RawDate: "??", Venue: "Eden Gardens", City: "Kolkata", Team1: "Pune Warriors", Team2: "Surrey Strikers", TossWinner: "Pune Warriors", Winner: "Pune Warriors", TossDecision: "bat"},
	}

	deliveries := []delivery.Delivery{
		{MatchID: 1, Batter: "BB McCullum", Bowler: "P Kumar", BatsmanRuns: 4, TotalRuns: 4},
		{MatchID: 1, Batter: "BB McCullum", Bowler: "P Kumar", BatsmanRuns: 6, TotalRuns: 7, ExtraRuns: 1},
		{MatchID: 1, Batter: "SC Ganguly", Bowler: "Z Khan", IsWicket: true, DismissalKind: "caught"},
		{MatchID: 2, Batter: "SR Tendulkar", Bowler: "MS Gony", BatsmanRuns: 2, TotalRuns: 2},
		{MatchID: 3, Batter: "AC Gilchrist", Bowler: "AB Agarkar", BatsmanRuns: 4, TotalRuns: 4},
		{MatchID: 3, Batter: "AC Gilchrist", Bowler: "AB Agarkar", IsWicket: true, DismissalKind: "bowled"},
		{MatchID: 4, Batter: "SR Tendulkar", Bowler: "SK Warne", BatsmanRuns: 6, TotalRuns: 6},
		{MatchID: 4, Batter: "AT Rayudu", Bowler: "SK Warne", IsWicket: true, DismissalKind: "run out"},
		{MatchID: 5, Batter: "V Sehwag", Bowler: "IK Pathan", TotalRuns: 1, ExtraRuns: 1},
		{MatchID: 6, Batter: "MEK Hussey", Bowler: "RP Singh", BatsmanRuns: 3, TotalRuns: 3},
		{MatchID: 7, Batter: "MS Bisla", Bowler: "R Ashwin", IsWicket: true, DismissalKind: "lbw"},
		{MatchID: 8, Batter: "RV Uthappa", Bowler: "A Mishra", BatsmanRuns: 1, TotalRuns: 1},
		{MatchID: 99, Batter: "Ghost", Bowler: "Nobody", BatsmanRuns: 50, TotalRuns: 50},
	}

	ds, err := NewDataset(matches, deliveries)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}
