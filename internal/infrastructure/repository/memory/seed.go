package memory

import (
	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
)

// SeedMatches returns a small set of real fixtures from the first seasons,
// enough to exercise every endpoint without a CSV or database.
func SeedMatches() []match.Match {
	return []match.Match{
		{ID: 335982, RawDate: "2008-04-18", City: "Bangalore", Venue: "M Chinnaswamy Stadium", Team1: "Royal Challengers Bangalore", Team2: "Kolkata Knight Riders", TossWinner: "Royal Challengers Bangalore", TossDecision: "field", Winner: "Kolkata Knight Riders", Result: "runs", PlayerOfMatch: "BB McCullum"},
		{ID: 335983, RawDate: "2008-04-19", City: "Chandigarh", Venue: "Punjab Cricket Association Stadium, Mohali", Team1: "Kings XI Punjab", Team2: "Chennai Super Kings", TossWinner: "Chennai Super Kings", TossDecision: "bat", Winner: "Chennai Super Kings", Result: "runs", PlayerOfMatch: "MEK Hussey"},
		{ID: 335984, RawDate: "2008-04-19", City: "Delhi", Venue: "Feroz Shah Kotla", Team1: "Delhi Daredevils", Team2: "Rajasthan Royals", TossWinner: "Rajasthan Royals", TossDecision: "bat", Winner: "Delhi Daredevils", Result: "wickets", PlayerOfMatch: "MF Maharoof"},
		{ID: 392181, RawDate: "2009-04-18", City: "Cape Town", Venue: "Newlands", Team1: "Chennai Super Kings", Team2: "Mumbai Indians", TossWinner: "Mumbai Indians", TossDecision: "bat", Winner: "Mumbai Indians", Result: "runs", PlayerOfMatch: "SR Tendulkar"},
		{ID: 392182, RawDate: "2009-04-18", City: "Cape Town", Venue: "Newlands", Team1: "Royal Challengers Bangalore", Team2: "Rajasthan Royals", TossWinner: "Royal Challengers Bangalore", TossDecision: "bat", Winner: "Royal Challengers Bangalore", Result: "runs", PlayerOfMatch: "R Dravid"},
		{ID: 392183, RawDate: "2009-04-19", City: "Cape Town", Venue: "Newlands", Team1: "Delhi Daredevils", Team2: "Kings XI Punjab", TossWinner: "Delhi Daredevils", TossDecision: "field", Winner: "Delhi Daredevils", Result: "wickets", PlayerOfMatch: "DL Vettori"},
		{ID: 419111, RawDate: "2010-03-12", City: "Mumbai", Venue: "Dr DY Patil Sports Academy", Team1: "Kolkata Knight Riders", Team2: "Deccan Chargers", TossWinner: "Deccan Chargers", TossDecision: "bat", Winner: "Kolkata Knight Riders", Result: "wickets", PlayerOfMatch: "AD Mathews"},
		{ID: 419112, RawDate: "2010-03-13", City: "Mumbai", Venue: "Brabourne Stadium", Team1: "Mumbai Indians", Team2: "Rajasthan Royals", TossWinner: "Mumbai Indians", TossDecision: "bat", Winner: "Mumbai Indians", Result: "runs", PlayerOfMatch: "YK Pathan"},
		{ID: 419113, RawDate: "2010-03-13", City: "Chandigarh", Venue: "Punjab Cricket Association Stadium, Mohali", Team1: "Kings XI Punjab", Team2: "Delhi Daredevils", TossWinner: "Kings XI Punjab", TossDecision: "bat", Winner: "Delhi Daredevils", Result: "wickets", PlayerOfMatch: "G Gambhir"},
		{ID: 419114, RawDate: "2010-03-14", City: "Kolkata", Venue: "Eden Gardens", Team1: "Kolkata Knight Riders", Team2: "Royal Challengers Bangalore", TossWinner: "Royal Challengers Bangalore", TossDecision: "field", Winner: "", Result: "no result", PlayerOfMatch: ""},
	}
}

func SeedDeliveries() []delivery.Delivery {
	return []delivery.Delivery{
		{MatchID: 335982, Inning: 1, BattingTeam: "Kolkata Knight Riders", BowlingTeam: "Royal Challengers Bangalore", Batter: "BB McCullum", Bowler: "P Kumar", BatsmanRuns: 4, TotalRuns: 4},
		{MatchID: 335982, Inning: 1, BattingTeam: "Kolkata Knight Riders", BowlingTeam: "Royal Challengers Bangalore", Batter: "BB McCullum", Bowler: "Z Khan", BatsmanRuns: 6, TotalRuns: 6},
		{MatchID: 335982, Inning: 1, BattingTeam: "Kolkata Knight Riders", BowlingTeam: "Royal Challengers Bangalore", Batter: "SC Ganguly", Bowler: "Z Khan", IsWicket: true, DismissalKind: "caught", PlayerDismissed: "SC Ganguly"},
		{MatchID: 335982, Inning: 2, BattingTeam: "Royal Challengers Bangalore", BowlingTeam: "Kolkata Knight Riders", Batter: "R Dravid", Bowler: "AB Agarkar", IsWicket: true, DismissalKind: "bowled", PlayerDismissed: "R Dravid"},
		{MatchID: 335983, Inning: 1, BattingTeam: "Chennai Super Kings", BowlingTeam: "Kings XI Punjab", Batter: "MEK Hussey", Bowler: "B Lee", BatsmanRuns: 4, ExtraRuns: 1, TotalRuns: 5},
		{MatchID: 335983, Inning: 2, BattingTeam: "Kings XI Punjab", BowlingTeam: "Chennai Super Kings", Batter: "K Goel", Bowler: "JDP Oram", IsWicket: true, DismissalKind: "lbw", PlayerDismissed: "K Goel"},
		{MatchID: 335984, Inning: 1, BattingTeam: "Rajasthan Royals", BowlingTeam: "Delhi Daredevils", Batter: "GC Smith", Bowler: "GD McGrath", BatsmanRuns: 2, TotalRuns: 2},
		{MatchID: 335984, Inning: 1, BattingTeam: "Rajasthan Royals", BowlingTeam: "Delhi Daredevils", Batter: "Kamran Akmal", Bowler: "MF Maharoof", IsWicket: true, DismissalKind: "run out", PlayerDismissed: "Kamran Akmal"},
		{MatchID: 392181, Inning: 1, BattingTeam: "Mumbai Indians", BowlingTeam: "Chennai Super Kings", Batter: "SR Tendulkar", Bowler: "M Muralitharan", BatsmanRuns: 4, TotalRuns: 4},
		{MatchID: 392181, Inning: 2, BattingTeam: "Chennai Super Kings", BowlingTeam: "Mumbai Indians", Batter: "ML Hayden", Bowler: "Harbhajan Singh", IsWicket: true, DismissalKind: "stumped", PlayerDismissed: "ML Hayden"},
		{MatchID: 392182, Inning: 1, BattingTeam: "Royal Challengers Bangalore", BowlingTeam: "Rajasthan Royals", Batter: "R Dravid", Bowler: "SK Warne", BatsmanRuns: 6, TotalRuns: 6},
		{MatchID: 392183, Inning: 2, BattingTeam: "Delhi Daredevils", BowlingTeam: "Kings XI Punjab", Batter: "AB de Villiers", Bowler: "IK Pathan", BatsmanRuns: 1, ExtraRuns: 0, TotalRuns: 1},
		{MatchID: 419111, Inning: 1, BattingTeam: "Deccan Chargers", BowlingTeam: "Kolkata Knight Riders", Batter: "AC Gilchrist", Bowler: "AD Mathews", IsWicket: true, DismissalKind: "caught", PlayerDismissed: "AC Gilchrist"},
		{MatchID: 419112, Inning: 1, BattingTeam: "Mumbai Indians", BowlingTeam: "Rajasthan Royals", Batter: "SR Tendulkar", Bowler: "SK Warne", BatsmanRuns: 4, TotalRuns: 4},
		{MatchID: 419113, Inning: 2, BattingTeam: "Delhi Daredevils", BowlingTeam: "Kings XI Punjab", Batter: "G Gambhir", Bowler: "IK Pathan", BatsmanRuns: 6, TotalRuns: 6},
	}
}
