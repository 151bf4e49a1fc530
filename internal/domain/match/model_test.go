package match

import (
	"testing"
	"time"

	"github.com/riskibarqy/iplt20-stats/internal/domain/season"
)

func TestMatch_Normalize(t *testing.T) {
	t.Parallel()

	m := Match{
		ID:         335982,
		RawDate:    "2008-04-18",
		Team1:      "Royal Challengers Bangalore",
		Team2:      "Kolkata Knight Riders",
		TossWinner: "Royal Challengers Bangalore",
		Winner:     "Kolkata Knight Riders",
	}.Normalize()

	if !m.Date.Equal(time.Date(2008, 4, 18, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %s", m.Date)
	}
	if m.Season != "2008" {
		t.Fatalf("unexpected season %q", m.Season)
	}
	if m.Team1Code != "RCB" || m.Team2Code != "KKR" || m.TossWinnerCode != "RCB" || m.WinnerCode != "KKR" {
		t.Fatalf("unexpected codes: %+v", m)
	}
	if m.Team1 != "Royal Challengers Bangalore" {
		t.Fatalf("raw team name must be kept, got %q", m.Team1)
	}
}

func TestMatch_Normalize_BadDateAndNoResult(t *testing.T) {
	t.Parallel()

	m := Match{ID: 1, RawDate: "not-a-date", Team1: "Kochi Tuskers Kerala", Team2: "New Franchise"}.Normalize()

	if m.HasDate() {
		t.Fatalf("expected missing date")
	}
	if m.Season != season.Unknown {
		t.Fatalf("expected unknown season, got %q", m.Season)
	}
	if m.WinnerCode != "" {
		t.Fatalf("expected empty winner code, got %q", m.WinnerCode)
	}
	if m.Team2Code != "New Franchise" {
		t.Fatalf("expected pass-through code, got %q", m.Team2Code)
	}
}

func TestMatch_Normalize_KeepsParsedDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2015, 5, 24, 0, 0, 0, 0, time.UTC)
	m := Match{ID: 2, Date: date, RawDate: "garbage"}.Normalize()
	if m.Season != "2015" {
		t.Fatalf("expected season from Date field, got %q", m.Season)
	}
}
