package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
	qb "github.com/riskibarqy/iplt20-stats/internal/platform/querybuilder"
)

func TestMatchModelRoundTrip(t *testing.T) {
	in := match.Match{
		ID:         335982,
		RawDate:    "2008-04-18",
		Venue:      "M Chinnaswamy Stadium",
		Team1:      "Royal Challengers Bangalore",
		Team2:      "Kolkata Knight Riders",
		TossWinner: "Royal Challengers Bangalore",
		Winner:     "",
	}.Normalize()

	row := matchModelFromDomain(in)
	if !row.MatchDate.Valid || !row.MatchDate.Time.Equal(time.Date(2008, 4, 18, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected parsed match date, got %+v", row.MatchDate)
	}
	if row.Winner.Valid {
		t.Fatalf("expected empty winner to be stored as NULL")
	}
	if row.City.Valid {
		t.Fatalf("expected empty city to be stored as NULL")
	}

	out := row.toDomain()
	if out.ID != in.ID || out.Venue != in.Venue || out.Team1 != in.Team1 || out.Winner != "" {
		t.Fatalf("unexpected round trip: %+v", out)
	}
	if !out.Date.Equal(in.Date) {
		t.Fatalf("expected date %s, got %s", in.Date, out.Date)
	}
}

func TestMatchModel_UnparsedDateStaysNull(t *testing.T) {
	row := matchModelFromDomain(match.Match{ID: 1, RawDate: "??"}.Normalize())
	if row.MatchDate.Valid {
		t.Fatalf("expected NULL match_date for an unparseable date")
	}
	if row.RawDate != "??" {
		t.Fatalf("expected raw date to be kept, got %q", row.RawDate)
	}
	if out := row.toDomain(); out.HasDate() {
		t.Fatalf("expected no date after round trip")
	}
}

func TestDeliveryModelRoundTrip(t *testing.T) {
	in := delivery.Delivery{
		MatchID:       335982,
		Inning:        2,
		Batter:        "R Dravid",
		Bowler:        "AB Agarkar",
		IsWicket:      true,
		DismissalKind: "bowled",
		TotalRuns:     0,
	}

	row := deliveryModelFromDomain(in)
	if row.PlayerDismissed.Valid {
		t.Fatalf("expected empty player_dismissed to be NULL")
	}
	if got := row.toDomain(); got != in {
		t.Fatalf("unexpected round trip: %+v", got)
	}
}

func TestCopyColumnsMatchModels(t *testing.T) {
	cols, err := qb.Columns(matchTableModel{})
	if err != nil {
		t.Fatalf("match columns: %v", err)
	}
	if len(cols) != 12 || cols[0] != "id" || cols[1] != "match_date" {
		t.Fatalf("unexpected match columns: %v", cols)
	}

	vals, err := qb.Values(deliveryModelFromDomain(delivery.Delivery{MatchID: 1, DismissalKind: "caught"}))
	if err != nil {
		t.Fatalf("delivery values: %v", err)
	}
	if len(vals) != 12 {
		t.Fatalf("unexpected delivery value count: %d", len(vals))
	}
	if kind, ok := vals[10].(sql.NullString); !ok || kind.String != "caught" || !kind.Valid {
		t.Fatalf("unexpected dismissal_kind value: %#v", vals[10])
	}
}

func TestNullHelpers(t *testing.T) {
	if v := nullString("  "); v.Valid {
		t.Fatalf("expected blank string to be NULL")
	}
	if got := stringOrEmpty(sql.NullString{String: "x", Valid: true}); got != "x" {
		t.Fatalf("unexpected string %q", got)
	}
	if v := nullTime(time.Time{}); v.Valid {
		t.Fatalf("expected zero time to be NULL")
	}
}
