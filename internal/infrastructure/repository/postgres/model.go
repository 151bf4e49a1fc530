package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
)

type matchTableModel struct {
	ID            int64          `db:"id"`
	MatchDate     sql.NullTime   `db:"match_date"`
	RawDate       string         `db:"date_raw"`
	City          sql.NullString `db:"city"`
	Venue         sql.NullString `db:"venue"`
	Team1         sql.NullString `db:"team1"`
	Team2         sql.NullString `db:"team2"`
	TossWinner    sql.NullString `db:"toss_winner"`
	TossDecision  sql.NullString `db:"toss_decision"`
	Winner        sql.NullString `db:"winner"`
	Result        sql.NullString `db:"result"`
	PlayerOfMatch sql.NullString `db:"player_of_match"`
}

func matchModelFromDomain(m match.Match) matchTableModel {
	return matchTableModel{
		ID:            m.ID,
		MatchDate:     nullTime(m.Date),
		RawDate:       m.RawDate,
		City:          nullString(m.City),
		Venue:         nullString(m.Venue),
		Team1:         nullString(m.Team1),
		Team2:         nullString(m.Team2),
		TossWinner:    nullString(m.TossWinner),
		TossDecision:  nullString(m.TossDecision),
		Winner:        nullString(m.Winner),
		Result:        nullString(m.Result),
		PlayerOfMatch: nullString(m.PlayerOfMatch),
	}
}

func (row matchTableModel) toDomain() match.Match {
	out := match.Match{
		ID:            row.ID,
		RawDate:       row.RawDate,
		City:          stringOrEmpty(row.City),
		Venue:         stringOrEmpty(row.Venue),
		Team1:         stringOrEmpty(row.Team1),
		Team2:         stringOrEmpty(row.Team2),
		TossWinner:    stringOrEmpty(row.TossWinner),
		TossDecision:  stringOrEmpty(row.TossDecision),
		Winner:        stringOrEmpty(row.Winner),
		Result:        stringOrEmpty(row.Result),
		PlayerOfMatch: stringOrEmpty(row.PlayerOfMatch),
	}
	if row.MatchDate.Valid {
		out.Date = row.MatchDate.Time.UTC()
	}
	return out
}

type deliveryTableModel struct {
	MatchID         int64          `db:"match_id"`
	Inning          int            `db:"inning"`
	BattingTeam     sql.NullString `db:"batting_team"`
	BowlingTeam     sql.NullString `db:"bowling_team"`
	Batter          sql.NullString `db:"batter"`
	Bowler          sql.NullString `db:"bowler"`
	BatsmanRuns     int            `db:"batsman_runs"`
	ExtraRuns       int            `db:"extra_runs"`
	TotalRuns       int            `db:"total_runs"`
	IsWicket        bool           `db:"is_wicket"`
	DismissalKind   sql.NullString `db:"dismissal_kind"`
	PlayerDismissed sql.NullString `db:"player_dismissed"`
}

func deliveryModelFromDomain(d delivery.Delivery) deliveryTableModel {
	return deliveryTableModel{
		MatchID:         d.MatchID,
		Inning:          d.Inning,
		BattingTeam:     nullString(d.BattingTeam),
		BowlingTeam:     nullString(d.BowlingTeam),
		Batter:          nullString(d.Batter),
		Bowler:          nullString(d.Bowler),
		BatsmanRuns:     d.BatsmanRuns,
		ExtraRuns:       d.ExtraRuns,
		TotalRuns:       d.TotalRuns,
		IsWicket:        d.IsWicket,
		DismissalKind:   nullString(d.DismissalKind),
		PlayerDismissed: nullString(d.PlayerDismissed),
	}
}

func (row deliveryTableModel) toDomain() delivery.Delivery {
	return delivery.Delivery{
		MatchID:         row.MatchID,
		Inning:          row.Inning,
		BattingTeam:     stringOrEmpty(row.BattingTeam),
		BowlingTeam:     stringOrEmpty(row.BowlingTeam),
		Batter:          stringOrEmpty(row.Batter),
		Bowler:          stringOrEmpty(row.Bowler),
		BatsmanRuns:     row.BatsmanRuns,
		ExtraRuns:       row.ExtraRuns,
		TotalRuns:       row.TotalRuns,
		IsWicket:        row.IsWicket,
		DismissalKind:   stringOrEmpty(row.DismissalKind),
		PlayerDismissed: stringOrEmpty(row.PlayerDismissed),
	}
}

type importTableModel struct {
	Source       string    `db:"source"`
	MatchRows    int       `db:"match_rows"`
	DeliveryRows int       `db:"delivery_rows"`
	ImportedAt   time.Time `db:"imported_at"`
}

// ImportRecord is one completed import into the database.
type ImportRecord struct {
	ID           int64     `db:"id"`
	Source       string    `db:"source"`
	MatchRows    int       `db:"match_rows"`
	DeliveryRows int       `db:"delivery_rows"`
	ImportedAt   time.Time `db:"imported_at"`
}
