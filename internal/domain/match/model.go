package match

import (
	"time"

	"github.com/riskibarqy/iplt20-stats/internal/domain/season"
	"github.com/riskibarqy/iplt20-stats/internal/domain/team"
)

// Match is one played (or abandoned) fixture.
// Team fields hold the raw historical names; the *Code fields hold the
// normalized short codes. An empty Winner means no result.
type Match struct {
	ID            int64
	RawDate       string
	Date          time.Time
	Season        string
	City          string
	Venue         string
	Team1         string
	Team2         string
	TossWinner    string
	TossDecision  string
	Winner        string
	Result        string
	PlayerOfMatch string

	Team1Code      string
	Team2Code      string
	TossWinnerCode string
	WinnerCode     string
}

// HasDate reports whether the match date parsed.
func (m Match) HasDate() bool {
	return !m.Date.IsZero()
}

// Normalize fills the derived fields: parsed date, season label and the
// short codes of every team-bearing field.
func (m Match) Normalize() Match {
	if m.Date.IsZero() {
		if parsed, ok := season.ParseDate(m.RawDate); ok {
			m.Date = parsed
		}
	}
	m.Season = season.Of(m.Date)
	m.Team1Code = team.Normalize(m.Team1)
	m.Team2Code = team.Normalize(m.Team2)
	m.TossWinnerCode = team.Normalize(m.TossWinner)
	m.WinnerCode = team.Normalize(m.Winner)
	return m
}

// TeamNames returns the raw team-bearing fields of the match.
func (m Match) TeamNames() []string {
	return []string{m.Team1, m.Team2, m.TossWinner, m.Winner}
}
