package csvfile

import (
	"context"
	"io"
	"os"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
)

// MatchColumns are the columns a matches file must carry.
var MatchColumns = []string{"id", "date", "team1", "team2", "winner", "toss_winner", "venue"}

type matchRow struct {
	ID            string `csv:"id"`
	Date          string `csv:"date"`
	City          string `csv:"city"`
	Venue         string `csv:"venue"`
	Team1         string `csv:"team1"`
	Team2         string `csv:"team2"`
	TossWinner    string `csv:"toss_winner"`
	TossDecision  string `csv:"toss_decision"`
	Winner        string `csv:"winner"`
	Result        string `csv:"result"`
	PlayerOfMatch string `csv:"player_of_match"`
}

// MatchRepository reads the match table from a CSV file on every call.
type MatchRepository struct {
	path string
}

func NewMatchRepository(path string) *MatchRepository {
	return &MatchRepository{path: path}
}

func (r *MatchRepository) ListMatches(ctx context.Context) ([]match.Match, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, crerr.Wrapf(err, "open matches file")
	}
	defer f.Close()

	return DecodeMatches(ctx, f)
}

// DecodeMatches decodes a matches CSV. Raw values are kept; normalization happens when the dataset is built.
func DecodeMatches(ctx context.Context, r io.Reader) ([]match.Match, error) {
	rows, err := decodeRows[matchRow](ctx, "matches", r, MatchColumns)
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(rows))
	for i, row := range rows {
		if row.ID == "" {
			return nil, crerr.Wrapf(ErrMalformedValue, "matches: line %d: id is empty", i+2)
		}
		id, err := parseInt("id", row.ID)
		if err != nil {
			return nil, crerr.Wrapf(err, "matches: line %d", i+2)
		}
		out = append(out, match.Match{
			ID:            id,
			RawDate:       row.Date,
			City:          row.City,
			Venue:         row.Venue,
			Team1:         row.Team1,
			Team2:         row.Team2,
			TossWinner:    row.TossWinner,
			TossDecision:  row.TossDecision,
			Winner:        row.Winner,
			Result:        row.Result,
			PlayerOfMatch: row.PlayerOfMatch,
		})
	}
	return out, nil
}
