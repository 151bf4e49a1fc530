package csvfile

import (
	"context"
	"io"
	"os"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
)

// DeliveryColumns are the columns a deliveries file must carry.
var DeliveryColumns = []string{"match_id", "batter", "bowler", "batsman_runs", "total_runs", "is_wicket", "dismissal_kind"}

type deliveryRow struct {
	MatchID         string `csv:"match_id"`
	Inning          string `csv:"inning"`
	BattingTeam     string `csv:"batting_team"`
	BowlingTeam     string `csv:"bowling_team"`
	Batter          string `csv:"batter"`
	Bowler          string `csv:"bowler"`
	BatsmanRuns     string `csv:"batsman_runs"`
	ExtraRuns       string `csv:"extra_runs"`
	TotalRuns       string `csv:"total_runs"`
	IsWicket        string `csv:"is_wicket"`
	DismissalKind   string `csv:"dismissal_kind"`
	PlayerDismissed string `csv:"player_dismissed"`
}

type DeliveryRepository struct {
	path string
}

func NewDeliveryRepository(path string) *DeliveryRepository {
	return &DeliveryRepository{path: path}
}

func (r *DeliveryRepository) ListDeliveries(ctx context.Context) ([]delivery.Delivery, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, crerr.Wrapf(err, "open deliveries file")
	}
	defer f.Close()

	return DecodeDeliveries(ctx, f)
}

func DecodeDeliveries(ctx context.Context, r io.Reader) ([]delivery.Delivery, error) {
	rows, err := decodeRows[deliveryRow](ctx, "deliveries", r, DeliveryColumns)
	if err != nil {
		return nil, err
	}

	out := make([]delivery.Delivery, 0, len(rows))
	for i, row := range rows {
		d, err := row.toDelivery()
		if err != nil {
			return nil, crerr.Wrapf(err, "deliveries: line %d", i+2)
		}
		out = append(out, d)
	}
	return out, nil
}

func (row deliveryRow) toDelivery() (delivery.Delivery, error) {
	if row.MatchID == "" {
		return delivery.Delivery{}, crerr.Wrap(ErrMalformedValue, "match_id is empty")
	}
	matchID, err := parseInt("match_id", row.MatchID)
	if err != nil {
		return delivery.Delivery{}, err
	}
	inning, err := parseInt("inning", row.Inning)
	if err != nil {
		return delivery.Delivery{}, err
	}
	batsmanRuns, err := parseInt("batsman_runs", row.BatsmanRuns)
	if err != nil {
		return delivery.Delivery{}, err
	}
	extraRuns, err := parseInt("extra_runs", row.ExtraRuns)
	if err != nil {
		return delivery.Delivery{}, err
	}
	totalRuns, err := parseInt("total_runs", row.TotalRuns)
	if err != nil {
		return delivery.Delivery{}, err
	}
	isWicket, err := parseFlag("is_wicket", row.IsWicket)
	if err != nil {
		return delivery.Delivery{}, err
	}

	return delivery.Delivery{
		MatchID:         matchID,
		Inning:          int(inning),
		BattingTeam:     row.BattingTeam,
		BowlingTeam:     row.BowlingTeam,
		Batter:          row.Batter,
		Bowler:          row.Bowler,
		BatsmanRuns:     int(batsmanRuns),
		ExtraRuns:       int(extraRuns),
		TotalRuns:       int(totalRuns),
		IsWicket:        isWicket,
		DismissalKind:   row.DismissalKind,
		PlayerDismissed: row.PlayerDismissed,
	}, nil
}
