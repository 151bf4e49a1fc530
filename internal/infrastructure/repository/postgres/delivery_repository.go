package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
	qb "github.com/riskibarqy/iplt20-stats/internal/platform/querybuilder"
)

type DeliveryRepository struct {
	db *sqlx.DB
}

func NewDeliveryRepository(db *sqlx.DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

func (r *DeliveryRepository) ListDeliveries(ctx context.Context) ([]delivery.Delivery, error) {
	cols, err := qb.Columns(deliveryTableModel{})
	if err != nil {
		return nil, fmt.Errorf("resolve delivery columns: %w", err)
	}
	query, args, err := qb.Select(cols...).From("deliveries").OrderBy("match_id", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select deliveries query: %w", err)
	}

	var rows []deliveryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select deliveries: %w", err)
	}

	out := make([]delivery.Delivery, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
