package delivery

import "context"

// Repository exposes the ball-by-ball table.
type Repository interface {
	ListDeliveries(ctx context.Context) ([]Delivery, error)
}
