package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
)

type DeliveryRepository struct {
	mu         sync.RWMutex
	deliveries []delivery.Delivery
}

func NewDeliveryRepository(deliveries []delivery.Delivery) *DeliveryRepository {
	return &DeliveryRepository{deliveries: append([]delivery.Delivery(nil), deliveries...)}
}

func (r *DeliveryRepository) ListDeliveries(_ context.Context) ([]delivery.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]delivery.Delivery, 0, len(r.deliveries))
	out = append(out, r.deliveries...)
	return out, nil
}

func (r *DeliveryRepository) Replace(_ context.Context, deliveries []delivery.Delivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deliveries = append([]delivery.Delivery(nil), deliveries...)
	return nil
}
