package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/cricket-ingest/internal/domain/delivery"
)

type DeliveryRepository struct {
	mu      sync.Mutex
	byMatch map[string][]delivery.Delivery
}

func NewDeliveryRepository() *DeliveryRepository {
	return &DeliveryRepository{byMatch: make(map[string][]delivery.Delivery)}
}

func (r *DeliveryRepository) ReplaceByMatch(_ context.Context, matchID string, deliveries []delivery.Delivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byMatch[matchID] = append([]delivery.Delivery(nil), deliveries...)

	return nil
}

func (r *DeliveryRepository) CountByMatch(_ context.Context, matchID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.byMatch[matchID])), nil
}

func (r *DeliveryRepository) ListByMatch(matchID string) []delivery.Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]delivery.Delivery(nil), r.byMatch[matchID]...)
}

func (r *DeliveryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, deliveries := range r.byMatch {
		total += len(deliveries)
	}

	return total
}
