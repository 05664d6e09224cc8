package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/cricket-ingest/internal/domain/partnership"
)

type PartnershipRepository struct {
	mu      sync.Mutex
	byMatch map[string][]partnership.Partnership
}

func NewPartnershipRepository() *PartnershipRepository {
	return &PartnershipRepository{byMatch: make(map[string][]partnership.Partnership)}
}

func (r *PartnershipRepository) ReplaceByMatch(_ context.Context, matchID string, partnerships []partnership.Partnership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byMatch[matchID] = append([]partnership.Partnership(nil), partnerships...)

	return nil
}

func (r *PartnershipRepository) ListByMatch(_ context.Context, matchID string) ([]partnership.Partnership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]partnership.Partnership(nil), r.byMatch[matchID]...), nil
}

func (r *PartnershipRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, partnerships := range r.byMatch {
		total += len(partnerships)
	}

	return total
}
